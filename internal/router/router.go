package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/moviedex/internal/handler"
	"github.com/user/moviedex/internal/middleware"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ==================== 认证 ====================
	auth := r.Group("/auth")
	auth.Use(middleware.OptionalAuth(h.Config.AppSecret))
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", h.Me)
		auth.GET("/confirm", h.ConfirmEmail)
	}

	// ==================== 电影目录（公开）====================
	movies := r.Group("/api/movies")
	{
		movies.GET("/home", h.Home)
		movies.GET("/popular", h.Popular)
		movies.GET("/top_rated", h.TopRated)
		movies.GET("/now_playing", h.NowPlaying)
		movies.GET("/search", h.Search)
		movies.GET("/:id", h.MovieDetail)
		movies.GET("/:id/recommendations", h.Recommendations)
		movies.GET("/:id/comments", h.ListComments)
	}

	// ==================== 用户数据（需要登录）====================
	api := r.Group("/api")
	api.Use(middleware.RequireAuth(h.Config.AppSecret))
	{
		api.GET("/watchlist", h.ListWatchlist)
		api.GET("/watchlist/:id", h.CheckWatchlist)
		api.POST("/watchlist/:id", h.AddToWatchlist)
		api.DELETE("/watchlist/:id", h.RemoveFromWatchlist)

		api.POST("/movies/:id/rating", h.RateMovie)
		api.GET("/movies/:id/rating", h.GetMyRating)
		api.POST("/movies/:id/comments", h.CreateComment)
	}
}
