package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/moviedex/internal/utils"
)

// pageQuery 解析 page 参数，缺省为 1
func pageQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Home 首页聚合：热门 + 高分 + 正在上映并发获取
func (h *Handler) Home(c *gin.Context) {
	lists, err := h.TMDB.HomeLists(c.Request.Context())
	if err != nil {
		utils.AppError(c, err)
		return
	}
	utils.Success(c, lists)
}

// Popular 热门电影
func (h *Handler) Popular(c *gin.Context) {
	movies, err := h.TMDB.GetPopular(c.Request.Context(), pageQuery(c))
	if err != nil {
		utils.AppError(c, err)
		return
	}
	utils.Success(c, movies)
}

// TopRated 高分电影
func (h *Handler) TopRated(c *gin.Context) {
	movies, err := h.TMDB.GetTopRated(c.Request.Context(), pageQuery(c))
	if err != nil {
		utils.AppError(c, err)
		return
	}
	utils.Success(c, movies)
}

// NowPlaying 正在上映
func (h *Handler) NowPlaying(c *gin.Context) {
	movies, err := h.TMDB.GetNowPlaying(c.Request.Context(), pageQuery(c))
	if err != nil {
		utils.AppError(c, err)
		return
	}
	utils.Success(c, movies)
}

// Search 搜索电影
func (h *Handler) Search(c *gin.Context) {
	movies, err := h.TMDB.Search(c.Request.Context(), c.Query("q"), pageQuery(c))
	if err != nil {
		utils.AppError(c, err)
		return
	}
	utils.Success(c, movies)
}

// MovieDetail 电影详情，附带拼好的图片地址
func (h *Handler) MovieDetail(c *gin.Context) {
	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "电影 ID 不合法")
		return
	}

	details, err := h.TMDB.GetDetails(c.Request.Context(), movieID)
	if err != nil {
		utils.AppError(c, err)
		return
	}

	size := c.DefaultQuery("poster_size", "w500")
	utils.Success(c, gin.H{
		"movie":        details,
		"poster_url":   h.TMDB.ImageURL(details.PosterPath, size),
		"backdrop_url": h.TMDB.ImageURL(details.BackdropPath, "original"),
	})
}

// Recommendations 相关推荐
func (h *Handler) Recommendations(c *gin.Context) {
	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "电影 ID 不合法")
		return
	}

	movies, err := h.TMDB.GetRecommendations(c.Request.Context(), movieID)
	if err != nil {
		utils.AppError(c, err)
		return
	}
	utils.Success(c, movies)
}
