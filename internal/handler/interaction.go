package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/user/moviedex/internal/middleware"
	"github.com/user/moviedex/internal/utils"
)

// movieIDParam 解析路径中的电影 ID
func movieIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.BadRequest(c, "电影 ID 不合法")
		return 0, false
	}
	return id, true
}

// AddToWatchlist 加入想看清单
func (h *Handler) AddToWatchlist(c *gin.Context) {
	userID := middleware.GetUserID(c)
	movieID, ok := movieIDParam(c)
	if !ok {
		return
	}

	if err := h.Repos.Watchlist.Add(userID, movieID); err != nil {
		utils.InternalServerError(c, "")
		return
	}
	utils.SuccessWithMessage(c, "已加入想看清单", gin.H{"movie_id": movieID})
}

// RemoveFromWatchlist 移出想看清单，移除不存在的条目也返回成功
func (h *Handler) RemoveFromWatchlist(c *gin.Context) {
	userID := middleware.GetUserID(c)
	movieID, ok := movieIDParam(c)
	if !ok {
		return
	}

	if err := h.Repos.Watchlist.Remove(userID, movieID); err != nil {
		utils.InternalServerError(c, "")
		return
	}
	utils.SuccessWithMessage(c, "已移出想看清单", gin.H{"movie_id": movieID})
}

// ListWatchlist 当前用户的想看清单
func (h *Handler) ListWatchlist(c *gin.Context) {
	userID := middleware.GetUserID(c)

	items, err := h.Repos.Watchlist.ListByUser(userID)
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	utils.Success(c, items)
}

// CheckWatchlist 查询某部电影是否在清单中，详情页按钮状态用
func (h *Handler) CheckWatchlist(c *gin.Context) {
	userID := middleware.GetUserID(c)
	movieID, ok := movieIDParam(c)
	if !ok {
		return
	}

	contains, err := h.Repos.Watchlist.Contains(userID, movieID)
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	utils.Success(c, gin.H{"movie_id": movieID, "in_watchlist": contains})
}

// rateRequest 评分请求体，1-10 分
type rateRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=10"`
}

// RateMovie 提交评分，重复提交覆盖旧评分
func (h *Handler) RateMovie(c *gin.Context) {
	userID := middleware.GetUserID(c)
	movieID, ok := movieIDParam(c)
	if !ok {
		return
	}

	var req rateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindingError(c, err)
		return
	}

	if err := h.Repos.Rating.Upsert(userID, movieID, req.Rating); err != nil {
		utils.InternalServerError(c, "")
		return
	}
	utils.SuccessWithMessage(c, "评分成功", gin.H{"movie_id": movieID, "rating": req.Rating})
}

// GetMyRating 当前用户对某部电影的评分
func (h *Handler) GetMyRating(c *gin.Context) {
	userID := middleware.GetUserID(c)
	movieID, ok := movieIDParam(c)
	if !ok {
		return
	}

	rating, err := h.Repos.Rating.GetByUserAndMovie(userID, movieID)
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	utils.Success(c, gin.H{"movie_id": movieID, "rating": rating})
}

// commentRequest 短评请求体
type commentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreateComment 发表短评，空白内容直接拒绝
func (h *Handler) CreateComment(c *gin.Context) {
	userID := middleware.GetUserID(c)
	movieID, ok := movieIDParam(c)
	if !ok {
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindingError(c, err)
		return
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		utils.ValidationError(c, map[string]string{"content": "短评内容不能为空"})
		return
	}

	comment, err := h.Repos.Comment.Create(userID, movieID, content)
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	utils.Success(c, comment)
}

// ListComments 某部电影的全部短评，不区分用户，无需登录
func (h *Handler) ListComments(c *gin.Context) {
	movieID, ok := movieIDParam(c)
	if !ok {
		return
	}

	comments, err := h.Repos.Comment.ListByMovie(movieID, 100)
	if err != nil {
		utils.InternalServerError(c, "")
		return
	}
	utils.Success(c, comments)
}
