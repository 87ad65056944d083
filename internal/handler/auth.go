package handler

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/user/moviedex/internal/middleware"
	"github.com/user/moviedex/internal/model"
	"github.com/user/moviedex/internal/utils"
)

// credentialsRequest 注册/登录请求体
type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register 注册
func (h *Handler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindingError(c, err)
		return
	}

	// 本地校验先行，不合法的输入不落库
	if fields := utils.ValidateCredentials(req.Email, req.Password); fields != nil {
		utils.ValidationError(c, fields)
		return
	}

	result, err := h.Auth.SignUp(req.Email, req.Password)
	if err != nil {
		utils.AppError(c, err)
		return
	}

	// 邮箱待确认时不下发登录态，客户端提示用户查收邮件
	if result.ConfirmationRequired {
		utils.SuccessWithMessage(c, "账号已创建，请查收确认邮件", result)
		return
	}

	h.establishSession(c, result.User)
	utils.Success(c, gin.H{"user": result.User})
}

// Login 登录
func (h *Handler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindingError(c, err)
		return
	}

	if fields := utils.ValidateCredentials(req.Email, req.Password); fields != nil {
		utils.ValidationError(c, fields)
		return
	}

	user, err := h.Auth.SignIn(req.Email, req.Password)
	if err != nil {
		utils.AppError(c, err)
		return
	}

	token := h.establishSession(c, user)
	utils.Success(c, gin.H{"user": user, "token": token})
}

// Logout 登出，重复调用安全
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)

	// 清理 Session
	session := sessions.Default(c)
	session.Clear()
	session.Save()

	utils.SuccessWithMessage(c, "已退出登录", nil)
}

// Me 当前会话，客户端启动时调用决定初始页面
func (h *Handler) Me(c *gin.Context) {
	// 优先读 Session 中的快照
	session := sessions.Default(c)
	if userinfo := session.Get("userinfo"); userinfo != nil {
		if su, ok := userinfo.(model.SessionUser); ok {
			utils.Success(c, gin.H{"user": su})
			return
		}
	}

	// 回退到 JWT
	userID := middleware.GetUserID(c)
	if userID == 0 {
		utils.Unauthorized(c, "")
		return
	}

	user, err := h.Repos.User.FindByID(userID)
	if err != nil || user == nil {
		utils.Unauthorized(c, "")
		return
	}

	utils.Success(c, gin.H{"user": model.SessionUser{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
		Role:     user.Role,
	}})
}

// ConfirmEmail 邮箱确认
func (h *Handler) ConfirmEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		utils.BadRequest(c, "缺少确认令牌")
		return
	}

	if err := h.Auth.ConfirmEmail(token); err != nil {
		utils.AppError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "邮箱确认成功，现在可以登录了", nil)
}

// establishSession 下发 JWT 并把用户快照写入 Session
func (h *Handler) establishSession(c *gin.Context, user *model.User) string {
	token, err := middleware.GenerateToken(user.ID, user.Email, user.Role, h.Config.AppSecret, h.Config.JWTExpiry)
	if err != nil {
		return ""
	}

	c.SetCookie("token", token, int(h.Config.JWTExpiry.Seconds()), "/", "", false, true)

	session := sessions.Default(c)
	session.Set("userinfo", model.SessionUser{
		ID:       user.ID,
		Email:    user.Email,
		Username: user.Username,
		Role:     user.Role,
	})
	session.Save()

	return token
}
