package service

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"strings"

	"github.com/user/moviedex/internal/model"
	"github.com/user/moviedex/internal/repository"
	"github.com/user/moviedex/internal/utils"
)

// AuthService 负责注册、登录和邮箱确认的业务逻辑
// 失败统一返回带错误码的 AppError，调用方按码分支
type AuthService struct {
	users *repository.UserRepository
}

func NewAuthService(users *repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// SignUpResult 注册结果。账号创建成功但邮箱待确认时
// ConfirmationRequired 为 true，这是正常分支，不是错误
type SignUpResult struct {
	User                 *model.User `json:"user"`
	ConfirmationRequired bool        `json:"confirmation_required"`
}

// SignUp 注册新用户，邮箱先归一化再入库
func (s *AuthService) SignUp(email, password string) (*SignUpResult, error) {
	email = utils.NormalizeEmail(email)

	if err := utils.ValidateEmail(email); err != nil {
		return nil, model.NewAppError(model.ErrCodeInvalidEmailFormat, err.Message)
	}

	existing, err := s.users.FindByEmail(email)
	if err != nil {
		log.Printf("[Auth] 查询用户失败: %v", err)
		return nil, model.NewAppError(model.ErrCodeUnknown, "注册失败，请稍后重试")
	}
	if existing != nil {
		return nil, model.NewAppError(model.ErrCodeEmailTaken, "该邮箱已被注册")
	}

	// 默认截取邮箱 @ 符号前的内容作为用户名
	username := email
	if parts := strings.Split(email, "@"); len(parts) > 0 {
		username = parts[0]
	}

	token, err := newConfirmToken()
	if err != nil {
		return nil, model.NewAppError(model.ErrCodeUnknown, "注册失败，请稍后重试")
	}

	user, err := s.users.Create(email, username, password, token)
	if err != nil {
		log.Printf("[Auth] 创建用户失败: %v", err)
		return nil, model.NewAppError(model.ErrCodeUnknown, "注册失败，请稍后重试")
	}

	// TODO: 接入邮件服务后真正发送确认邮件，当前仅记录日志
	log.Printf("[Auth] 用户 %s 注册成功，确认令牌: %s", user.Email, token)

	return &SignUpResult{
		User:                 user,
		ConfirmationRequired: !user.Confirmed(),
	}, nil
}

// SignIn 登录。查无此人和密码错误对外不区分，统一返回 invalid_credentials
func (s *AuthService) SignIn(email, password string) (*model.User, error) {
	email = utils.NormalizeEmail(email)

	user, err := s.users.FindByEmail(email)
	if err != nil {
		log.Printf("[Auth] 查询用户失败: %v", err)
		return nil, model.NewAppError(model.ErrCodeUnknown, "登录失败，请稍后重试")
	}
	if user == nil || !s.users.CheckPassword(user, password) {
		return nil, model.NewAppError(model.ErrCodeInvalidCredentials, "邮箱或密码错误")
	}

	if !user.Confirmed() {
		return nil, model.NewAppError(model.ErrCodeEmailUnconfirmed, "邮箱尚未确认，请查收确认邮件")
	}

	return user, nil
}

// ConfirmEmail 按令牌确认邮箱
func (s *AuthService) ConfirmEmail(token string) error {
	ok, err := s.users.ConfirmByToken(token)
	if err != nil {
		log.Printf("[Auth] 确认邮箱失败: %v", err)
		return model.NewAppError(model.ErrCodeUnknown, "确认失败，请稍后重试")
	}
	if !ok {
		return model.NewAppError(model.ErrCodeNotFound, "确认链接无效或已使用")
	}
	return nil
}

// newConfirmToken 生成一次性的邮箱确认令牌
func newConfirmToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
