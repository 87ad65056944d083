package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/moviedex/internal/model"
	"github.com/user/moviedex/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestAuth(t *testing.T) (*AuthService, *repository.Repositories) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// 内存库只允许单连接，避免连接池各自拿到独立的空库
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, repository.Migrate(db))

	repos := repository.NewRepositories(db)
	return NewAuthService(repos.User), repos
}

func TestSignUpRequiresConfirmation(t *testing.T) {
	auth, _ := newTestAuth(t)

	result, err := auth.SignUp("user@example.com", "Abc123")
	require.NoError(t, err)
	require.NotNil(t, result.User)

	// 新账号邮箱未确认，属于正常分支而不是错误
	assert.True(t, result.ConfirmationRequired)
	assert.Equal(t, "user@example.com", result.User.Email)
	assert.Equal(t, "user", result.User.Username)
	assert.False(t, result.User.Confirmed())
}

func TestSignUpNormalizesEmail(t *testing.T) {
	auth, repos := newTestAuth(t)

	_, err := auth.SignUp("  USER@Example.COM ", "Abc123")
	require.NoError(t, err)

	user, err := repos.User.FindByEmail("user@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
}

func TestSignUpEmailTaken(t *testing.T) {
	auth, _ := newTestAuth(t)

	_, err := auth.SignUp("user@example.com", "Abc123")
	require.NoError(t, err)

	// 同一邮箱换个大小写也算重复
	_, err = auth.SignUp("User@Example.com", "Abc123")
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, model.ErrCodeEmailTaken, appErr.Code)
}

func TestSignUpInvalidEmail(t *testing.T) {
	auth, _ := newTestAuth(t)

	_, err := auth.SignUp("not-an-email", "Abc123")
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, model.ErrCodeInvalidEmailFormat, appErr.Code)
}

func TestSignInBeforeConfirmation(t *testing.T) {
	auth, _ := newTestAuth(t)

	_, err := auth.SignUp("user@example.com", "Abc123")
	require.NoError(t, err)

	_, err = auth.SignIn("user@example.com", "Abc123")
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, model.ErrCodeEmailUnconfirmed, appErr.Code)
}

func TestSignInAfterConfirmation(t *testing.T) {
	auth, repos := newTestAuth(t)

	result, err := auth.SignUp("user@example.com", "Abc123")
	require.NoError(t, err)

	require.NoError(t, auth.ConfirmEmail(result.User.ConfirmToken))

	// 登录时邮箱同样先归一化
	user, err := auth.SignIn("  USER@example.com ", "Abc123")
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, user.ID)

	stored, err := repos.User.FindByID(user.ID)
	require.NoError(t, err)
	assert.True(t, stored.Confirmed())
}

func TestSignInInvalidCredentials(t *testing.T) {
	auth, _ := newTestAuth(t)

	result, err := auth.SignUp("user@example.com", "Abc123")
	require.NoError(t, err)
	require.NoError(t, auth.ConfirmEmail(result.User.ConfirmToken))

	// 密码错误和用户不存在对外返回同一个错误码
	var appErr *model.AppError

	_, err = auth.SignIn("user@example.com", "Wrong99")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, model.ErrCodeInvalidCredentials, appErr.Code)

	_, err = auth.SignIn("nobody@example.com", "Abc123")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, model.ErrCodeInvalidCredentials, appErr.Code)
}

func TestConfirmEmailIdempotence(t *testing.T) {
	auth, _ := newTestAuth(t)

	result, err := auth.SignUp("user@example.com", "Abc123")
	require.NoError(t, err)

	token := result.User.ConfirmToken
	require.NoError(t, auth.ConfirmEmail(token))

	// 令牌一次性，重复使用视同无效
	err = auth.ConfirmEmail(token)
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, model.ErrCodeNotFound, appErr.Code)
}
