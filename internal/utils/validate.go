package utils

import (
	"regexp"
	"strings"

	"github.com/user/moviedex/internal/model"
)

// 邮箱格式校验，先 NormalizeEmail 再匹配
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var (
	upperRegex = regexp.MustCompile(`[A-Z]`)
	digitRegex = regexp.MustCompile(`[0-9]`)
)

// NormalizeEmail 邮箱归一化：小写并去首尾空白
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail 校验邮箱格式，通过返回 nil
func ValidateEmail(email string) *model.FieldError {
	email = NormalizeEmail(email)
	if email == "" {
		return &model.FieldError{Field: "email", Message: "邮箱地址不能为空"}
	}
	if !emailRegex.MatchString(email) {
		return &model.FieldError{Field: "email", Message: "请输入有效的邮箱地址（如 user@domain.com）"}
	}
	return nil
}

// ValidatePassword 校验密码强度：至少 6 位，含大写字母和数字
func ValidatePassword(password string) *model.FieldError {
	if password == "" {
		return &model.FieldError{Field: "password", Message: "密码不能为空"}
	}
	if len(password) < 6 {
		return &model.FieldError{Field: "password", Message: "密码至少需要 6 个字符"}
	}
	if !upperRegex.MatchString(password) {
		return &model.FieldError{Field: "password", Message: "密码至少包含一个大写字母"}
	}
	if !digitRegex.MatchString(password) {
		return &model.FieldError{Field: "password", Message: "密码至少包含一个数字"}
	}
	return nil
}

// ValidateCredentials 邮箱和密码独立校验，两个错误可同时返回
func ValidateCredentials(email, password string) map[string]string {
	fields := make(map[string]string)
	if err := ValidateEmail(email); err != nil {
		fields[err.Field] = err.Message
	}
	if err := ValidatePassword(password); err != nil {
		fields[err.Field] = err.Message
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
