package model

// ErrorCode 机器可读的错误码，客户端按码分支，不要匹配消息文本
type ErrorCode string

const (
	ErrCodeValidation         ErrorCode = "validation_error"
	ErrCodeUnauthenticated    ErrorCode = "unauthenticated"
	ErrCodeInvalidCredentials ErrorCode = "invalid_credentials"
	ErrCodeInvalidEmailFormat ErrorCode = "invalid_email_format"
	ErrCodeEmailUnconfirmed   ErrorCode = "email_unconfirmed"
	ErrCodeEmailTaken         ErrorCode = "email_taken"
	ErrCodeNotFound           ErrorCode = "not_found"
	ErrCodeUnknown            ErrorCode = "unknown"
)

// AppError 带错误码的业务错误
type AppError struct {
	Code    ErrorCode
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

// NewAppError 创建业务错误
func NewAppError(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// FieldError 字段级校验错误（邮箱、密码各自独立上报）
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}
