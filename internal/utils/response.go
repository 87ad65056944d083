package utils

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/user/moviedex/internal/model"
)

// Response 统一API响应结构
type Response struct {
	Code      int               `json:"code"`                 // 状态码
	Message   string            `json:"message"`              // 消息
	Data      interface{}       `json:"data"`                 // 数据
	Success   bool              `json:"success"`              // 是否成功
	ErrorCode model.ErrorCode   `json:"error_code,omitempty"` // 机器可读错误码
	Errors    map[string]string `json:"errors,omitempty"`     // 字段级校验错误
}

// Success 返回成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    200,
		Message: "success",
		Data:    data,
		Success: true,
	})
}

// SuccessWithMessage 返回成功响应并自定义消息
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(200, Response{
		Code:    200,
		Message: message,
		Data:    data,
		Success: true,
	})
}

// Error 返回错误响应
func Error(c *gin.Context, code int, errCode model.ErrorCode, message string) {
	c.JSON(code, Response{
		Code:      code,
		Message:   message,
		Success:   false,
		ErrorCode: errCode,
	})
}

// ValidationError 返回字段级校验错误，邮箱和密码错误可同时存在
func ValidationError(c *gin.Context, fields map[string]string) {
	c.JSON(400, Response{
		Code:      400,
		Message:   "参数校验失败",
		Success:   false,
		ErrorCode: model.ErrCodeValidation,
		Errors:    fields,
	})
}

// BindingError 把 gin 绑定失败转成字段级错误响应
func BindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[strings.ToLower(fe.Field())] = bindingMessage(fe)
		}
		ValidationError(c, fields)
		return
	}
	Error(c, 400, model.ErrCodeValidation, "请求格式有误")
}

func bindingMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "该字段为必填项"
	case "min":
		return "数值不能小于 " + fe.Param()
	case "max":
		return "数值不能大于 " + fe.Param()
	default:
		return "字段不合法"
	}
}

// BadRequest 返回400错误
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, model.ErrCodeValidation, message)
}

// Unauthorized 返回401错误
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "未登录"
	}
	Error(c, 401, model.ErrCodeUnauthenticated, message)
}

// InternalServerError 返回500错误
func InternalServerError(c *gin.Context, message string) {
	if message == "" {
		message = "服务器内部错误"
	}
	Error(c, 500, model.ErrCodeUnknown, message)
}

// NotFound 返回404错误
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "资源不存在"
	}
	Error(c, 404, model.ErrCodeNotFound, message)
}

// AppError 按业务错误码返回对应的 HTTP 状态
func AppError(c *gin.Context, err error) {
	var appErr *model.AppError
	if !errors.As(err, &appErr) {
		InternalServerError(c, "")
		return
	}
	switch appErr.Code {
	case model.ErrCodeUnauthenticated:
		Error(c, 401, appErr.Code, appErr.Message)
	case model.ErrCodeInvalidCredentials, model.ErrCodeEmailUnconfirmed:
		Error(c, 401, appErr.Code, appErr.Message)
	case model.ErrCodeNotFound:
		Error(c, 404, appErr.Code, appErr.Message)
	case model.ErrCodeInvalidEmailFormat, model.ErrCodeEmailTaken, model.ErrCodeValidation:
		Error(c, 400, appErr.Code, appErr.Message)
	default:
		Error(c, 500, model.ErrCodeUnknown, appErr.Message)
	}
}
