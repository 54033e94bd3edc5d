package errorx

import (
	"errors"
	"fmt"
)

// Kind 错误类别，由边界层（HTTP）映射为具体状态码
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
	KindGenerationExhausted
	KindConflict
	KindForbidden
)

// String 返回错误类别名称
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindValidation:
		return "ValidationError"
	case KindGenerationExhausted:
		return "GenerationExhausted"
	case KindConflict:
		return "Conflict"
	case KindForbidden:
		return "Forbidden"
	default:
		return "InternalError"
	}
}

// Error 业务错误结构
type Error struct {
	Kind    Kind
	Message string
	Details []ErrorDetail
	cause   error
}

// ErrorDetail 错误详情（字段级）
type ErrorDetail struct {
	Path string
	Info string
}

// Error 实现 error 接口
func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap 支持 errors.Is / errors.As
func (e *Error) Unwrap() error {
	return e.cause
}

// New 创建指定类别的业务错误
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap 以指定类别包装底层错误
func Wrap(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, Message: message, cause: err}
}

// NotFoundf 创建带格式化消息的 NotFound 错误
func NotFoundf(format string, args ...interface{}) *Error {
	return New(KindNotFound, fmt.Sprintf(format, args...))
}

// Validation 创建校验错误，details 列出出错字段
func Validation(message string, details ...ErrorDetail) *Error {
	return &Error{Kind: KindValidation, Message: message, Details: details}
}

// Conflict 创建冲突错误
func Conflict(message string) *Error {
	return New(KindConflict, message)
}

// KindOf 返回错误链中第一个业务错误的类别，非业务错误视为 KindInternal
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf 返回错误链中业务错误的消息，非业务错误返回 err.Error()
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// DetailsOf 返回错误链中业务错误的字段详情
func DetailsOf(err error) []ErrorDetail {
	var e *Error
	if errors.As(err, &e) {
		return e.Details
	}
	return nil
}

// IsNotFound 判断是否为 NotFound
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
