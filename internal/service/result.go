package service

import "fmt"

// Kind 预期失败的类别
type Kind int

const (
	KindNone Kind = iota
	KindNotFound
	KindInvalid
	KindConflict
	KindForbidden
)

// String 便于日志输出
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalid:
		return "invalid"
	case KindConflict:
		return "conflict"
	case KindForbidden:
		return "forbidden"
	default:
		return "none"
	}
}

// Result 服务层返回的成功/失败包装，非预期错误走 error 返回值
type Result[T any] struct {
	Success bool
	Data    T
	Message string
	Kind    Kind
}

// Ok 成功结果
func Ok[T any](data T, message string) *Result[T] {
	return &Result[T]{Success: true, Data: data, Message: message}
}

// Fail 失败结果
func Fail[T any](kind Kind, format string, args ...any) *Result[T] {
	return &Result[T]{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NotFound 资源不存在
func NotFound[T any](format string, args ...any) *Result[T] {
	return Fail[T](KindNotFound, format, args...)
}

// Invalid 参数或引用无效
func Invalid[T any](format string, args ...any) *Result[T] {
	return Fail[T](KindInvalid, format, args...)
}

// Conflict 状态冲突
func Conflict[T any](format string, args ...any) *Result[T] {
	return Fail[T](KindConflict, format, args...)
}

// Forbidden 无权操作
func Forbidden[T any](format string, args ...any) *Result[T] {
	return Fail[T](KindForbidden, format, args...)
}
