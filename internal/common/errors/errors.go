// Package errors 定义业务错误码和错误处理
package errors

import (
	"fmt"
)

// AppError 应用错误
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 实现 errors.Unwrap
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的应用错误
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装错误
func Wrap(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithMessage 修改错误消息
func (e *AppError) WithMessage(message string) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: message,
		Err:     e.Err,
	}
}

// WithError 添加原始错误
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: e.Message,
		Err:     err,
	}
}

// 通用错误码 (1000-1999)
var (
	ErrUnknown         = New(1000, "未知错误")
	ErrInvalidParams   = New(1001, "参数错误")
	ErrNotFound        = New(1002, "资源不存在")
	ErrAlreadyExists   = New(1003, "资源已存在")
	ErrDatabaseError   = New(1004, "数据库错误")
	ErrCacheError      = New(1005, "缓存错误")
	ErrInternalError   = New(1006, "内部错误")
	ErrRateLimitExceed = New(1007, "请求过于频繁")
	ErrOperationFailed = New(1008, "操作失败")
)

// 客人错误码 (3000-3999)
var (
	ErrGuestNotFound     = New(3000, "客人不存在")
	ErrGuestFieldMissing = New(3001, "姓名和邮箱为必填项")
	ErrGuestEmailInvalid = New(3002, "邮箱格式错误")
)

// 房间错误码 (4000-4999)
var (
	ErrRoomNotFound      = New(4000, "房间不存在")
	ErrRoomNotAvailable  = New(4001, "房间不可用")
	ErrRoomExists        = New(4002, "房间号已存在")
	ErrRoomStatusInvalid = New(4003, "无效的房间状态")
	ErrRoomTypeNotFound  = New(4004, "房型不存在")
	ErrRoomTypeInvalid   = New(4005, "房型信息不完整")
)

// 预订错误码 (5000-5999)
var (
	ErrReservationNotFound    = New(5000, "预订不存在")
	ErrReservationDates       = New(5001, "退房日期必须晚于入住日期")
	ErrReservationStatusError = New(5002, "预订状态异常")
	ErrAllocationNotFound     = New(5003, "房间分配记录不存在")
)

// 支付错误码 (6000-6999)
var (
	ErrPaymentNotFound      = New(6000, "支付记录不存在")
	ErrPaymentMethodInvalid = New(6001, "无效的支付方式")
	ErrPaymentStatusInvalid = New(6002, "无效的支付状态")
	ErrPaymentAmountInvalid = New(6003, "支付金额错误")
)

// 服务错误码 (7000-7999)
var (
	ErrServiceNotFound     = New(7000, "服务不存在")
	ErrServiceNameRequired = New(7001, "服务名称为必填项")
)

// IsAppError 判断是否为应用错误
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError 获取应用错误
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return ErrUnknown.WithError(err)
}
