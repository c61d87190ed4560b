// Package errors 错误码和错误处理单元测试
package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==================== AppError 基础测试 ====================

func TestNew(t *testing.T) {
	err := New(1001, "参数错误")
	require.NotNil(t, err)
	assert.Equal(t, 1001, err.Code)
	assert.Equal(t, "参数错误", err.Message)
	assert.Nil(t, err.Err)
}

func TestWrap(t *testing.T) {
	originalErr := stderrors.New("database connection failed")
	err := Wrap(1004, "数据库错误", originalErr)

	require.NotNil(t, err)
	assert.Equal(t, 1004, err.Code)
	assert.Equal(t, "数据库错误", err.Message)
	assert.Equal(t, originalErr, err.Err)
}

// ==================== AppError 方法测试 ====================

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		want     string
	}{
		{
			name:     "Error without underlying error",
			appError: New(1001, "参数错误"),
			want:     "[1001] 参数错误",
		},
		{
			name:     "Error with underlying error",
			appError: Wrap(1004, "数据库错误", stderrors.New("connection timeout")),
			want:     "[1004] 数据库错误: connection timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.appError.Error()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	originalErr := stderrors.New("original error")
	err := Wrap(1000, "wrapped error", originalErr)

	unwrapped := err.Unwrap()
	assert.Equal(t, originalErr, unwrapped)
}

func TestAppError_WithMessage(t *testing.T) {
	original := New(1001, "原始消息")
	modified := original.WithMessage("修改后的消息")

	assert.Equal(t, 1001, modified.Code)
	assert.Equal(t, "修改后的消息", modified.Message)
	assert.Nil(t, modified.Err)

	// 验证原始错误未被修改
	assert.Equal(t, "原始消息", original.Message)
}

func TestAppError_WithError(t *testing.T) {
	original := New(1001, "参数错误")
	underlyingErr := stderrors.New("validation failed")
	modified := original.WithError(underlyingErr)

	assert.Equal(t, 1001, modified.Code)
	assert.Equal(t, "参数错误", modified.Message)
	assert.Equal(t, underlyingErr, modified.Err)

	// 验证原始错误未被修改
	assert.Nil(t, original.Err)
}

// ==================== 错误码常量测试 ====================

func TestCommonErrors(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code int
	}{
		{"ErrUnknown", ErrUnknown, 1000},
		{"ErrInvalidParams", ErrInvalidParams, 1001},
		{"ErrNotFound", ErrNotFound, 1002},
		{"ErrAlreadyExists", ErrAlreadyExists, 1003},
		{"ErrDatabaseError", ErrDatabaseError, 1004},
		{"ErrCacheError", ErrCacheError, 1005},
		{"ErrInternalError", ErrInternalError, 1006},
		{"ErrRateLimitExceed", ErrRateLimitExceed, 1007},
		{"ErrOperationFailed", ErrOperationFailed, 1008},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

func TestDomainErrors(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code int
	}{
		{"ErrGuestNotFound", ErrGuestNotFound, 3000},
		{"ErrGuestFieldMissing", ErrGuestFieldMissing, 3001},
		{"ErrRoomNotFound", ErrRoomNotFound, 4000},
		{"ErrRoomNotAvailable", ErrRoomNotAvailable, 4001},
		{"ErrRoomTypeNotFound", ErrRoomTypeNotFound, 4004},
		{"ErrReservationNotFound", ErrReservationNotFound, 5000},
		{"ErrReservationDates", ErrReservationDates, 5001},
		{"ErrPaymentMethodInvalid", ErrPaymentMethodInvalid, 6001},
		{"ErrServiceNameRequired", ErrServiceNameRequired, 7001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

// ==================== 辅助函数测试 ====================

func TestIsAppError(t *testing.T) {
	assert.True(t, IsAppError(ErrGuestNotFound))
	assert.False(t, IsAppError(stderrors.New("plain error")))
}

func TestGetAppError(t *testing.T) {
	appErr := GetAppError(ErrRoomNotFound)
	assert.Equal(t, 4000, appErr.Code)

	plain := stderrors.New("plain error")
	wrapped := GetAppError(plain)
	assert.Equal(t, ErrUnknown.Code, wrapped.Code)
	assert.Equal(t, plain, wrapped.Err)
}
