// internal/errors/errors.go
package errors

import (
	"errors"
	"fmt"
)

// ErrorType 定义错误类型，决定HTTP状态的映射
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeProcessing ErrorType = "processing"
	ErrorTypeConflict   ErrorType = "conflict"
)

// Resource 标识出错的业务对象，与错误类型共同生成错误代码
type Resource string

const (
	ResourceMentor       Resource = "MENTOR"
	ResourceRequest      Resource = "REQUEST"
	ResourceGoal         Resource = "GOAL"
	ResourceNotification Resource = "NOTIFICATION"
	ResourceThread       Resource = "THREAD"
	ResourceMessage      Resource = "MESSAGE"
	ResourceSwipe        Resource = "SWIPE"
)

// AppError 应用程序错误结构
type AppError struct {
	Type     ErrorType
	Resource Resource // 为空表示与具体资源无关
	Message  string
	Err      error
	Code     string // 面向API响应的错误代码，如 MENTOR_NOT_FOUND
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap 实现错误链接
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建带资源信息的 AppError
func New(errType ErrorType, resource Resource, message string, originalError error) *AppError {
	return &AppError{
		Type:     errType,
		Resource: resource,
		Message:  message,
		Err:      originalError,
		Code:     codeFor(errType, resource),
	}
}

// NewValidationError 创建与具体资源无关的验证错误
func NewValidationError(message string, originalError error) *AppError {
	return New(ErrorTypeValidation, "", message, originalError)
}

// NewInvalid 创建针对某类资源的验证错误
func NewInvalid(resource Resource, message string) *AppError {
	return New(ErrorTypeValidation, resource, message, nil)
}

// NewProcessingError 创建处理错误
func NewProcessingError(message string, originalError error) *AppError {
	return New(ErrorTypeProcessing, "", message, originalError)
}

// NewMentorNotFound 导师不存在
func NewMentorNotFound(mentorID string) *AppError {
	return New(ErrorTypeNotFound, ResourceMentor, "导师不存在: "+mentorID, nil)
}

// NewRequestNotFound 连接请求不存在
func NewRequestNotFound(requestID string) *AppError {
	return New(ErrorTypeNotFound, ResourceRequest, "请求不存在: "+requestID, nil)
}

// NewGoalNotFound 目标不存在
func NewGoalNotFound(goalID string) *AppError {
	return New(ErrorTypeNotFound, ResourceGoal, "目标不存在: "+goalID, nil)
}

// NewNotificationNotFound 通知不存在
func NewNotificationNotFound(notificationID string) *AppError {
	return New(ErrorTypeNotFound, ResourceNotification, "通知不存在: "+notificationID, nil)
}

// NewDuplicateRequest 已存在针对同一导师的待处理请求
func NewDuplicateRequest() *AppError {
	return New(ErrorTypeConflict, ResourceRequest, "已存在待处理的请求", nil)
}

// AsAppError 提取错误链中的 AppError
func AsAppError(err error) (*AppError, bool) {
	var appError *AppError
	if errors.As(err, &appError) {
		return appError, true
	}
	return nil, false
}

// IsValidationError 检查是否为验证错误
func IsValidationError(err error) bool {
	appError, ok := AsAppError(err)
	return ok && appError.Type == ErrorTypeValidation
}

// IsNotFoundError 检查是否为未找到错误
func IsNotFoundError(err error) bool {
	appError, ok := AsAppError(err)
	return ok && appError.Type == ErrorTypeNotFound
}

// IsConflictError 检查是否为冲突错误
func IsConflictError(err error) bool {
	appError, ok := AsAppError(err)
	return ok && appError.Type == ErrorTypeConflict
}

// codeFor 由错误类型和资源组合出错误代码
func codeFor(errType ErrorType, resource Resource) string {
	switch errType {
	case ErrorTypeValidation:
		if resource == "" {
			return "VALIDATION_ERROR"
		}
		return string(resource) + "_INVALID"
	case ErrorTypeNotFound:
		if resource == "" {
			return "NOT_FOUND"
		}
		return string(resource) + "_NOT_FOUND"
	case ErrorTypeConflict:
		// 目前唯一的冲突场景是重复的连接请求
		if resource == ResourceRequest {
			return "REQUEST_DUPLICATE"
		}
		return "CONFLICT"
	case ErrorTypeProcessing:
		return "PROCESSING_ERROR"
	}
	return "UNKNOWN_ERROR"
}
