// internal/api/error_codes.go
package api

// API层自身产生的错误代码
// 业务错误代码由服务层的 AppError 给出，如 MENTOR_NOT_FOUND、REQUEST_DUPLICATE
const (
	ErrorBadRequest    = "BAD_REQUEST"
	ErrorInternalError = "INTERNAL_ERROR"
	ErrorRateLimited   = "RATE_LIMIT_EXCEEDED"
)
