package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode represents standardized error codes
type ErrorCode string

const (
	// Validation errors
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// Resource errors
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// System errors
	ErrCodeInternal           ErrorCode = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	ErrCodeTimeout            ErrorCode = "TIMEOUT"
	ErrCodeRateLimit          ErrorCode = "RATE_LIMIT_EXCEEDED"
)

// AppError is the error shape returned to API clients
type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
	Err        error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: getHTTPStatusCode(code),
	}
}

// Wrap wraps an existing error with an AppError
func Wrap(err error, code ErrorCode, message string) *AppError {
	appErr := New(code, message)
	appErr.Err = err
	return appErr
}

// AddDetail adds a detail to the error
func (e *AppError) AddDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

func getHTTPStatusCode(code ErrorCode) int {
	switch code {
	case ErrCodeInvalidInput:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeRateLimit:
		return http.StatusTooManyRequests
	case ErrCodeServiceUnavailable:
		return http.StatusServiceUnavailable
	case ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Common error constructors
func InvalidInput(message string) *AppError {
	return New(ErrCodeInvalidInput, message)
}

func NotFound(resource string) *AppError {
	return New(ErrCodeNotFound, fmt.Sprintf("%s not found", resource))
}

func Internal(message string) *AppError {
	return New(ErrCodeInternal, message)
}

func ServiceUnavailable(service string) *AppError {
	return New(ErrCodeServiceUnavailable, fmt.Sprintf("%s service unavailable", service))
}

func Timeout(message string) *AppError {
	return New(ErrCodeTimeout, message)
}
