package errors

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"strings"
	"syscall"

	"github.com/sony/gobreaker"
)

// ErrNotFound can be wrapped by lower layers to signal a missing resource
var ErrNotFound = errors.New("not found")

// FromError maps an arbitrary error onto the AppError returned to clients.
// Existing AppErrors pass through unchanged.
func FromError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return Wrap(err, ErrCodeServiceUnavailable, "data store temporarily unavailable")
	case errors.Is(err, context.DeadlineExceeded):
		return Wrap(err, ErrCodeTimeout, "data store query timed out")
	case errors.Is(err, ErrNotFound), errors.Is(err, sql.ErrNoRows):
		return Wrap(err, ErrCodeNotFound, "resource not found")
	default:
		return Wrap(err, ErrCodeInternal, "internal server error")
	}
}

// IsTransient reports whether err looks like a connectivity problem worth retrying
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var syscallErr syscall.Errno
	if errors.As(err, &syscallErr) {
		switch syscallErr {
		case syscall.ECONNREFUSED, syscall.ECONNRESET, syscall.ECONNABORTED, syscall.ETIMEDOUT:
			return true
		}
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "the database system is starting up") ||
		strings.Contains(errMsg, "broken pipe")
}
