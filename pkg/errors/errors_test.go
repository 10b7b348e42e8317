package errors

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsStatusCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		code     ErrorCode
		expected int
	}{
		{"invalid input", InvalidInput("bad fund id"), ErrCodeInvalidInput, http.StatusBadRequest},
		{"not found", NotFound("mutual fund"), ErrCodeNotFound, http.StatusNotFound},
		{"internal", Internal("boom"), ErrCodeInternal, http.StatusInternalServerError},
		{"unavailable", ServiceUnavailable("database"), ErrCodeServiceUnavailable, http.StatusServiceUnavailable},
		{"timeout", Timeout("slow"), ErrCodeTimeout, http.StatusGatewayTimeout},
		{"rate limit", New(ErrCodeRateLimit, "slow down"), ErrCodeRateLimit, http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.expected, tt.err.StatusCode)
		})
	}

	assert.Equal(t, "mutual fund not found", NotFound("mutual fund").Message)
}

func TestWrapAndDetails(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, ErrCodeInternal, "query failed").AddDetail("table", "mutual_funds")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "mutual_funds", err.Details["table"])
	assert.Contains(t, err.Error(), "INTERNAL_ERROR")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   ErrorCode
		status int
	}{
		{"open circuit", fmt.Errorf("sum amount: %w", gobreaker.ErrOpenState), ErrCodeServiceUnavailable, http.StatusServiceUnavailable},
		{"half open saturation", gobreaker.ErrTooManyRequests, ErrCodeServiceUnavailable, http.StatusServiceUnavailable},
		{"deadline", fmt.Errorf("list funds: %w", context.DeadlineExceeded), ErrCodeTimeout, http.StatusGatewayTimeout},
		{"not found sentinel", fmt.Errorf("mutual fund: %w", ErrNotFound), ErrCodeNotFound, http.StatusNotFound},
		{"no rows", sql.ErrNoRows, ErrCodeNotFound, http.StatusNotFound},
		{"other", errors.New("syntax error"), ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := FromError(tt.err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.code, appErr.Code)
			assert.Equal(t, tt.status, appErr.StatusCode)
			assert.ErrorIs(t, appErr, tt.err)
		})
	}
}

func TestFromErrorPassesThroughAppError(t *testing.T) {
	original := InvalidInput("order_by column not allowed")
	wrapped := fmt.Errorf("handler: %w", original)

	assert.Same(t, original, FromError(wrapped))
	assert.Nil(t, FromError(nil))
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")))
	assert.True(t, IsTransient(errors.New("pq: the database system is starting up")))
	assert.True(t, IsTransient(context.DeadlineExceeded))
	assert.False(t, IsTransient(context.Canceled))
	assert.False(t, IsTransient(errors.New("pq: password authentication failed")))
	assert.False(t, IsTransient(nil))
}
