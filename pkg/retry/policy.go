package retry

import (
	"errors"
	"time"
)

var (
	// ErrInvalidMaxRetries is returned when max retries is negative
	ErrInvalidMaxRetries = errors.New("max retries must be non-negative")

	// ErrInvalidMaxBackoff is returned when max backoff is less than initial
	ErrInvalidMaxBackoff = errors.New("max backoff must be greater than initial backoff")

	// ErrInvalidMultiplier is returned when multiplier is less than 1
	ErrInvalidMultiplier = errors.New("multiplier must be at least 1.0")

	// ErrInvalidJitter is returned when jitter is out of range
	ErrInvalidJitter = errors.New("jitter must be between 0 and 1")
)

// Policy defines retry behavior
type Policy struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	Multiplier     float64
	Jitter         float64
	// RetryableFunc decides whether an error is worth another attempt.
	// A nil func retries every error.
	RetryableFunc func(error) bool
}

// PolicyDatabaseConnect is used while waiting for PostgreSQL to accept connections at startup
var PolicyDatabaseConnect = Policy{
	MaxRetries:     5,
	InitialBackoff: 500 * time.Millisecond,
	MaxBackoff:     10 * time.Second,
	Multiplier:     2.0,
	Jitter:         0.1,
}

// WithMaxRetries creates a new policy with custom max retries
func (p Policy) WithMaxRetries(maxRetries int) Policy {
	p.MaxRetries = maxRetries
	return p
}

// WithRetryableFunc creates a new policy with custom retryable function
func (p Policy) WithRetryableFunc(fn func(error) bool) Policy {
	p.RetryableFunc = fn
	return p
}

// Validate checks if the policy is valid
func (p Policy) Validate() error {
	if p.MaxRetries < 0 {
		return ErrInvalidMaxRetries
	}
	if p.MaxBackoff < p.InitialBackoff && p.MaxBackoff != 0 {
		return ErrInvalidMaxBackoff
	}
	if p.Multiplier < 1.0 {
		return ErrInvalidMultiplier
	}
	if p.Jitter < 0 || p.Jitter > 1.0 {
		return ErrInvalidJitter
	}
	return nil
}

func (p Policy) retryable(err error) bool {
	if p.RetryableFunc == nil {
		return true
	}
	return p.RetryableFunc(err)
}
