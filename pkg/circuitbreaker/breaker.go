package circuitbreaker

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

type Config struct {
	MaxRequests uint32
	Interval    time.Duration
	Timeout     time.Duration
}

func DefaultConfig() Config {
	return Config{
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
	}
}

// New builds a breaker guarding the data store. Empty results and caller
// cancellation never count towards tripping it.
func New(name string, cfg Config, logger *zap.Logger) *gobreaker.CircuitBreaker {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		IsSuccessful: IsSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			if logger != nil {
				logger.Warn("Circuit breaker state changed",
					zap.String("breaker", name),
					zap.String("from", from.String()),
					zap.String("to", to.String()))
			}
		},
	}
	return gobreaker.NewCircuitBreaker(settings)
}

// IsSuccessful reports whether err should count as a healthy call
func IsSuccessful(err error) bool {
	return err == nil ||
		errors.Is(err, sql.ErrNoRows) ||
		errors.Is(err, context.Canceled)
}
