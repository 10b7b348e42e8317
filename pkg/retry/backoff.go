package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Backoff calculates retry delays
type Backoff struct {
	policy Policy
	rng    *rand.Rand
}

// NewBackoff creates a new backoff calculator
func NewBackoff(policy Policy) *Backoff {
	return &Backoff{
		policy: policy,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Calculate computes the delay for the given attempt number
func (b *Backoff) Calculate(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}

	backoff := float64(b.policy.InitialBackoff) * math.Pow(b.policy.Multiplier, float64(attempt-1))
	if b.policy.MaxBackoff > 0 && backoff > float64(b.policy.MaxBackoff) {
		backoff = float64(b.policy.MaxBackoff)
	}

	if b.policy.Jitter > 0 {
		jitter := backoff * b.policy.Jitter
		backoff = backoff - jitter + (b.rng.Float64() * 2 * jitter)
	}

	return time.Duration(backoff)
}

// Do runs fn until it succeeds, the policy gives up, or ctx is done.
// fn is attempted at most MaxRetries+1 times.
func Do(ctx context.Context, policy Policy, fn func(ctx context.Context) error) error {
	if err := policy.Validate(); err != nil {
		return err
	}

	backoff := NewBackoff(policy)
	var lastErr error

	for attempt := 0; attempt <= policy.MaxRetries; attempt++ {
		if attempt > 0 {
			timer := time.NewTimer(backoff.Calculate(attempt))
			select {
			case <-ctx.Done():
				timer.Stop()
				return fmt.Errorf("retry cancelled by context: %w", ctx.Err())
			case <-timer.C:
			}
		}

		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if !policy.retryable(err) {
			return fmt.Errorf("non-retryable error: %w", err)
		}
	}

	return fmt.Errorf("max retry attempts (%d) exceeded: %w", policy.MaxRetries+1, lastErr)
}
