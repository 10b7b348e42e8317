package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/fund-insight/fund_service/pkg/metrics"
)

// Limiter decides whether a request identified by key may proceed.
// remaining is the quota left in the current window after this request.
type Limiter interface {
	Allow(ctx context.Context, key string) (allowed bool, remaining int64, err error)
}

// Config defines rate limiter configuration
type Config struct {
	// Limit is the maximum number of requests allowed per Window
	Limit  int64
	Window time.Duration
	// KeyPrefix is prepended to all Redis keys
	KeyPrefix string
}

// DistributedLimiter is a sliding-window limiter shared by every service
// instance through Redis sorted sets
type DistributedLimiter struct {
	redis  redis.UniversalClient
	config Config
	logger *zap.Logger
}

// NewDistributedLimiter creates a new distributed rate limiter
func NewDistributedLimiter(client redis.UniversalClient, config Config, logger *zap.Logger) *DistributedLimiter {
	if config.KeyPrefix == "" {
		config.KeyPrefix = "ratelimit"
	}
	if config.Window <= 0 {
		config.Window = time.Minute
	}

	return &DistributedLimiter{
		redis:  client,
		config: config,
		logger: logger,
	}
}

// PerIPLimiter allows limit requests per minute for each client IP
func PerIPLimiter(client redis.UniversalClient, limit int64, keyPrefix string, logger *zap.Logger) *DistributedLimiter {
	return NewDistributedLimiter(client, Config{
		Limit:     limit,
		Window:    time.Minute,
		KeyPrefix: keyPrefix + "ratelimit:ip",
	}, logger)
}

// Allow records the request and reports whether it fits in the window.
// Rejected requests are recorded too, so hammering keeps a client blocked.
func (l *DistributedLimiter) Allow(ctx context.Context, key string) (bool, int64, error) {
	start := time.Now()
	defer func() { metrics.ObserveRedisOperation("ratelimit", time.Since(start)) }()

	redisKey := l.makeKey(key)
	now := time.Now()
	windowStart := now.Add(-l.config.Window).UnixNano()

	pipe := l.redis.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart, 10))
	countCmd := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, &redis.Z{
		Score:  float64(now.UnixNano()),
		Member: strconv.FormatInt(now.UnixNano(), 10),
	})
	pipe.Expire(ctx, redisKey, 2*l.config.Window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, fmt.Errorf("rate limit check failed: %w", err)
	}

	// count excludes the request just added
	count := countCmd.Val()
	allowed := count < l.config.Limit

	remaining := l.config.Limit - count - 1
	if remaining < 0 {
		remaining = 0
	}

	if !allowed {
		l.logger.Debug("Rate limit exceeded",
			zap.String("key", key),
			zap.Int64("current", count),
			zap.Int64("limit", l.config.Limit))
	}

	return allowed, remaining, nil
}

// Reset clears the window for a key
func (l *DistributedLimiter) Reset(ctx context.Context, key string) error {
	if err := l.redis.Del(ctx, l.makeKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to reset rate limit: %w", err)
	}
	return nil
}

func (l *DistributedLimiter) makeKey(key string) string {
	return fmt.Sprintf("%s:%s", l.config.KeyPrefix, key)
}
