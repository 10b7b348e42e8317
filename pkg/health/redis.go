package health

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisChecker checks the report cache. The cache is optional, so a failed
// ping degrades the service rather than taking it out of rotation.
type RedisChecker struct {
	client  redis.UniversalClient
	timeout time.Duration
}

// NewRedisChecker creates a new Redis health checker
func NewRedisChecker(client redis.UniversalClient, timeout time.Duration) *RedisChecker {
	if timeout == 0 {
		timeout = 3 * time.Second
	}

	return &RedisChecker{
		client:  client,
		timeout: timeout,
	}
}

// Check performs the Redis health check
func (c *RedisChecker) Check(ctx context.Context) CheckResult {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.client.Ping(ctx).Err(); err != nil {
		return NewCheckResult("redis", StatusDegraded, err.Error(), nil).WithDuration(time.Since(start))
	}

	poolStats := c.client.PoolStats()

	return NewHealthyResult("redis", "connected").
		WithDuration(time.Since(start)).
		WithMetadata("total_conns", poolStats.TotalConns).
		WithMetadata("idle_conns", poolStats.IdleConns)
}

// Name returns the checker name
func (c *RedisChecker) Name() string {
	return "redis"
}
