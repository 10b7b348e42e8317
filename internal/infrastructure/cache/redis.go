package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/fund-insight/fund_service/internal/infrastructure/config"
	"github.com/fund-insight/fund_service/pkg/metrics"
)

// ReportCache stores JSON-encoded reports in Redis under a common prefix
type ReportCache struct {
	client     redis.UniversalClient
	logger     *zap.Logger
	prefix     string
	defaultTTL time.Duration
}

// NewRedisClient connects to Redis and verifies it answers
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (redis.UniversalClient, error) {
	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:    []string{cfg.Addr()},
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

func NewReportCache(client redis.UniversalClient, cfg config.CacheConfig, logger *zap.Logger) *ReportCache {
	return &ReportCache{
		client:     client,
		logger:     logger,
		prefix:     cfg.KeyPrefix,
		defaultTTL: cfg.TTL(),
	}
}

// Get decodes the cached value into dest. A missing key is not an error.
func (rc *ReportCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	start := time.Now()
	raw, err := rc.client.Get(ctx, rc.prefix+key).Bytes()
	metrics.ObserveRedisOperation("get", time.Since(start))

	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		rc.logger.Warn("Discarding undecodable cache entry", zap.String("key", key), zap.Error(err))
		return false, nil
	}
	return true, nil
}

func (rc *ReportCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if ttl == 0 {
		ttl = rc.defaultTTL
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	start := time.Now()
	err = rc.client.Set(ctx, rc.prefix+key, raw, ttl).Err()
	metrics.ObserveRedisOperation("set", time.Since(start))
	if err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
