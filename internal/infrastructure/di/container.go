package di

import (
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/fund-insight/fund_service/internal/domain/services/portfolio"
	"github.com/fund-insight/fund_service/internal/infrastructure/cache"
	"github.com/fund-insight/fund_service/internal/infrastructure/config"
	"github.com/fund-insight/fund_service/internal/infrastructure/database"
	"github.com/fund-insight/fund_service/internal/infrastructure/repositories"
	"github.com/fund-insight/fund_service/internal/workers/cache_warmer"
	"github.com/fund-insight/fund_service/pkg/circuitbreaker"
	"github.com/fund-insight/fund_service/pkg/health"
	"github.com/fund-insight/fund_service/pkg/logger"
)

const healthCheckTimeout = 5 * time.Second

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Pool   *database.ReplicaPool
	Redis  redis.UniversalClient
	Logger *logger.Logger
	ZapLog *zap.Logger

	// Repositories
	FundRepo *repositories.FundRepository

	// Domain Services
	PortfolioService *portfolio.Service
	// Reporter is what handlers use: the cached reporter when caching is on,
	// the plain service otherwise.
	Reporter       portfolio.Reporter
	CachedReporter *portfolio.CachedReporter

	HealthChecker *health.HealthChecker
}

// NewContainer wires repositories, services and health checks.
// redisClient may be nil, in which case report caching is disabled.
func NewContainer(cfg *config.Config, pool *database.ReplicaPool, redisClient redis.UniversalClient, log *logger.Logger) (*Container, error) {
	if pool == nil || pool.Primary() == nil {
		return nil, fmt.Errorf("database pool is required")
	}
	zapLog := log.Zap()

	breaker := circuitbreaker.New("fund-store", circuitbreaker.DefaultConfig(), zapLog)
	observer := database.NewQueryObserver(zapLog, cfg.Database.SlowQueryThreshold())
	fundRepo := repositories.NewFundRepository(pool, breaker, observer, cfg.Database.QueryTimeoutDuration(), zapLog)

	portfolioService := portfolio.NewService(fundRepo, log, portfolio.WithLocation(cfg.Report.Location()))

	container := &Container{
		Config:           cfg,
		Pool:             pool,
		Redis:            redisClient,
		Logger:           log,
		ZapLog:           zapLog,
		FundRepo:         fundRepo,
		PortfolioService: portfolioService,
		Reporter:         portfolioService,
		HealthChecker:    health.NewHealthChecker(2 * healthCheckTimeout),
	}

	container.HealthChecker.Register(health.NewDatabaseChecker(pool.Primary().DB, healthCheckTimeout))
	if len(cfg.Database.ReplicaURLs) > 0 {
		container.HealthChecker.Register(health.NewFuncChecker("replicas", pool.HealthCheck))
	}

	if redisClient != nil && cfg.Cache.Enabled {
		reportCache := cache.NewReportCache(redisClient, cfg.Cache, zapLog)
		container.CachedReporter = portfolio.NewCachedReporter(portfolioService, reportCache, cfg.Cache.TTL(), log)
		container.Reporter = container.CachedReporter
		container.HealthChecker.Register(health.NewRedisChecker(redisClient, healthCheckTimeout))
	}

	return container, nil
}

// NewCacheWarmer returns nil when report caching is off
func (c *Container) NewCacheWarmer() (*cache_warmer.Scheduler, error) {
	if c.CachedReporter == nil {
		return nil, nil
	}

	warmCfg := cache_warmer.DefaultConfig()
	if c.Config.Cache.WarmSchedule != "" {
		warmCfg.Schedule = c.Config.Cache.WarmSchedule
	}
	warmCfg.Location = c.Config.Report.Location()

	return cache_warmer.NewScheduler(c.CachedReporter, warmCfg, c.ZapLog.Named("cache_warmer"))
}

// Close releases the Redis client and replica pools. The primary pool is
// owned by the caller.
func (c *Container) Close() error {
	var firstErr error
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			firstErr = err
		}
	}
	if err := c.Pool.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
