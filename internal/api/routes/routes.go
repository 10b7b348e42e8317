package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/fund-insight/fund_service/internal/api/handlers"
	"github.com/fund-insight/fund_service/internal/api/middleware"
	"github.com/fund-insight/fund_service/internal/infrastructure/di"
	"github.com/fund-insight/fund_service/pkg/ratelimit"
	"github.com/fund-insight/fund_service/pkg/tracing"
)

// SetupRoutes configures all application routes
func SetupRoutes(container *di.Container) *gin.Engine {
	if container.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Tracing first so every later middleware logs with the trace id
	router.Use(tracing.HTTPMiddleware())
	router.Use(middleware.RequestID())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.Logger(container.Logger))
	router.Use(middleware.Recovery(container.Logger))
	router.Use(middleware.CORS(container.Config.Server.AllowedOrigins))
	router.Use(rateLimiter(container))
	router.Use(middleware.SecurityHeaders())

	healthHandler := handlers.NewHealthHandler(container.HealthChecker, container.Logger)
	fundHandlers := handlers.NewFundHandlers(container.Reporter, container.Logger)
	chartHandlers := handlers.NewChartHandlers(container.Reporter, container.Logger)

	router.GET("/", handlers.RootHandler())
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/version", handlers.VersionHandler())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if !container.Config.IsProduction() {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/mutual_funds", fundHandlers.GetMutualFunds)
		v1.GET("/mutual_funds/:fund_id", fundHandlers.GetMutualFund)
		v1.GET("/fund_allocations/:fund_id", fundHandlers.GetFundAllocations)
		v1.GET("/fund_overlaps", fundHandlers.GetFundOverlaps)

		v1.GET("/investment_overview", fundHandlers.GetInvestmentOverview)
		v1.GET("/performance_summary", fundHandlers.GetPerformanceSummary)
		v1.GET("/sector_allocation", fundHandlers.GetSectorAllocation)
		v1.GET("/fund_overlap_data", fundHandlers.GetFundOverlapData)

		charts := v1.Group("/charts")
		charts.GET("/performance", chartHandlers.PerformanceChart)
		charts.GET("/sectors", chartHandlers.SectorChart)
	}

	return router
}

// rateLimiter shares quotas across instances through Redis when it is
// available and falls back to per-process token buckets otherwise
func rateLimiter(container *di.Container) gin.HandlerFunc {
	perMinute := container.Config.Server.RateLimitPerMin
	if container.Redis == nil || perMinute <= 0 {
		return middleware.RateLimit(perMinute)
	}

	limiter := ratelimit.PerIPLimiter(container.Redis, int64(perMinute), "fund_insight:", container.ZapLog)
	return ratelimit.Middleware(limiter, ratelimit.IPKeyFunc, container.ZapLog.Named("ratelimit"))
}
