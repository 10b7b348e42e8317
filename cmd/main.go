package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"

	_ "github.com/fund-insight/fund_service/docs"
	"github.com/fund-insight/fund_service/internal/api/routes"
	"github.com/fund-insight/fund_service/internal/infrastructure/cache"
	"github.com/fund-insight/fund_service/internal/infrastructure/config"
	"github.com/fund-insight/fund_service/internal/infrastructure/database"
	"github.com/fund-insight/fund_service/internal/infrastructure/di"
	"github.com/fund-insight/fund_service/pkg/logger"
	"github.com/fund-insight/fund_service/pkg/tracing"
	"github.com/fund-insight/fund_service/pkg/version"
)

// @title Fund Insight API
// @version 1.0
// @description Read-only reporting over a mutual fund portfolio.

// @host localhost:8000
// @BasePath /

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New(cfg.LogLevel, cfg.Environment)
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	shutdownTracing, err := tracing.InitProvider(ctx, tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: cfg.Tracing.ServiceName,
		SampleRatio: cfg.Tracing.SampleRatio,
		Insecure:    cfg.Tracing.Insecure,
	}, cfg.Environment, version.Get().Version)
	if err != nil {
		log.Fatal("Failed to initialize tracing", "error", err)
	}

	db, err := database.NewConnection(ctx, cfg.Database, log.Zap().Named("database"))
	if err != nil {
		log.Fatal("Failed to connect to database", "error", err)
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.Database.URL); err != nil {
		log.Fatal("Failed to run migrations", "error", err)
	}

	pool, err := database.NewReplicaPool(ctx, db, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to read replicas", "error", err)
	}

	var redisClient redis.UniversalClient
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			// The service can still answer from PostgreSQL
			log.Warn("Redis unavailable, report caching disabled", "error", err)
			redisClient = nil
		}
	}

	container, err := di.NewContainer(cfg, pool, redisClient, log)
	if err != nil {
		log.Fatal("Failed to create DI container", "error", err)
	}
	defer func() {
		if err := container.Close(); err != nil {
			log.Warn("Error closing connections", "error", err)
		}
	}()

	router := routes.SetupRoutes(container)

	warmer, err := container.NewCacheWarmer()
	if err != nil {
		log.Fatal("Failed to create cache warmer", "error", err)
	}
	if warmer != nil {
		if err := warmer.Start(); err != nil {
			log.Fatal("Failed to start cache warmer", "error", err)
		}
		go func() {
			if err := warmer.RunOnce(ctx); err != nil {
				log.Warn("Initial cache warm failed", "error", err)
			}
		}()
	}

	server := &http.Server{
		Addr:           fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:        router,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Info("Starting server",
			"addr", server.Addr,
			"environment", cfg.Environment,
			"version", version.Get().Version,
			"cache_enabled", container.CachedReporter != nil,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if warmer != nil {
		if err := warmer.Stop(shutdownCtx); err != nil {
			log.Warn("Error stopping cache warmer", "error", err)
		}
	}

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn("Error flushing traces", "error", err)
	}

	log.Info("Server exited")
}
