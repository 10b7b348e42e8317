package cache_warmer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Refresher recomputes cached reports
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Config controls when and how long a warm run may take
type Config struct {
	Schedule   string
	RunTimeout time.Duration
	Location   *time.Location
}

// DefaultConfig warms every five minutes
func DefaultConfig() Config {
	return Config{
		Schedule:   "*/5 * * * *",
		RunTimeout: 2 * time.Minute,
		Location:   time.UTC,
	}
}

// Stats summarizes warmer activity
type Stats struct {
	TotalRuns      int64         `json:"total_runs"`
	SuccessfulRuns int64         `json:"successful_runs"`
	FailedRuns     int64         `json:"failed_runs"`
	LastRun        time.Time     `json:"last_run"`
	LastDuration   time.Duration `json:"last_duration"`
	LastError      string        `json:"last_error,omitempty"`
}

type warmerMetrics struct {
	runs     metric.Int64Counter
	failures metric.Int64Counter
	duration metric.Float64Histogram
}

// zapCronLogger adapts zap to cron's Printf logger
type zapCronLogger struct {
	logger *zap.Logger
}

func (l *zapCronLogger) Printf(format string, args ...interface{}) {
	l.logger.Sugar().Debugf(format, args...)
}

// Scheduler periodically refreshes the report cache
type Scheduler struct {
	cron      *cron.Cron
	refresher Refresher
	config    Config
	logger    *zap.Logger
	tracer    trace.Tracer
	metrics   *warmerMetrics

	mu      sync.Mutex
	running bool
	stats   Stats
}

// NewScheduler validates the cron expression and prepares the scheduler
func NewScheduler(refresher Refresher, cfg Config, logger *zap.Logger) (*Scheduler, error) {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.RunTimeout <= 0 {
		cfg.RunTimeout = DefaultConfig().RunTimeout
	}
	if _, err := cron.ParseStandard(cfg.Schedule); err != nil {
		return nil, fmt.Errorf("invalid warm schedule %q: %w", cfg.Schedule, err)
	}

	m, err := initMetrics(otel.Meter("fund-service/cache-warmer"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	c := cron.New(
		cron.WithLocation(cfg.Location),
		cron.WithLogger(cron.VerbosePrintfLogger(&zapCronLogger{logger: logger})),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	return &Scheduler{
		cron:      c,
		refresher: refresher,
		config:    cfg,
		logger:    logger,
		tracer:    otel.Tracer("fund-service/cache-warmer"),
		metrics:   m,
	}, nil
}

// Start registers the warm job and starts the cron loop
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("cache warmer is already running")
	}

	if _, err := s.cron.AddFunc(s.config.Schedule, func() {
		_ = s.RunOnce(context.Background())
	}); err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	s.cron.Start()
	s.running = true

	var next time.Time
	if entries := s.cron.Entries(); len(entries) > 0 {
		next = entries[0].Next
	}
	s.logger.Info("Cache warmer started",
		zap.String("schedule", s.config.Schedule),
		zap.Time("next_run", next),
	)
	return nil
}

// Stop waits for an in-flight run to finish or ctx to expire
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return fmt.Errorf("cache warmer is not running")
	}
	s.running = false
	s.mu.Unlock()

	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("Cache warmer stopped")
		return nil
	case <-ctx.Done():
		s.logger.Warn("Cache warmer stop timed out")
		return ctx.Err()
	}
}

// RunOnce refreshes all cached reports immediately
func (s *Scheduler) RunOnce(ctx context.Context) error {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, s.config.RunTimeout)
	defer cancel()

	ctx, span := s.tracer.Start(ctx, "cache_warmer.refresh", trace.WithAttributes(
		attribute.String("schedule", s.config.Schedule),
	))
	defer span.End()

	err := s.refresher.Refresh(ctx)
	duration := time.Since(start)

	s.metrics.runs.Add(ctx, 1)
	s.metrics.duration.Record(ctx, duration.Seconds())

	s.mu.Lock()
	s.stats.TotalRuns++
	s.stats.LastRun = start
	s.stats.LastDuration = duration
	if err != nil {
		s.stats.FailedRuns++
		s.stats.LastError = err.Error()
	} else {
		s.stats.SuccessfulRuns++
		s.stats.LastError = ""
	}
	s.mu.Unlock()

	if err != nil {
		s.metrics.failures.Add(ctx, 1)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Error("Cache warm run failed", zap.Error(err), zap.Duration("duration", duration))
		return err
	}

	s.logger.Debug("Cache warm run completed", zap.Duration("duration", duration))
	return nil
}

// Stats returns a snapshot of warmer activity
func (s *Scheduler) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

func initMetrics(meter metric.Meter) (*warmerMetrics, error) {
	runs, err := meter.Int64Counter("fund_cache_warm_runs_total",
		metric.WithDescription("Total number of cache warm runs"))
	if err != nil {
		return nil, err
	}

	failures, err := meter.Int64Counter("fund_cache_warm_failures_total",
		metric.WithDescription("Total number of failed cache warm runs"))
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram("fund_cache_warm_duration_seconds",
		metric.WithDescription("Duration of cache warm runs in seconds"))
	if err != nil {
		return nil, err
	}

	return &warmerMetrics{runs: runs, failures: failures, duration: duration}, nil
}
