package health

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fund-insight/fund_service/pkg/metrics"
)

// DatabaseChecker checks database connectivity and that the fund schema is present
type DatabaseChecker struct {
	db      *sql.DB
	timeout time.Duration
}

// NewDatabaseChecker creates a new database health checker
func NewDatabaseChecker(db *sql.DB, timeout time.Duration) *DatabaseChecker {
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	return &DatabaseChecker{
		db:      db,
		timeout: timeout,
	}
}

// Check performs the database health check
func (c *DatabaseChecker) Check(ctx context.Context) CheckResult {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.db.PingContext(ctx); err != nil {
		return NewUnhealthyResult("database", err).WithDuration(time.Since(start))
	}

	var schemaReady bool
	err := c.db.QueryRowContext(ctx, "SELECT to_regclass('public.mutual_funds') IS NOT NULL").Scan(&schemaReady)
	if err != nil {
		return NewUnhealthyResult("database", err).WithDuration(time.Since(start))
	}
	if !schemaReady {
		return NewUnhealthyResult("database", errors.New("mutual_funds table missing")).
			WithDuration(time.Since(start))
	}

	stats := c.db.Stats()
	metrics.RecordDBStats(stats)

	result := NewHealthyResult("database", "connected").
		WithDuration(time.Since(start)).
		WithMetadata("open_connections", stats.OpenConnections).
		WithMetadata("in_use", stats.InUse).
		WithMetadata("idle", stats.Idle).
		WithMetadata("max_open_connections", stats.MaxOpenConnections)

	if stats.MaxOpenConnections > 0 {
		utilization := float64(stats.InUse) / float64(stats.MaxOpenConnections)
		result = result.WithMetadata("pool_utilization", utilization)

		if utilization > 0.8 {
			result.Status = StatusDegraded
			result.Message = "high connection pool utilization"
		}
	}

	return result
}

// Name returns the checker name
func (c *DatabaseChecker) Name() string {
	return "database"
}
