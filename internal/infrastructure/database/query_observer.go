package database

import (
	"time"

	"go.uber.org/zap"

	"github.com/fund-insight/fund_service/pkg/metrics"
)

// QueryObserver records latency metrics for every query and logs the slow ones
type QueryObserver struct {
	logger    *zap.Logger
	threshold time.Duration
}

func NewQueryObserver(logger *zap.Logger, threshold time.Duration) *QueryObserver {
	return &QueryObserver{
		logger:    logger,
		threshold: threshold,
	}
}

// Observe is called once a query has finished
func (qo *QueryObserver) Observe(operation, table string, start time.Time, err error) {
	duration := time.Since(start)
	metrics.ObserveDatabaseQuery(operation, table, duration, err)

	if qo.threshold > 0 && duration > qo.threshold {
		qo.logger.Warn("Slow query detected",
			zap.String("operation", operation),
			zap.String("table", table),
			zap.Duration("duration", duration),
			zap.Duration("threshold", qo.threshold),
		)
	}
}
