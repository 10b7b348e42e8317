package metrics

import (
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fund_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fund_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Store metrics
	DatabaseConnectionsGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fund_database_connections",
			Help: "Number of database connections",
		},
		[]string{"state"}, // open, idle, in_use
	)

	DatabaseQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fund_database_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"operation", "table"},
	)

	DatabaseQueryErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fund_database_query_errors_total",
			Help: "Total number of failed database queries",
		},
		[]string{"operation", "table"},
	)

	RedisOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fund_redis_operation_duration_seconds",
			Help:    "Redis operation duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
		[]string{"operation"},
	)

	// Report cache metrics
	ReportCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fund_report_cache_total",
			Help: "Report cache lookups by result",
		},
		[]string{"report", "result"}, // hit, miss, error
	)
)

// RecordHTTPRequest records HTTP request metrics
func RecordHTTPRequest(method, endpoint, statusCode string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration)
}

// ObserveDatabaseQuery records the latency of a query and counts it as failed when err is set
func ObserveDatabaseQuery(operation, table string, duration time.Duration, err error) {
	DatabaseQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DatabaseQueryErrorsTotal.WithLabelValues(operation, table).Inc()
	}
}

// ObserveRedisOperation records Redis operation latency
func ObserveRedisOperation(operation string, duration time.Duration) {
	RedisOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordCacheResult counts a report cache lookup
func RecordCacheResult(report, result string) {
	ReportCacheTotal.WithLabelValues(report, result).Inc()
}

// RecordDBStats publishes pool statistics
func RecordDBStats(stats sql.DBStats) {
	DatabaseConnectionsGauge.WithLabelValues("open").Set(float64(stats.OpenConnections))
	DatabaseConnectionsGauge.WithLabelValues("idle").Set(float64(stats.Idle))
	DatabaseConnectionsGauge.WithLabelValues("in_use").Set(float64(stats.InUse))
}
