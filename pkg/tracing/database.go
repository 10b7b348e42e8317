package tracing

import (
	"context"
	"database/sql"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	dbTracerName = "fund-service/database"
)

// DBSpanConfig holds configuration for database span creation
type DBSpanConfig struct {
	Operation    string
	Table        string
	Query        string
	IncludeQuery bool // statement text is omitted unless asked for
}

// StartDBSpan creates a new span for database operations
func StartDBSpan(ctx context.Context, cfg DBSpanConfig) (context.Context, trace.Span) {
	tracer := otel.Tracer(dbTracerName)

	spanName := cfg.Operation
	if cfg.Table != "" {
		spanName = cfg.Operation + " " + cfg.Table
	}

	attrs := []attribute.KeyValue{
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation", cfg.Operation),
	}
	if cfg.Table != "" {
		attrs = append(attrs, attribute.String("db.sql.table", cfg.Table))
	}
	if cfg.IncludeQuery && cfg.Query != "" {
		attrs = append(attrs, attribute.String("db.statement", cfg.Query))
	}

	return tracer.Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
}

// EndDBSpan ends a database span with appropriate status.
// A negative rows value leaves the row count attribute unset.
func EndDBSpan(span trace.Span, err error, rows int64) {
	switch {
	case err == nil:
		span.SetStatus(codes.Ok, "")
	case errors.Is(err, sql.ErrNoRows):
		span.SetStatus(codes.Ok, "no rows found")
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	if rows >= 0 {
		span.SetAttributes(attribute.Int64("db.rows_returned", rows))
	}

	span.End()
}
