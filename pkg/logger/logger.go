package logger

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.SugaredLogger with request and trace helpers
type Logger struct {
	*zap.SugaredLogger
}

// New creates a logger for the given level and environment.
// Production gets JSON output, everything else a colored console encoder.
func New(level, environment string) *Logger {
	var config zap.Config

	if environment == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))

	logger, err := config.Build()
	if err != nil {
		panic(err)
	}

	return &Logger{
		SugaredLogger: logger.Sugar(),
	}
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// Fatal logs a message and then calls os.Exit(1)
func (l *Logger) Fatal(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Fatalw(msg, keysAndValues...)
	os.Exit(1)
}

// With returns a child logger carrying the given key/value pairs
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(keysAndValues...)}
}

// Named returns a child logger scoped to a component name
func (l *Logger) Named(name string) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.Named(name)}
}

// ForRequest creates a logger with request-specific fields
func (l *Logger) ForRequest(requestID, method, path string) *Logger {
	return l.With(
		"request_id", requestID,
		"method", method,
		"path", path,
	)
}

// WithContext adds trace correlation from context (if present)
func (l *Logger) WithContext(ctx context.Context) *Logger {
	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return l
	}

	return l.With(
		"trace_id", span.SpanContext().TraceID().String(),
		"span_id", span.SpanContext().SpanID().String(),
	)
}

// CtxDebug logs a debug message with trace correlation
func (l *Logger) CtxDebug(ctx context.Context, msg string, keysAndValues ...interface{}) {
	l.WithContext(ctx).Debugw(msg, keysAndValues...)
}

// CtxInfo logs an info message with trace correlation
func (l *Logger) CtxInfo(ctx context.Context, msg string, keysAndValues ...interface{}) {
	l.WithContext(ctx).Infow(msg, keysAndValues...)
}

// CtxWarn logs a warning message with trace correlation
func (l *Logger) CtxWarn(ctx context.Context, msg string, keysAndValues ...interface{}) {
	l.WithContext(ctx).Warnw(msg, keysAndValues...)
}

// CtxError logs an error message with trace correlation
func (l *Logger) CtxError(ctx context.Context, msg string, keysAndValues ...interface{}) {
	l.WithContext(ctx).Errorw(msg, keysAndValues...)
}

// Zap returns the underlying zap.Logger
func (l *Logger) Zap() *zap.Logger {
	return l.SugaredLogger.Desugar()
}

// NewLogger creates a Logger from a zap.Logger
func NewLogger(zapLog *zap.Logger) *Logger {
	return &Logger{
		SugaredLogger: zapLog.Sugar(),
	}
}
