package tracing

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func installRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })
	return recorder
}

func TestHTTPMiddlewareRecordsServerSpan(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := installRecorder(t)

	router := gin.New()
	router.Use(HTTPMiddleware())
	router.GET("/api/v1/mutual_funds/:fund_id", func(c *gin.Context) {
		assert.NotEmpty(t, GetTraceIDFromContext(c.Request.Context()))
		c.Status(http.StatusInternalServerError)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/mutual_funds/3", nil))

	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /api/v1/mutual_funds/:fund_id", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}

func TestEndDBSpanTreatsNoRowsAsOk(t *testing.T) {
	recorder := installRecorder(t)

	_, span := StartDBSpan(context.Background(), DBSpanConfig{Operation: "SELECT", Table: "mutual_funds"})
	EndDBSpan(span, sql.ErrNoRows, 0)

	_, failed := StartDBSpan(context.Background(), DBSpanConfig{Operation: "SELECT", Table: "fund_allocations"})
	EndDBSpan(failed, errors.New("relation does not exist"), -1)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "SELECT mutual_funds", spans[0].Name())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
	assert.Equal(t, codes.Error, spans[1].Status().Code)
}

func TestInitProviderDisabledIsNoop(t *testing.T) {
	shutdown, err := InitProvider(context.Background(), Config{Enabled: false}, "test", "dev")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
