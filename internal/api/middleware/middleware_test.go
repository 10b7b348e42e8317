package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/fund-insight/fund_service/internal/domain/entities"
	"github.com/fund-insight/fund_service/pkg/logger"
	"github.com/fund-insight/fund_service/pkg/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, handlers ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	router := gin.New()
	router.Use(handlers...)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": c.GetString("request_id")})
	})
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return router
}

func TestRequestID(t *testing.T) {
	router := newTestRouter(t, RequestID())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get("X-Request-ID")
	assert.NotEmpty(t, generated)
	assert.Contains(t, w.Body.String(), generated)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-123")
	router.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}

func TestRecovery(t *testing.T) {
	log := logger.NewLogger(zaptest.NewLogger(t))
	router := newTestRouter(t, RequestID(), Recovery(log))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body entities.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
	assert.Equal(t, w.Header().Get("X-Request-ID"), body.Details["request_id"])
}

func TestRateLimit(t *testing.T) {
	router := newTestRouter(t, RateLimit(2))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimitDisabled(t *testing.T) {
	router := newTestRouter(t, RateLimit(0))
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestCORS(t *testing.T) {
	router := newTestRouter(t, CORS([]string{"https://dashboard.example.com"}))

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://dashboard.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSecurityHeaders(t *testing.T) {
	router := newTestRouter(t, SecurityHeaders())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestMetricsMiddleware(t *testing.T) {
	router := newTestRouter(t, MetricsMiddleware())
	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/ping", "200")
	before := testutil.ToFloat64(counter)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))

	unmatched := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")
	before = testutil.ToFloat64(unmatched)
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, before+1, testutil.ToFloat64(unmatched))
}
