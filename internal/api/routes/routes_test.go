package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"github.com/fund-insight/fund_service/internal/domain/entities"
	"github.com/fund-insight/fund_service/internal/domain/services/portfolio"
	"github.com/fund-insight/fund_service/internal/infrastructure/config"
	"github.com/fund-insight/fund_service/internal/infrastructure/di"
	"github.com/fund-insight/fund_service/pkg/health"
	"github.com/fund-insight/fund_service/pkg/logger"
)

type overviewOnly struct {
	portfolio.Reporter
}

func (overviewOnly) GetInvestmentOverview(context.Context) (*entities.InvestmentOverview, error) {
	return &entities.InvestmentOverview{
		BestPerformingScheme:  entities.SchemePerformance{Name: entities.NotAvailable},
		WorstPerformingScheme: entities.SchemePerformance{Name: entities.NotAvailable},
	}, nil
}

func newTestContainer(t *testing.T, environment string) *di.Container {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return &di.Container{
		Config: &config.Config{
			Environment: environment,
			Server:      config.ServerConfig{AllowedOrigins: []string{"*"}},
		},
		Logger:        logger.NewLogger(zaptest.NewLogger(t)),
		Reporter:      overviewOnly{},
		HealthChecker: health.NewHealthChecker(0),
	}
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestSetupRoutes(t *testing.T) {
	router := SetupRoutes(newTestContainer(t, "development"))

	w := get(router, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"API is running!"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	w = get(router, "/api/v1/investment_overview")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"best_performing_scheme":{"name":"N/A","returns":0}`)

	w = get(router, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fund_http_requests_total")

	assert.Equal(t, http.StatusOK, get(router, "/live").Code)
	assert.Equal(t, http.StatusBadRequest, get(router, "/api/v1/fund_allocations/abc").Code)
	assert.Equal(t, http.StatusNotFound, get(router, "/api/v1/unknown").Code)
}

func TestSwaggerOnlyOutsideProduction(t *testing.T) {
	dev := SetupRoutes(newTestContainer(t, "development"))
	assert.NotEqual(t, http.StatusNotFound, get(dev, "/swagger/index.html").Code)

	prod := SetupRoutes(newTestContainer(t, "production"))
	assert.Equal(t, http.StatusNotFound, get(prod, "/swagger/index.html").Code)
	gin.SetMode(gin.TestMode)
}
