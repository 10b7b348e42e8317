package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fund-insight/fund_service/pkg/health"
	"github.com/fund-insight/fund_service/pkg/logger"
	"github.com/fund-insight/fund_service/pkg/version"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	checker *health.HealthChecker
	logger  *logger.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(checker *health.HealthChecker, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		checker: checker,
		logger:  log,
	}
}

var startTime = time.Now()

// Health runs every registered check
// @Summary Get application health status
// @Description Performs health checks on the database and, when enabled, Redis
// @Tags health
// @Produce json
// @Success 200 {object} health.HealthResponse
// @Failure 503 {object} health.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	status, checks := h.checker.Check(c.Request.Context())

	statusCode := http.StatusOK
	if status == health.StatusUnhealthy {
		statusCode = http.StatusServiceUnavailable
		h.logger.CtxWarn(c.Request.Context(), "Health check failed", "checks", checks)
	}

	c.JSON(statusCode, health.HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Version:   version.Get().Version,
		Checks:    checks,
	})
}

// Ready reports whether the database can serve queries
// @Summary Get application readiness status
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	_, checks := h.checker.Check(c.Request.Context())

	db, ok := checks["database"]
	ready := ok && db.Status != health.StatusUnhealthy

	status, statusCode := "ready", http.StatusOK
	if !ready {
		status, statusCode = "not_ready", http.StatusServiceUnavailable
	}

	c.JSON(statusCode, gin.H{
		"status":    status,
		"timestamp": time.Now(),
		"checks":    gin.H{"database": db},
	})
}

// Live checks if the application is alive
// @Summary Get application liveness status
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "alive",
		"timestamp": time.Now(),
		"uptime":    time.Since(startTime).String(),
	})
}
