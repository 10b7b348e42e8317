package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fund-insight/fund_service/internal/domain/entities"
	"github.com/fund-insight/fund_service/internal/domain/services/portfolio"
	"github.com/fund-insight/fund_service/internal/infrastructure/charts"
	apperrors "github.com/fund-insight/fund_service/pkg/errors"
	"github.com/fund-insight/fund_service/pkg/logger"
)

const pngContentType = "image/png"

// ChartHandlers renders report data as PNG images
type ChartHandlers struct {
	reporter portfolio.Reporter
	logger   *logger.Logger
}

func NewChartHandlers(reporter portfolio.Reporter, log *logger.Logger) *ChartHandlers {
	return &ChartHandlers{reporter: reporter, logger: log}
}

// PerformanceChart draws the performance history
// @Summary Performance chart
// @Tags charts
// @Produce png
// @Param timeframe query string false "1M, 3M, 6M, 1Y, 3Y or MAX"
// @Success 200 {file} binary
// @Failure 404 {object} entities.ErrorResponse
// @Router /api/v1/charts/performance [get]
func (h *ChartHandlers) PerformanceChart(c *gin.Context) {
	timeframe := entities.ParseTimeframe(c.Query("timeframe"))

	report, err := h.reporter.GetPerformanceSummary(c.Request.Context(), timeframe)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	png, err := charts.RenderPerformance(report.PerformanceSummary, timeframe)
	h.respondChart(c, png, err)
}

// SectorChart draws the sector allocation pie
// @Summary Sector allocation chart
// @Tags charts
// @Produce png
// @Success 200 {file} binary
// @Failure 404 {object} entities.ErrorResponse
// @Router /api/v1/charts/sectors [get]
func (h *ChartHandlers) SectorChart(c *gin.Context) {
	sectors, err := h.reporter.GetSectorAllocation(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	png, err := charts.RenderSectors(sectors)
	h.respondChart(c, png, err)
}

func (h *ChartHandlers) respondChart(c *gin.Context, png []byte, err error) {
	if errors.Is(err, charts.ErrNoChartData) {
		respondError(c, h.logger, apperrors.Wrap(err, apperrors.ErrCodeNotFound, entities.NoInvestmentsMessage))
		return
	}
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Data(http.StatusOK, pngContentType, png)
}
