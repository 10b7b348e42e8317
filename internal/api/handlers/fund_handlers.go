package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/fund-insight/fund_service/internal/domain/entities"
	"github.com/fund-insight/fund_service/internal/domain/repositories"
	"github.com/fund-insight/fund_service/internal/domain/services/portfolio"
	pkgdb "github.com/fund-insight/fund_service/pkg/database"
	"github.com/fund-insight/fund_service/pkg/logger"
)

// FundHandlers serves the fund listings and portfolio reports
type FundHandlers struct {
	reporter  portfolio.Reporter
	validator *validator.Validate
	logger    *logger.Logger
}

// NewFundHandlers creates fund handlers backed by reporter
func NewFundHandlers(reporter portfolio.Reporter, log *logger.Logger) *FundHandlers {
	return &FundHandlers{
		reporter:  reporter,
		validator: validator.New(),
		logger:    log,
	}
}

type fundIDParams struct {
	FundID int64 `validate:"gt=0"`
}

type listFundsQuery struct {
	OrderBy string `form:"order_by" validate:"omitempty,max=64"`
}

// parseFundID accepts only positive decimal integers
func (h *FundHandlers) parseFundID(c *gin.Context) (int64, bool) {
	raw := c.Param("fund_id")
	if err := h.validator.Var(raw, "required,number"); err != nil {
		respondBadRequest(c, "fund_id must be a positive integer", "fund_id")
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondBadRequest(c, "fund_id must be a positive integer", "fund_id")
		return 0, false
	}
	if err := h.validator.Struct(fundIDParams{FundID: id}); err != nil {
		respondBadRequest(c, "fund_id must be a positive integer", "fund_id")
		return 0, false
	}
	return id, true
}

// GetMutualFunds lists every fund
// @Summary List mutual funds
// @Description Returns all funds, optionally sorted by an allowed column
// @Tags funds
// @Produce json
// @Param order_by query string false "column [asc|desc]"
// @Success 200 {array} entities.MutualFundResponse
// @Failure 400 {object} entities.ErrorResponse
// @Failure 500 {object} entities.ErrorResponse
// @Router /api/v1/mutual_funds [get]
func (h *FundHandlers) GetMutualFunds(c *gin.Context) {
	var query listFundsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBadRequest(c, "invalid query parameters", "")
		return
	}
	if err := h.validator.Struct(query); err != nil {
		respondBadRequest(c, "order_by is too long", "order_by")
		return
	}
	if _, _, err := pkgdb.ParseOrderBy(query.OrderBy, repositories.FundSortColumns); err != nil {
		respondBadRequest(c, err.Error(), "order_by")
		return
	}

	funds, err := h.reporter.GetMutualFunds(c.Request.Context(), query.OrderBy)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, funds)
}

// GetMutualFund returns a single fund
// @Summary Get a mutual fund
// @Tags funds
// @Produce json
// @Param fund_id path int true "Fund ID"
// @Success 200 {object} entities.MutualFundResponse
// @Failure 400 {object} entities.ErrorResponse
// @Failure 404 {object} entities.ErrorResponse
// @Router /api/v1/mutual_funds/{fund_id} [get]
func (h *FundHandlers) GetMutualFund(c *gin.Context) {
	id, ok := h.parseFundID(c)
	if !ok {
		return
	}

	fund, err := h.reporter.GetMutualFund(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, fund)
}

// GetFundAllocations lists a fund's sector and stock holdings
// @Summary List fund allocations
// @Tags funds
// @Produce json
// @Param fund_id path int true "Fund ID"
// @Success 200 {array} entities.FundAllocationResponse
// @Failure 400 {object} entities.ErrorResponse
// @Router /api/v1/fund_allocations/{fund_id} [get]
func (h *FundHandlers) GetFundAllocations(c *gin.Context) {
	id, ok := h.parseFundID(c)
	if !ok {
		return
	}

	allocations, err := h.reporter.GetFundAllocations(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, allocations)
}

// GetFundOverlaps lists pairwise fund overlaps
// @Summary List fund overlaps
// @Tags funds
// @Produce json
// @Success 200 {array} entities.FundOverlapResponse
// @Router /api/v1/fund_overlaps [get]
func (h *FundHandlers) GetFundOverlaps(c *gin.Context) {
	overlaps, err := h.reporter.GetFundOverlaps(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, overlaps)
}

// GetInvestmentOverview summarizes the whole portfolio
// @Summary Investment overview
// @Tags reports
// @Produce json
// @Success 200 {object} entities.InvestmentOverview
// @Failure 503 {object} entities.ErrorResponse
// @Router /api/v1/investment_overview [get]
func (h *FundHandlers) GetInvestmentOverview(c *gin.Context) {
	overview, err := h.reporter.GetInvestmentOverview(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// GetPerformanceSummary returns current value and a simulated history
// @Summary Performance summary
// @Tags reports
// @Produce json
// @Param timeframe query string false "1M, 3M, 6M, 1Y, 3Y or MAX"
// @Success 200 {object} entities.PerformanceReport
// @Router /api/v1/performance_summary [get]
func (h *FundHandlers) GetPerformanceSummary(c *gin.Context) {
	timeframe := entities.ParseTimeframe(c.Query("timeframe"))

	report, err := h.reporter.GetPerformanceSummary(c.Request.Context(), timeframe)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetSectorAllocation returns the sector breakdown
// @Summary Sector allocation
// @Tags reports
// @Produce json
// @Success 200 {array} entities.SectorAllocation
// @Router /api/v1/sector_allocation [get]
func (h *FundHandlers) GetSectorAllocation(c *gin.Context) {
	sectors, err := h.reporter.GetSectorAllocation(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, sectors)
}

// GetFundOverlapData returns the fund/stock overlap graph
// @Summary Fund overlap graph
// @Tags reports
// @Produce json
// @Success 200 {object} entities.OverlapGraph
// @Router /api/v1/fund_overlap_data [get]
func (h *FundHandlers) GetFundOverlapData(c *gin.Context) {
	graph, err := h.reporter.GetFundOverlapData(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, graph)
}
