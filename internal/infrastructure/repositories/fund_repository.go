package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/fund-insight/fund_service/internal/domain/entities"
	domainrepos "github.com/fund-insight/fund_service/internal/domain/repositories"
	"github.com/fund-insight/fund_service/internal/infrastructure/database"
	pkgdb "github.com/fund-insight/fund_service/pkg/database"
	"github.com/fund-insight/fund_service/pkg/tracing"
)

const (
	tableFunds         = "mutual_funds"
	tableAllocations   = "fund_allocations"
	tableOverlaps      = "fund_overlaps"
	tableStockOverlaps = "fund_stock_overlaps"

	fundColumns       = `id, name, investment_date, amount_invested, isn, nav_at_investment, returns_percentage`
	allocationColumns = `id, fund_id, sector, sector_percentage, stock, stock_percentage, market_cap, sector_amount, sub_sector`
)

// ReaderSource hands out the pool a read query should run on
type ReaderSource interface {
	Reader() *sqlx.DB
}

// FundRepository reads fund holdings from PostgreSQL. Every query runs under
// its own span, the configured timeout and the store circuit breaker.
type FundRepository struct {
	db           ReaderSource
	breaker      *gobreaker.CircuitBreaker
	observer     *database.QueryObserver
	queryTimeout time.Duration
	logger       *zap.Logger
}

var _ domainrepos.FundRepository = (*FundRepository)(nil)

// NewFundRepository creates a new fund repository
func NewFundRepository(
	db ReaderSource,
	breaker *gobreaker.CircuitBreaker,
	observer *database.QueryObserver,
	queryTimeout time.Duration,
	logger *zap.Logger,
) *FundRepository {
	return &FundRepository{
		db:           db,
		breaker:      breaker,
		observer:     observer,
		queryTimeout: queryTimeout,
		logger:       logger,
	}
}

// run executes fn on a reader connection. fn returns the number of rows it produced.
func (r *FundRepository) run(ctx context.Context, operation, table string, fn func(ctx context.Context, db *sqlx.DB) (int, error)) error {
	ctx, span := tracing.StartDBSpan(ctx, tracing.DBSpanConfig{Operation: operation, Table: table})

	if r.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.queryTimeout)
		defer cancel()
	}

	start := time.Now()
	rows := 0
	_, err := r.breaker.Execute(func() (interface{}, error) {
		n, err := fn(ctx, r.db.Reader())
		rows = n
		return nil, err
	})

	r.observer.Observe(operation, table, start, err)
	tracing.EndDBSpan(span, err, int64(rows))

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		r.logger.Error("query failed",
			zap.String("operation", operation),
			zap.String("table", table),
			zap.Error(err))
	}

	return err
}

// ListFunds returns every fund, ordered by the validated orderBy expression or by id
func (r *FundRepository) ListFunds(ctx context.Context, orderBy string) ([]entities.MutualFund, error) {
	orderClause, err := pkgdb.BuildOrderByClause(orderBy, domainrepos.FundSortColumns, "id")
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + fundColumns + ` FROM mutual_funds` + orderClause

	funds := []entities.MutualFund{}
	err = r.run(ctx, "list_funds", tableFunds, func(ctx context.Context, db *sqlx.DB) (int, error) {
		err := db.SelectContext(ctx, &funds, query)
		return len(funds), err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list funds: %w", err)
	}

	return funds, nil
}

// GetFund returns a single fund or ErrFundNotFound
func (r *FundRepository) GetFund(ctx context.Context, id int64) (*entities.MutualFund, error) {
	query := `SELECT ` + fundColumns + ` FROM mutual_funds WHERE id = $1`

	var fund entities.MutualFund
	err := r.run(ctx, "get_fund", tableFunds, func(ctx context.Context, db *sqlx.DB) (int, error) {
		if err := db.GetContext(ctx, &fund, query, id); err != nil {
			return 0, err
		}
		return 1, nil
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domainrepos.ErrFundNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get fund %d: %w", id, err)
	}

	return &fund, nil
}

// ListAllocations returns the allocation rows of one fund
func (r *FundRepository) ListAllocations(ctx context.Context, fundID int64) ([]entities.FundAllocation, error) {
	query := `SELECT ` + allocationColumns + ` FROM fund_allocations WHERE fund_id = $1 ORDER BY id`

	allocations := []entities.FundAllocation{}
	err := r.run(ctx, "list_allocations", tableAllocations, func(ctx context.Context, db *sqlx.DB) (int, error) {
		err := db.SelectContext(ctx, &allocations, query, fundID)
		return len(allocations), err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list allocations for fund %d: %w", fundID, err)
	}

	return allocations, nil
}

// ListAllAllocations returns every allocation row in id order
func (r *FundRepository) ListAllAllocations(ctx context.Context) ([]entities.FundAllocation, error) {
	query := `SELECT ` + allocationColumns + ` FROM fund_allocations ORDER BY id`

	allocations := []entities.FundAllocation{}
	err := r.run(ctx, "list_all_allocations", tableAllocations, func(ctx context.Context, db *sqlx.DB) (int, error) {
		err := db.SelectContext(ctx, &allocations, query)
		return len(allocations), err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list allocations: %w", err)
	}

	return allocations, nil
}

func (r *FundRepository) ListOverlaps(ctx context.Context) ([]entities.FundOverlap, error) {
	query := `SELECT id, fund_1_id, fund_2_id, overlap_percentage FROM fund_overlaps ORDER BY id`

	overlaps := []entities.FundOverlap{}
	err := r.run(ctx, "list_overlaps", tableOverlaps, func(ctx context.Context, db *sqlx.DB) (int, error) {
		err := db.SelectContext(ctx, &overlaps, query)
		return len(overlaps), err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list fund overlaps: %w", err)
	}

	return overlaps, nil
}

func (r *FundRepository) ListStockOverlaps(ctx context.Context) ([]entities.FundStockOverlap, error) {
	query := `SELECT id, fund_1_id, fund_2_id, stock, overlap_percentage FROM fund_stock_overlaps ORDER BY id`

	overlaps := []entities.FundStockOverlap{}
	err := r.run(ctx, "list_stock_overlaps", tableStockOverlaps, func(ctx context.Context, db *sqlx.DB) (int, error) {
		err := db.SelectContext(ctx, &overlaps, query)
		return len(overlaps), err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list stock overlaps: %w", err)
	}

	return overlaps, nil
}

// SumAmountInvested returns the total invested, zero for an empty portfolio
func (r *FundRepository) SumAmountInvested(ctx context.Context) (decimal.Decimal, error) {
	return r.sum(ctx, "sum_amount_invested",
		`SELECT COALESCE(SUM(amount_invested), 0) FROM mutual_funds`)
}

// SumCurrentValue returns the total of amount_invested grown by each fund's return
func (r *FundRepository) SumCurrentValue(ctx context.Context) (decimal.Decimal, error) {
	return r.sum(ctx, "sum_current_value",
		`SELECT COALESCE(SUM(amount_invested * (1 + returns_percentage / 100)), 0) FROM mutual_funds`)
}

func (r *FundRepository) sum(ctx context.Context, operation, query string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.run(ctx, operation, tableFunds, func(ctx context.Context, db *sqlx.DB) (int, error) {
		return 1, db.GetContext(ctx, &total, query)
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to %s: %w", operation, err)
	}

	return total, nil
}

func (r *FundRepository) MinInvestmentDate(ctx context.Context) (*time.Time, error) {
	var earliest sql.NullTime
	err := r.run(ctx, "min_investment_date", tableFunds, func(ctx context.Context, db *sqlx.DB) (int, error) {
		return 1, db.GetContext(ctx, &earliest, `SELECT MIN(investment_date) FROM mutual_funds`)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get earliest investment date: %w", err)
	}
	if !earliest.Valid {
		return nil, nil
	}

	return &earliest.Time, nil
}

func (r *FundRepository) TopPerformer(ctx context.Context) (*entities.MutualFund, error) {
	return r.performer(ctx, "top_performer", "DESC")
}

func (r *FundRepository) BottomPerformer(ctx context.Context) (*entities.MutualFund, error) {
	return r.performer(ctx, "bottom_performer", "ASC")
}

func (r *FundRepository) performer(ctx context.Context, operation, direction string) (*entities.MutualFund, error) {
	query := `SELECT ` + fundColumns + ` FROM mutual_funds ORDER BY returns_percentage ` + direction + `, id ASC LIMIT 1`

	var fund entities.MutualFund
	err := r.run(ctx, operation, tableFunds, func(ctx context.Context, db *sqlx.DB) (int, error) {
		if err := db.GetContext(ctx, &fund, query); err != nil {
			return 0, err
		}
		return 1, nil
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", operation, err)
	}

	return &fund, nil
}

// SectorTotals sums sector amounts (missing amounts count as zero) and
// percentages per sector, ordered by sector name
func (r *FundRepository) SectorTotals(ctx context.Context) ([]entities.SectorTotal, error) {
	query := `
		SELECT sector,
		       COALESCE(SUM(sector_amount), 0) AS amount,
		       COALESCE(SUM(sector_percentage), 0) AS percentage
		FROM fund_allocations
		GROUP BY sector
		ORDER BY sector`

	totals := []entities.SectorTotal{}
	err := r.run(ctx, "sector_totals", tableAllocations, func(ctx context.Context, db *sqlx.DB) (int, error) {
		err := db.SelectContext(ctx, &totals, query)
		return len(totals), err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sectors: %w", err)
	}

	return totals, nil
}
