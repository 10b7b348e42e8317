package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fund-insight/fund_service/internal/domain/entities"
	apperrors "github.com/fund-insight/fund_service/pkg/errors"
)

// ErrFundNotFound is returned when a fund id does not exist
var ErrFundNotFound = fmt.Errorf("mutual fund %w", apperrors.ErrNotFound)

// FundSortColumns are the mutual_funds columns a listing may be ordered by
var FundSortColumns = []string{
	"id",
	"name",
	"investment_date",
	"amount_invested",
	"nav_at_investment",
	"returns_percentage",
}

// FundRepository is read-only access to fund holdings and their aggregates.
// Aggregates over an empty portfolio return zero values, never an error.
type FundRepository interface {
	ListFunds(ctx context.Context, orderBy string) ([]entities.MutualFund, error)
	GetFund(ctx context.Context, id int64) (*entities.MutualFund, error)
	ListAllocations(ctx context.Context, fundID int64) ([]entities.FundAllocation, error)
	ListAllAllocations(ctx context.Context) ([]entities.FundAllocation, error)
	ListOverlaps(ctx context.Context) ([]entities.FundOverlap, error)
	ListStockOverlaps(ctx context.Context) ([]entities.FundStockOverlap, error)

	SumAmountInvested(ctx context.Context) (decimal.Decimal, error)
	SumCurrentValue(ctx context.Context) (decimal.Decimal, error)
	// MinInvestmentDate returns nil when there are no funds
	MinInvestmentDate(ctx context.Context) (*time.Time, error)
	// TopPerformer and BottomPerformer return nil when there are no funds.
	// Ties on returns resolve to the lowest id.
	TopPerformer(ctx context.Context) (*entities.MutualFund, error)
	BottomPerformer(ctx context.Context) (*entities.MutualFund, error)
	SectorTotals(ctx context.Context) ([]entities.SectorTotal, error)
}
