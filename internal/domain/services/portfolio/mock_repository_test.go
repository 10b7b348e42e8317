package portfolio

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/fund-insight/fund_service/internal/domain/entities"
)

// MockFundRepository is a testify mock of repositories.FundRepository
type MockFundRepository struct {
	mock.Mock
}

func (m *MockFundRepository) ListFunds(ctx context.Context, orderBy string) ([]entities.MutualFund, error) {
	args := m.Called(ctx, orderBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.MutualFund), args.Error(1)
}

func (m *MockFundRepository) GetFund(ctx context.Context, id int64) (*entities.MutualFund, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MutualFund), args.Error(1)
}

func (m *MockFundRepository) ListAllocations(ctx context.Context, fundID int64) ([]entities.FundAllocation, error) {
	args := m.Called(ctx, fundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.FundAllocation), args.Error(1)
}

func (m *MockFundRepository) ListAllAllocations(ctx context.Context) ([]entities.FundAllocation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.FundAllocation), args.Error(1)
}

func (m *MockFundRepository) ListOverlaps(ctx context.Context) ([]entities.FundOverlap, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.FundOverlap), args.Error(1)
}

func (m *MockFundRepository) ListStockOverlaps(ctx context.Context) ([]entities.FundStockOverlap, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.FundStockOverlap), args.Error(1)
}

func (m *MockFundRepository) SumAmountInvested(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockFundRepository) SumCurrentValue(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockFundRepository) MinInvestmentDate(ctx context.Context) (*time.Time, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockFundRepository) TopPerformer(ctx context.Context) (*entities.MutualFund, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MutualFund), args.Error(1)
}

func (m *MockFundRepository) BottomPerformer(ctx context.Context) (*entities.MutualFund, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MutualFund), args.Error(1)
}

func (m *MockFundRepository) SectorTotals(ctx context.Context) ([]entities.SectorTotal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.SectorTotal), args.Error(1)
}
