package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fund-insight/fund_service/internal/domain/entities"
)

// MockReporter is a testify mock of portfolio.Reporter
type MockReporter struct {
	mock.Mock
}

func (m *MockReporter) GetMutualFunds(ctx context.Context, orderBy string) ([]entities.MutualFundResponse, error) {
	args := m.Called(ctx, orderBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.MutualFundResponse), args.Error(1)
}

func (m *MockReporter) GetMutualFund(ctx context.Context, id int64) (*entities.MutualFundResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MutualFundResponse), args.Error(1)
}

func (m *MockReporter) GetFundAllocations(ctx context.Context, fundID int64) ([]entities.FundAllocationResponse, error) {
	args := m.Called(ctx, fundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.FundAllocationResponse), args.Error(1)
}

func (m *MockReporter) GetFundOverlaps(ctx context.Context) ([]entities.FundOverlapResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.FundOverlapResponse), args.Error(1)
}

func (m *MockReporter) GetInvestmentOverview(ctx context.Context) (*entities.InvestmentOverview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.InvestmentOverview), args.Error(1)
}

func (m *MockReporter) GetPerformanceSummary(ctx context.Context, timeframe entities.Timeframe) (*entities.PerformanceReport, error) {
	args := m.Called(ctx, timeframe)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PerformanceReport), args.Error(1)
}

func (m *MockReporter) GetSectorAllocation(ctx context.Context) ([]entities.SectorAllocation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.SectorAllocation), args.Error(1)
}

func (m *MockReporter) GetFundOverlapData(ctx context.Context) (*entities.OverlapGraph, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.OverlapGraph), args.Error(1)
}
