package portfolio

import (
	"context"
	"time"

	"github.com/fund-insight/fund_service/internal/domain/entities"
	"github.com/fund-insight/fund_service/internal/domain/repositories"
	"github.com/fund-insight/fund_service/pkg/logger"
)

// Reporter is the read API over the fund portfolio
type Reporter interface {
	GetMutualFunds(ctx context.Context, orderBy string) ([]entities.MutualFundResponse, error)
	GetMutualFund(ctx context.Context, id int64) (*entities.MutualFundResponse, error)
	GetFundAllocations(ctx context.Context, fundID int64) ([]entities.FundAllocationResponse, error)
	GetFundOverlaps(ctx context.Context) ([]entities.FundOverlapResponse, error)

	GetInvestmentOverview(ctx context.Context) (*entities.InvestmentOverview, error)
	GetPerformanceSummary(ctx context.Context, timeframe entities.Timeframe) (*entities.PerformanceReport, error)
	GetSectorAllocation(ctx context.Context) ([]entities.SectorAllocation, error)
	GetFundOverlapData(ctx context.Context) (*entities.OverlapGraph, error)
}

// Service computes portfolio reports straight from the fund repository.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	repo     repositories.FundRepository
	logger   *logger.Logger
	location *time.Location
	now      func() time.Time
}

var _ Reporter = (*Service)(nil)

// Option configures a Service
type Option func(*Service)

// WithClock overrides the wall clock used to determine "today"
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithLocation sets the timezone in which calendar dates are evaluated
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.location = loc
		}
	}
}

// NewService creates a new portfolio service
func NewService(repo repositories.FundRepository, log *logger.Logger, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		logger:   log.Named("portfolio"),
		location: time.UTC,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// today returns midnight of the current calendar date in the report timezone
func (s *Service) today() time.Time {
	now := s.now().In(s.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
}
