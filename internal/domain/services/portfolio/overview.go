package portfolio

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/fund-insight/fund_service/internal/domain/entities"
)

var hundred = decimal.NewFromInt(100)

// portfolioValues holds the invested total and its current worth
type portfolioValues struct {
	initial decimal.Decimal
	current decimal.Decimal
}

// growth is the percentage change from initial to current, zero for an empty portfolio
func (v portfolioValues) growth() decimal.Decimal {
	if v.initial.IsZero() {
		return decimal.Zero
	}
	return v.current.Sub(v.initial).Div(v.initial).Mul(hundred)
}

// loadValues schedules both portfolio sums on g
func (s *Service) loadValues(ctx context.Context, g *errgroup.Group, into *portfolioValues) {
	g.Go(func() error {
		initial, err := s.repo.SumAmountInvested(ctx)
		if err != nil {
			return fmt.Errorf("initial investment value: %w", err)
		}
		into.initial = initial
		return nil
	})
	g.Go(func() error {
		current, err := s.repo.SumCurrentValue(ctx)
		if err != nil {
			return fmt.Errorf("current investment value: %w", err)
		}
		into.current = current
		return nil
	})
}

// GetInvestmentOverview reports total value, growth, and the best and worst schemes
func (s *Service) GetInvestmentOverview(ctx context.Context) (*entities.InvestmentOverview, error) {
	var (
		values      portfolioValues
		best, worst *entities.MutualFund
	)

	g, gctx := errgroup.WithContext(ctx)
	s.loadValues(gctx, g, &values)
	g.Go(func() error {
		fund, err := s.repo.TopPerformer(gctx)
		if err != nil {
			return fmt.Errorf("best performing scheme: %w", err)
		}
		best = fund
		return nil
	})
	g.Go(func() error {
		fund, err := s.repo.BottomPerformer(gctx)
		if err != nil {
			return fmt.Errorf("worst performing scheme: %w", err)
		}
		worst = fund
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.CtxError(ctx, "Failed to build investment overview", "error", err)
		return nil, err
	}

	return &entities.InvestmentOverview{
		CurrentInvestmentValue:  entities.Round2(values.current),
		InitialInvestmentValue:  entities.Round2(values.initial),
		InitialInvestmentGrowth: entities.Round2(values.growth()),
		BestPerformingScheme:    schemeOf(best),
		WorstPerformingScheme:   schemeOf(worst),
	}, nil
}

func schemeOf(fund *entities.MutualFund) entities.SchemePerformance {
	if fund == nil {
		return entities.SchemePerformance{Name: entities.NotAvailable, Returns: 0}
	}
	return entities.SchemePerformance{
		Name:    fund.Name,
		Returns: entities.Round2(fund.ReturnsPercentage),
	}
}
