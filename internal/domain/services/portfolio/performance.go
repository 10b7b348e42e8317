package portfolio

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/fund-insight/fund_service/internal/domain/entities"
)

const (
	// historyDateLayout renders points as "05 Mar"
	historyDateLayout = "02 Jan"
	// maxHistoryPoints bounds the simulated series
	maxHistoryPoints = 8
	// historyIntervals is the number of steps the range is divided into
	historyIntervals = 7
)

var dailyGrowth = decimal.NewFromInt(1000)

// GetPerformanceSummary returns the current value with a simulated growth
// history over the timeframe. Growth is linear at 0.1% per day from the
// initial investment; it is not derived from NAV data.
func (s *Service) GetPerformanceSummary(ctx context.Context, timeframe entities.Timeframe) (*entities.PerformanceReport, error) {
	var (
		values   portfolioValues
		earliest *time.Time
	)

	g, gctx := errgroup.WithContext(ctx)
	s.loadValues(gctx, g, &values)
	g.Go(func() error {
		date, err := s.repo.MinInvestmentDate(gctx)
		if err != nil {
			return fmt.Errorf("earliest investment date: %w", err)
		}
		earliest = date
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.CtxError(ctx, "Failed to build performance summary", "timeframe", timeframe, "error", err)
		return nil, err
	}

	if earliest == nil {
		return &entities.PerformanceReport{Message: entities.NoInvestmentsMessage}, nil
	}

	today := s.today()
	start := s.startDate(timeframe, today, *earliest)
	daysRange := daysBetween(start, today)

	s.logger.CtxDebug(ctx, "Simulating performance history",
		"timeframe", timeframe,
		"start_date", start.Format(entities.InvestmentDateLayout),
		"days_range", daysRange)

	return &entities.PerformanceReport{
		PerformanceSummary: &entities.PerformanceSummary{
			CurrentInvestmentValue: entities.Round2(values.current),
			InitialInvestmentValue: entities.Round2(values.initial),
			History:                simulateHistory(values.initial, start, daysRange),
		},
	}, nil
}

// startDate resolves the first day of the window. MAX starts at the earliest investment.
func (s *Service) startDate(timeframe entities.Timeframe, today, earliest time.Time) time.Time {
	if days, ok := timeframe.LookbackDays(); ok {
		return today.AddDate(0, 0, -days)
	}
	return time.Date(earliest.Year(), earliest.Month(), earliest.Day(), 0, 0, 0, 0, s.location)
}

// daysBetween counts calendar days from a to b, ignoring DST shifts
func daysBetween(a, b time.Time) int {
	from := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// simulateHistory samples offsets 0, step, 2*step... below daysRange where
// step = max(daysRange/7, 1), keeping at most eight points.
func simulateHistory(initial decimal.Decimal, start time.Time, daysRange int) []entities.PerformancePoint {
	history := []entities.PerformancePoint{}
	if daysRange <= 0 {
		return history
	}

	step := daysRange / historyIntervals
	if step < 1 {
		step = 1
	}

	one := decimal.NewFromInt(1)
	for offset := 0; offset < daysRange && len(history) < maxHistoryPoints; offset += step {
		factor := one.Add(decimal.NewFromInt(int64(offset)).Div(dailyGrowth))
		history = append(history, entities.PerformancePoint{
			Date:  start.AddDate(0, 0, offset).Format(historyDateLayout),
			Value: entities.Round2(initial.Mul(factor)),
		})
	}

	return history
}
