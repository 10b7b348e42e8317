package portfolio

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/fund-insight/fund_service/internal/domain/entities"
)

// GetSectorAllocation groups holdings by sector, ordered by sector name.
// Percentages are summed across funds as stored, without weighting by fund size,
// and a sector's stock amounts need not add up to the sector amount.
func (s *Service) GetSectorAllocation(ctx context.Context) ([]entities.SectorAllocation, error) {
	var (
		totals      []entities.SectorTotal
		allocations []entities.FundAllocation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.repo.SectorTotals(gctx)
		if err != nil {
			return fmt.Errorf("sector totals: %w", err)
		}
		totals = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.ListAllAllocations(gctx)
		if err != nil {
			return fmt.Errorf("allocations: %w", err)
		}
		allocations = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.CtxError(ctx, "Failed to build sector allocation", "error", err)
		return nil, err
	}

	bySector := make(map[string][]entities.SubAllocation)
	for _, a := range allocations {
		amount := 0.0
		if a.SectorAmount.Valid {
			amount = entities.Round2(a.SectorAmount.Decimal)
		}
		bySector[a.Sector] = append(bySector[a.Sector], entities.SubAllocation{
			Name:       a.Stock,
			Percentage: entities.Round2(a.StockPercentage),
			Amount:     amount,
		})
	}

	result := make([]entities.SectorAllocation, 0, len(totals))
	for _, total := range totals {
		subs := bySector[total.Sector]
		if subs == nil {
			subs = []entities.SubAllocation{}
		}
		result = append(result, entities.SectorAllocation{
			Name:           total.Sector,
			Amount:         entities.Round2(total.Amount),
			Percentage:     entities.Round2(total.Percentage),
			SubAllocations: subs,
		})
	}

	return result, nil
}
