package portfolio

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/fund-insight/fund_service/internal/domain/entities"
)

// GetFundOverlapData builds a fund-to-stock graph. Fund nodes come first in
// id order, followed by each distinct overlapping stock in the order it is
// first seen. Every stock overlap row links both of its funds to the stock.
func (s *Service) GetFundOverlapData(ctx context.Context) (*entities.OverlapGraph, error) {
	var (
		funds    []entities.MutualFund
		overlaps []entities.FundStockOverlap
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.repo.ListFunds(gctx, "")
		if err != nil {
			return fmt.Errorf("funds: %w", err)
		}
		funds = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.ListStockOverlaps(gctx)
		if err != nil {
			return fmt.Errorf("stock overlaps: %w", err)
		}
		overlaps = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.CtxError(ctx, "Failed to build fund overlap graph", "error", err)
		return nil, err
	}

	return buildOverlapGraph(funds, overlaps), nil
}

func buildOverlapGraph(funds []entities.MutualFund, overlaps []entities.FundStockOverlap) *entities.OverlapGraph {
	graph := &entities.OverlapGraph{
		Nodes: make([]entities.GraphNode, 0, len(funds)),
		Links: make([]entities.GraphLink, 0, 2*len(overlaps)),
	}

	fundIndex := make(map[int64]int, len(funds))
	nameIndex := make(map[string]int, len(funds))
	addNode := func(name string) int {
		if idx, ok := nameIndex[name]; ok {
			return idx
		}
		idx := len(graph.Nodes)
		graph.Nodes = append(graph.Nodes, entities.GraphNode{Name: name})
		nameIndex[name] = idx
		return idx
	}

	for _, fund := range funds {
		fundIndex[fund.ID] = addNode(fund.Name)
	}
	for _, overlap := range overlaps {
		addNode(overlap.Stock)
	}

	for _, overlap := range overlaps {
		target, ok := nameIndex[overlap.Stock]
		if !ok {
			continue
		}
		value := entities.Round2(overlap.OverlapPercentage)
		for _, fundID := range []int64{overlap.Fund1ID, overlap.Fund2ID} {
			source, ok := fundIndex[fundID]
			if !ok {
				continue
			}
			graph.Links = append(graph.Links, entities.GraphLink{
				Source: source,
				Target: target,
				Value:  value,
			})
		}
	}

	return graph
}
