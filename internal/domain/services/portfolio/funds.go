package portfolio

import (
	"context"

	"github.com/fund-insight/fund_service/internal/domain/entities"
)

func (s *Service) GetMutualFunds(ctx context.Context, orderBy string) ([]entities.MutualFundResponse, error) {
	funds, err := s.repo.ListFunds(ctx, orderBy)
	if err != nil {
		return nil, err
	}

	resp := make([]entities.MutualFundResponse, 0, len(funds))
	for _, fund := range funds {
		resp = append(resp, entities.NewMutualFundResponse(fund))
	}
	return resp, nil
}

func (s *Service) GetMutualFund(ctx context.Context, id int64) (*entities.MutualFundResponse, error) {
	fund, err := s.repo.GetFund(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := entities.NewMutualFundResponse(*fund)
	return &resp, nil
}

// GetFundAllocations lists one fund's holdings. An unknown fund has none.
func (s *Service) GetFundAllocations(ctx context.Context, fundID int64) ([]entities.FundAllocationResponse, error) {
	allocations, err := s.repo.ListAllocations(ctx, fundID)
	if err != nil {
		return nil, err
	}

	resp := make([]entities.FundAllocationResponse, 0, len(allocations))
	for _, allocation := range allocations {
		resp = append(resp, entities.NewFundAllocationResponse(allocation))
	}
	return resp, nil
}

func (s *Service) GetFundOverlaps(ctx context.Context) ([]entities.FundOverlapResponse, error) {
	overlaps, err := s.repo.ListOverlaps(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]entities.FundOverlapResponse, 0, len(overlaps))
	for _, overlap := range overlaps {
		resp = append(resp, entities.NewFundOverlapResponse(overlap))
	}
	return resp, nil
}
