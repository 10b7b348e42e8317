package entities

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentDateLayout is the wire format of a fund's investment date
const InvestmentDateLayout = "2006-01-02"

// MutualFund is a single scheme the portfolio holds
type MutualFund struct {
	ID                int64           `db:"id"`
	Name              string          `db:"name"`
	InvestmentDate    time.Time       `db:"investment_date"`
	AmountInvested    decimal.Decimal `db:"amount_invested"`
	ISN               string          `db:"isn"`
	NAVAtInvestment   decimal.Decimal `db:"nav_at_investment"`
	ReturnsPercentage decimal.Decimal `db:"returns_percentage"`
}

// CurrentValue applies the fund's return to the amount invested
func (f MutualFund) CurrentValue() decimal.Decimal {
	return f.AmountInvested.Mul(decimal.NewFromInt(1).Add(f.ReturnsPercentage.Div(decimal.NewFromInt(100))))
}

// FundAllocation is one stock holding of a fund, tagged with its sector
type FundAllocation struct {
	ID               int64               `db:"id"`
	FundID           int64               `db:"fund_id"`
	Sector           string              `db:"sector"`
	SectorPercentage decimal.Decimal     `db:"sector_percentage"`
	Stock            string              `db:"stock"`
	StockPercentage  decimal.Decimal     `db:"stock_percentage"`
	MarketCap        string              `db:"market_cap"`
	SectorAmount     decimal.NullDecimal `db:"sector_amount"`
	SubSector        sql.NullString      `db:"sub_sector"`
}

// FundOverlap is the share of holdings two funds have in common
type FundOverlap struct {
	ID                int64           `db:"id"`
	Fund1ID           int64           `db:"fund_1_id"`
	Fund2ID           int64           `db:"fund_2_id"`
	OverlapPercentage decimal.Decimal `db:"overlap_percentage"`
}

// FundStockOverlap records a stock held by both funds of a pair
type FundStockOverlap struct {
	ID                int64           `db:"id"`
	Fund1ID           int64           `db:"fund_1_id"`
	Fund2ID           int64           `db:"fund_2_id"`
	Stock             string          `db:"stock"`
	OverlapPercentage decimal.Decimal `db:"overlap_percentage"`
}

// SectorTotal is one row of the per-sector aggregate
type SectorTotal struct {
	Sector     string          `db:"sector"`
	Amount     decimal.Decimal `db:"amount"`
	Percentage decimal.Decimal `db:"percentage"`
}

// MutualFundResponse is the API representation of a fund
type MutualFundResponse struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	InvestmentDate    string  `json:"investment_date"`
	AmountInvested    float64 `json:"amount_invested"`
	ISN               string  `json:"isn"`
	NAVAtInvestment   float64 `json:"nav_at_investment"`
	ReturnsPercentage float64 `json:"returns_percentage"`
}

// FundAllocationResponse is the API representation of an allocation row
type FundAllocationResponse struct {
	FundID           int64    `json:"fund_id"`
	Sector           string   `json:"sector"`
	SectorPercentage float64  `json:"sector_percentage"`
	Stock            string   `json:"stock"`
	StockPercentage  float64  `json:"stock_percentage"`
	MarketCap        string   `json:"market_cap"`
	SectorAmount     *float64 `json:"sector_amount"`
	SubSector        *string  `json:"sub_sector"`
}

// FundOverlapResponse is the API representation of a fund pair overlap
type FundOverlapResponse struct {
	Fund1ID           int64   `json:"fund_1_id"`
	Fund2ID           int64   `json:"fund_2_id"`
	OverlapPercentage float64 `json:"overlap_percentage"`
}

func NewMutualFundResponse(f MutualFund) MutualFundResponse {
	return MutualFundResponse{
		ID:                f.ID,
		Name:              f.Name,
		InvestmentDate:    f.InvestmentDate.Format(InvestmentDateLayout),
		AmountInvested:    Round2(f.AmountInvested),
		ISN:               f.ISN,
		NAVAtInvestment:   Round2(f.NAVAtInvestment),
		ReturnsPercentage: Round2(f.ReturnsPercentage),
	}
}

func NewFundAllocationResponse(a FundAllocation) FundAllocationResponse {
	resp := FundAllocationResponse{
		FundID:           a.FundID,
		Sector:           a.Sector,
		SectorPercentage: Round2(a.SectorPercentage),
		Stock:            a.Stock,
		StockPercentage:  Round2(a.StockPercentage),
		MarketCap:        a.MarketCap,
	}
	if a.SectorAmount.Valid {
		amount := Round2(a.SectorAmount.Decimal)
		resp.SectorAmount = &amount
	}
	if a.SubSector.Valid {
		subSector := a.SubSector.String
		resp.SubSector = &subSector
	}
	return resp
}

func NewFundOverlapResponse(o FundOverlap) FundOverlapResponse {
	return FundOverlapResponse{
		Fund1ID:           o.Fund1ID,
		Fund2ID:           o.Fund2ID,
		OverlapPercentage: Round2(o.OverlapPercentage),
	}
}

// Round2 rounds half away from zero to two places for presentation
func Round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
