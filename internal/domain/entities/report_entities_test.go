package entities

import (
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeframe(t *testing.T) {
	tests := []struct {
		input    string
		expected Timeframe
	}{
		{"1M", Timeframe1M},
		{" 3m ", Timeframe3M},
		{"6m", Timeframe6M},
		{"1y", Timeframe1Y},
		{"3Y", Timeframe3Y},
		{"MAX", TimeframeMax},
		{"", TimeframeMax},
		{"5Y", TimeframeMax},
		{"weekly", TimeframeMax},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseTimeframe(tt.input))
		})
	}
}

func TestLookbackDays(t *testing.T) {
	days, ok := Timeframe1Y.LookbackDays()
	assert.True(t, ok)
	assert.Equal(t, 365, days)

	_, ok = TimeframeMax.LookbackDays()
	assert.False(t, ok)
}

func TestPerformanceReportJSON(t *testing.T) {
	empty, err := json.Marshal(PerformanceReport{Message: NoInvestmentsMessage})
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"No investments found"}`, string(empty))

	full, err := json.Marshal(PerformanceReport{PerformanceSummary: &PerformanceSummary{
		CurrentInvestmentValue: 1100,
		InitialInvestmentValue: 1000,
		History:                []PerformancePoint{{Date: "01 Jan", Value: 1000}},
	}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"current_investment_value":1100,"initial_investment_value":1000,"history":[{"date":"01 Jan","value":1000}]}`, string(full))

	var decoded PerformanceReport
	require.NoError(t, json.Unmarshal(full, &decoded))
	assert.True(t, decoded.HasSummary())
	assert.Equal(t, 1100.0, decoded.CurrentInvestmentValue)
}

func TestMutualFundCurrentValue(t *testing.T) {
	fund := MutualFund{
		AmountInvested:    decimal.NewFromInt(1000),
		ReturnsPercentage: decimal.RequireFromString("-12.5"),
	}
	assert.True(t, fund.CurrentValue().Equal(decimal.NewFromInt(875)))
}

func TestResponseConstructors(t *testing.T) {
	fund := NewMutualFundResponse(MutualFund{
		ID:                1,
		Name:              "Axis Bluechip",
		InvestmentDate:    time.Date(2023, 4, 5, 0, 0, 0, 0, time.UTC),
		AmountInvested:    decimal.RequireFromString("150000.00"),
		ISN:               "INF846K01DP8",
		NAVAtInvestment:   decimal.RequireFromString("45.675"),
		ReturnsPercentage: decimal.RequireFromString("12.5"),
	})
	assert.Equal(t, "2023-04-05", fund.InvestmentDate)
	assert.Equal(t, 45.68, fund.NAVAtInvestment)

	allocation := NewFundAllocationResponse(FundAllocation{FundID: 1, Sector: "Financials", Stock: "HDFC Bank"})
	assert.Nil(t, allocation.SectorAmount)
	assert.Nil(t, allocation.SubSector)

	withAmount := NewFundAllocationResponse(FundAllocation{
		SectorAmount: decimal.NewNullDecimal(decimal.RequireFromString("2500.555")),
		SubSector:    sql.NullString{String: "Private Banks", Valid: true},
	})
	require.NotNil(t, withAmount.SectorAmount)
	assert.Equal(t, 2500.56, *withAmount.SectorAmount)
	assert.Equal(t, "Private Banks", *withAmount.SubSector)
}
