package entities

import "strings"

// NotAvailable names the best or worst scheme when the portfolio is empty
const NotAvailable = "N/A"

// NoInvestmentsMessage is returned instead of a performance summary for an empty portfolio
const NoInvestmentsMessage = "No investments found"

// SchemePerformance names a fund together with its return
type SchemePerformance struct {
	Name    string  `json:"name"`
	Returns float64 `json:"returns"`
}

// InvestmentOverview captures the headline numbers of the portfolio
type InvestmentOverview struct {
	CurrentInvestmentValue  float64           `json:"current_investment_value"`
	InitialInvestmentValue  float64           `json:"initial_investment_value"`
	InitialInvestmentGrowth float64           `json:"initial_investment_growth"`
	BestPerformingScheme    SchemePerformance `json:"best_performing_scheme"`
	WorstPerformingScheme   SchemePerformance `json:"worst_performing_scheme"`
}

// PerformancePoint is one simulated point of portfolio value
type PerformancePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// PerformanceSummary is the current value plus a simulated growth history
type PerformanceSummary struct {
	CurrentInvestmentValue float64            `json:"current_investment_value"`
	InitialInvestmentValue float64            `json:"initial_investment_value"`
	History                []PerformancePoint `json:"history"`
}

// PerformanceReport is either a summary or, for an empty portfolio, a message.
// A nil summary leaves only the message in the JSON body.
type PerformanceReport struct {
	*PerformanceSummary
	Message string `json:"message,omitempty"`
}

// HasSummary reports whether the report carries figures
func (r PerformanceReport) HasSummary() bool {
	return r.PerformanceSummary != nil
}

// SubAllocation is a single stock inside a sector
type SubAllocation struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	Amount     float64 `json:"amount"`
}

// SectorAllocation aggregates holdings by sector
type SectorAllocation struct {
	Name           string          `json:"name"`
	Amount         float64         `json:"amount"`
	Percentage     float64         `json:"percentage"`
	SubAllocations []SubAllocation `json:"sub_allocations"`
}

// GraphNode is a fund or a stock in the overlap graph
type GraphNode struct {
	Name string `json:"name"`
}

// GraphLink joins a fund node to a stock node by index
type GraphLink struct {
	Source int     `json:"source"`
	Target int     `json:"target"`
	Value  float64 `json:"value"`
}

// OverlapGraph is a node/link graph suitable for a Sankey diagram
type OverlapGraph struct {
	Nodes []GraphNode `json:"nodes"`
	Links []GraphLink `json:"links"`
}

// Timeframe selects how far back the performance history reaches
type Timeframe string

const (
	Timeframe1M  Timeframe = "1M"
	Timeframe3M  Timeframe = "3M"
	Timeframe6M  Timeframe = "6M"
	Timeframe1Y  Timeframe = "1Y"
	Timeframe3Y  Timeframe = "3Y"
	TimeframeMax Timeframe = "MAX"
)

var timeframeDays = map[Timeframe]int{
	Timeframe1M: 30,
	Timeframe3M: 90,
	Timeframe6M: 180,
	Timeframe1Y: 365,
	Timeframe3Y: 1095,
}

// ParseTimeframe is lenient: input is trimmed and upper-cased, anything unknown means MAX
func ParseTimeframe(raw string) Timeframe {
	tf := Timeframe(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := timeframeDays[tf]; ok {
		return tf
	}
	return TimeframeMax
}

// LookbackDays returns the window length, or false for MAX
func (t Timeframe) LookbackDays() (int, bool) {
	days, ok := timeframeDays[t]
	return days, ok
}

// ErrorResponse is the JSON body of every failed request
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// MessageResponse carries a plain informational message
type MessageResponse struct {
	Message string `json:"message"`
}
