package cli

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fund-insight/fund_service/internal/domain/entities"
)

// formatter renders amounts in the report currency and percentages with
// locale grouping
type formatter struct {
	currency *money.Currency
	printer  *message.Printer
}

func newFormatter(currencyCode string) formatter {
	return formatter{
		currency: money.GetCurrency(strings.ToUpper(currencyCode)),
		printer:  message.NewPrinter(language.English),
	}
}

func (f formatter) money(amount float64) string {
	if f.currency == nil {
		return f.printer.Sprintf("%.2f", amount)
	}
	minor := decimal.NewFromFloat(amount).Shift(int32(f.currency.Fraction)).Round(0).IntPart()
	return money.New(minor, f.currency.Code).Display()
}

func (f formatter) percent(value float64) string {
	return f.printer.Sprintf("%.2f%%", value)
}

func (f formatter) signedPercent(value float64) string {
	if value > 0 {
		return "+" + f.percent(value)
	}
	return f.percent(value)
}

func overviewMarkdown(o *entities.InvestmentOverview, f formatter) string {
	var b strings.Builder
	b.WriteString("# Investment overview\n\n")
	b.WriteString("| Metric | Value |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Initial value | %s |\n", f.money(o.InitialInvestmentValue))
	fmt.Fprintf(&b, "| Current value | %s |\n", f.money(o.CurrentInvestmentValue))
	fmt.Fprintf(&b, "| Growth | %s |\n", f.signedPercent(o.InitialInvestmentGrowth))
	fmt.Fprintf(&b, "| Best scheme | %s (%s) |\n", o.BestPerformingScheme.Name, f.signedPercent(o.BestPerformingScheme.Returns))
	fmt.Fprintf(&b, "| Worst scheme | %s (%s) |\n", o.WorstPerformingScheme.Name, f.signedPercent(o.WorstPerformingScheme.Returns))
	return b.String()
}

func performanceMarkdown(r *entities.PerformanceReport, timeframe entities.Timeframe, f formatter) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Performance (%s)\n\n", timeframe)
	if !r.HasSummary() {
		b.WriteString(r.Message + "\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Initial %s, current %s\n\n", f.money(r.InitialInvestmentValue), f.money(r.CurrentInvestmentValue))
	b.WriteString("| Date | Value |\n|---|---:|\n")
	for _, point := range r.History {
		fmt.Fprintf(&b, "| %s | %s |\n", point.Date, f.money(point.Value))
	}
	return b.String()
}

func sectorsMarkdown(sectors []entities.SectorAllocation, f formatter) string {
	var b strings.Builder
	b.WriteString("# Sector allocation\n\n")
	if len(sectors) == 0 {
		b.WriteString("No allocations found\n")
		return b.String()
	}

	for _, sector := range sectors {
		fmt.Fprintf(&b, "## %s: %s (%s)\n\n", sector.Name, f.money(sector.Amount), f.percent(sector.Percentage))
		if len(sector.SubAllocations) == 0 {
			continue
		}
		b.WriteString("| Stock | Amount | Share |\n|---|---:|---:|\n")
		for _, sub := range sector.SubAllocations {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", sub.Name, f.money(sub.Amount), f.percent(sub.Percentage))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func overlapMarkdown(graph *entities.OverlapGraph, f formatter) string {
	var b strings.Builder
	b.WriteString("# Fund overlap\n\n")
	if len(graph.Links) == 0 {
		b.WriteString("No overlapping holdings\n")
		return b.String()
	}

	b.WriteString("| Fund | Stock | Overlap |\n|---|---|---:|\n")
	for _, link := range graph.Links {
		if link.Source >= len(graph.Nodes) || link.Target >= len(graph.Nodes) {
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n",
			graph.Nodes[link.Source].Name,
			graph.Nodes[link.Target].Name,
			f.percent(link.Value),
		)
	}
	return b.String()
}
