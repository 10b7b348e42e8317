package charts

import (
	"errors"
	"fmt"

	"github.com/vicanso/go-charts/v2"

	"github.com/fund-insight/fund_service/internal/domain/entities"
)

// ErrNoChartData is returned when there is nothing to plot
var ErrNoChartData = errors.New("no data to chart")

const (
	chartWidth  = 900
	chartHeight = 500
)

// RenderPerformance draws the simulated history as a PNG line chart
func RenderPerformance(summary *entities.PerformanceSummary, timeframe entities.Timeframe) ([]byte, error) {
	if summary == nil || len(summary.History) == 0 {
		return nil, ErrNoChartData
	}

	labels := make([]string, 0, len(summary.History))
	values := make([]float64, 0, len(summary.History))
	for _, point := range summary.History {
		labels = append(labels, point.Date)
		values = append(values, point.Value)
	}

	p, err := charts.LineRender(
		[][]float64{values},
		charts.TitleTextOptionFunc(
			fmt.Sprintf("Portfolio performance • %s", timeframe),
			fmt.Sprintf("Current value %.2f", summary.CurrentInvestmentValue),
		),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        labels,
			BoundaryGap: charts.FalseFlag(),
		}),
		charts.YAxisOptionFunc(charts.YAxisOption{DivideCount: 5}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(chartWidth),
		charts.HeightOptionFunc(chartHeight),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render performance chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to encode performance chart: %w", err)
	}
	return buf, nil
}

// RenderSectors draws sector amounts as a PNG pie chart. Sectors with no
// amount are left out of the pie.
func RenderSectors(sectors []entities.SectorAllocation) ([]byte, error) {
	var (
		labels []string
		values []float64
		total  float64
	)
	for _, sector := range sectors {
		if sector.Amount <= 0 {
			continue
		}
		labels = append(labels, sector.Name)
		values = append(values, sector.Amount)
		total += sector.Amount
	}
	if total == 0 {
		return nil, ErrNoChartData
	}

	for i := range labels {
		labels[i] = fmt.Sprintf("%s (%.1f%%)", labels[i], values[i]/total*100)
	}

	p, err := charts.PieRender(
		values,
		charts.TitleTextOptionFunc("Sector allocation"),
		charts.LegendOptionFunc(charts.LegendOption{
			Data: labels,
			Top:  charts.PositionTop,
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(chartWidth),
		charts.HeightOptionFunc(chartHeight+100),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to render sector chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to encode sector chart: %w", err)
	}
	return buf, nil
}
