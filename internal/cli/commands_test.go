package cli

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fund-insight/fund_service/internal/domain/entities"
	"github.com/fund-insight/fund_service/internal/domain/services/portfolio"
)

// stubReporter serves fixed reports
type stubReporter struct {
	portfolio.Reporter
	overview    *entities.InvestmentOverview
	performance *entities.PerformanceReport
	sectors     []entities.SectorAllocation
	graph       *entities.OverlapGraph
	err         error
}

func (s *stubReporter) GetInvestmentOverview(context.Context) (*entities.InvestmentOverview, error) {
	return s.overview, s.err
}

func (s *stubReporter) GetPerformanceSummary(context.Context, entities.Timeframe) (*entities.PerformanceReport, error) {
	return s.performance, s.err
}

func (s *stubReporter) GetSectorAllocation(context.Context) ([]entities.SectorAllocation, error) {
	return s.sectors, s.err
}

func (s *stubReporter) GetFundOverlapData(context.Context) (*entities.OverlapGraph, error) {
	return s.graph, s.err
}

func newTestEnv(reporter portfolio.Reporter) (*Env, *bytes.Buffer, *bool) {
	out := &bytes.Buffer{}
	closed := false
	env := &Env{
		Open: func(context.Context) (portfolio.Reporter, func(), error) {
			return reporter, func() { closed = true }, nil
		},
		Currency: "INR",
		Out:      out,
		Plain:    true,
	}
	return env, out, &closed
}

func execute(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(fs)
	require.NoError(t, fs.Parse(args))
	return cmd.Execute(context.Background(), fs)
}

func sampleReporter() *stubReporter {
	return &stubReporter{
		overview: &entities.InvestmentOverview{
			CurrentInvestmentValue:  1100,
			InitialInvestmentValue:  1000,
			InitialInvestmentGrowth: 10,
			BestPerformingScheme:    entities.SchemePerformance{Name: "Fund A", Returns: 10},
			WorstPerformingScheme:   entities.SchemePerformance{Name: "Fund A", Returns: 10},
		},
		performance: &entities.PerformanceReport{PerformanceSummary: &entities.PerformanceSummary{
			CurrentInvestmentValue: 1100,
			InitialInvestmentValue: 1000,
			History: []entities.PerformancePoint{
				{Date: "01 Mar", Value: 1000},
				{Date: "05 Mar", Value: 1004},
			},
		}},
		sectors: []entities.SectorAllocation{
			{Name: "Financials", Amount: 125000, Percentage: 40, SubAllocations: []entities.SubAllocation{
				{Name: "HDFC Bank", Amount: 75000, Percentage: 8.5},
			}},
		},
		graph: &entities.OverlapGraph{
			Nodes: []entities.GraphNode{{Name: "Fund A"}, {Name: "Fund B"}, {Name: "HDFC Bank"}},
			Links: []entities.GraphLink{{Source: 0, Target: 2, Value: 12.5}},
		},
	}
}

func TestOverviewCommand(t *testing.T) {
	env, out, closed := newTestEnv(sampleReporter())

	status := execute(t, &overviewCmd{env: env})

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.True(t, *closed)
	assert.Contains(t, out.String(), "# Investment overview")
	assert.Contains(t, out.String(), "1,100.00")
	assert.Contains(t, out.String(), "+10.00%")
	assert.Contains(t, out.String(), "Fund A")
}

func TestPerformanceCommand(t *testing.T) {
	env, out, _ := newTestEnv(sampleReporter())

	status := execute(t, &performanceCmd{env: env}, "-t", "1y")

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out.String(), "# Performance (1Y)")
	assert.Contains(t, out.String(), "| 05 Mar |")
}

func TestPerformanceCommandEmptyPortfolio(t *testing.T) {
	reporter := sampleReporter()
	reporter.performance = &entities.PerformanceReport{Message: entities.NoInvestmentsMessage}
	env, out, _ := newTestEnv(reporter)

	status := execute(t, &performanceCmd{env: env})

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out.String(), "# Performance (MAX)")
	assert.Contains(t, out.String(), entities.NoInvestmentsMessage)
}

func TestSectorsAndOverlapCommands(t *testing.T) {
	env, out, _ := newTestEnv(sampleReporter())

	require.Equal(t, subcommands.ExitSuccess, execute(t, &sectorsCmd{env: env}))
	assert.Contains(t, out.String(), "## Financials")
	assert.Contains(t, out.String(), "125,000.00")

	out.Reset()
	require.Equal(t, subcommands.ExitSuccess, execute(t, &overlapCmd{env: env}))
	assert.Contains(t, out.String(), "| Fund A | HDFC Bank | 12.50% |")
}

func TestCommandFailure(t *testing.T) {
	reporter := sampleReporter()
	reporter.err = errors.New("database unavailable")
	env, _, closed := newTestEnv(reporter)

	assert.Equal(t, subcommands.ExitFailure, execute(t, &overviewCmd{env: env}))
	assert.True(t, *closed)

	env.Open = func(context.Context) (portfolio.Reporter, func(), error) {
		return nil, nil, errors.New("connection refused")
	}
	assert.Equal(t, subcommands.ExitFailure, execute(t, &sectorsCmd{env: env}))
}

func TestChartCommand(t *testing.T) {
	env, out, _ := newTestEnv(sampleReporter())
	output := filepath.Join(t.TempDir(), "sectors.png")

	status := execute(t, &chartCmd{env: env}, "-kind", "sectors", "-o", output)

	require.Equal(t, subcommands.ExitSuccess, status)
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G'}))
	assert.Contains(t, out.String(), "wrote")

	assert.Equal(t, subcommands.ExitUsageError, execute(t, &chartCmd{env: env}, "-kind", "sectors"))
	assert.Equal(t, subcommands.ExitUsageError, execute(t, &chartCmd{env: env}, "-kind", "pie", "-o", output))
}

func TestFormatterUnknownCurrency(t *testing.T) {
	f := newFormatter("XXX-unknown")
	assert.Equal(t, "1,234.50", f.money(1234.5))
	assert.Equal(t, "-3.25%", f.signedPercent(-3.25))
}
