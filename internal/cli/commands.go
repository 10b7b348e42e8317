package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/fund-insight/fund_service/internal/domain/entities"
	"github.com/fund-insight/fund_service/internal/domain/services/portfolio"
	"github.com/fund-insight/fund_service/internal/infrastructure/charts"
)

// OpenFunc connects to the store and returns a reporter plus its cleanup
type OpenFunc func(ctx context.Context) (portfolio.Reporter, func(), error)

// Env is shared by every command
type Env struct {
	Open     OpenFunc
	Currency string
	Out      io.Writer
	// Plain prints raw markdown instead of styling it for the terminal
	Plain bool
}

// Commands returns the report commands bound to env
func Commands(env *Env) []subcommands.Command {
	return []subcommands.Command{
		&overviewCmd{env: env},
		&performanceCmd{env: env},
		&sectorsCmd{env: env},
		&overlapCmd{env: env},
		&chartCmd{env: env},
	}
}

// run opens a reporter, hands it to fn and prints the returned markdown
func (e *Env) run(ctx context.Context, fn func(portfolio.Reporter, formatter) (string, error)) subcommands.ExitStatus {
	reporter, closeFn, err := e.Open(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeFn()

	md, err := fn(reporter, newFormatter(e.Currency))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := e.print(md); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (e *Env) print(md string) error {
	if !e.Plain {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
		if err != nil {
			return err
		}
		if md, err = r.Render(md); err != nil {
			return err
		}
	}
	_, err := io.WriteString(e.Out, md)
	return err
}

type overviewCmd struct{ env *Env }

func (*overviewCmd) Name() string     { return "overview" }
func (*overviewCmd) Synopsis() string { return "display the investment overview" }
func (*overviewCmd) Usage() string {
	return `fundreport overview

  Displays initial and current value, growth and the best and worst schemes.
`
}
func (*overviewCmd) SetFlags(*flag.FlagSet) {}

func (c *overviewCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.env.run(ctx, func(r portfolio.Reporter, f formatter) (string, error) {
		overview, err := r.GetInvestmentOverview(ctx)
		if err != nil {
			return "", err
		}
		return overviewMarkdown(overview, f), nil
	})
}

type performanceCmd struct {
	env       *Env
	timeframe string
}

func (*performanceCmd) Name() string     { return "performance" }
func (*performanceCmd) Synopsis() string { return "display the performance summary" }
func (*performanceCmd) Usage() string {
	return `fundreport performance [-t 1M|3M|6M|1Y|3Y|MAX]

  Displays current value and the simulated history for the timeframe.
`
}

func (c *performanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.timeframe, "t", string(entities.TimeframeMax), "timeframe")
}

func (c *performanceCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	timeframe := entities.ParseTimeframe(c.timeframe)
	return c.env.run(ctx, func(r portfolio.Reporter, f formatter) (string, error) {
		report, err := r.GetPerformanceSummary(ctx, timeframe)
		if err != nil {
			return "", err
		}
		return performanceMarkdown(report, timeframe, f), nil
	})
}

type sectorsCmd struct{ env *Env }

func (*sectorsCmd) Name() string     { return "sectors" }
func (*sectorsCmd) Synopsis() string { return "display the sector allocation" }
func (*sectorsCmd) Usage() string {
	return `fundreport sectors

  Displays every sector with its stocks.
`
}
func (*sectorsCmd) SetFlags(*flag.FlagSet) {}

func (c *sectorsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.env.run(ctx, func(r portfolio.Reporter, f formatter) (string, error) {
		sectors, err := r.GetSectorAllocation(ctx)
		if err != nil {
			return "", err
		}
		return sectorsMarkdown(sectors, f), nil
	})
}

type overlapCmd struct{ env *Env }

func (*overlapCmd) Name() string     { return "overlap" }
func (*overlapCmd) Synopsis() string { return "display stocks shared between funds" }
func (*overlapCmd) Usage() string {
	return `fundreport overlap

  Lists every fund to stock overlap link.
`
}
func (*overlapCmd) SetFlags(*flag.FlagSet) {}

func (c *overlapCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.env.run(ctx, func(r portfolio.Reporter, f formatter) (string, error) {
		graph, err := r.GetFundOverlapData(ctx)
		if err != nil {
			return "", err
		}
		return overlapMarkdown(graph, f), nil
	})
}

type chartCmd struct {
	env       *Env
	kind      string
	timeframe string
	output    string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "write a PNG chart" }
func (*chartCmd) Usage() string {
	return `fundreport chart -kind performance|sectors [-t timeframe] -o file.png

  Renders the performance history or the sector allocation to a PNG file.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "performance", "chart kind: performance or sectors")
	f.StringVar(&c.timeframe, "t", string(entities.TimeframeMax), "timeframe for the performance chart")
	f.StringVar(&c.output, "o", "", "output file")
}

func (c *chartCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.output == "" {
		fmt.Fprintln(os.Stderr, "Error: -o is required")
		return subcommands.ExitUsageError
	}
	if c.kind != "performance" && c.kind != "sectors" {
		fmt.Fprintf(os.Stderr, "Error: unknown chart kind %q\n", c.kind)
		return subcommands.ExitUsageError
	}

	reporter, closeFn, err := c.env.Open(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeFn()

	png, err := c.render(ctx, reporter)
	if errors.Is(err, charts.ErrNoChartData) {
		fmt.Fprintln(os.Stderr, entities.NoInvestmentsMessage)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := os.WriteFile(c.output, png, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(c.env.Out, "wrote %s\n", c.output)
	return subcommands.ExitSuccess
}

func (c *chartCmd) render(ctx context.Context, r portfolio.Reporter) ([]byte, error) {
	if c.kind == "sectors" {
		sectors, err := r.GetSectorAllocation(ctx)
		if err != nil {
			return nil, err
		}
		return charts.RenderSectors(sectors)
	}

	timeframe := entities.ParseTimeframe(c.timeframe)
	report, err := r.GetPerformanceSummary(ctx, timeframe)
	if err != nil {
		return nil, err
	}
	return charts.RenderPerformance(report.PerformanceSummary, timeframe)
}
