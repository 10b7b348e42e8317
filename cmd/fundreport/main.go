package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/fund-insight/fund_service/internal/cli"
	"github.com/fund-insight/fund_service/internal/domain/services/portfolio"
	"github.com/fund-insight/fund_service/internal/infrastructure/config"
	"github.com/fund-insight/fund_service/internal/infrastructure/database"
	"github.com/fund-insight/fund_service/internal/infrastructure/di"
	"github.com/fund-insight/fund_service/pkg/logger"
)

func main() {
	plain := flag.Bool("plain", false, "print raw markdown")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	env := &cli.Env{Out: os.Stdout}
	for _, c := range cli.Commands(env) {
		commander.Register(c, "reports")
	}

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}
	env.Currency = cfg.Report.Currency
	env.Plain = *plain
	env.Open = func(ctx context.Context) (portfolio.Reporter, func(), error) {
		return openReporter(ctx, cfg)
	}

	os.Exit(int(commander.Execute(context.Background())))
}

// openReporter connects straight to PostgreSQL. The CLI never reads or
// writes the report cache.
func openReporter(ctx context.Context, cfg *config.Config) (portfolio.Reporter, func(), error) {
	log := logger.New("warn", cfg.Environment)

	db, err := database.NewConnection(ctx, cfg.Database, log.Zap().Named("database"))
	if err != nil {
		return nil, nil, err
	}

	pool, err := database.NewReplicaPool(ctx, db, cfg.Database)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	container, err := di.NewContainer(cfg, pool, nil, log)
	if err != nil {
		_ = pool.Close()
		_ = db.Close()
		return nil, nil, err
	}

	return container.Reporter, func() {
		_ = container.Close()
		_ = db.Close()
		_ = log.Sync()
	}, nil
}
