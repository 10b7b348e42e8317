package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/fund-insight/fund_service/internal/infrastructure/config"
	apperrors "github.com/fund-insight/fund_service/pkg/errors"
	"github.com/fund-insight/fund_service/pkg/retry"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// NewConnection opens the primary pool and waits for PostgreSQL to accept
// connections, retrying transient failures.
func NewConnection(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	configurePool(db, cfg)

	policy := retry.PolicyDatabaseConnect.WithRetryableFunc(apperrors.IsTransient)
	attempt := 0
	err = retry.Do(ctx, policy, func(ctx context.Context) error {
		attempt++
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		if err := db.PingContext(pingCtx); err != nil {
			logger.Warn("Database not ready", zap.Int("attempt", attempt), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("Database connection established",
		zap.Int("max_open_conns", cfg.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.MaxIdleConns))

	return db, nil
}

func configurePool(db *sqlx.DB, cfg config.DatabaseConfig) {
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
}

// RunMigrations applies the embedded schema migrations
func RunMigrations(databaseURL string) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialise migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
