package database

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/fund-insight/fund_service/internal/infrastructure/config"
)

// ReplicaPool spreads read queries across replicas, using the primary when none are configured
type ReplicaPool struct {
	primary  *sqlx.DB
	replicas []*sqlx.DB
	next     atomic.Uint64
}

func NewReplicaPool(ctx context.Context, primary *sqlx.DB, cfg config.DatabaseConfig) (*ReplicaPool, error) {
	pool := &ReplicaPool{
		primary:  primary,
		replicas: make([]*sqlx.DB, 0, len(cfg.ReplicaURLs)),
	}

	for i, url := range cfg.ReplicaURLs {
		replica, err := sqlx.Open("postgres", url)
		if err != nil {
			_ = pool.Close()
			return nil, fmt.Errorf("failed to open replica %d: %w", i, err)
		}

		configurePool(replica, cfg)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = replica.PingContext(pingCtx)
		cancel()
		if err != nil {
			_ = replica.Close()
			_ = pool.Close()
			return nil, fmt.Errorf("failed to ping replica %d: %w", i, err)
		}

		pool.replicas = append(pool.replicas, replica)
	}

	return pool, nil
}

func (rp *ReplicaPool) Primary() *sqlx.DB {
	return rp.primary
}

// Reader returns the next replica in round-robin order
func (rp *ReplicaPool) Reader() *sqlx.DB {
	if len(rp.replicas) == 0 {
		return rp.primary
	}

	idx := rp.next.Add(1) - 1
	return rp.replicas[idx%uint64(len(rp.replicas))]
}

// Close closes the replica pools. The primary is owned by the caller.
func (rp *ReplicaPool) Close() error {
	var errs []error

	for _, replica := range rp.replicas {
		if err := replica.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("failed to close replicas: %v", errs)
	}

	return nil
}

// HealthCheck pings every replica
func (rp *ReplicaPool) HealthCheck(ctx context.Context) error {
	for i, replica := range rp.replicas {
		if err := replica.PingContext(ctx); err != nil {
			return fmt.Errorf("replica %d health check failed: %w", i, err)
		}
	}

	return nil
}
