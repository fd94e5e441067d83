package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/bookkeeping/config"
	"github.com/finance-tracker/bookkeeping/internal/infra/db"
	"github.com/finance-tracker/bookkeeping/internal/infra/dependency"
	"github.com/finance-tracker/bookkeeping/internal/infra/metrics"
	"github.com/finance-tracker/bookkeeping/internal/integration/lock"
)

// ledger bundles the connections a worker command holds open.
type ledger struct {
	database *db.Database
	redis    *redis.Client
	injector *dependency.Injector
}

func openLedger(ctx context.Context, cfg *config.Config, m *metrics.Metrics) (*ledger, error) {
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := database.Migrate(); err != nil {
		_ = database.Close()
		return nil, err
	}

	l := &ledger{database: database}

	if cfg.Redis.URL != "" {
		l.redis, err = lock.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			l.Close()
			return nil, err
		}
	} else {
		slog.Warn("REDIS_URL is not set, running without rule leases")
	}

	l.injector, err = dependency.NewInjector(cfg, database.DB(), dependency.Options{
		Redis:           l.redis,
		Metrics:         m,
		DBHealthChecker: database.HealthCheck,
	})
	if err != nil {
		l.Close()
		return nil, err
	}

	return l, nil
}

// Close releases the redis client and the database.
func (l *ledger) Close() {
	if l.redis != nil {
		_ = l.redis.Close()
	}
	if err := l.database.Close(); err != nil {
		slog.Error("Failed to close database connection", "error", err)
	}
}
