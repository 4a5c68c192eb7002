package db

import (
	"context"
	"log/slog"
	"time"

	"experience-booking/internal/pkg/config"
	"experience-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

const connectTimeout = 10 * time.Second

func Connect(cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to parse database config")
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to open database")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, errs.Wrap(err, "failed to ping database")
	}

	cleanup := func() {
		pool.Close()
		slog.Info("database pool closed")
	}

	return pool, cleanup, nil
}
