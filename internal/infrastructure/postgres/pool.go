package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/isokohq/isoko-api/pkg/config"
)

// NewPool creates the primary PostgreSQL connection pool from the app config.
// Every query is bounded by the configured statement timeout; there is no
// per-request cancellation beyond that.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	return newPool(ctx, cfg.ConnectionString(), cfg.StatementTimeoutMS)
}

// NewReplicaPool creates the optional read-replica pool. Returns (nil, nil)
// when no replica is configured.
func NewReplicaPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	if cfg.ReplicaURL == "" {
		return nil, nil
	}
	return newPool(ctx, cfg.ReplicaURL, cfg.StatementTimeoutMS)
}

func newPool(ctx context.Context, dsn string, statementTimeoutMS int) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	if statementTimeoutMS > 0 {
		poolConfig.ConnConfig.RuntimeParams["statement_timeout"] = strconv.Itoa(statementTimeoutMS)
	}

	// Register the NUMERIC/DECIMAL -> shopspring/decimal codec on every connection.
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}
