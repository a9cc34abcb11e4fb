package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/isokohq/isoko-api/pkg/logger"
)

// Gateway owns the primary pool and an optional read replica. Writes always
// go to the primary; read-only list/search queries go to the replica with a
// fallback to the primary when the replica fails.
type Gateway struct {
	primary *pgxpool.Pool
	replica *pgxpool.Pool // nil when not configured
	log     *logger.Logger
}

// NewGateway wires the pools. replica may be nil.
func NewGateway(primary, replica *pgxpool.Pool, log *logger.Logger) *Gateway {
	return &Gateway{primary: primary, replica: replica, log: log}
}

// Primary returns the write pool.
func (g *Gateway) Primary() *pgxpool.Pool { return g.primary }

// Read returns a Querier for read-only queries: the replica when configured,
// otherwise the primary. Failed replica queries retry once on the primary.
func (g *Gateway) Read() Querier {
	if g.replica == nil {
		return g.primary
	}
	return &readQuerier{g: g}
}

// Close closes both pools.
func (g *Gateway) Close() {
	g.primary.Close()
	if g.replica != nil {
		g.replica.Close()
	}
}

// readQuerier routes to the replica and falls back to the primary.
type readQuerier struct {
	g *Gateway
}

// Exec goes straight to the primary: a read path should not write, but if a
// repository ever does, it must not hit the replica.
func (q *readQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return q.g.primary.Exec(ctx, sql, args...)
}

func (q *readQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	rows, err := q.g.replica.Query(ctx, sql, args...)
	if err != nil {
		q.g.log.Warn().Err(err).Msg("replica query failed, falling back to primary")
		return q.g.primary.Query(ctx, sql, args...)
	}
	return rows, nil
}

func (q *readQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return &fallbackRow{q: q, ctx: ctx, sql: sql, args: args}
}

// fallbackRow defers the replica/primary decision to Scan, since pgx.Row
// surfaces errors only there.
type fallbackRow struct {
	q    *readQuerier
	ctx  context.Context
	sql  string
	args []any
}

func (r *fallbackRow) Scan(dest ...any) error {
	err := r.q.g.replica.QueryRow(r.ctx, r.sql, r.args...).Scan(dest...)
	if err == nil || errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	r.q.g.log.Warn().Err(err).Msg("replica row query failed, falling back to primary")
	return r.q.g.primary.QueryRow(r.ctx, r.sql, r.args...).Scan(dest...)
}
