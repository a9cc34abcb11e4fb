package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/isokohq/isoko-api/internal/application/usecase"
	"github.com/isokohq/isoko-api/internal/domain/repository"
)

// Ensure TxRunner implements the hours use case port.
var _ usecase.HoursTxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside a PostgreSQL transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner over the primary pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunHours starts a transaction, runs fn with an hours repo bound to the tx,
// and commits or rolls back. Used by the weekly bulk replace so a partial
// failure leaves the previous week's rows intact.
func (r *TxRunner) RunHours(ctx context.Context, fn func(hours repository.HoursRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewHoursRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
