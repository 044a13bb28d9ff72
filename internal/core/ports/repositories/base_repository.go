package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager hands out store transactions to services that need more than one
// statement to see the same data.
type TransactionManager interface {
	// Begin starts a read-write transaction.
	Begin(ctx context.Context) (pgx.Tx, error)

	// BeginSnapshot starts a read-only transaction whose reads all observe one committed state
	// of the event log.
	BeginSnapshot(ctx context.Context) (pgx.Tx, error)

	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback is a no-op on a transaction that was already committed.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
