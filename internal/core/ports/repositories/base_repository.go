package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines methods for transaction management
type TransactionManager interface {
	// Begin starts a new database transaction, or a savepoint when the
	// repository already runs inside one.
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// UnitOfWork runs several repository calls atomically.
type UnitOfWork interface {
	// RunInTx calls fn with repositories bound to a single transaction. The
	// transaction is committed when fn returns nil and rolled back otherwise.
	RunInTx(ctx context.Context, fn func(ctx context.Context, repos RepositoryProvider) error) error
}
