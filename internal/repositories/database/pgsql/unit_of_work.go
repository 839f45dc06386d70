package pgsql

import (
	"context"

	portsrepo "github.com/SscSPs/bokforing_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

// pgxUnitOfWork runs a function against repositories sharing one pgx
// transaction. Nested units of work become savepoints.
type pgxUnitOfWork struct {
	db DBTX
}

var _ portsrepo.UnitOfWork = (*pgxUnitOfWork)(nil)

// RunInTx implements portsrepo.UnitOfWork
func (u *pgxUnitOfWork) RunInTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.RepositoryProvider) error) error {
	return pgx.BeginFunc(ctx, u.db, func(tx pgx.Tx) error {
		return fn(ctx, newRepositoryProvider(tx))
	})
}
