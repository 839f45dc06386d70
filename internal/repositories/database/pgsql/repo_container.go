package pgsql

import (
	portsrepo "github.com/SscSPs/bokforing_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the PostgreSQL repositories to a pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return newRepositoryProvider(dbPool)
}

func newRepositoryProvider(db DBTX) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:  newPgxAccountRepository(db),
		LedgerRepo:   newPgxLedgerRepository(db),
		DocumentRepo: newPgxDocumentRepository(db),
		UnitOfWork:   &pgxUnitOfWork{db: db},
	}
}
