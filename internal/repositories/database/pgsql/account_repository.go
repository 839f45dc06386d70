package pgsql

import (
	"context"

	"github.com/SscSPs/bokforing_app/internal/apperrors"
	"github.com/SscSPs/bokforing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bokforing_app/internal/core/ports/repositories"
	"github.com/SscSPs/bokforing_app/internal/models"
	"github.com/SscSPs/bokforing_app/internal/utils/mapping"
)

// PgxAccountRepository reads the seeded chart of accounts.
type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(db DBTX) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// FindAccountsByCodes implements portsrepo.AccountReader
func (r *PgxAccountRepository) FindAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.Account, error) {
	out := make(map[string]domain.Account, len(codes))
	if len(codes) == 0 {
		return out, nil
	}

	query := `SELECT code, name, account_class FROM accounts WHERE code = ANY($1);`
	rows, err := r.DB.Query(ctx, query, codes)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts by code", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.Account
		if err := rows.Scan(&m.Code, &m.Name, &m.Class); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		out[m.Code] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}
	return out, nil
}

// ListAccounts implements portsrepo.AccountReader
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT code, name, account_class FROM accounts ORDER BY code;`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list accounts", err)
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(&m.Code, &m.Name, &m.Class); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		accounts = append(accounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}
	return mapping.ToDomainAccountSlice(accounts), nil
}
