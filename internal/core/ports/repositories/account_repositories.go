package repositories

import (
	"context"

	"github.com/SscSPs/bokforing_app/internal/core/domain"
)

// AccountReader defines read operations for the chart of accounts. The core
// never writes accounts; they are seeded by migration.
type AccountReader interface {
	// FindAccountsByCodes returns the accounts found among codes, keyed by code.
	// Missing codes are simply absent from the map.
	FindAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.Account, error)

	// ListAccounts returns the whole chart ordered by code.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
}
