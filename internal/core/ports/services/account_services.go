package services

import (
	"context"

	"github.com/SscSPs/bokforing_app/internal/core/domain"
)

// AccountResolverSvc validates account codes against the chart of accounts
type AccountResolverSvc interface {
	// ResolveCodes normalizes every code and checks that it exists in the chart.
	// The result has the same order as codes.
	ResolveCodes(ctx context.Context, codes []string) ([]string, error)

	// ListAccounts returns the chart of accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountResolverSvc
}
