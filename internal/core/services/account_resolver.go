package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bokforing_app/internal/apperrors"
	"github.com/SscSPs/bokforing_app/internal/core/accounts"
	"github.com/SscSPs/bokforing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bokforing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bokforing_app/internal/core/ports/services"
)

// accountService validates account codes against the persisted chart.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountReader
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountReader) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// ResolveCodes implements portssvc.AccountResolverSvc
func (s *accountService) ResolveCodes(ctx context.Context, codes []string) ([]string, error) {
	resolved := make([]string, len(codes))
	for i, code := range codes {
		normalized, err := accounts.Normalize(code)
		if err != nil {
			return nil, err
		}
		resolved[i] = normalized
	}

	lookup := uniqueStrings(resolved)
	found, err := s.accountRepo.FindAccountsByCodes(ctx, lookup)
	if err != nil {
		s.LogError(ctx, err, "Failed to look up accounts", slog.Int("count", len(lookup)))
		return nil, fmt.Errorf("failed to look up accounts: %w", err)
	}
	for _, code := range lookup {
		if _, ok := found[code]; !ok {
			return nil, fmt.Errorf("%w: account %s is not in the chart of accounts", apperrors.ErrValidation, code)
		}
	}
	return resolved, nil
}

// ListAccounts implements portssvc.AccountResolverSvc
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	list, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return list, nil
}

// uniqueStrings returns the distinct values of in, keeping first-seen order.
func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
