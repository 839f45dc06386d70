package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/bokforing_app/internal/apperrors"
	"github.com/SscSPs/bokforing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bokforing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bokforing_app/internal/core/ports/services"
	"github.com/SscSPs/bokforing_app/internal/dto"
	"github.com/SscSPs/bokforing_app/internal/utils/accounting"
)

// DefaultPageSize is used when a list request does not carry a limit.
const DefaultPageSize = 20

// ledgerService records and removes balanced ledger transactions.
type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
	accountSvc portssvc.AccountResolverSvc
	now        func() time.Time
}

// LedgerServiceOption is a function that configures a ledgerService
type LedgerServiceOption func(*ledgerService)

// WithLedgerClock overrides the clock used for audit timestamps.
func WithLedgerClock(now func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, accountSvc portssvc.AccountResolverSvc, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		ledgerRepo: ledgerRepo,
		accountSvc: accountSvc,
		now:        time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// CreateTransaction implements portssvc.LedgerWriterSvc
func (s *ledgerService) CreateTransaction(ctx context.Context, req domain.NewLedgerTransaction) (*domain.LedgerTransaction, error) {
	if strings.TrimSpace(req.OwnerID) == "" {
		return nil, fmt.Errorf("%w: owner is required", apperrors.ErrValidation)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: transaction date is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: transaction description is required", apperrors.ErrValidation)
	}

	lines, err := accounting.ValidateLines(req.Lines)
	if err != nil {
		return nil, err
	}

	codes := make([]string, len(lines))
	for i, l := range lines {
		codes[i] = l.AccountCode
	}
	resolved, err := s.accountSvc.ResolveCodes(ctx, codes)
	if err != nil {
		return nil, err
	}
	for i := range lines {
		lines[i].AccountCode = resolved[i]
	}

	txn := domain.LedgerTransaction{
		ID:          uuid.NewString(),
		OwnerID:     req.OwnerID,
		Date:        req.Date,
		Description: req.Description,
		Comment:     req.Comment,
		Lines:       lines,
		AuditFields: domain.AuditFields{
			CreatedAt: s.now().UTC(),
			CreatedBy: req.OwnerID,
		},
	}

	if err := s.ledgerRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save ledger transaction", slog.String("owner_id", req.OwnerID))
		return nil, fmt.Errorf("failed to save ledger transaction: %w", err)
	}

	s.LogInfo(ctx, "Ledger transaction created",
		slog.String("transaction_id", txn.ID),
		slog.String("owner_id", txn.OwnerID),
		slog.Int("lines", len(txn.Lines)))
	return &txn, nil
}

// DeleteTransaction implements portssvc.LedgerWriterSvc
func (s *ledgerService) DeleteTransaction(ctx context.Context, transactionID, ownerID string) (bool, error) {
	deleted, err := s.ledgerRepo.DeleteTransaction(ctx, transactionID, ownerID)
	if err != nil {
		var notOwned *apperrors.NotOwnedError
		if errors.As(err, &notOwned) {
			s.LogWarn(ctx, "Refused to delete transaction of another owner",
				slog.String("transaction_id", transactionID), slog.String("owner_id", ownerID))
			return false, err
		}
		s.LogError(ctx, err, "Failed to delete ledger transaction", slog.String("transaction_id", transactionID))
		return false, fmt.Errorf("failed to delete ledger transaction: %w", err)
	}
	if !deleted {
		s.LogDebug(ctx, "Ledger transaction already absent", slog.String("transaction_id", transactionID))
		return false, nil
	}
	s.LogInfo(ctx, "Ledger transaction deleted", slog.String("transaction_id", transactionID))
	return true, nil
}

// GetTransaction implements portssvc.LedgerReaderSvc
func (s *ledgerService) GetTransaction(ctx context.Context, transactionID, ownerID string) (*domain.LedgerTransaction, error) {
	txn, err := s.ledgerRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "ledger transaction", ID: transactionID}
		}
		s.LogError(ctx, err, "Failed to find ledger transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to find ledger transaction: %w", err)
	}
	if txn.OwnerID != ownerID {
		return nil, &apperrors.NotOwnedError{Resource: "ledger transaction", ID: transactionID}
	}
	return txn, nil
}

// ListTransactions implements portssvc.LedgerReaderSvc
func (s *ledgerService) ListTransactions(ctx context.Context, ownerID string, params dto.ListLedgerTransactionsParams) (*dto.ListLedgerTransactionsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}

	txns, nextToken, err := s.ledgerRepo.ListTransactionsByOwner(ctx, ownerID, limit, params.NextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to list ledger transactions", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list ledger transactions: %w", err)
	}

	s.LogDebug(ctx, "Ledger transactions listed", slog.Int("count", len(txns)))
	return &dto.ListLedgerTransactionsResponse{
		Transactions: dto.ToLedgerTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}
