package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/bokforing_app/internal/apperrors"
	"github.com/SscSPs/bokforing_app/internal/core/accounts"
	"github.com/SscSPs/bokforing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bokforing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bokforing_app/internal/core/ports/services"
	"github.com/SscSPs/bokforing_app/internal/dto"
)

// documentPostingService books and settles documents. With a unit of work
// every compound operation is one database transaction; without one a failed
// document update is undone by deleting the created ledger transaction.
type documentPostingService struct {
	BaseService
	repos       portsrepo.RepositoryProvider
	ledgerSvc   portssvc.LedgerSvcFacade
	bankAccount string
	now         func() time.Time
}

// PostingServiceOption is a function that configures a documentPostingService
type PostingServiceOption func(*documentPostingService)

// WithPostingClock overrides the clock that dates cash-method payments.
func WithPostingClock(now func() time.Time) PostingServiceOption {
	return func(s *documentPostingService) {
		s.now = now
	}
}

// WithBankAccount sets the account used by RegisterPayment when the request
// does not name one.
func WithBankAccount(code string) PostingServiceOption {
	return func(s *documentPostingService) {
		s.bankAccount = code
	}
}

// NewDocumentPostingService creates a new posting service. ledgerSvc is used
// on the compensation path only; inside a unit of work a ledger service bound
// to the transaction is created per call.
func NewDocumentPostingService(repos portsrepo.RepositoryProvider, ledgerSvc portssvc.LedgerSvcFacade, options ...PostingServiceOption) portssvc.DocumentPostingSvcFacade {
	svc := &documentPostingService{
		repos:       repos,
		ledgerSvc:   ledgerSvc,
		bankAccount: accounts.Bank,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.DocumentPostingSvcFacade = (*documentPostingService)(nil)

// PostToDocument implements portssvc.DocumentPostingSvc
func (s *documentPostingService) PostToDocument(ctx context.Context, ownerID string, kind domain.DocumentKind, documentID string, req dto.PostToDocumentRequest) (*portssvc.PostingResult, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	newTxn := domain.NewLedgerTransaction{
		OwnerID:     ownerID,
		Date:        req.Date,
		Description: req.Description,
		Comment:     req.Comment,
		Lines:       dto.ToDomainLines(req.Lines),
	}

	var (
		result *portssvc.PostingResult
		err    error
	)
	if s.repos.UnitOfWork != nil {
		result, err = s.postInUnitOfWork(ctx, kind, documentID, newTxn)
	} else {
		result, err = s.postWithCompensation(ctx, kind, documentID, newTxn)
	}
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Transaction posted to document",
		slog.String("document_kind", string(kind)),
		slog.String("document_id", documentID),
		slog.String("transaction_id", result.Transaction.ID),
		slog.String("transition", string(result.Transition.Kind)))
	return result, nil
}

func (s *documentPostingService) postInUnitOfWork(ctx context.Context, kind domain.DocumentKind, documentID string, newTxn domain.NewLedgerTransaction) (*portssvc.PostingResult, error) {
	var result *portssvc.PostingResult
	err := s.repos.UnitOfWork.RunInTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		doc, err := s.loadOwned(ctx, repos.DocumentRepo, true, kind, documentID, newTxn.OwnerID)
		if err != nil {
			return err
		}
		transition, err := s.checkTransition(doc, newTxn.Lines)
		if err != nil {
			return err
		}

		ledger := NewLedgerService(repos.LedgerRepo, NewAccountService(repos.AccountRepo), WithLedgerClock(s.now))
		txn, err := ledger.CreateTransaction(ctx, newTxn)
		if err != nil {
			return err
		}

		update := transition.Update(*doc, txn.ID, txn.Date, s.today())
		if err := repos.DocumentRepo.UpdateDocumentStatus(ctx, kind, documentID, update); err != nil {
			return fmt.Errorf("failed to update %s status: %w", kind, err)
		}
		updated := update.Apply(*doc)
		result = &portssvc.PostingResult{Transaction: txn, Transition: transition, Document: &updated}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *documentPostingService) postWithCompensation(ctx context.Context, kind domain.DocumentKind, documentID string, newTxn domain.NewLedgerTransaction) (*portssvc.PostingResult, error) {
	doc, err := s.loadOwned(ctx, s.repos.DocumentRepo, false, kind, documentID, newTxn.OwnerID)
	if err != nil {
		return nil, err
	}
	transition, err := s.checkTransition(doc, newTxn.Lines)
	if err != nil {
		return nil, err
	}

	txn, err := s.ledgerSvc.CreateTransaction(ctx, newTxn)
	if err != nil {
		return nil, err
	}

	update := transition.Update(*doc, txn.ID, txn.Date, s.today())
	if err := s.repos.DocumentRepo.UpdateDocumentStatus(ctx, kind, documentID, update); err != nil {
		return nil, s.compensate(ctx, txn.ID, newTxn.OwnerID, fmt.Errorf("failed to update %s status: %w", kind, err))
	}
	updated := update.Apply(*doc)
	return &portssvc.PostingResult{Transaction: txn, Transition: transition, Document: &updated}, nil
}

// compensate deletes a transaction whose follow-up step failed. The returned
// error always wraps cause.
func (s *documentPostingService) compensate(ctx context.Context, transactionID, ownerID string, cause error) error {
	s.LogWarn(ctx, "Rolling back ledger transaction after failed document update",
		slog.String("transaction_id", transactionID), slog.String("error", cause.Error()))

	if _, err := s.ledgerSvc.DeleteTransaction(ctx, transactionID, ownerID); err != nil {
		s.LogError(ctx, err, "Compensating delete failed, transaction needs manual reconciliation",
			slog.String("transaction_id", transactionID))
		return errors.Join(cause, fmt.Errorf("compensating delete of transaction %s failed: %w", transactionID, err))
	}
	return cause
}

// RegisterPayment implements portssvc.DocumentPostingSvc
func (s *documentPostingService) RegisterPayment(ctx context.Context, ownerID string, kind domain.DocumentKind, documentID string, req dto.RegisterPaymentRequest) (*portssvc.PostingResult, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	bank := s.bankAccount
	if req.BankAccount != "" {
		bank = req.BankAccount
	}
	bank, err := accounts.Normalize(bank)
	if err != nil {
		return nil, err
	}
	if !domain.IsBankOrCash(bank) {
		return nil, fmt.Errorf("%w: account %s is not a bank or cash account", apperrors.ErrValidation, bank)
	}

	amount := req.Amount
	var lines []dto.PostingLineRequest
	description := req.Description
	switch kind {
	case domain.KindInvoice:
		lines = []dto.PostingLineRequest{
			{AccountCode: bank, Debit: amount, Kredit: decimal.Zero},
			{AccountCode: accounts.AccountsReceivable, Debit: decimal.Zero, Kredit: amount},
		}
		if description == "" {
			description = "Inbetalning kundfaktura"
		}
	case domain.KindSupplierInvoice:
		lines = []dto.PostingLineRequest{
			{AccountCode: accounts.AccountsPayable, Debit: amount, Kredit: decimal.Zero},
			{AccountCode: bank, Debit: decimal.Zero, Kredit: amount},
		}
		if description == "" {
			description = "Utbetalning leverantörsfaktura"
		}
	}

	return s.PostToDocument(ctx, ownerID, kind, documentID, dto.PostToDocumentRequest{
		Date:        req.Date,
		Description: description,
		Lines:       lines,
	})
}

// DeleteSupplierInvoice implements portssvc.SupplierInvoiceDeleterSvc
func (s *documentPostingService) DeleteSupplierInvoice(ctx context.Context, ownerID, documentID string) error {
	kind := domain.KindSupplierInvoice
	var removed []string

	deleteAll := func(ctx context.Context, docRepo portsrepo.DocumentRepositoryFacade, ledger portssvc.LedgerWriterSvc, lock bool) error {
		doc, err := s.loadOwned(ctx, docRepo, lock, kind, documentID, ownerID)
		if err != nil {
			return err
		}
		for _, txnID := range doc.LinkedTransactionIDs() {
			deleted, err := ledger.DeleteTransaction(ctx, txnID, ownerID)
			if err != nil {
				return err
			}
			if deleted {
				removed = append(removed, txnID)
			}
		}
		if err := docRepo.DeleteDocument(ctx, kind, documentID); err != nil {
			return fmt.Errorf("failed to delete supplier invoice: %w", err)
		}
		return nil
	}

	var err error
	if s.repos.UnitOfWork != nil {
		err = s.repos.UnitOfWork.RunInTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
			removed = removed[:0]
			ledger := NewLedgerService(repos.LedgerRepo, NewAccountService(repos.AccountRepo), WithLedgerClock(s.now))
			return deleteAll(ctx, repos.DocumentRepo, ledger, true)
		})
	} else {
		err = deleteAll(ctx, s.repos.DocumentRepo, s.ledgerSvc, false)
	}
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete supplier invoice", slog.String("document_id", documentID))
		}
		return err
	}

	s.LogInfo(ctx, "Supplier invoice deleted",
		slog.String("document_id", documentID),
		slog.Any("transaction_ids", removed))
	return nil
}

// loadOwned fetches the document, optionally locking it, and hides documents
// of other owners behind a not found error.
func (s *documentPostingService) loadOwned(ctx context.Context, repo portsrepo.DocumentReader, lock bool, kind domain.DocumentKind, documentID, ownerID string) (*domain.SourceDocument, error) {
	var (
		doc *domain.SourceDocument
		err error
	)
	if lock {
		doc, err = repo.FindDocumentForUpdate(ctx, kind, documentID)
	} else {
		doc, err = repo.FindDocument(ctx, kind, documentID)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, &apperrors.NotFoundError{Resource: kind.String(), ID: documentID}
		}
		return nil, fmt.Errorf("failed to load %s: %w", kind, err)
	}
	if doc.OwnerID != ownerID {
		return nil, &apperrors.NotOwnedError{Resource: kind.String(), ID: documentID}
	}
	return doc, nil
}

// checkTransition classifies the requested lines against the document and
// enforces the status preconditions before anything is written.
func (s *documentPostingService) checkTransition(doc *domain.SourceDocument, lines []domain.PostingLine) (domain.DocumentTransition, error) {
	codes := make([]string, 0, len(lines))
	for _, l := range lines {
		code, err := accounts.Normalize(l.AccountCode)
		if err != nil {
			return domain.DocumentTransition{}, err
		}
		codes = append(codes, code)
	}

	transition := domain.ClassifyTransition(doc.Kind, uniqueStrings(codes), doc.HasRotRutItems, doc.StatusPayment)
	if reason := transition.CheckPrecondition(*doc); reason != "" {
		operation := "book"
		if transition.Kind == domain.TransitionPayment {
			operation = "register payment on"
		}
		return domain.DocumentTransition{}, &apperrors.InvalidStateTransitionError{
			Document:  fmt.Sprintf("%s %s", doc.Kind, doc.ID),
			Operation: operation,
			Reason:    reason,
		}
	}
	return transition, nil
}

// today is the posting day in UTC without a time component.
func (s *documentPostingService) today() time.Time {
	y, m, d := s.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func checkKind(kind domain.DocumentKind) error {
	switch kind {
	case domain.KindInvoice, domain.KindSupplierInvoice:
		return nil
	default:
		return fmt.Errorf("%w: unknown document kind %q", apperrors.ErrValidation, kind)
	}
}
