package services

import (
	"context"

	"github.com/SscSPs/bokforing_app/internal/core/domain"
	"github.com/SscSPs/bokforing_app/internal/dto"
)

// LedgerReaderSvc defines read operations for ledger transactions
type LedgerReaderSvc interface {
	// GetTransaction retrieves a transaction owned by ownerID. Transactions of
	// other owners are reported as not found.
	GetTransaction(ctx context.Context, transactionID, ownerID string) (*domain.LedgerTransaction, error)

	// ListTransactions retrieves a page of the owner's transactions.
	ListTransactions(ctx context.Context, ownerID string, params dto.ListLedgerTransactionsParams) (*dto.ListLedgerTransactionsResponse, error)
}

// LedgerWriterSvc defines write operations for ledger transactions
type LedgerWriterSvc interface {
	// CreateTransaction validates and atomically persists a balanced transaction.
	CreateTransaction(ctx context.Context, req domain.NewLedgerTransaction) (*domain.LedgerTransaction, error)

	// DeleteTransaction removes a transaction as a compensating action. Deleting
	// a missing transaction is a no-op reported as false.
	DeleteTransaction(ctx context.Context, transactionID, ownerID string) (bool, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
