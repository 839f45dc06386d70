package repositories

import (
	"context"

	"github.com/SscSPs/bokforing_app/internal/core/domain"
)

// LedgerReader defines read operations for ledger transactions
type LedgerReader interface {
	// FindTransactionByID retrieves a transaction with its lines in insertion order.
	// Returns apperrors.ErrNotFound when no such transaction exists.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.LedgerTransaction, error)

	// ListTransactionsByOwner retrieves a page of an owner's transactions, newest
	// first. It returns the transactions and a token for the next page.
	ListTransactionsByOwner(ctx context.Context, ownerID string, limit int, nextToken *string) ([]domain.LedgerTransaction, *string, error)
}

// LedgerWriter defines write operations for ledger transactions
type LedgerWriter interface {
	// SaveTransaction persists the header and all lines atomically.
	SaveTransaction(ctx context.Context, txn domain.LedgerTransaction) error

	// DeleteTransaction removes the lines and then the header of a transaction
	// owned by ownerID. It reports false when there was nothing to delete and
	// returns *apperrors.NotOwnedError when the transaction has another owner.
	DeleteTransaction(ctx context.Context, transactionID, ownerID string) (bool, error)
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}

// LedgerRepositoryWithTx extends LedgerRepositoryFacade with transaction capabilities
type LedgerRepositoryWithTx interface {
	LedgerRepositoryFacade
	TransactionManager
}
