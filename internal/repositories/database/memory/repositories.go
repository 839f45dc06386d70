package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/bokforing_app/internal/apperrors"
	"github.com/SscSPs/bokforing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bokforing_app/internal/core/ports/repositories"
	"github.com/SscSPs/bokforing_app/internal/utils/pagination"
)

type accountRepository struct {
	store *Store
}

var _ portsrepo.AccountRepositoryFacade = (*accountRepository)(nil)

func (r *accountRepository) FindAccountsByCodes(_ context.Context, codes []string) (map[string]domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make(map[string]domain.Account, len(codes))
	for _, c := range codes {
		if a, ok := r.store.accounts[c]; ok {
			out[c] = a
		}
	}
	return out, nil
}

func (r *accountRepository) ListAccounts(_ context.Context) ([]domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]domain.Account, 0, len(r.store.accounts))
	for _, a := range r.store.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

type ledgerRepository struct {
	store *Store
	inTx  bool
}

var _ portsrepo.LedgerRepositoryFacade = (*ledgerRepository)(nil)

func (r *ledgerRepository) SaveTransaction(_ context.Context, txn domain.LedgerTransaction) error {
	defer r.store.lock(r.inTx)()
	if _, exists := r.store.transactions[txn.ID]; exists {
		return fmt.Errorf("%w: ledger transaction %s", apperrors.ErrDuplicate, txn.ID)
	}
	for _, l := range txn.Lines {
		if _, ok := r.store.accounts[l.AccountCode]; !ok {
			return apperrors.NewAppError(500, "posting line references unknown account "+l.AccountCode, nil)
		}
	}
	r.store.transactions[txn.ID] = copyTransaction(txn)
	return nil
}

func (r *ledgerRepository) FindTransactionByID(_ context.Context, transactionID string) (*domain.LedgerTransaction, error) {
	defer r.store.rlock(r.inTx)()
	t, ok := r.store.transactions[transactionID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	t = copyTransaction(t)
	return &t, nil
}

func (r *ledgerRepository) ListTransactionsByOwner(_ context.Context, ownerID string, limit int, nextToken *string) ([]domain.LedgerTransaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	var cursor *pagination.Cursor
	if nextToken != nil && *nextToken != "" {
		c, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		cursor = &c
	}

	unlock := r.store.rlock(r.inTx)
	owned := make([]domain.LedgerTransaction, 0)
	for _, t := range r.store.transactions {
		if t.OwnerID != ownerID {
			continue
		}
		if cursor != nil && !cursor.Before(t.Date, t.CreatedAt, t.ID) {
			continue
		}
		owned = append(owned, copyTransaction(t))
	}
	unlock()

	sort.Slice(owned, func(i, j int) bool {
		a, b := owned[i], owned[j]
		// Newest first: a precedes b when b would be on a later page than a
		return pagination.Cursor{Date: a.Date, CreatedAt: a.CreatedAt, ID: a.ID}.Before(b.Date, b.CreatedAt, b.ID)
	})

	var next *string
	if len(owned) > limit {
		owned = owned[:limit]
		last := owned[limit-1]
		token := pagination.EncodeCursor(pagination.Cursor{Date: last.Date, CreatedAt: last.CreatedAt, ID: last.ID})
		next = &token
	}
	return owned, next, nil
}

func (r *ledgerRepository) DeleteTransaction(_ context.Context, transactionID, ownerID string) (bool, error) {
	defer r.store.lock(r.inTx)()
	t, ok := r.store.transactions[transactionID]
	if !ok {
		return false, nil
	}
	if t.OwnerID != ownerID {
		return false, &apperrors.NotOwnedError{Resource: "ledger transaction", ID: transactionID}
	}
	delete(r.store.transactions, transactionID)
	return true, nil
}

type documentRepository struct {
	store *Store
	inTx  bool
}

var _ portsrepo.DocumentRepositoryFacade = (*documentRepository)(nil)

func (r *documentRepository) FindDocument(_ context.Context, kind domain.DocumentKind, documentID string) (*domain.SourceDocument, error) {
	defer r.store.rlock(r.inTx)()
	d, ok := r.store.documents[kind][documentID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	d = copyDocument(d)
	return &d, nil
}

// FindDocumentForUpdate relies on the unit of work holding txMu for locking.
func (r *documentRepository) FindDocumentForUpdate(ctx context.Context, kind domain.DocumentKind, documentID string) (*domain.SourceDocument, error) {
	return r.FindDocument(ctx, kind, documentID)
}

func (r *documentRepository) UpdateDocumentStatus(_ context.Context, kind domain.DocumentKind, documentID string, update domain.DocumentStatusUpdate) error {
	defer r.store.lock(r.inTx)()
	d, ok := r.store.documents[kind][documentID]
	if !ok {
		return apperrors.ErrNotFound
	}
	r.store.documents[kind][documentID] = copyDocument(update.Apply(d))
	return nil
}

func (r *documentRepository) DeleteDocument(_ context.Context, kind domain.DocumentKind, documentID string) error {
	defer r.store.lock(r.inTx)()
	if _, ok := r.store.documents[kind][documentID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.store.documents[kind], documentID)
	return nil
}
