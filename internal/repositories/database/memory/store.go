// Package memory is an in-process implementation of the repository ports,
// used by the CLI, by demo deployments and by tests that need real
// repository semantics without PostgreSQL.
package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/bokforing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bokforing_app/internal/core/ports/repositories"
)

// Store holds all data behind a single mutex. Units of work hold txMu
// exclusively and roll back by restoring a snapshot. Repositories outside a
// unit of work take txMu too, so they neither see uncommitted writes nor
// write anything a rollback could erase.
type Store struct {
	mu           sync.RWMutex
	txMu         sync.RWMutex
	accounts     map[string]domain.Account
	transactions map[string]domain.LedgerTransaction
	documents    map[domain.DocumentKind]map[string]domain.SourceDocument
}

// NewStore creates a store seeded with the given chart of accounts.
func NewStore(chart []domain.Account) *Store {
	s := &Store{
		accounts:     make(map[string]domain.Account, len(chart)),
		transactions: make(map[string]domain.LedgerTransaction),
		documents: map[domain.DocumentKind]map[string]domain.SourceDocument{
			domain.KindInvoice:         {},
			domain.KindSupplierInvoice: {},
		},
	}
	for _, a := range chart {
		s.accounts[a.Code] = a
	}
	return s
}

// PutDocument inserts or replaces a document. Documents are owned by the
// excluded CRUD layer, so this is how they enter the store.
func (s *Store) PutDocument(doc domain.SourceDocument) {
	defer s.lock(false)()
	if s.documents[doc.Kind] == nil {
		s.documents[doc.Kind] = map[string]domain.SourceDocument{}
	}
	s.documents[doc.Kind][doc.ID] = copyDocument(doc)
}

// TransactionCount returns the number of stored ledger transactions.
func (s *Store) TransactionCount() int {
	defer s.rlock(false)()
	return len(s.transactions)
}

// RepositoryProvider returns repositories with a unit of work.
func (s *Store) RepositoryProvider() portsrepo.RepositoryProvider {
	p := s.providerWithoutUnitOfWork(false)
	p.UnitOfWork = &unitOfWork{store: s}
	return p
}

// RepositoryProviderWithoutUnitOfWork returns repositories whose callers must
// fall back to compensation.
func (s *Store) RepositoryProviderWithoutUnitOfWork() portsrepo.RepositoryProvider {
	return s.providerWithoutUnitOfWork(false)
}

// providerWithoutUnitOfWork builds the repositories. inTx marks repositories
// bound to a running unit of work, which already holds txMu.
func (s *Store) providerWithoutUnitOfWork(inTx bool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:  &accountRepository{store: s},
		LedgerRepo:   &ledgerRepository{store: s, inTx: inTx},
		DocumentRepo: &documentRepository{store: s, inTx: inTx},
	}
}

// lock takes the write locks and returns the matching unlock.
func (s *Store) lock(inTx bool) func() {
	if inTx {
		s.mu.Lock()
		return s.mu.Unlock
	}
	s.txMu.RLock()
	s.mu.Lock()
	return func() {
		s.mu.Unlock()
		s.txMu.RUnlock()
	}
}

// rlock takes the read locks and returns the matching unlock.
func (s *Store) rlock(inTx bool) func() {
	if inTx {
		s.mu.RLock()
		return s.mu.RUnlock
	}
	s.txMu.RLock()
	s.mu.RLock()
	return func() {
		s.mu.RUnlock()
		s.txMu.RUnlock()
	}
}

type snapshot struct {
	transactions map[string]domain.LedgerTransaction
	documents    map[domain.DocumentKind]map[string]domain.SourceDocument
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := snapshot{
		transactions: make(map[string]domain.LedgerTransaction, len(s.transactions)),
		documents:    make(map[domain.DocumentKind]map[string]domain.SourceDocument, len(s.documents)),
	}
	for id, t := range s.transactions {
		snap.transactions[id] = copyTransaction(t)
	}
	for kind, docs := range s.documents {
		m := make(map[string]domain.SourceDocument, len(docs))
		for id, d := range docs {
			m[id] = copyDocument(d)
		}
		snap.documents[kind] = m
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = snap.transactions
	s.documents = snap.documents
}

// unitOfWork runs one unit of work at a time and blocks every other
// repository call on the store while it runs.
type unitOfWork struct {
	store *Store
}

var _ portsrepo.UnitOfWork = (*unitOfWork)(nil)

// RunInTx implements portsrepo.UnitOfWork
func (u *unitOfWork) RunInTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.RepositoryProvider) error) error {
	u.store.txMu.Lock()
	defer u.store.txMu.Unlock()

	snap := u.store.snapshot()
	repos := u.store.providerWithoutUnitOfWork(true)
	repos.UnitOfWork = nestedUnitOfWork{repos: repos}
	if err := fn(ctx, repos); err != nil {
		u.store.restore(snap)
		return err
	}
	return nil
}

// nestedUnitOfWork joins the enclosing unit of work.
type nestedUnitOfWork struct {
	repos portsrepo.RepositoryProvider
}

func (n nestedUnitOfWork) RunInTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.RepositoryProvider) error) error {
	return fn(ctx, n.repos)
}

func copyTransaction(t domain.LedgerTransaction) domain.LedgerTransaction {
	t.Lines = append([]domain.PostingLine(nil), t.Lines...)
	return t
}

func copyDocument(d domain.SourceDocument) domain.SourceDocument {
	if d.PaymentDate != nil {
		v := *d.PaymentDate
		d.PaymentDate = &v
	}
	if d.BookingTransactionID != nil {
		v := *d.BookingTransactionID
		d.BookingTransactionID = &v
	}
	if d.PaymentTransactionID != nil {
		v := *d.PaymentTransactionID
		d.PaymentTransactionID = &v
	}
	if d.FirstPaymentTransactionID != nil {
		v := *d.FirstPaymentTransactionID
		d.FirstPaymentTransactionID = &v
	}
	return d
}
