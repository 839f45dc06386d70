package repositories

import (
	"context"

	"github.com/SscSPs/bokforing_app/internal/core/domain"
)

// DocumentReader defines read operations for invoices and supplier invoices
type DocumentReader interface {
	// FindDocument retrieves a document of the given kind.
	// Returns apperrors.ErrNotFound when it does not exist.
	FindDocument(ctx context.Context, kind domain.DocumentKind, documentID string) (*domain.SourceDocument, error)

	// FindDocumentForUpdate is FindDocument with the row locked until the
	// surrounding transaction ends. Outside a transaction it behaves like FindDocument.
	FindDocumentForUpdate(ctx context.Context, kind domain.DocumentKind, documentID string) (*domain.SourceDocument, error)
}

// DocumentWriter defines write operations for documents. Only the posting
// operations call these.
type DocumentWriter interface {
	// UpdateDocumentStatus applies the non-nil fields of update.
	UpdateDocumentStatus(ctx context.Context, kind domain.DocumentKind, documentID string, update domain.DocumentStatusUpdate) error

	// DeleteDocument removes a document and its line items.
	DeleteDocument(ctx context.Context, kind domain.DocumentKind, documentID string) error
}

// DocumentRepositoryFacade combines all document-related repository interfaces
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}
