package services

import (
	"context"

	"github.com/SscSPs/bokforing_app/internal/core/domain"
	"github.com/SscSPs/bokforing_app/internal/dto"
)

// PostingResult is the outcome of a posting against a document.
type PostingResult struct {
	Transaction *domain.LedgerTransaction
	Transition  domain.DocumentTransition
	Document    *domain.SourceDocument
}

// DocumentPostingSvc books and settles invoices and supplier invoices
type DocumentPostingSvc interface {
	// PostToDocument creates a ledger transaction and projects its account
	// pattern onto the document status as one unit.
	PostToDocument(ctx context.Context, ownerID string, kind domain.DocumentKind, documentID string, req dto.PostToDocumentRequest) (*PostingResult, error)

	// RegisterPayment posts the bank settlement lines for a document.
	RegisterPayment(ctx context.Context, ownerID string, kind domain.DocumentKind, documentID string, req dto.RegisterPaymentRequest) (*PostingResult, error)
}

// SupplierInvoiceDeleterSvc removes supplier invoices together with their ledger transactions
type SupplierInvoiceDeleterSvc interface {
	// DeleteSupplierInvoice deletes the supplier invoice and every transaction
	// linked to it.
	DeleteSupplierInvoice(ctx context.Context, ownerID, documentID string) error
}

// DocumentPostingSvcFacade combines all posting-related service interfaces
type DocumentPostingSvcFacade interface {
	DocumentPostingSvc
	SupplierInvoiceDeleterSvc
}
