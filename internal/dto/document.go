package dto

import (
	"time"

	"github.com/SscSPs/bokforing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostToDocumentRequest records a ledger transaction against an invoice or
// supplier invoice and updates the document status from its accounts.
type PostToDocumentRequest struct {
	Date        time.Time            `json:"date" binding:"required"`
	Description string               `json:"description" binding:"required,max=255"`
	Comment     string               `json:"comment" binding:"max=1000"`
	Lines       []PostingLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// RegisterPaymentRequest registers a settlement of a document through the bank.
type RegisterPaymentRequest struct {
	Date        time.Time       `json:"date" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	BankAccount string          `json:"bankAccount" binding:"omitempty,accountcode"` // Defaults to the company bank account
	Description string          `json:"description" binding:"max=255"`
}

// DocumentResponse defines the status data returned for a document.
type DocumentResponse struct {
	ID                        string                `json:"id"`
	Kind                      domain.DocumentKind   `json:"kind"`
	Number                    string                `json:"number"`
	StatusBookkept            domain.BookkeptStatus `json:"statusBookkept"`
	StatusPayment             domain.PaymentStatus  `json:"statusPayment"`
	PaymentDate               *time.Time            `json:"paymentDate,omitempty"`
	BookingTransactionID      *string               `json:"bookingTransactionID,omitempty"`
	PaymentTransactionID      *string               `json:"paymentTransactionID,omitempty"`
	FirstPaymentTransactionID *string               `json:"firstPaymentTransactionID,omitempty"`
}

// DocumentPostingResponse is returned after a successful posting.
type DocumentPostingResponse struct {
	TransactionID string           `json:"transactionID"`
	Transition    string           `json:"transition"`
	Document      DocumentResponse `json:"document"`
}

// ToDocumentResponse converts a domain.SourceDocument to its DTO.
func ToDocumentResponse(d *domain.SourceDocument) DocumentResponse {
	return DocumentResponse{
		ID:                        d.ID,
		Kind:                      d.Kind,
		Number:                    d.Number,
		StatusBookkept:            d.StatusBookkept,
		StatusPayment:             d.StatusPayment,
		PaymentDate:               d.PaymentDate,
		BookingTransactionID:      d.BookingTransactionID,
		PaymentTransactionID:      d.PaymentTransactionID,
		FirstPaymentTransactionID: d.FirstPaymentTransactionID,
	}
}
