package dto

import (
	"time"

	"github.com/SscSPs/bokforing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostingLineRequest is one requested debit or kredit line.
type PostingLineRequest struct {
	AccountCode string          `json:"accountCode" binding:"required,accountcode"`
	Debit       decimal.Decimal `json:"debit"`
	Kredit      decimal.Decimal `json:"kredit"`
	Description string          `json:"description" binding:"max=255"`
}

// CreateLedgerTransactionRequest defines the data needed to record a verifikation.
type CreateLedgerTransactionRequest struct {
	Date        time.Time            `json:"date" binding:"required"`
	Description string               `json:"description" binding:"required,max=255"`
	Comment     string               `json:"comment" binding:"max=1000"`
	Lines       []PostingLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// ToDomainLines converts requested lines to domain posting lines.
func ToDomainLines(lines []PostingLineRequest) []domain.PostingLine {
	out := make([]domain.PostingLine, len(lines))
	for i, l := range lines {
		out[i] = domain.PostingLine{
			AccountCode: l.AccountCode,
			Debit:       l.Debit,
			Kredit:      l.Kredit,
			Description: l.Description,
		}
	}
	return out
}

// ToNewLedgerTransaction converts the request for the given owner.
func (r CreateLedgerTransactionRequest) ToNewLedgerTransaction(ownerID string) domain.NewLedgerTransaction {
	return domain.NewLedgerTransaction{
		OwnerID:     ownerID,
		Date:        r.Date,
		Description: r.Description,
		Comment:     r.Comment,
		Lines:       ToDomainLines(r.Lines),
	}
}

// PostingLineResponse defines the data returned for a posting line.
type PostingLineResponse struct {
	AccountCode string          `json:"accountCode" yaml:"accountCode"`
	Debit       decimal.Decimal `json:"debit" yaml:"debit"`
	Kredit      decimal.Decimal `json:"kredit" yaml:"kredit"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
}

// LedgerTransactionResponse defines the data returned for a ledger transaction.
type LedgerTransactionResponse struct {
	ID          string                `json:"id"`
	Date        time.Time             `json:"date"`
	Description string                `json:"description"`
	Comment     string                `json:"comment"`
	Lines       []PostingLineResponse `json:"lines"`
	CreatedAt   time.Time             `json:"createdAt"`
	CreatedBy   string                `json:"createdBy"`
}

// ListLedgerTransactionsParams defines query parameters for listing transactions.
type ListLedgerTransactionsParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListLedgerTransactionsResponse wraps a page of transactions.
type ListLedgerTransactionsResponse struct {
	Transactions []LedgerTransactionResponse `json:"transactions"`
	NextToken    *string                     `json:"nextToken,omitempty"`
}

// CreateLedgerTransactionResponse carries the id of a new transaction.
type CreateLedgerTransactionResponse struct {
	ID string `json:"id"`
}

// DeleteLedgerTransactionResponse tells whether anything was deleted.
type DeleteLedgerTransactionResponse struct {
	Deleted bool `json:"deleted"`
}

// ToPostingLineResponses converts domain lines to PostingLineResponse DTOs.
func ToPostingLineResponses(lines []domain.PostingLine) []PostingLineResponse {
	out := make([]PostingLineResponse, len(lines))
	for i, l := range lines {
		out[i] = PostingLineResponse{
			AccountCode: l.AccountCode,
			Debit:       l.Debit,
			Kredit:      l.Kredit,
			Description: l.Description,
		}
	}
	return out
}

// ToLedgerTransactionResponse converts a domain.LedgerTransaction to its DTO.
func ToLedgerTransactionResponse(t *domain.LedgerTransaction) LedgerTransactionResponse {
	return LedgerTransactionResponse{
		ID:          t.ID,
		Date:        t.Date,
		Description: t.Description,
		Comment:     t.Comment,
		Lines:       ToPostingLineResponses(t.Lines),
		CreatedAt:   t.CreatedAt,
		CreatedBy:   t.CreatedBy,
	}
}

// ToLedgerTransactionResponses converts a slice of transactions.
func ToLedgerTransactionResponses(txns []domain.LedgerTransaction) []LedgerTransactionResponse {
	out := make([]LedgerTransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToLedgerTransactionResponse(&txns[i])
	}
	return out
}
