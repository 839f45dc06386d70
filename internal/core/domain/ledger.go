package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PostingLine is one debit-or-kredit entry against one account within a
// ledger transaction. Exactly one of Debit and Kredit is positive.
type PostingLine struct {
	AccountCode string          `json:"accountCode"`
	Debit       decimal.Decimal `json:"debit"`
	Kredit      decimal.Decimal `json:"kredit"`
	Description string          `json:"description,omitempty"` // Audit text, set by payroll postings
}

// IsDebit reports whether the line posts to the debit side.
func (l PostingLine) IsDebit() bool {
	return l.Debit.IsPositive()
}

// LedgerTransaction (verifikation) is an atomic, balanced group of posting
// lines recorded on one date for one owner.
type LedgerTransaction struct {
	ID          string        `json:"id"`
	OwnerID     string        `json:"ownerID"`
	Date        time.Time     `json:"date"`
	Description string        `json:"description"`
	Comment     string        `json:"comment"`
	Lines       []PostingLine `json:"lines"`
	AuditFields
}

// AccountCodes returns the distinct account codes touched by the transaction
// in first-seen order.
func (t LedgerTransaction) AccountCodes() []string {
	return DistinctAccountCodes(t.Lines)
}

// NewLedgerTransaction is the semantic request to create a ledger transaction.
type NewLedgerTransaction struct {
	OwnerID     string
	Date        time.Time
	Description string
	Comment     string
	Lines       []PostingLine
}

// DistinctAccountCodes returns the distinct account codes of lines in
// first-seen order.
func DistinctAccountCodes(lines []PostingLine) []string {
	seen := make(map[string]struct{}, len(lines))
	codes := make([]string, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.AccountCode]; ok {
			continue
		}
		seen[l.AccountCode] = struct{}{}
		codes = append(codes, l.AccountCode)
	}
	return codes
}
