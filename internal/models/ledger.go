package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerTransaction is a row of the ledger_transactions table.
type LedgerTransaction struct {
	TransactionID string    `db:"transaction_id"`
	OwnerID       string    `db:"owner_id"`
	TxDate        time.Time `db:"tx_date"`
	Description   string    `db:"description"`
	Comment       string    `db:"comment"`
	AuditFields
}

// PostingLine is a row of the posting_lines table. Position keeps the
// insertion order of the lines within their transaction.
type PostingLine struct {
	TransactionID string          `db:"transaction_id"`
	Position      int             `db:"position"`
	AccountCode   string          `db:"account_code"`
	Debit         decimal.Decimal `db:"debit"`
	Kredit        decimal.Decimal `db:"kredit"`
	Description   string          `db:"description"`
}
