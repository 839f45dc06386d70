package mapping

import (
	"github.com/SscSPs/bokforing_app/internal/core/domain"
	"github.com/SscSPs/bokforing_app/internal/models"
)

// ToModelLedgerTransaction converts a domain LedgerTransaction to its header row
func ToModelLedgerTransaction(d domain.LedgerTransaction) models.LedgerTransaction {
	return models.LedgerTransaction{
		TransactionID: d.ID,
		OwnerID:       d.OwnerID,
		TxDate:        d.Date,
		Description:   d.Description,
		Comment:       d.Comment,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToModelPostingLines converts the lines of a transaction to rows, numbering
// them in slice order.
func ToModelPostingLines(transactionID string, lines []domain.PostingLine) []models.PostingLine {
	ms := make([]models.PostingLine, len(lines))
	for i, l := range lines {
		ms[i] = models.PostingLine{
			TransactionID: transactionID,
			Position:      i,
			AccountCode:   l.AccountCode,
			Debit:         l.Debit,
			Kredit:        l.Kredit,
			Description:   l.Description,
		}
	}
	return ms
}

// ToDomainPostingLine converts a model PostingLine to a domain PostingLine
func ToDomainPostingLine(m models.PostingLine) domain.PostingLine {
	return domain.PostingLine{
		AccountCode: m.AccountCode,
		Debit:       m.Debit,
		Kredit:      m.Kredit,
		Description: m.Description,
	}
}

// ToDomainLedgerTransaction assembles a domain transaction from its header
// and lines. Lines must already be in position order.
func ToDomainLedgerTransaction(m models.LedgerTransaction, lines []models.PostingLine) domain.LedgerTransaction {
	ds := make([]domain.PostingLine, len(lines))
	for i, l := range lines {
		ds[i] = ToDomainPostingLine(l)
	}
	return domain.LedgerTransaction{
		ID:          m.TransactionID,
		OwnerID:     m.OwnerID,
		Date:        m.TxDate,
		Description: m.Description,
		Comment:     m.Comment,
		Lines:       ds,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
