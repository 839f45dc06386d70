package mapping

import (
	"github.com/SscSPs/bokforing_app/internal/core/domain"
	"github.com/SscSPs/bokforing_app/internal/models"
)

// ToDomainDocument converts a model Document of the given kind to a domain SourceDocument
func ToDomainDocument(kind domain.DocumentKind, m models.Document) domain.SourceDocument {
	return domain.SourceDocument{
		ID:                        m.DocumentID,
		Kind:                      kind,
		OwnerID:                   m.OwnerID,
		Number:                    m.Number,
		StatusBookkept:            domain.BookkeptStatus(m.StatusBookkept),
		StatusPayment:             domain.PaymentStatus(m.StatusPayment),
		PaymentDate:               m.PaymentDate,
		BookingTransactionID:      m.BookingTransactionID,
		PaymentTransactionID:      m.PaymentTransactionID,
		FirstPaymentTransactionID: m.FirstPaymentTransactionID,
		HasRotRutItems:            m.HasRotRutItems,
	}
}
