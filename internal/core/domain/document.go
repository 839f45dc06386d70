package domain

import (
	"slices"
	"time"
)

// DocumentKind distinguishes customer invoices from supplier invoices.
type DocumentKind string

const (
	KindInvoice         DocumentKind = "INVOICE"
	KindSupplierInvoice DocumentKind = "SUPPLIER_INVOICE"
)

// String returns a human readable name used in error messages.
func (k DocumentKind) String() string {
	switch k {
	case KindInvoice:
		return "invoice"
	case KindSupplierInvoice:
		return "supplier invoice"
	default:
		return string(k)
	}
}

// BookkeptStatus tells whether a document has been booked in the ledger.
type BookkeptStatus string

const (
	Unbooked BookkeptStatus = "UNBOOKED"
	Booked   BookkeptStatus = "BOOKED"
)

// PaymentStatus tells how much of a document has been settled.
type PaymentStatus string

const (
	Unpaid        PaymentStatus = "UNPAID"
	PartiallyPaid PaymentStatus = "PARTIALLY_PAID"
	Paid          PaymentStatus = "PAID"
)

// SourceDocument is an invoice or supplier invoice as seen by the ledger core.
// It is only mutated through the posting operations. When the tax agency
// payment settles a partially paid ROT/RUT invoice, PaymentTransactionID
// moves to that payment and FirstPaymentTransactionID keeps the customer's.
type SourceDocument struct {
	ID                        string         `json:"id"`
	Kind                      DocumentKind   `json:"kind"`
	OwnerID                   string         `json:"ownerID"`
	Number                    string         `json:"number"`
	StatusBookkept            BookkeptStatus `json:"statusBookkept"`
	StatusPayment             PaymentStatus  `json:"statusPayment"`
	PaymentDate               *time.Time     `json:"paymentDate,omitempty"`
	BookingTransactionID      *string        `json:"bookingTransactionID,omitempty"`
	PaymentTransactionID      *string        `json:"paymentTransactionID,omitempty"`
	FirstPaymentTransactionID *string        `json:"firstPaymentTransactionID,omitempty"`
	HasRotRutItems            bool           `json:"hasRotRutItems"` // Any line item flagged ROT or RUT
}

// LinkedTransactionIDs returns the ledger transactions referenced by the document.
func (d SourceDocument) LinkedTransactionIDs() []string {
	ids := make([]string, 0, 3)
	for _, id := range []*string{d.BookingTransactionID, d.FirstPaymentTransactionID, d.PaymentTransactionID} {
		if id != nil && !slices.Contains(ids, *id) {
			ids = append(ids, *id)
		}
	}
	return ids
}

// DocumentStatusUpdate is the persisted effect of a transition on a document.
// Nil fields are left unchanged.
type DocumentStatusUpdate struct {
	StatusBookkept            *BookkeptStatus
	StatusPayment             *PaymentStatus
	PaymentDate               *time.Time
	BookingTransactionID      *string
	PaymentTransactionID      *string
	FirstPaymentTransactionID *string
}

// Apply returns a copy of doc with the update applied.
func (u DocumentStatusUpdate) Apply(doc SourceDocument) SourceDocument {
	if u.StatusBookkept != nil {
		doc.StatusBookkept = *u.StatusBookkept
	}
	if u.StatusPayment != nil {
		doc.StatusPayment = *u.StatusPayment
	}
	if u.PaymentDate != nil {
		d := *u.PaymentDate
		doc.PaymentDate = &d
	}
	if u.BookingTransactionID != nil {
		id := *u.BookingTransactionID
		doc.BookingTransactionID = &id
	}
	if u.PaymentTransactionID != nil {
		id := *u.PaymentTransactionID
		doc.PaymentTransactionID = &id
	}
	if u.FirstPaymentTransactionID != nil {
		id := *u.FirstPaymentTransactionID
		doc.FirstPaymentTransactionID = &id
	}
	return doc
}
