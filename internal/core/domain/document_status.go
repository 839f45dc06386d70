package domain

import "time"

// TransitionKind is the business event a ledger transaction represents for
// the document it was posted against.
type TransitionKind string

const (
	// TransitionPayment is a settlement only: bank against receivable or payable.
	TransitionPayment TransitionKind = "PAYMENT"
	// TransitionBookingAndPayment is a cash-method booking that is paid at once.
	TransitionBookingAndPayment TransitionKind = "BOOKING_AND_PAYMENT"
	// TransitionBooking records the document without touching the bank.
	TransitionBooking TransitionKind = "BOOKING"
)

// DocumentTransition is the outcome of classifying a posted transaction.
type DocumentTransition struct {
	Kind             TransitionKind
	SetBooked        bool
	PaymentStatus    *PaymentStatus // nil leaves the payment status unchanged
	PaymentDateToday bool           // payment date is the posting day rather than the transaction date
}

// IsPayment reports whether the transition settles the document.
func (t DocumentTransition) IsPayment() bool {
	return t.PaymentStatus != nil
}

// ClassifyTransition derives the document transition from the account codes
// touched by a transaction. It is a pure function of its arguments.
func ClassifyTransition(kind DocumentKind, accountCodes []string, hasRotRut bool, current PaymentStatus) DocumentTransition {
	var bank, counter, other bool
	for _, code := range accountCodes {
		switch {
		case IsBankOrCash(code):
			bank = true
		case isCounterAccount(kind, code):
			counter = true
		default:
			other = true
		}
	}

	switch {
	case bank && counter && !other:
		status := Paid
		if kind == KindInvoice && hasRotRut && current != PartiallyPaid {
			status = PartiallyPaid
		}
		return DocumentTransition{Kind: TransitionPayment, PaymentStatus: &status}
	case bank && !counter:
		status := Paid
		return DocumentTransition{
			Kind:             TransitionBookingAndPayment,
			SetBooked:        true,
			PaymentStatus:    &status,
			PaymentDateToday: true,
		}
	default:
		return DocumentTransition{Kind: TransitionBooking, SetBooked: true}
	}
}

func isCounterAccount(kind DocumentKind, code string) bool {
	if kind == KindSupplierInvoice {
		return IsAccountsPayable(code)
	}
	return IsAccountsReceivable(code)
}

// CheckPrecondition returns a non-empty reason when the transition may not be
// applied to doc in its current state.
func (t DocumentTransition) CheckPrecondition(doc SourceDocument) string {
	switch t.Kind {
	case TransitionPayment:
		if doc.StatusBookkept != Booked {
			return "document is not booked"
		}
		if doc.StatusPayment == Paid {
			return "document is already paid"
		}
	case TransitionBooking, TransitionBookingAndPayment:
		if doc.StatusBookkept == Booked {
			return "document is already booked"
		}
	}
	return ""
}

// Update builds the persisted status change to doc for a transition caused by
// the transaction txID dated txDate. today is used for cash-method bookings.
// Settling a partially paid document keeps its earlier payment link.
func (t DocumentTransition) Update(doc SourceDocument, txID string, txDate, today time.Time) DocumentStatusUpdate {
	var u DocumentStatusUpdate
	id := txID
	if t.SetBooked {
		booked := Booked
		u.StatusBookkept = &booked
		u.BookingTransactionID = &id
	}
	if t.PaymentStatus != nil {
		status := *t.PaymentStatus
		u.StatusPayment = &status
		date := txDate
		if t.PaymentDateToday {
			date = today
		}
		u.PaymentDate = &date
		u.PaymentTransactionID = &id
		if doc.StatusPayment == PartiallyPaid && doc.PaymentTransactionID != nil {
			first := *doc.PaymentTransactionID
			u.FirstPaymentTransactionID = &first
		}
	}
	return u
}
