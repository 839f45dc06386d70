package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bokforing_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyTransition(t *testing.T) {
	tests := []struct {
		name        string
		kind        domain.DocumentKind
		codes       []string
		hasRotRut   bool
		current     domain.PaymentStatus
		wantKind    domain.TransitionKind
		wantBooked  bool
		wantPayment *domain.PaymentStatus
	}{
		{
			name:        "invoice payment without ROT/RUT is paid",
			kind:        domain.KindInvoice,
			codes:       []string{"1930", "1510"},
			current:     domain.Unpaid,
			wantKind:    domain.TransitionPayment,
			wantPayment: statusPtr(domain.Paid),
		},
		{
			name:        "invoice payment with ROT/RUT is partially paid",
			kind:        domain.KindInvoice,
			codes:       []string{"1930", "1510"},
			hasRotRut:   true,
			current:     domain.Unpaid,
			wantKind:    domain.TransitionPayment,
			wantPayment: statusPtr(domain.PartiallyPaid),
		},
		{
			name:        "second ROT/RUT payment settles the invoice",
			kind:        domain.KindInvoice,
			codes:       []string{"1510", "1930"},
			hasRotRut:   true,
			current:     domain.PartiallyPaid,
			wantKind:    domain.TransitionPayment,
			wantPayment: statusPtr(domain.Paid),
		},
		{
			name:        "cash method booking touches bank but not receivables",
			kind:        domain.KindInvoice,
			codes:       []string{"1930", "3001", "2611"},
			wantKind:    domain.TransitionBookingAndPayment,
			wantBooked:  true,
			wantPayment: statusPtr(domain.Paid),
		},
		{
			name:       "booking without bank",
			kind:       domain.KindInvoice,
			codes:      []string{"1510", "3001", "2611"},
			wantKind:   domain.TransitionBooking,
			wantBooked: true,
		},
		{
			name:       "bank and receivable plus a fee account is a booking",
			kind:       domain.KindInvoice,
			codes:      []string{"1930", "1510", "6570"},
			wantKind:   domain.TransitionBooking,
			wantBooked: true,
		},
		{
			name:        "supplier payment uses payables",
			kind:        domain.KindSupplierInvoice,
			codes:       []string{"2440", "1930"},
			wantKind:    domain.TransitionPayment,
			wantPayment: statusPtr(domain.Paid),
		},
		{
			name:        "receivable is not the counter account of a supplier invoice",
			kind:        domain.KindSupplierInvoice,
			codes:       []string{"1510", "1930"},
			wantKind:    domain.TransitionBookingAndPayment,
			wantBooked:  true,
			wantPayment: statusPtr(domain.Paid),
		},
		{
			name:        "supplier payment ignores ROT/RUT",
			kind:        domain.KindSupplierInvoice,
			codes:       []string{"2440", "1920"},
			hasRotRut:   true,
			wantKind:    domain.TransitionPayment,
			wantPayment: statusPtr(domain.Paid),
		},
		{
			name:       "supplier booking",
			kind:       domain.KindSupplierInvoice,
			codes:      []string{"2440", "4010", "2641"},
			wantKind:   domain.TransitionBooking,
			wantBooked: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ClassifyTransition(tt.kind, tt.codes, tt.hasRotRut, tt.current)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantBooked, got.SetBooked)
			if tt.wantPayment == nil {
				assert.Nil(t, got.PaymentStatus)
				return
			}
			require.NotNil(t, got.PaymentStatus)
			assert.Equal(t, *tt.wantPayment, *got.PaymentStatus)
		})
	}
}

func TestClassifyTransition_Deterministic(t *testing.T) {
	codes := []string{"1930", "1510"}
	first := domain.ClassifyTransition(domain.KindInvoice, codes, false, domain.Unpaid)
	for i := 0; i < 100; i++ {
		got := domain.ClassifyTransition(domain.KindInvoice, []string{codes[i%2], codes[(i+1)%2]}, false, domain.Unpaid)
		assert.Equal(t, first, got)
	}
}

func TestDocumentTransition_CheckPrecondition(t *testing.T) {
	unbooked := domain.SourceDocument{StatusBookkept: domain.Unbooked, StatusPayment: domain.Unpaid}
	booked := domain.SourceDocument{StatusBookkept: domain.Booked, StatusPayment: domain.Unpaid}
	paid := domain.SourceDocument{StatusBookkept: domain.Booked, StatusPayment: domain.Paid}

	payment := domain.ClassifyTransition(domain.KindSupplierInvoice, []string{"2440", "1930"}, false, domain.Unpaid)
	booking := domain.ClassifyTransition(domain.KindSupplierInvoice, []string{"2440", "4010"}, false, domain.Unpaid)

	assert.NotEmpty(t, payment.CheckPrecondition(unbooked))
	assert.Empty(t, payment.CheckPrecondition(booked))
	assert.NotEmpty(t, payment.CheckPrecondition(paid))
	assert.Empty(t, booking.CheckPrecondition(unbooked))
	assert.NotEmpty(t, booking.CheckPrecondition(booked))
}

func TestDocumentTransition_Update(t *testing.T) {
	txDate := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	today := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)

	t.Run("payment uses transaction date", func(t *testing.T) {
		tr := domain.ClassifyTransition(domain.KindInvoice, []string{"1930", "1510"}, false, domain.Unpaid)
		doc := tr.Update(domain.SourceDocument{}, "tx-1", txDate, today).Apply(domain.SourceDocument{StatusBookkept: domain.Booked})

		assert.Equal(t, domain.Paid, doc.StatusPayment)
		require.NotNil(t, doc.PaymentDate)
		assert.True(t, txDate.Equal(*doc.PaymentDate))
		require.NotNil(t, doc.PaymentTransactionID)
		assert.Equal(t, "tx-1", *doc.PaymentTransactionID)
		assert.Nil(t, doc.BookingTransactionID)
	})

	t.Run("cash method booking is paid today", func(t *testing.T) {
		tr := domain.ClassifyTransition(domain.KindInvoice, []string{"1930", "3001"}, false, domain.Unpaid)
		doc := tr.Update(domain.SourceDocument{}, "tx-2", txDate, today).Apply(domain.SourceDocument{})

		assert.Equal(t, domain.Booked, doc.StatusBookkept)
		assert.Equal(t, domain.Paid, doc.StatusPayment)
		require.NotNil(t, doc.PaymentDate)
		assert.True(t, today.Equal(*doc.PaymentDate))
		assert.Equal(t, []string{"tx-2"}, doc.LinkedTransactionIDs())
	})

	t.Run("booking leaves payment alone", func(t *testing.T) {
		tr := domain.ClassifyTransition(domain.KindInvoice, []string{"1510", "3001"}, false, domain.Unpaid)
		doc := tr.Update(domain.SourceDocument{}, "tx-3", txDate, today).Apply(domain.SourceDocument{StatusPayment: domain.Unpaid})

		assert.Equal(t, domain.Booked, doc.StatusBookkept)
		assert.Equal(t, domain.Unpaid, doc.StatusPayment)
		assert.Nil(t, doc.PaymentDate)
	})

	t.Run("settling a partial payment keeps both links", func(t *testing.T) {
		first := "tx-4"
		current := domain.SourceDocument{
			StatusBookkept:       domain.Booked,
			StatusPayment:        domain.PartiallyPaid,
			BookingTransactionID: statusID("tx-0"),
			PaymentTransactionID: &first,
		}
		tr := domain.ClassifyTransition(domain.KindInvoice, []string{"1930", "1510"}, true, current.StatusPayment)
		doc := tr.Update(current, "tx-5", txDate, today).Apply(current)

		assert.Equal(t, domain.Paid, doc.StatusPayment)
		require.NotNil(t, doc.FirstPaymentTransactionID)
		assert.Equal(t, "tx-4", *doc.FirstPaymentTransactionID)
		assert.Equal(t, "tx-5", *doc.PaymentTransactionID)
		assert.Equal(t, []string{"tx-0", "tx-4", "tx-5"}, doc.LinkedTransactionIDs())
	})

	t.Run("first partial payment has no earlier link", func(t *testing.T) {
		current := domain.SourceDocument{StatusBookkept: domain.Booked, StatusPayment: domain.Unpaid}
		tr := domain.ClassifyTransition(domain.KindInvoice, []string{"1930", "1510"}, true, current.StatusPayment)
		u := tr.Update(current, "tx-6", txDate, today)

		assert.Nil(t, u.FirstPaymentTransactionID)
		assert.Equal(t, domain.PartiallyPaid, *u.StatusPayment)
	})
}

func statusID(id string) *string {
	return &id
}

func statusPtr(s domain.PaymentStatus) *domain.PaymentStatus {
	return &s
}
