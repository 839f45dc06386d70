package models

import "time"

// Document holds the status columns shared by the invoices and
// supplier_invoices tables.
type Document struct {
	DocumentID                string     `db:"document_id"`
	OwnerID                   string     `db:"owner_id"`
	Number                    string     `db:"number"`
	StatusBookkept            string     `db:"status_bookkept"`
	StatusPayment             string     `db:"status_payment"`
	PaymentDate               *time.Time `db:"payment_date"`
	BookingTransactionID      *string    `db:"booking_transaction_id"`
	PaymentTransactionID      *string    `db:"payment_transaction_id"`
	FirstPaymentTransactionID *string    `db:"first_payment_transaction_id"`
	HasRotRutItems            bool       `db:"has_rot_rut_items"` // Derived from the line items
}
