package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/bokforing_app/internal/apperrors"
	"github.com/SscSPs/bokforing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bokforing_app/internal/core/ports/repositories"
	"github.com/SscSPs/bokforing_app/internal/models"
	"github.com/SscSPs/bokforing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

// documentTables names the header and item tables of a document kind.
type documentTables struct {
	header string
	items  string
	rotRut string // SQL expression telling whether any item is ROT/RUT
}

var tablesByKind = map[domain.DocumentKind]documentTables{
	domain.KindInvoice: {
		header: "invoices",
		items:  "invoice_items",
		rotRut: "EXISTS (SELECT 1 FROM invoice_items i WHERE i.document_id = d.document_id AND i.rot_rut_type IS NOT NULL)",
	},
	domain.KindSupplierInvoice: {
		header: "supplier_invoices",
		items:  "supplier_invoice_items",
		rotRut: "FALSE",
	},
}

func tablesFor(kind domain.DocumentKind) (documentTables, error) {
	t, ok := tablesByKind[kind]
	if !ok {
		return documentTables{}, fmt.Errorf("%w: unknown document kind %q", apperrors.ErrValidation, kind)
	}
	return t, nil
}

// PgxDocumentRepository reads and updates the status of invoices and supplier invoices.
type PgxDocumentRepository struct {
	BaseRepository
}

func newPgxDocumentRepository(db DBTX) *PgxDocumentRepository {
	return &PgxDocumentRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

// FindDocument implements portsrepo.DocumentReader
func (r *PgxDocumentRepository) FindDocument(ctx context.Context, kind domain.DocumentKind, documentID string) (*domain.SourceDocument, error) {
	return r.findDocument(ctx, kind, documentID, false)
}

// FindDocumentForUpdate implements portsrepo.DocumentReader
func (r *PgxDocumentRepository) FindDocumentForUpdate(ctx context.Context, kind domain.DocumentKind, documentID string) (*domain.SourceDocument, error) {
	return r.findDocument(ctx, kind, documentID, true)
}

func (r *PgxDocumentRepository) findDocument(ctx context.Context, kind domain.DocumentKind, documentID string, forUpdate bool) (*domain.SourceDocument, error) {
	t, err := tablesFor(kind)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT d.document_id, d.owner_id, d.number, d.status_bookkept, d.status_payment,
		       d.payment_date, d.booking_transaction_id, d.payment_transaction_id,
		       d.first_payment_transaction_id, ` + t.rotRut + `
		FROM ` + t.header + ` d
		WHERE d.document_id = $1`
	if forUpdate {
		query += ` FOR UPDATE OF d`
	}

	var m models.Document
	err = r.DB.QueryRow(ctx, query, documentID).Scan(
		&m.DocumentID,
		&m.OwnerID,
		&m.Number,
		&m.StatusBookkept,
		&m.StatusPayment,
		&m.PaymentDate,
		&m.BookingTransactionID,
		&m.PaymentTransactionID,
		&m.FirstPaymentTransactionID,
		&m.HasRotRutItems,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find "+kind.String()+" "+documentID, err)
	}

	doc := mapping.ToDomainDocument(kind, m)
	return &doc, nil
}

// UpdateDocumentStatus implements portsrepo.DocumentWriter
func (r *PgxDocumentRepository) UpdateDocumentStatus(ctx context.Context, kind domain.DocumentKind, documentID string, update domain.DocumentStatusUpdate) error {
	t, err := tablesFor(kind)
	if err != nil {
		return err
	}

	var (
		sets []string
		args []any
	)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}
	if update.StatusBookkept != nil {
		set("status_bookkept", string(*update.StatusBookkept))
	}
	if update.StatusPayment != nil {
		set("status_payment", string(*update.StatusPayment))
	}
	if update.PaymentDate != nil {
		set("payment_date", *update.PaymentDate)
	}
	if update.BookingTransactionID != nil {
		set("booking_transaction_id", *update.BookingTransactionID)
	}
	if update.PaymentTransactionID != nil {
		set("payment_transaction_id", *update.PaymentTransactionID)
	}
	if update.FirstPaymentTransactionID != nil {
		set("first_payment_transaction_id", *update.FirstPaymentTransactionID)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, documentID)
	query := "UPDATE " + t.header + " SET " + strings.Join(sets, ", ") + " WHERE document_id = $" + strconv.Itoa(len(args)) + ";"
	tag, err := r.DB.Exec(ctx, query, args...)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of "+kind.String()+" "+documentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteDocument implements portsrepo.DocumentWriter
func (r *PgxDocumentRepository) DeleteDocument(ctx context.Context, kind domain.DocumentKind, documentID string) error {
	t, err := tablesFor(kind)
	if err != nil {
		return err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, "DELETE FROM "+t.items+" WHERE document_id = $1;", documentID); err != nil {
		return apperrors.NewAppError(500, "failed to delete items of "+kind.String()+" "+documentID, err)
	}
	tag, err := tx.Exec(ctx, "DELETE FROM "+t.header+" WHERE document_id = $1;", documentID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete "+kind.String()+" "+documentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return r.Commit(ctx, tx)
}
