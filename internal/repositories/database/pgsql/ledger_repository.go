package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/SscSPs/bokforing_app/internal/apperrors"
	"github.com/SscSPs/bokforing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bokforing_app/internal/core/ports/repositories"
	"github.com/SscSPs/bokforing_app/internal/models"
	"github.com/SscSPs/bokforing_app/internal/utils/mapping"
	"github.com/SscSPs/bokforing_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

// PgxLedgerRepository stores ledger transactions and their posting lines.
type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(db DBTX) *PgxLedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{DB: db}}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryWithTx
var _ portsrepo.LedgerRepositoryWithTx = (*PgxLedgerRepository)(nil)

// SaveTransaction inserts the header and all lines within one database transaction.
func (r *PgxLedgerRepository) SaveTransaction(ctx context.Context, txn domain.LedgerTransaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Defer rollback in case of error
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	header := mapping.ToModelLedgerTransaction(txn)
	headerQuery := `
		INSERT INTO ledger_transactions (transaction_id, owner_id, tx_date, description, comment, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, headerQuery,
		header.TransactionID,
		header.OwnerID,
		header.TxDate,
		header.Description,
		header.Comment,
		header.CreatedAt,
		header.CreatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert ledger transaction "+header.TransactionID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO posting_lines (transaction_id, position, account_code, debit, kredit, description)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, l := range mapping.ToModelPostingLines(txn.ID, txn.Lines) {
		batch.Queue(lineQuery, l.TransactionID, l.Position, l.AccountCode, l.Debit, l.Kredit, l.Description)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil { // Close reports the first failed insert
		return apperrors.NewAppError(500, "failed to insert posting lines for transaction "+header.TransactionID, err)
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction with its lines in insertion order.
func (r *PgxLedgerRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.LedgerTransaction, error) {
	query := `
		SELECT transaction_id, owner_id, tx_date, description, comment, created_at, created_by
		FROM ledger_transactions
		WHERE transaction_id = $1;
	`
	var m models.LedgerTransaction
	err := r.DB.QueryRow(ctx, query, transactionID).Scan(
		&m.TransactionID,
		&m.OwnerID,
		&m.TxDate,
		&m.Description,
		&m.Comment,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find ledger transaction "+transactionID, err)
	}

	lines, err := r.findLines(ctx, []string{transactionID})
	if err != nil {
		return nil, err
	}
	txn := mapping.ToDomainLedgerTransaction(m, lines[transactionID])
	return &txn, nil
}

// findLines loads the lines of several transactions, grouped by transaction
// and ordered by position.
func (r *PgxLedgerRepository) findLines(ctx context.Context, transactionIDs []string) (map[string][]models.PostingLine, error) {
	query := `
		SELECT transaction_id, position, account_code, debit, kredit, description
		FROM posting_lines
		WHERE transaction_id = ANY($1)
		ORDER BY transaction_id, position;
	`
	rows, err := r.DB.Query(ctx, query, transactionIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query posting lines", err)
	}
	defer rows.Close()

	out := make(map[string][]models.PostingLine, len(transactionIDs))
	for rows.Next() {
		var l models.PostingLine
		if err := rows.Scan(&l.TransactionID, &l.Position, &l.AccountCode, &l.Debit, &l.Kredit, &l.Description); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan posting line row", err)
		}
		out[l.TransactionID] = append(out[l.TransactionID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating posting line rows", err)
	}
	return out, nil
}

// ListTransactionsByOwner retrieves a page of an owner's transactions using
// token-based pagination over (tx_date, created_at, transaction_id).
func (r *PgxLedgerRepository) ListTransactionsByOwner(ctx context.Context, ownerID string, limit int, nextToken *string) ([]domain.LedgerTransaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT transaction_id, owner_id, tx_date, description, comment, created_at, created_by
		FROM ledger_transactions
		WHERE owner_id = $1
	`
	orderByClause := `ORDER BY tx_date DESC, created_at DESC, transaction_id DESC`
	args := []any{ownerID}

	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		// Tuple comparison is concise and efficient in Postgres
		query += ` AND (tx_date, created_at, transaction_id) < ($2, $3, $4)`
		args = append(args, cursor.Date, cursor.CreatedAt, cursor.ID)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list ledger transactions for owner "+ownerID, err)
	}
	defer rows.Close()

	headers := make([]models.LedgerTransaction, 0, fetchLimit)
	for rows.Next() {
		var m models.LedgerTransaction
		if err := rows.Scan(&m.TransactionID, &m.OwnerID, &m.TxDate, &m.Description, &m.Comment, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan ledger transaction row", err)
		}
		headers = append(headers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating ledger transaction rows", err)
	}

	var nextTokenVal *string
	if len(headers) > limit {
		headers = headers[:limit]
		last := headers[limit-1]
		token := pagination.EncodeCursor(pagination.Cursor{Date: last.TxDate, CreatedAt: last.CreatedAt, ID: last.TransactionID})
		nextTokenVal = &token
	}
	if len(headers) == 0 {
		return []domain.LedgerTransaction{}, nil, nil
	}

	ids := make([]string, len(headers))
	for i, h := range headers {
		ids[i] = h.TransactionID
	}
	lines, err := r.findLines(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	txns := make([]domain.LedgerTransaction, len(headers))
	for i, h := range headers {
		txns[i] = mapping.ToDomainLedgerTransaction(h, lines[h.TransactionID])
	}
	return txns, nextTokenVal, nil
}

// DeleteTransaction removes the lines and then the header of a transaction.
func (r *PgxLedgerRepository) DeleteTransaction(ctx context.Context, transactionID, ownerID string) (bool, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer r.Rollback(ctx, tx)

	var owner string
	err = tx.QueryRow(ctx, `SELECT owner_id FROM ledger_transactions WHERE transaction_id = $1 FOR UPDATE;`, transactionID).Scan(&owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, apperrors.NewAppError(500, "failed to lock ledger transaction "+transactionID, err)
	}
	if owner != ownerID {
		return false, &apperrors.NotOwnedError{Resource: "ledger transaction", ID: transactionID}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM posting_lines WHERE transaction_id = $1;`, transactionID); err != nil {
		return false, apperrors.NewAppError(500, "failed to delete posting lines of "+transactionID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM ledger_transactions WHERE transaction_id = $1;`, transactionID); err != nil {
		return false, apperrors.NewAppError(500, "failed to delete ledger transaction "+transactionID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return false, err
	}
	return true, nil
}
