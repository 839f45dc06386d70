package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/bokforing_app/internal/apperrors"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// Cursor identifies the last transaction of a page. Transactions are listed
// newest first by (date, created at, id), so the cursor is unique.
type Cursor struct {
	Date      time.Time
	CreatedAt time.Time
	ID        string
}

// Before reports whether a transaction with the given keys sorts after the
// cursor in newest-first order, i.e. belongs to a later page.
func (c Cursor) Before(date, createdAt time.Time, id string) bool {
	if !date.Equal(c.Date) {
		return date.Before(c.Date)
	}
	if !createdAt.Equal(c.CreatedAt) {
		return createdAt.Before(c.CreatedAt)
	}
	return id < c.ID
}

// EncodeCursor creates an opaque URL-safe token from a cursor.
func EncodeCursor(c Cursor) string {
	tokenStr := strings.Join([]string{
		c.Date.UTC().Format(timeFormat),
		c.CreatedAt.UTC().Format(timeFormat),
		c.ID,
	}, "|")
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeCursor parses a token produced by EncodeCursor. Malformed tokens are
// validation errors.
func DecodeCursor(token string) (Cursor, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token format (base64 decode): %v", apperrors.ErrValidation, err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 3)
	if len(parts) != 3 || parts[2] == "" {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token format (split)", apperrors.ErrValidation)
	}

	date, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token format (date parse): %v", apperrors.ErrValidation, err)
	}
	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token format (created_at parse): %v", apperrors.ErrValidation, err)
	}

	return Cursor{Date: date, CreatedAt: createdAt, ID: parts[2]}, nil
}
