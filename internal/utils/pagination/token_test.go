package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/SscSPs/bokforing_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeCursor(t *testing.T) {
	// Standard values
	c := Cursor{
		Date:      time.Date(2025, 3, 25, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2025, 3, 25, 14, 30, 45, 123456789, time.UTC),
		ID:        "6f1c2b7e-9a4d-4a53-9a57-0c3f7e1c2d10",
	}
	token := EncodeCursor(c)
	assert.NotEmpty(t, token, "Token should not be empty")
	assert.NotContains(t, token, "=", "Token should be usable in a query string")

	decoded, err := DecodeCursor(token)
	require.NoError(t, err)
	assert.Equal(t, c, decoded)

	// Zero times survive a round trip
	zero := Cursor{ID: "x"}
	decoded, err = DecodeCursor(EncodeCursor(zero))
	require.NoError(t, err)
	assert.True(t, decoded.Date.IsZero())
	assert.True(t, decoded.CreatedAt.IsZero())

	// Non-UTC times come back in UTC but denote the same instant
	stockholm := time.FixedZone("CET", 3600)
	local := Cursor{Date: time.Date(2025, 1, 2, 0, 0, 0, 0, stockholm), CreatedAt: time.Now().In(stockholm), ID: "y"}
	decoded, err = DecodeCursor(EncodeCursor(local))
	require.NoError(t, err)
	assert.True(t, local.Date.Equal(decoded.Date))
	assert.True(t, local.CreatedAt.Equal(decoded.CreatedAt))
}

func TestDecodeCursorError(t *testing.T) {
	encode := func(s string) string { return base64.RawURLEncoding.EncodeToString([]byte(s)) }

	tests := []struct {
		name     string
		token    string
		contains string
	}{
		{"invalid base64", "this is not base64!", "base64 decode"},
		{"missing separators", encode("2025-01-01T00:00:00Z"), "split"},
		{"missing id", encode("2025-01-01T00:00:00Z|2025-01-01T00:00:00Z|"), "split"},
		{"bad date", encode("notadate|2025-01-01T00:00:00Z|id"), "date parse"},
		{"bad created at", encode("2025-01-01T00:00:00Z|notatime|id"), "created_at parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCursor(tt.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestCursorBefore(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC) }
	at := func(sec int) time.Time { return time.Date(2025, 3, 10, 12, 0, sec, 0, time.UTC) }
	c := Cursor{Date: day(10), CreatedAt: at(30), ID: "m"}

	assert.True(t, c.Before(day(9), at(59), "z"), "older date is on a later page")
	assert.False(t, c.Before(day(11), at(0), "a"), "newer date is on an earlier page")
	assert.True(t, c.Before(day(10), at(29), "z"))
	assert.False(t, c.Before(day(10), at(31), "a"))
	assert.True(t, c.Before(day(10), at(30), "l"))
	assert.False(t, c.Before(day(10), at(30), "m"), "the cursor row itself is excluded")
	assert.False(t, c.Before(day(10), at(30), "n"))
}
