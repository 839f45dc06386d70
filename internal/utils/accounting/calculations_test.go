package accounting_test

import (
	"testing"

	"github.com/SscSPs/bokforing_app/internal/apperrors"
	"github.com/SscSPs/bokforing_app/internal/core/domain"
	"github.com/SscSPs/bokforing_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func debit(code, amount string) domain.PostingLine {
	return domain.PostingLine{AccountCode: code, Debit: d(amount), Kredit: decimal.Zero}
}

func kredit(code, amount string) domain.PostingLine {
	return domain.PostingLine{AccountCode: code, Debit: decimal.Zero, Kredit: d(amount)}
}

func TestValidateLines_Unbalanced(t *testing.T) {
	_, err := accounting.ValidateLines([]domain.PostingLine{debit("1930", "100"), kredit("3001", "90")})

	var unbalanced *apperrors.UnbalancedTransactionError
	require.ErrorAs(t, err, &unbalanced)
	assert.True(t, unbalanced.TotalDebit.Equal(d("100")))
	assert.True(t, unbalanced.TotalKredit.Equal(d("90")))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestValidateLines(t *testing.T) {
	tests := []struct {
		name    string
		lines   []domain.PostingLine
		wantErr bool
	}{
		{name: "balanced", lines: []domain.PostingLine{debit("1930", "1000"), kredit("1510", "1000")}},
		{name: "within tolerance", lines: []domain.PostingLine{debit("1930", "1000.01"), kredit("1510", "1000")}},
		{name: "just outside tolerance", lines: []domain.PostingLine{debit("1930", "1000.02"), kredit("1510", "1000")}, wantErr: true},
		{name: "empty", lines: nil, wantErr: true},
		{name: "both sides zero", lines: []domain.PostingLine{debit("1930", "0"), kredit("1510", "0")}, wantErr: true},
		{
			name:    "both sides positive",
			lines:   []domain.PostingLine{{AccountCode: "1930", Debit: d("10"), Kredit: d("10")}},
			wantErr: true,
		},
		{name: "negative amount", lines: []domain.PostingLine{debit("1930", "-10"), kredit("1510", "-10")}, wantErr: true},
		{name: "rounds to zero", lines: []domain.PostingLine{debit("1930", "0.004"), kredit("1510", "0.004")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := accounting.ValidateLines(tt.lines)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNormalizeLines_Rounds(t *testing.T) {
	in := []domain.PostingLine{debit("1930", "100.005"), kredit("1510", "100.004")}
	out, err := accounting.NormalizeLines(in)
	require.NoError(t, err)

	assert.Equal(t, "100.01", out[0].Debit.StringFixed(2))
	assert.Equal(t, "100.00", out[1].Kredit.StringFixed(2))
	assert.Equal(t, "100.005", in[0].Debit.String(), "input must not be modified")
}

func TestSignedLine(t *testing.T) {
	l, ok := accounting.SignedLine("7210", d("-250.50"), "Sjukavdrag")
	require.True(t, ok)
	assert.True(t, l.Kredit.Equal(d("250.50")))
	assert.True(t, l.Debit.IsZero())

	l, ok = accounting.SignedLine("7210", d("250.50"), "Lön")
	require.True(t, ok)
	assert.True(t, l.Debit.Equal(d("250.50")))

	_, ok = accounting.SignedLine("7210", decimal.Zero, "")
	assert.False(t, ok)
}
