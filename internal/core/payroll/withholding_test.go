package payroll_test

import (
	"testing"

	"github.com/SscSPs/bokforing_app/internal/apperrors"
	"github.com/SscSPs/bokforing_app/internal/core/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTables = `
tables:
  30:
    - [2000, 3999, 200, 210, 220, 230, 240, 250]
    - [0, 1999, 0, 1, 2, 3, 4, 5]
    - [4000, 5999, 800, 810, 820, 830, 840, 850]
`

func TestWithholdingTables_Lookup(t *testing.T) {
	tables, err := payroll.ParseWithholdingTables([]byte(testTables))
	require.NoError(t, err)

	tests := []struct {
		name   string
		column int
		gross  string
		want   string
	}{
		{name: "first bracket", column: 1, gross: "1500", want: "0"},
		{name: "bracket boundary", column: 1, gross: "2000", want: "200"},
		{name: "fraction below next bracket", column: 1, gross: "3999.99", want: "200"},
		{name: "column lookup", column: 6, gross: "4500", want: "850"},
		{name: "above range clamps to last bracket", column: 1, gross: "250000", want: "800"},
		{name: "zero gross", column: 2, gross: "0", want: "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tables.Lookup(30, tt.column, d(tt.gross))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestWithholdingTables_UnknownTableOrColumn(t *testing.T) {
	tables, err := payroll.ParseWithholdingTables([]byte(testTables))
	require.NoError(t, err)

	_, err = tables.Lookup(31, 1, d("1000"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = tables.Lookup(30, 0, d("1000"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestParseWithholdingTables_Invalid(t *testing.T) {
	_, err := payroll.ParseWithholdingTables([]byte("tables:\n  30:\n    - [0, 1999, 1, 2]\n"))
	assert.Error(t, err)

	_, err = payroll.ParseWithholdingTables([]byte("tables: {}\n"))
	assert.Error(t, err)

	_, err = payroll.ParseWithholdingTables([]byte("tables: ["))
	assert.Error(t, err)
}

func TestDefaultWithholdingTables(t *testing.T) {
	tables, err := payroll.DefaultWithholdingTables()
	require.NoError(t, err)

	want := make([]int, 0, payroll.MaxTaxTable-payroll.MinTaxTable+1)
	for tbl := payroll.MinTaxTable; tbl <= payroll.MaxTaxTable; tbl++ {
		want = append(want, tbl)
	}
	assert.Equal(t, want, tables.Tables())

	for _, tbl := range want {
		low, err := tables.Lookup(tbl, 1, d("25000"))
		require.NoError(t, err)
		high, err := tables.Lookup(tbl, 1, d("60000"))
		require.NoError(t, err)
		assert.True(t, high.GreaterThan(low), "table %d", tbl)

		top, err := tables.Lookup(tbl, 1, d("79999"))
		require.NoError(t, err)
		clamped, err := tables.Lookup(tbl, 1, d("1000000"))
		require.NoError(t, err)
		assert.True(t, top.Equal(clamped), "table %d", tbl)
	}
}
