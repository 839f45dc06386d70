package payroll

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"github.com/SscSPs/bokforing_app/internal/apperrors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	MinTaxTable  = 29
	MaxTaxTable  = 42
	MinTaxColumn = 1
	MaxTaxColumn = 6
)

//go:embed withholding_tables.yaml
var withholdingTablesYAML []byte

type withholdingFile struct {
	Tables map[int][][]int `yaml:"tables"`
}

type bracket struct {
	from, to int64
	tax      [MaxTaxColumn]int64
}

// WithholdingTables is the static monthly withholding reference data, keyed by
// table number. It is read-only after loading and safe for concurrent use.
type WithholdingTables struct {
	tables map[int][]bracket
}

// ParseWithholdingTables parses tables in the embedded YAML layout.
func ParseWithholdingTables(data []byte) (*WithholdingTables, error) {
	var f withholdingFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse withholding tables: %w", err)
	}
	if len(f.Tables) == 0 {
		return nil, fmt.Errorf("withholding tables: no tables defined")
	}

	wt := &WithholdingTables{tables: make(map[int][]bracket, len(f.Tables))}
	for table, rows := range f.Tables {
		brackets := make([]bracket, 0, len(rows))
		for i, row := range rows {
			if len(row) != 2+MaxTaxColumn {
				return nil, fmt.Errorf("withholding table %d row %d: want %d values, got %d", table, i, 2+MaxTaxColumn, len(row))
			}
			b := bracket{from: int64(row[0]), to: int64(row[1])}
			if b.to < b.from {
				return nil, fmt.Errorf("withholding table %d row %d: bracket ends before it starts", table, i)
			}
			for c := 0; c < MaxTaxColumn; c++ {
				b.tax[c] = int64(row[2+c])
			}
			brackets = append(brackets, b)
		}
		sort.Slice(brackets, func(i, j int) bool { return brackets[i].from < brackets[j].from })
		wt.tables[table] = brackets
	}
	return wt, nil
}

var defaultWithholding = sync.OnceValues(func() (*WithholdingTables, error) {
	return ParseWithholdingTables(withholdingTablesYAML)
})

// DefaultWithholdingTables returns the embedded tables 29–42.
func DefaultWithholdingTables() (*WithholdingTables, error) {
	return defaultWithholding()
}

// Lookup returns the monthly tax withheld on gross pay. Gross pay outside the
// table range is clamped to the first or last bracket.
func (w *WithholdingTables) Lookup(table, column int, gross decimal.Decimal) (decimal.Decimal, error) {
	brackets, ok := w.tables[table]
	if !ok || len(brackets) == 0 {
		return decimal.Zero, &apperrors.InvalidPayrollInputError{Reason: fmt.Sprintf("unknown tax table %d", table)}
	}
	if column < MinTaxColumn || column > MaxTaxColumn {
		return decimal.Zero, &apperrors.InvalidPayrollInputError{Reason: fmt.Sprintf("unknown tax column %d", column)}
	}

	kronor := gross.Floor().IntPart()
	idx := sort.Search(len(brackets), func(i int) bool { return brackets[i].to >= kronor })
	if idx == len(brackets) {
		idx = len(brackets) - 1
	}
	return decimal.NewFromInt(brackets[idx].tax[column-1]), nil
}

// Tables lists the loaded table numbers in ascending order.
func (w *WithholdingTables) Tables() []int {
	out := make([]int, 0, len(w.tables))
	for t := range w.tables {
		out = append(out, t)
	}
	sort.Ints(out)
	return out
}
