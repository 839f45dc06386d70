package accounting

import (
	"fmt"

	"github.com/SscSPs/bokforing_app/internal/apperrors"
	"github.com/SscSPs/bokforing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceTolerance is the largest debit/kredit difference still accepted as balanced.
var BalanceTolerance = decimal.RequireFromString("0.01")

// Round2 rounds an amount to öre.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// NormalizeLines rounds every amount to 2 decimals and checks that each line
// carries exactly one positive side. The input slice is not modified.
func NormalizeLines(lines []domain.PostingLine) ([]domain.PostingLine, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: transaction must have at least one line", apperrors.ErrValidation)
	}

	out := make([]domain.PostingLine, len(lines))
	for i, l := range lines {
		debit := Round2(l.Debit)
		kredit := Round2(l.Kredit)

		if debit.IsNegative() || kredit.IsNegative() {
			return nil, fmt.Errorf("%w: line %d on account %s has a negative amount", apperrors.ErrValidation, i+1, l.AccountCode)
		}
		if debit.IsPositive() == kredit.IsPositive() {
			// Both zero or both positive
			return nil, fmt.Errorf("%w: line %d on account %s must have exactly one of debit or kredit", apperrors.ErrValidation, i+1, l.AccountCode)
		}

		l.Debit = debit
		l.Kredit = kredit
		out[i] = l
	}
	return out, nil
}

// Totals sums the debit and kredit sides of lines.
func Totals(lines []domain.PostingLine) (debit, kredit decimal.Decimal) {
	debit, kredit = decimal.Zero, decimal.Zero
	for _, l := range lines {
		debit = debit.Add(l.Debit)
		kredit = kredit.Add(l.Kredit)
	}
	return debit, kredit
}

// ValidateBalance returns an UnbalancedTransactionError when the totals of
// lines differ by more than BalanceTolerance.
func ValidateBalance(lines []domain.PostingLine) error {
	debit, kredit := Totals(lines)
	if debit.Sub(kredit).Abs().GreaterThan(BalanceTolerance) {
		return &apperrors.UnbalancedTransactionError{TotalDebit: debit, TotalKredit: kredit}
	}
	return nil
}

// ValidateLines normalizes lines and checks the balance invariant.
func ValidateLines(lines []domain.PostingLine) ([]domain.PostingLine, error) {
	normalized, err := NormalizeLines(lines)
	if err != nil {
		return nil, err
	}
	if err := ValidateBalance(normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}

// SignedLine builds a line for amount on code: positive amounts are debits,
// negative amounts kredits. Zero yields ok == false.
func SignedLine(code string, amount decimal.Decimal, description string) (line domain.PostingLine, ok bool) {
	amount = Round2(amount)
	switch {
	case amount.IsPositive():
		return domain.PostingLine{AccountCode: code, Debit: amount, Kredit: decimal.Zero, Description: description}, true
	case amount.IsNegative():
		return domain.PostingLine{AccountCode: code, Debit: decimal.Zero, Kredit: amount.Neg(), Description: description}, true
	default:
		return domain.PostingLine{}, false
	}
}
