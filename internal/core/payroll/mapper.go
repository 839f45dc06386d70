package payroll

import (
	"fmt"
	"strings"

	"github.com/SscSPs/bokforing_app/internal/apperrors"
	"github.com/SscSPs/bokforing_app/internal/core/accounts"
	"github.com/SscSPs/bokforing_app/internal/core/domain"
	"github.com/SscSPs/bokforing_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// Accounts holds the company-specific accounts used by payroll postings.
type Accounts struct {
	Bank string // Account net pay is paid out from, defaults to 1930
}

type accountSum struct {
	code   string
	amount decimal.Decimal
	labels []string
}

// BuildPostings turns a payroll result into one balanced set of posting lines:
// one line per expense account, benefit motkonto, social fees, withheld tax,
// fee liability and the net pay disbursement.
func BuildPostings(result domain.PayrollResult, acc Accounts) ([]domain.PostingLine, error) {
	bank := acc.Bank
	if bank == "" {
		bank = accounts.Bank
	}
	bank, err := accounts.Normalize(bank)
	if err != nil {
		return nil, err
	}
	if result.NetPay.IsNegative() {
		return nil, &apperrors.InvalidPayrollInputError{Reason: "net pay is negative"}
	}

	var (
		sums      []*accountSum
		byCode    = make(map[string]*accountSum)
		otherCash = decimal.Zero
	)
	for _, row := range result.Rows {
		code, err := accounts.ForAdjustment(row.Row.Type)
		if err != nil {
			return nil, err
		}
		if code == accounts.Wages {
			continue
		}

		s, ok := byCode[code]
		if !ok {
			s = &accountSum{code: code, amount: decimal.Zero}
			byCode[code] = s
			sums = append(sums, s)
		}
		s.amount = s.amount.Add(row.SignedAmount())
		s.labels = appendLabel(s.labels, row.Definition.Label)

		if !row.Definition.IsTaxableBenefit() && !row.Definition.IsTaxFree() {
			otherCash = otherCash.Add(row.SignedAmount())
		}
	}

	lines := make([]domain.PostingLine, 0, len(sums)+8)
	add := func(code string, amount decimal.Decimal, description string) {
		if l, ok := accounting.SignedLine(code, amount, description); ok {
			lines = append(lines, l)
		}
	}

	add(accounts.Wages, result.CashGrossPay.Sub(otherCash), "Kontantlön")
	for _, s := range sums {
		add(s.code, s.amount, strings.Join(s.labels, ", "))
	}
	add(accounts.BenefitContra, result.TaxableBenefits.Neg(), "Motkonto skattepliktiga förmåner")
	add(accounts.WageSocialFees, result.WageSocialFees, "Arbetsgivaravgifter på kontantlön")
	add(accounts.BenefitSocialFees, result.BenefitSocialFees, "Arbetsgivaravgifter på förmåner")
	add(accounts.WithheldTax, result.WithheldTax.Neg(), "Avdragen preliminärskatt")
	add(accounts.SocialFeeLiability, result.WageSocialFees.Add(result.BenefitSocialFees).Neg(), "Skuld arbetsgivaravgifter")
	add(bank, result.NetPay.Neg(), "Utbetald nettolön")

	if err := accounting.ValidateBalance(lines); err != nil {
		return nil, fmt.Errorf("payroll postings do not balance: %w", err)
	}
	return lines, nil
}

func appendLabel(labels []string, label string) []string {
	for _, l := range labels {
		if l == label {
			return labels
		}
	}
	return append(labels, label)
}
