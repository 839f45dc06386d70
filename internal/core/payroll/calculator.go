// Package payroll computes payslips and turns them into balanced ledger
// postings. Everything here is pure and safe for concurrent use.
package payroll

import (
	"fmt"

	"github.com/SscSPs/bokforing_app/internal/apperrors"
	"github.com/SscSPs/bokforing_app/internal/core/domain"
	"github.com/SscSPs/bokforing_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

var (
	// SocialFeeRate is the full statutory employer contribution (arbetsgivaravgift).
	SocialFeeRate = decimal.RequireFromString("0.3142")

	dailyRateFactor = decimal.RequireFromString("0.046")
	sickPayFactor   = decimal.RequireFromString("0.8")
	karensShare     = decimal.RequireFromString("0.2")
	monthsPerYear   = decimal.NewFromInt(12)
	weeksPerYear    = decimal.NewFromInt(52)
)

// Input is everything a payroll calculation depends on.
type Input struct {
	BaseSalary           decimal.Decimal        `json:"baseSalary" yaml:"baseSalary"`
	ContractHoursPerWeek decimal.Decimal        `json:"contractHoursPerWeek" yaml:"contractHoursPerWeek"`
	TaxTable             int                    `json:"taxTable" yaml:"taxTable"`
	TaxColumn            int                    `json:"taxColumn" yaml:"taxColumn"`
	Rows                 []domain.AdjustmentRow `json:"rows" yaml:"rows"`
}

// Rates are the salary-derived unit rates.
type Rates struct {
	Hourly decimal.Decimal
	Daily  decimal.Decimal
	Weekly decimal.Decimal
	Karens decimal.Decimal
}

// Calculator computes payroll results against a set of withholding tables.
type Calculator struct {
	tables *WithholdingTables
}

// NewCalculator creates a Calculator. A nil tables argument uses the embedded tables.
func NewCalculator(tables *WithholdingTables) (*Calculator, error) {
	if tables == nil {
		var err error
		tables, err = DefaultWithholdingTables()
		if err != nil {
			return nil, err
		}
	}
	return &Calculator{tables: tables}, nil
}

// Tables returns the withholding tables the calculator uses.
func (c *Calculator) Tables() *WithholdingTables {
	return c.tables
}

// ComputeRates derives hourly, daily, weekly and karens amounts from the
// monthly base salary.
func ComputeRates(baseSalary, hoursPerWeek decimal.Decimal) (Rates, error) {
	if !hoursPerWeek.IsPositive() {
		return Rates{}, invalidInput("contract hours per week must be positive")
	}
	yearly := baseSalary.Mul(monthsPerYear)
	weekly := yearly.Div(weeksPerYear)
	return Rates{
		Hourly: accounting.Round2(yearly.Div(weeksPerYear.Mul(hoursPerWeek))),
		Daily:  accounting.Round2(baseSalary.Mul(dailyRateFactor)),
		Weekly: accounting.Round2(weekly),
		Karens: accounting.Round2(weekly.Mul(sickPayFactor).Mul(karensShare)),
	}, nil
}

// Calculate computes gross pay, withheld tax, employer social fees and net pay.
func (c *Calculator) Calculate(in Input) (domain.PayrollResult, error) {
	if in.BaseSalary.IsNegative() {
		return domain.PayrollResult{}, invalidInput("base salary must not be negative")
	}
	rates, err := ComputeRates(in.BaseSalary, in.ContractHoursPerWeek)
	if err != nil {
		return domain.PayrollResult{}, err
	}

	base := accounting.Round2(in.BaseSalary)
	adds, negatives := decimal.Zero, decimal.Zero
	benefits, taxFree := decimal.Zero, decimal.Zero
	computed := make([]domain.ComputedRow, 0, len(in.Rows))

	for i, row := range in.Rows {
		def, ok := domain.LookupAdjustment(row.Type)
		if !ok {
			return domain.PayrollResult{}, &apperrors.UnmappedAdjustmentTypeError{Type: string(row.Type)}
		}
		amount, err := rowAmount(i, row, def, rates)
		if err != nil {
			return domain.PayrollResult{}, err
		}

		switch {
		case def.AddsToGrossPay:
			adds = adds.Add(amount)
		case def.IsNegative:
			negatives = negatives.Add(amount)
		}
		if def.IsTaxableBenefit() {
			benefits = benefits.Add(amount)
		}
		if def.IsTaxFree() {
			taxFree = taxFree.Add(amount)
		}
		computed = append(computed, domain.ComputedRow{Row: row, Definition: def, Amount: amount})
	}

	gross := base.Add(adds).Sub(negatives)
	if gross.IsNegative() {
		return domain.PayrollResult{}, invalidInput(fmt.Sprintf("gross pay %s is negative", gross.StringFixed(2)))
	}
	cash := gross.Sub(benefits)
	if cash.IsNegative() {
		return domain.PayrollResult{}, invalidInput(fmt.Sprintf("cash wage %s is negative", cash.StringFixed(2)))
	}

	tax, err := c.tables.Lookup(in.TaxTable, in.TaxColumn, gross)
	if err != nil {
		return domain.PayrollResult{}, err
	}

	wageFees := accounting.Round2(cash.Mul(SocialFeeRate))
	benefitFees := accounting.Round2(benefits.Mul(SocialFeeRate))
	fees := wageFees.Add(benefitFees)

	// Benefits in kind are taxed as part of gross but never paid out.
	net := gross.Sub(tax).Add(taxFree).Sub(benefits)
	if net.IsNegative() {
		return domain.PayrollResult{}, invalidInput(fmt.Sprintf("net pay %s is negative", net.StringFixed(2)))
	}

	return domain.PayrollResult{
		HourlyRate:         rates.Hourly,
		DailyRate:          rates.Daily,
		WeeklyRate:         rates.Weekly,
		KarensAmount:       rates.Karens,
		GrossPay:           gross,
		CashGrossPay:       cash,
		TaxableBenefits:    benefits,
		TaxFreeAllowances:  taxFree,
		WithheldTax:        tax,
		WageSocialFees:     wageFees,
		BenefitSocialFees:  benefitFees,
		EmployerSocialFees: fees,
		NetPay:             net,
		TotalEmployerCost:  gross.Add(fees).Add(taxFree),
		Rows:               computed,
	}, nil
}

func rowAmount(i int, row domain.AdjustmentRow, def domain.AdjustmentDefinition, rates Rates) (decimal.Decimal, error) {
	if row.Quantity.IsNegative() {
		return decimal.Zero, invalidInput(fmt.Sprintf("row %d (%s): quantity must not be negative", i+1, row.Type))
	}

	switch {
	case row.Total != nil:
		if row.Total.IsNegative() {
			return decimal.Zero, invalidInput(fmt.Sprintf("row %d (%s): total must not be negative", i+1, row.Type))
		}
		return accounting.Round2(*row.Total), nil
	case row.PerUnitAmount != nil:
		if row.PerUnitAmount.IsNegative() {
			return decimal.Zero, invalidInput(fmt.Sprintf("row %d (%s): per-unit amount must not be negative", i+1, row.Type))
		}
		return accounting.Round2(row.Quantity.Mul(*row.PerUnitAmount)), nil
	}

	var rate decimal.Decimal
	switch def.Basis {
	case domain.BasisHourly:
		rate = rates.Hourly
	case domain.BasisDaily:
		rate = rates.Daily
	case domain.BasisWeekly:
		rate = rates.Weekly
	case domain.BasisKarens:
		rate = rates.Karens
	default:
		return decimal.Zero, invalidInput(fmt.Sprintf("row %d (%s): total or per-unit amount is required", i+1, row.Type))
	}
	return accounting.Round2(row.Quantity.Mul(rate).Mul(def.Multiplier)), nil
}

func invalidInput(reason string) error {
	return &apperrors.InvalidPayrollInputError{Reason: reason}
}
