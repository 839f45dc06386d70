package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// AdjustmentType is a key in the closed catalog of payroll adjustment rows.
type AdjustmentType string

const (
	AdjOvertime          AdjustmentType = "overtime"
	AdjOvertimeQualified AdjustmentType = "overtime_qualified"
	AdjOnCall            AdjustmentType = "on_call"
	AdjStandby           AdjustmentType = "standby"
	AdjRiskPremium       AdjustmentType = "risk_premium"
	AdjOBSupplement      AdjustmentType = "ob_supplement"
	AdjBonus             AdjustmentType = "bonus"
	AdjCommission        AdjustmentType = "commission"
	AdjRetroactivePay    AdjustmentType = "retroactive_pay"
	AdjSickPay           AdjustmentType = "sick_pay"

	AdjSickLeaveDeduction     AdjustmentType = "sick_leave_deduction"
	AdjKarensavdrag           AdjustmentType = "karensavdrag"
	AdjParentalLeaveDeduction AdjustmentType = "parental_leave_deduction"
	AdjLeaveOfAbsence         AdjustmentType = "leave_of_absence"
	AdjVABDeduction           AdjustmentType = "vab_deduction"

	AdjVacationPay        AdjustmentType = "vacation_pay"
	AdjVacationSupplement AdjustmentType = "vacation_supplement"
	AdjVacationPayout     AdjustmentType = "vacation_payout"

	AdjBenefitHousing  AdjustmentType = "benefit_housing"
	AdjBenefitMeals    AdjustmentType = "benefit_meals"
	AdjBenefitCommute  AdjustmentType = "benefit_commute"
	AdjBenefitCar      AdjustmentType = "benefit_car"
	AdjBenefitFuel     AdjustmentType = "benefit_fuel"
	AdjBenefitInterest AdjustmentType = "benefit_interest"
	AdjBenefitComputer AdjustmentType = "benefit_computer"
	AdjBenefitOther    AdjustmentType = "benefit_other"

	AdjPerDiemDomestic AdjustmentType = "per_diem_domestic"
	AdjPerDiemForeign  AdjustmentType = "per_diem_foreign"
	AdjMileage         AdjustmentType = "mileage_allowance"

	AdjPerDiemTaxable AdjustmentType = "per_diem_taxable"
	AdjMileageTaxable AdjustmentType = "mileage_taxable"
)

// AdjustmentCategory groups adjustment types by how they are paid and posted.
type AdjustmentCategory string

const (
	CategoryWage             AdjustmentCategory = "WAGE"
	CategoryAbsence          AdjustmentCategory = "ABSENCE"
	CategoryVacation         AdjustmentCategory = "VACATION"
	CategoryBenefit          AdjustmentCategory = "BENEFIT"
	CategoryTaxFreeAllowance AdjustmentCategory = "TAX_FREE_ALLOWANCE"
	CategoryTaxableAllowance AdjustmentCategory = "TAXABLE_ALLOWANCE"
)

// TaxTreatment says whether a row is subject to withholding tax. Unspecified
// rows follow their effect on gross pay.
type TaxTreatment int

const (
	TaxUnspecified TaxTreatment = iota
	TaxTaxable
	TaxFree
)

// RateBasis names the derived rate a row is priced against when it carries
// neither a total nor a per-unit amount.
type RateBasis string

const (
	BasisNone   RateBasis = ""
	BasisHourly RateBasis = "HOURLY"
	BasisDaily  RateBasis = "DAILY"
	BasisWeekly RateBasis = "WEEKLY"
	BasisKarens RateBasis = "KARENS"
)

// AdjustmentDefinition holds the flags every row of a type inherits.
type AdjustmentDefinition struct {
	Type           AdjustmentType
	Label          string
	Category       AdjustmentCategory
	TaxTreatment   TaxTreatment
	AddsToGrossPay bool
	IsNegative     bool
	Basis          RateBasis
	Multiplier     decimal.Decimal
}

// IsTaxableBenefit reports whether rows of the type are benefits in kind.
func (d AdjustmentDefinition) IsTaxableBenefit() bool {
	return d.Category == CategoryBenefit
}

// IsTaxFree reports whether rows of the type are paid out without tax.
func (d AdjustmentDefinition) IsTaxFree() bool {
	return d.TaxTreatment == TaxFree
}

func wage(t AdjustmentType, label string, basis RateBasis, multiplier string) AdjustmentDefinition {
	return AdjustmentDefinition{Type: t, Label: label, Category: CategoryWage, TaxTreatment: TaxTaxable,
		AddsToGrossPay: true, Basis: basis, Multiplier: multiplierOf(multiplier)}
}

func absence(t AdjustmentType, label string, basis RateBasis) AdjustmentDefinition {
	return AdjustmentDefinition{Type: t, Label: label, Category: CategoryAbsence, TaxTreatment: TaxTaxable,
		IsNegative: true, Basis: basis, Multiplier: decimal.NewFromInt(1)}
}

func vacation(t AdjustmentType, label string) AdjustmentDefinition {
	return AdjustmentDefinition{Type: t, Label: label, Category: CategoryVacation, TaxTreatment: TaxTaxable,
		AddsToGrossPay: true, Multiplier: decimal.NewFromInt(1)}
}

func benefit(t AdjustmentType, label string) AdjustmentDefinition {
	return AdjustmentDefinition{Type: t, Label: label, Category: CategoryBenefit, TaxTreatment: TaxTaxable,
		AddsToGrossPay: true, Multiplier: decimal.NewFromInt(1)}
}

func allowance(t AdjustmentType, label string, taxFree bool) AdjustmentDefinition {
	if taxFree {
		return AdjustmentDefinition{Type: t, Label: label, Category: CategoryTaxFreeAllowance, TaxTreatment: TaxFree,
			Multiplier: decimal.NewFromInt(1)}
	}
	return AdjustmentDefinition{Type: t, Label: label, Category: CategoryTaxableAllowance, TaxTreatment: TaxTaxable,
		AddsToGrossPay: true, Multiplier: decimal.NewFromInt(1)}
}

func multiplierOf(s string) decimal.Decimal {
	if s == "" {
		return decimal.NewFromInt(1)
	}
	return decimal.RequireFromString(s)
}

var adjustmentCatalog = map[AdjustmentType]AdjustmentDefinition{
	AdjOvertime:          wage(AdjOvertime, "Övertid", BasisHourly, "1.5"),
	AdjOvertimeQualified: wage(AdjOvertimeQualified, "Kvalificerad övertid", BasisHourly, "2"),
	AdjOnCall:            wage(AdjOnCall, "Jourersättning", BasisNone, ""),
	AdjStandby:           wage(AdjStandby, "Beredskapsersättning", BasisNone, ""),
	AdjRiskPremium:       wage(AdjRiskPremium, "Risktillägg", BasisNone, ""),
	AdjOBSupplement:      wage(AdjOBSupplement, "OB-tillägg", BasisNone, ""),
	AdjBonus:             wage(AdjBonus, "Bonus", BasisNone, ""),
	AdjCommission:        wage(AdjCommission, "Provision", BasisNone, ""),
	AdjRetroactivePay:    wage(AdjRetroactivePay, "Retroaktiv lön", BasisNone, ""),
	AdjSickPay:           wage(AdjSickPay, "Sjuklön", BasisDaily, "0.8"),

	AdjSickLeaveDeduction:     absence(AdjSickLeaveDeduction, "Sjukavdrag", BasisDaily),
	AdjKarensavdrag:           absence(AdjKarensavdrag, "Karensavdrag", BasisKarens),
	AdjParentalLeaveDeduction: absence(AdjParentalLeaveDeduction, "Avdrag föräldraledighet", BasisDaily),
	AdjLeaveOfAbsence:         absence(AdjLeaveOfAbsence, "Tjänstledighet", BasisDaily),
	AdjVABDeduction:           absence(AdjVABDeduction, "Avdrag VAB", BasisDaily),

	AdjVacationPay:        vacation(AdjVacationPay, "Semesterlön"),
	AdjVacationSupplement: vacation(AdjVacationSupplement, "Semestertillägg"),
	AdjVacationPayout:     vacation(AdjVacationPayout, "Semesterersättning"),

	AdjBenefitHousing:  benefit(AdjBenefitHousing, "Bostadsförmån"),
	AdjBenefitMeals:    benefit(AdjBenefitMeals, "Kostförmån"),
	AdjBenefitCommute:  benefit(AdjBenefitCommute, "Förmån resor till och från arbetet"),
	AdjBenefitCar:      benefit(AdjBenefitCar, "Bilförmån"),
	AdjBenefitFuel:     benefit(AdjBenefitFuel, "Drivmedelsförmån"),
	AdjBenefitInterest: benefit(AdjBenefitInterest, "Ränteförmån"),
	AdjBenefitComputer: benefit(AdjBenefitComputer, "Datorförmån"),
	AdjBenefitOther:    benefit(AdjBenefitOther, "Övrig förmån"),

	AdjPerDiemDomestic: allowance(AdjPerDiemDomestic, "Skattefritt traktamente Sverige", true),
	AdjPerDiemForeign:  allowance(AdjPerDiemForeign, "Skattefritt traktamente utland", true),
	AdjMileage:         allowance(AdjMileage, "Skattefri bilersättning", true),

	AdjPerDiemTaxable: allowance(AdjPerDiemTaxable, "Skattepliktigt traktamente", false),
	AdjMileageTaxable: allowance(AdjMileageTaxable, "Skattepliktig bilersättning", false),
}

// LookupAdjustment returns the catalog definition for t.
func LookupAdjustment(t AdjustmentType) (AdjustmentDefinition, bool) {
	def, ok := adjustmentCatalog[t]
	return def, ok
}

// AdjustmentTypes lists every catalog type in stable order.
func AdjustmentTypes() []AdjustmentType {
	types := make([]AdjustmentType, 0, len(adjustmentCatalog))
	for t := range adjustmentCatalog {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// AdjustmentRow is one variable line on a payslip. Total takes precedence over
// Quantity × PerUnitAmount.
type AdjustmentRow struct {
	Type          AdjustmentType   `json:"type" yaml:"type" binding:"required"`
	Quantity      decimal.Decimal  `json:"quantity" yaml:"quantity"`
	PerUnitAmount *decimal.Decimal `json:"perUnitAmount,omitempty" yaml:"perUnitAmount,omitempty"`
	Total         *decimal.Decimal `json:"total,omitempty" yaml:"total,omitempty"`
	Description   string           `json:"description,omitempty" yaml:"description,omitempty"`
}

// ComputedRow is an adjustment row with its resolved definition and amount.
// Amount is always non-negative; the definition gives its sign.
type ComputedRow struct {
	Row        AdjustmentRow        `json:"row" yaml:"row"`
	Definition AdjustmentDefinition `json:"-" yaml:"-"`
	Amount     decimal.Decimal      `json:"amount" yaml:"amount"`
}

// SignedAmount is the row's effect on the account it posts to.
func (r ComputedRow) SignedAmount() decimal.Decimal {
	if r.Definition.IsNegative {
		return r.Amount.Neg()
	}
	return r.Amount
}

// PayrollResult is the derived outcome of one payroll calculation.
type PayrollResult struct {
	HourlyRate         decimal.Decimal `json:"hourlyRate" yaml:"hourlyRate"`
	DailyRate          decimal.Decimal `json:"dailyRate" yaml:"dailyRate"`
	WeeklyRate         decimal.Decimal `json:"weeklyRate" yaml:"weeklyRate"`
	KarensAmount       decimal.Decimal `json:"karensAmount" yaml:"karensAmount"`
	GrossPay           decimal.Decimal `json:"grossPay" yaml:"grossPay"`
	CashGrossPay       decimal.Decimal `json:"cashGrossPay" yaml:"cashGrossPay"` // kontantlön
	TaxableBenefits    decimal.Decimal `json:"taxableBenefits" yaml:"taxableBenefits"`
	TaxFreeAllowances  decimal.Decimal `json:"taxFreeAllowances" yaml:"taxFreeAllowances"`
	WithheldTax        decimal.Decimal `json:"withheldTax" yaml:"withheldTax"`
	WageSocialFees     decimal.Decimal `json:"wageSocialFees" yaml:"wageSocialFees"`
	BenefitSocialFees  decimal.Decimal `json:"benefitSocialFees" yaml:"benefitSocialFees"`
	EmployerSocialFees decimal.Decimal `json:"employerSocialFees" yaml:"employerSocialFees"`
	NetPay             decimal.Decimal `json:"netPay" yaml:"netPay"`
	TotalEmployerCost  decimal.Decimal `json:"totalEmployerCost" yaml:"totalEmployerCost"`
	Rows               []ComputedRow   `json:"rows" yaml:"rows"`
}
