// Package accounts holds the BAS chart knowledge the ledger core relies on:
// code normalization, account classes and the payroll type to account table.
package accounts

import (
	"fmt"
	"strings"

	"github.com/SscSPs/bokforing_app/internal/apperrors"
	"github.com/SscSPs/bokforing_app/internal/core/domain"
)

// Well-known accounts.
const (
	Bank               = "1930"
	AccountsReceivable = "1510"
	AccountsPayable    = "2440"
	WithheldTax        = "2710"
	SocialFeeLiability = "2731"
	Wages              = "7210"
	VacationPay        = "7285"
	BenefitContra      = "7399"
	WageSocialFees     = "7510"
	BenefitSocialFees  = "7515"
	PerDiemDomestic    = "7321"
	PerDiemTaxable     = "7322"
	PerDiemForeign     = "7323"
	MileageAllowance   = "7331"
	MileageTaxable     = "7332"
	BenefitHousing     = "7381"
	BenefitMeals       = "7382"
	BenefitCommute     = "7383"
	BenefitCar         = "7385"
	BenefitInterest    = "7386"
	BenefitComputer    = "7387"
	BenefitOther       = "7389"
)

// Normalize trims code and checks that it is a 4-digit BAS code with a valid
// leading digit.
func Normalize(code string) (string, error) {
	c := strings.TrimSpace(code)
	if len(c) != 4 {
		return "", fmt.Errorf("%w: account code %q must have 4 digits", apperrors.ErrValidation, code)
	}
	for _, r := range c {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: account code %q must be numeric", apperrors.ErrValidation, code)
		}
	}
	if _, err := ClassOf(c); err != nil {
		return "", err
	}
	return c, nil
}

// ClassOf returns the account class implied by the leading digit.
func ClassOf(code string) (domain.AccountClass, error) {
	if code == "" {
		return "", fmt.Errorf("%w: empty account code", apperrors.ErrValidation)
	}
	switch code[0] {
	case '1':
		return domain.Asset, nil
	case '2':
		return domain.Liability, nil
	case '3':
		return domain.Revenue, nil
	case '4', '5', '6', '7', '8':
		return domain.Expense, nil
	default:
		return "", fmt.Errorf("%w: account code %q has no account class", apperrors.ErrValidation, code)
	}
}

// ForAdjustment maps a payroll adjustment type to the account its rows post
// to. Every catalog type must have a case here.
func ForAdjustment(t domain.AdjustmentType) (string, error) {
	switch t {
	case domain.AdjOvertime, domain.AdjOvertimeQualified, domain.AdjOnCall, domain.AdjStandby,
		domain.AdjRiskPremium, domain.AdjOBSupplement, domain.AdjBonus, domain.AdjCommission,
		domain.AdjRetroactivePay, domain.AdjSickPay:
		return Wages, nil
	case domain.AdjSickLeaveDeduction, domain.AdjKarensavdrag, domain.AdjParentalLeaveDeduction,
		domain.AdjLeaveOfAbsence, domain.AdjVABDeduction:
		return Wages, nil
	case domain.AdjVacationPay, domain.AdjVacationSupplement, domain.AdjVacationPayout:
		return VacationPay, nil
	case domain.AdjBenefitHousing:
		return BenefitHousing, nil
	case domain.AdjBenefitMeals:
		return BenefitMeals, nil
	case domain.AdjBenefitCommute:
		return BenefitCommute, nil
	case domain.AdjBenefitCar, domain.AdjBenefitFuel:
		return BenefitCar, nil
	case domain.AdjBenefitInterest:
		return BenefitInterest, nil
	case domain.AdjBenefitComputer:
		return BenefitComputer, nil
	case domain.AdjBenefitOther:
		return BenefitOther, nil
	case domain.AdjPerDiemDomestic:
		return PerDiemDomestic, nil
	case domain.AdjPerDiemForeign:
		return PerDiemForeign, nil
	case domain.AdjMileage:
		return MileageAllowance, nil
	case domain.AdjPerDiemTaxable:
		return PerDiemTaxable, nil
	case domain.AdjMileageTaxable:
		return MileageTaxable, nil
	default:
		return "", &apperrors.UnmappedAdjustmentTypeError{Type: string(t)}
	}
}
