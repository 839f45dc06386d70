package services

import (
	"context"

	"github.com/SscSPs/bokforing_app/internal/core/domain"
	"github.com/SscSPs/bokforing_app/internal/dto"
)

// PayrollCalculatorSvc computes payslips without side effects
type PayrollCalculatorSvc interface {
	// Calculate computes gross pay, tax, social fees and net pay.
	Calculate(ctx context.Context, req dto.PayrollCalculateRequest) (*domain.PayrollResult, error)

	// Preview computes the payslip and the ledger lines it would create.
	Preview(ctx context.Context, req dto.PayrollCalculateRequest) (*dto.PayrollPreviewResponse, error)
}

// PayrollRunnerSvc books payroll in the ledger
type PayrollRunnerSvc interface {
	// Run calculates the payslip and records its postings as one ledger transaction.
	Run(ctx context.Context, ownerID string, req dto.PayrollRunRequest) (*dto.PayrollRunResponse, error)
}

// PayrollSvcFacade combines all payroll-related service interfaces
type PayrollSvcFacade interface {
	PayrollCalculatorSvc
	PayrollRunnerSvc
}
