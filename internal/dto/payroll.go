package dto

import (
	"time"

	"github.com/SscSPs/bokforing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PayrollCalculateRequest is the input of a payroll calculation. Zero tax
// table or column falls back to the configured defaults.
type PayrollCalculateRequest struct {
	BaseSalary           decimal.Decimal        `json:"baseSalary" yaml:"baseSalary" binding:"required"`
	ContractHoursPerWeek decimal.Decimal        `json:"contractHoursPerWeek" yaml:"contractHoursPerWeek" binding:"required"`
	TaxTable             int                    `json:"taxTable" yaml:"taxTable" binding:"omitempty,min=29,max=42"`
	TaxColumn            int                    `json:"taxColumn" yaml:"taxColumn" binding:"omitempty,min=1,max=6"`
	Rows                 []domain.AdjustmentRow `json:"rows" yaml:"rows" binding:"dive"`
}

// PayrollRunRequest calculates a payslip and books it in the ledger.
type PayrollRunRequest struct {
	PayrollCalculateRequest `yaml:",inline"`
	EmployeeName            string    `json:"employeeName" yaml:"employeeName" binding:"required,max=100"`
	Period                  string    `json:"period" yaml:"period" binding:"required,max=20"` // e.g. "2025-03"
	PayDate                 time.Time `json:"payDate" yaml:"payDate" binding:"required"`
}

// PayrollPreviewResponse holds a calculation and the postings it would create.
type PayrollPreviewResponse struct {
	Result domain.PayrollResult  `json:"result" yaml:"result"`
	Lines  []PostingLineResponse `json:"lines" yaml:"lines"`
}

// PayrollRunResponse is returned after a payroll run was booked.
type PayrollRunResponse struct {
	TransactionID string `json:"transactionID"`
	PayrollPreviewResponse
}
