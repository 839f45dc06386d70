package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bokforing_app/internal/apperrors"
	"github.com/SscSPs/bokforing_app/internal/core/accounts"
	"github.com/SscSPs/bokforing_app/internal/core/domain"
	"github.com/SscSPs/bokforing_app/internal/core/payroll"
	portssvc "github.com/SscSPs/bokforing_app/internal/core/ports/services"
	"github.com/SscSPs/bokforing_app/internal/dto"
)

// Default withholding table and column used when a request leaves them zero.
const (
	DefaultTaxTable  = 32
	DefaultTaxColumn = 1
)

// payrollService calculates payslips and books them through the ledger.
type payrollService struct {
	BaseService
	calculator  *payroll.Calculator
	ledgerSvc   portssvc.LedgerWriterSvc
	taxTable    int
	taxColumn   int
	bankAccount string
}

// PayrollServiceOption is a function that configures a payrollService
type PayrollServiceOption func(*payrollService)

// WithTaxDefaults sets the withholding table and column applied to requests
// that do not carry their own.
func WithTaxDefaults(table, column int) PayrollServiceOption {
	return func(s *payrollService) {
		s.taxTable = table
		s.taxColumn = column
	}
}

// WithPayrollBankAccount sets the account net pay is paid out from.
func WithPayrollBankAccount(code string) PayrollServiceOption {
	return func(s *payrollService) {
		s.bankAccount = code
	}
}

// NewPayrollService creates a new payroll service.
func NewPayrollService(calculator *payroll.Calculator, ledgerSvc portssvc.LedgerWriterSvc, options ...PayrollServiceOption) portssvc.PayrollSvcFacade {
	svc := &payrollService{
		calculator:  calculator,
		ledgerSvc:   ledgerSvc,
		taxTable:    DefaultTaxTable,
		taxColumn:   DefaultTaxColumn,
		bankAccount: accounts.Bank,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PayrollSvcFacade = (*payrollService)(nil)

func (s *payrollService) toInput(req dto.PayrollCalculateRequest) payroll.Input {
	in := payroll.Input{
		BaseSalary:           req.BaseSalary,
		ContractHoursPerWeek: req.ContractHoursPerWeek,
		TaxTable:             req.TaxTable,
		TaxColumn:            req.TaxColumn,
		Rows:                 req.Rows,
	}
	if in.TaxTable == 0 {
		in.TaxTable = s.taxTable
	}
	if in.TaxColumn == 0 {
		in.TaxColumn = s.taxColumn
	}
	return in
}

// Calculate implements portssvc.PayrollCalculatorSvc
func (s *payrollService) Calculate(ctx context.Context, req dto.PayrollCalculateRequest) (*domain.PayrollResult, error) {
	in := s.toInput(req)
	result, err := s.calculator.Calculate(in)
	if err != nil {
		s.LogDebug(ctx, "Payroll calculation rejected", slog.String("error", err.Error()))
		return nil, err
	}
	s.LogDebug(ctx, "Payroll calculated",
		slog.String("gross_pay", result.GrossPay.StringFixed(2)),
		slog.Int("tax_table", in.TaxTable),
		slog.Int("tax_column", in.TaxColumn))
	return &result, nil
}

// Preview implements portssvc.PayrollCalculatorSvc
func (s *payrollService) Preview(ctx context.Context, req dto.PayrollCalculateRequest) (*dto.PayrollPreviewResponse, error) {
	result, err := s.Calculate(ctx, req)
	if err != nil {
		return nil, err
	}
	lines, err := payroll.BuildPostings(*result, payroll.Accounts{Bank: s.bankAccount})
	if err != nil {
		return nil, err
	}
	return &dto.PayrollPreviewResponse{
		Result: *result,
		Lines:  dto.ToPostingLineResponses(lines),
	}, nil
}

// Run implements portssvc.PayrollRunnerSvc
func (s *payrollService) Run(ctx context.Context, ownerID string, req dto.PayrollRunRequest) (*dto.PayrollRunResponse, error) {
	if req.PayDate.IsZero() {
		return nil, fmt.Errorf("%w: pay date is required", apperrors.ErrValidation)
	}

	result, err := s.Calculate(ctx, req.PayrollCalculateRequest)
	if err != nil {
		return nil, err
	}
	lines, err := payroll.BuildPostings(*result, payroll.Accounts{Bank: s.bankAccount})
	if err != nil {
		return nil, err
	}

	txn, err := s.ledgerSvc.CreateTransaction(ctx, domain.NewLedgerTransaction{
		OwnerID:     ownerID,
		Date:        req.PayDate,
		Description: fmt.Sprintf("Lön %s %s", req.Period, req.EmployeeName),
		Lines:       lines,
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Payroll booked",
		slog.String("transaction_id", txn.ID),
		slog.String("period", req.Period),
		slog.String("net_pay", result.NetPay.StringFixed(2)))
	return &dto.PayrollRunResponse{
		TransactionID: txn.ID,
		PayrollPreviewResponse: dto.PayrollPreviewResponse{
			Result: *result,
			Lines:  dto.ToPostingLineResponses(txn.Lines),
		},
	}, nil
}
