package handlers_test

import (
	"context"

	"github.com/SscSPs/bokforing_app/internal/core/domain"
	portssvc "github.com/SscSPs/bokforing_app/internal/core/ports/services"
	"github.com/SscSPs/bokforing_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock Services ---

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) ResolveCodes(ctx context.Context, codes []string) ([]string, error) {
	args := m.Called(ctx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetTransaction(ctx context.Context, transactionID, ownerID string) (*domain.LedgerTransaction, error) {
	args := m.Called(ctx, transactionID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerTransaction), args.Error(1)
}
func (m *MockLedgerService) ListTransactions(ctx context.Context, ownerID string, params dto.ListLedgerTransactionsParams) (*dto.ListLedgerTransactionsResponse, error) {
	args := m.Called(ctx, ownerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListLedgerTransactionsResponse), args.Error(1)
}
func (m *MockLedgerService) CreateTransaction(ctx context.Context, req domain.NewLedgerTransaction) (*domain.LedgerTransaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerTransaction), args.Error(1)
}
func (m *MockLedgerService) DeleteTransaction(ctx context.Context, transactionID, ownerID string) (bool, error) {
	args := m.Called(ctx, transactionID, ownerID)
	return args.Bool(0), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

type MockPostingService struct {
	mock.Mock
}

func (m *MockPostingService) PostToDocument(ctx context.Context, ownerID string, kind domain.DocumentKind, documentID string, req dto.PostToDocumentRequest) (*portssvc.PostingResult, error) {
	args := m.Called(ctx, ownerID, kind, documentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.PostingResult), args.Error(1)
}
func (m *MockPostingService) RegisterPayment(ctx context.Context, ownerID string, kind domain.DocumentKind, documentID string, req dto.RegisterPaymentRequest) (*portssvc.PostingResult, error) {
	args := m.Called(ctx, ownerID, kind, documentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.PostingResult), args.Error(1)
}
func (m *MockPostingService) DeleteSupplierInvoice(ctx context.Context, ownerID, documentID string) error {
	args := m.Called(ctx, ownerID, documentID)
	return args.Error(0)
}

var _ portssvc.DocumentPostingSvcFacade = (*MockPostingService)(nil)

type MockPayrollService struct {
	mock.Mock
}

func (m *MockPayrollService) Calculate(ctx context.Context, req dto.PayrollCalculateRequest) (*domain.PayrollResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollResult), args.Error(1)
}
func (m *MockPayrollService) Preview(ctx context.Context, req dto.PayrollCalculateRequest) (*dto.PayrollPreviewResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PayrollPreviewResponse), args.Error(1)
}
func (m *MockPayrollService) Run(ctx context.Context, ownerID string, req dto.PayrollRunRequest) (*dto.PayrollRunResponse, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PayrollRunResponse), args.Error(1)
}

var _ portssvc.PayrollSvcFacade = (*MockPayrollService)(nil)
