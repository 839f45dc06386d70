package handlers_test

import (
	"net/http"
	"time"

	"github.com/SscSPs/bokforing_app/internal/apperrors"
	"github.com/SscSPs/bokforing_app/internal/core/domain"
	portssvc "github.com/SscSPs/bokforing_app/internal/core/ports/services"
	"github.com/SscSPs/bokforing_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func paidResult(kind domain.DocumentKind, txnID string) *portssvc.PostingResult {
	paid := domain.Paid
	payDate := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	return &portssvc.PostingResult{
		Transaction: &domain.LedgerTransaction{ID: txnID},
		Transition:  domain.DocumentTransition{Kind: domain.TransitionPayment, PaymentStatus: &paid},
		Document: &domain.SourceDocument{
			ID:                   "doc-1",
			Kind:                 kind,
			Number:               "1001",
			StatusBookkept:       domain.Booked,
			StatusPayment:        domain.Paid,
			PaymentDate:          &payDate,
			PaymentTransactionID: &txnID,
		},
	}
}

func (suite *HandlersTestSuite) TestPostToInvoice_Payment() {
	suite.mockPostingService.On("PostToDocument", mock.Anything, suite.ownerID, domain.KindInvoice, "doc-1",
		mock.MatchedBy(func(req dto.PostToDocumentRequest) bool {
			return len(req.Lines) == 2 && req.Lines[1].AccountCode == "1510"
		}),
	).Return(paidResult(domain.KindInvoice, "txn-7"), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/invoices/doc-1/postings", createTxnBody("1930", "1510"))

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	env := decodeEnvelope[dto.DocumentPostingResponse](suite, w)
	suite.Equal("txn-7", env.Data.TransactionID)
	suite.Equal(string(domain.TransitionPayment), env.Data.Transition)
	suite.Equal(domain.Paid, env.Data.Document.StatusPayment)
	suite.Require().NotNil(env.Data.Document.PaymentTransactionID)
	suite.Equal("txn-7", *env.Data.Document.PaymentTransactionID)
}

func (suite *HandlersTestSuite) TestPostToSupplierInvoice_InvalidState() {
	suite.mockPostingService.On("PostToDocument", mock.Anything, suite.ownerID, domain.KindSupplierInvoice, "doc-2", mock.Anything).
		Return(nil, &apperrors.InvalidStateTransitionError{
			Document:  "supplier invoice doc-2",
			Operation: "register payment on",
			Reason:    "document is not bookkept",
		}).Once()

	w := suite.do(http.MethodPost, "/api/v1/supplier-invoices/doc-2/postings", createTxnBody("2440", "1930"))

	suite.Equal(http.StatusConflict, w.Code)
	env := decodeEnvelope[any](suite, w)
	suite.Contains(env.Error, "document is not bookkept")
}

func (suite *HandlersTestSuite) TestPostToInvoice_NotFound() {
	suite.mockPostingService.On("PostToDocument", mock.Anything, suite.ownerID, domain.KindInvoice, "nope", mock.Anything).
		Return(nil, &apperrors.NotOwnedError{Resource: "invoice", ID: "nope"}).Once()

	w := suite.do(http.MethodPost, "/api/v1/invoices/nope/postings", createTxnBody("1930", "1510"))

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestRegisterSupplierInvoicePayment() {
	suite.mockPostingService.On("RegisterPayment", mock.Anything, suite.ownerID, domain.KindSupplierInvoice, "doc-1",
		mock.MatchedBy(func(req dto.RegisterPaymentRequest) bool {
			return req.Amount.Equal(decimal.NewFromInt(1250)) && req.BankAccount == "1940"
		}),
	).Return(paidResult(domain.KindSupplierInvoice, "txn-8"), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/supplier-invoices/doc-1/payments", map[string]any{
		"date":        "2025-03-20T00:00:00Z",
		"amount":      "1250",
		"bankAccount": "1940",
	})

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	env := decodeEnvelope[dto.DocumentPostingResponse](suite, w)
	suite.Equal(domain.KindSupplierInvoice, env.Data.Document.Kind)
}

func (suite *HandlersTestSuite) TestRegisterPayment_InvalidBankAccountCode() {
	w := suite.do(http.MethodPost, "/api/v1/invoices/doc-1/payments", map[string]any{
		"date":        "2025-03-20T00:00:00Z",
		"amount":      "1250",
		"bankAccount": "19x0",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestDeleteSupplierInvoice() {
	suite.mockPostingService.On("DeleteSupplierInvoice", mock.Anything, suite.ownerID, "doc-1").Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/supplier-invoices/doc-1", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlersTestSuite) TestDeleteSupplierInvoice_NotFound() {
	suite.mockPostingService.On("DeleteSupplierInvoice", mock.Anything, suite.ownerID, "doc-x").
		Return(apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodDelete, "/api/v1/supplier-invoices/doc-x", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}
