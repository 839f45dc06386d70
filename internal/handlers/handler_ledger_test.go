package handlers_test

import (
	"errors"
	"net/http"
	"time"

	"github.com/SscSPs/bokforing_app/internal/apperrors"
	"github.com/SscSPs/bokforing_app/internal/core/domain"
	"github.com/SscSPs/bokforing_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func createTxnBody(debitCode, kreditCode string) map[string]any {
	return map[string]any{
		"date":        "2025-03-01T00:00:00Z",
		"description": "Kontorsmaterial",
		"lines": []map[string]any{
			{"accountCode": debitCode, "debit": "1000", "kredit": "0"},
			{"accountCode": kreditCode, "debit": "0", "kredit": "1000"},
		},
	}
}

func (suite *HandlersTestSuite) TestCreateTransaction_Success() {
	suite.mockLedgerService.On("CreateTransaction", mock.Anything,
		mock.MatchedBy(func(req domain.NewLedgerTransaction) bool {
			return req.OwnerID == suite.ownerID &&
				len(req.Lines) == 2 &&
				req.Lines[0].AccountCode == "6110" &&
				req.Lines[0].Debit.Equal(decimal.NewFromInt(1000)) &&
				req.Date.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
		}),
	).Return(&domain.LedgerTransaction{ID: "txn-1", Lines: make([]domain.PostingLine, 2)}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/ledger/transactions", createTxnBody("6110", "1930"))

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	env := decodeEnvelope[dto.CreateLedgerTransactionResponse](suite, w)
	suite.True(env.Success)
	suite.Equal("txn-1", env.Data.ID)
}

func (suite *HandlersTestSuite) TestCreateTransaction_InvalidAccountCode() {
	w := suite.do(http.MethodPost, "/api/v1/ledger/transactions", createTxnBody("61", "1930"))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestCreateTransaction_MalformedJSON() {
	w := suite.do(http.MethodPost, "/api/v1/ledger/transactions", `{"date":`)

	suite.Equal(http.StatusBadRequest, w.Code)
	env := decodeEnvelope[any](suite, w)
	suite.False(env.Success)
}

func (suite *HandlersTestSuite) TestCreateTransaction_Unbalanced() {
	suite.mockLedgerService.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(nil, &apperrors.UnbalancedTransactionError{
			TotalDebit:  decimal.NewFromInt(1000),
			TotalKredit: decimal.NewFromInt(900),
		}).Once()

	w := suite.do(http.MethodPost, "/api/v1/ledger/transactions", createTxnBody("6110", "1930"))

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	env := decodeEnvelope[any](suite, w)
	suite.Contains(env.Error, "unbalanced transaction")
}

func (suite *HandlersTestSuite) TestCreateTransaction_InternalErrorIsNotLeaked() {
	suite.mockLedgerService.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(nil, errors.New("pq: connection refused")).Once()

	w := suite.do(http.MethodPost, "/api/v1/ledger/transactions", createTxnBody("6110", "1930"))

	suite.Equal(http.StatusInternalServerError, w.Code)
	env := decodeEnvelope[any](suite, w)
	suite.Equal("Failed to create transaction", env.Error)
}

func (suite *HandlersTestSuite) TestGetTransaction_Success() {
	txn := &domain.LedgerTransaction{
		ID:          "txn-1",
		OwnerID:     suite.ownerID,
		Date:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Description: "Hyra",
		Lines: []domain.PostingLine{
			{AccountCode: "5010", Debit: decimal.NewFromInt(8000)},
			{AccountCode: "1930", Kredit: decimal.NewFromInt(8000)},
		},
	}
	suite.mockLedgerService.On("GetTransaction", mock.Anything, "txn-1", suite.ownerID).Return(txn, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/ledger/transactions/txn-1", nil)

	suite.Equal(http.StatusOK, w.Code)
	env := decodeEnvelope[dto.LedgerTransactionResponse](suite, w)
	suite.Equal("Hyra", env.Data.Description)
	suite.Require().Len(env.Data.Lines, 2)
	suite.Equal("5010", env.Data.Lines[0].AccountCode)
	suite.True(env.Data.Lines[1].Kredit.Equal(decimal.NewFromInt(8000)))
}

func (suite *HandlersTestSuite) TestGetTransaction_OtherOwnerIsNotFound() {
	suite.mockLedgerService.On("GetTransaction", mock.Anything, "txn-9", suite.ownerID).
		Return(nil, &apperrors.NotOwnedError{Resource: "ledger transaction", ID: "txn-9"}).Once()

	w := suite.do(http.MethodGet, "/api/v1/ledger/transactions/txn-9", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	env := decodeEnvelope[any](suite, w)
	suite.Equal("ledger transaction txn-9 not found", env.Error)
}

func (suite *HandlersTestSuite) TestGetTransaction_MissingAndForeignBodiesMatch() {
	suite.mockLedgerService.On("GetTransaction", mock.Anything, "txn-9", suite.ownerID).
		Return(nil, &apperrors.NotOwnedError{Resource: "ledger transaction", ID: "txn-9"}).Once()
	foreign := suite.do(http.MethodGet, "/api/v1/ledger/transactions/txn-9", nil)

	suite.mockLedgerService.On("GetTransaction", mock.Anything, "txn-9", suite.ownerID).
		Return(nil, &apperrors.NotFoundError{Resource: "ledger transaction", ID: "txn-9"}).Once()
	missing := suite.do(http.MethodGet, "/api/v1/ledger/transactions/txn-9", nil)

	suite.Equal(http.StatusNotFound, foreign.Code)
	suite.Equal(foreign.Code, missing.Code)
	suite.JSONEq(foreign.Body.String(), missing.Body.String())
}

func (suite *HandlersTestSuite) TestListTransactions_PassesCursor() {
	next := "abc"
	suite.mockLedgerService.On("ListTransactions", mock.Anything, suite.ownerID,
		mock.MatchedBy(func(p dto.ListLedgerTransactionsParams) bool {
			return p.Limit == 5 && p.NextToken != nil && *p.NextToken == "tok"
		}),
	).Return(&dto.ListLedgerTransactionsResponse{
		Transactions: []dto.LedgerTransactionResponse{{ID: "a"}, {ID: "b"}},
		NextToken:    &next,
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/ledger/transactions?limit=5&nextToken=tok", nil)

	suite.Equal(http.StatusOK, w.Code)
	env := decodeEnvelope[dto.ListLedgerTransactionsResponse](suite, w)
	suite.Len(env.Data.Transactions, 2)
	suite.Require().NotNil(env.Data.NextToken)
	suite.Equal("abc", *env.Data.NextToken)
}

func (suite *HandlersTestSuite) TestListTransactions_LimitOutOfRange() {
	w := suite.do(http.MethodGet, "/api/v1/ledger/transactions?limit=500", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestListTransactions_BadToken() {
	suite.mockLedgerService.On("ListTransactions", mock.Anything, suite.ownerID, mock.Anything).
		Return(nil, errors.Join(apperrors.ErrValidation, errors.New("invalid next token"))).Once()

	w := suite.do(http.MethodGet, "/api/v1/ledger/transactions?nextToken=bogus", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestDeleteTransaction_MissingIsNoop() {
	suite.mockLedgerService.On("DeleteTransaction", mock.Anything, "gone", suite.ownerID).Return(false, nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/ledger/transactions/gone", nil)

	suite.Equal(http.StatusOK, w.Code)
	env := decodeEnvelope[dto.DeleteLedgerTransactionResponse](suite, w)
	suite.False(env.Data.Deleted)
}
