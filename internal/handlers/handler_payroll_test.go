package handlers_test

import (
	"net/http"

	"github.com/SscSPs/bokforing_app/internal/apperrors"
	"github.com/SscSPs/bokforing_app/internal/core/domain"
	"github.com/SscSPs/bokforing_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlersTestSuite) TestCalculatePayroll() {
	suite.mockPayrollService.On("Calculate", mock.Anything,
		mock.MatchedBy(func(req dto.PayrollCalculateRequest) bool {
			return req.BaseSalary.Equal(decimal.NewFromInt(35000)) &&
				len(req.Rows) == 1 && req.Rows[0].Type == domain.AdjOvertime
		}),
	).Return(&domain.PayrollResult{
		GrossPay:    decimal.NewFromInt(36000),
		WithheldTax: decimal.NewFromInt(9000),
		NetPay:      decimal.NewFromInt(27000),
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/payroll/calculate", map[string]any{
		"baseSalary":           "35000",
		"contractHoursPerWeek": "40",
		"rows": []map[string]any{
			{"type": "overtime", "quantity": "4"},
		},
	})

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	env := decodeEnvelope[domain.PayrollResult](suite, w)
	suite.True(env.Data.NetPay.Equal(decimal.NewFromInt(27000)))
}

func (suite *HandlersTestSuite) TestCalculatePayroll_TaxTableOutOfRange() {
	w := suite.do(http.MethodPost, "/api/v1/payroll/calculate", map[string]any{
		"baseSalary":           "35000",
		"contractHoursPerWeek": "40",
		"taxTable":             50,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestPreviewPayroll_InvalidInput() {
	suite.mockPayrollService.On("Preview", mock.Anything, mock.Anything).
		Return(nil, &apperrors.InvalidPayrollInputError{Reason: "net pay is negative"}).Once()

	w := suite.do(http.MethodPost, "/api/v1/payroll/preview", map[string]any{
		"baseSalary":           "1000",
		"contractHoursPerWeek": "40",
	})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	env := decodeEnvelope[any](suite, w)
	suite.Equal("invalid payroll input: net pay is negative", env.Error)
}

func (suite *HandlersTestSuite) TestRunPayroll() {
	suite.mockPayrollService.On("Run", mock.Anything, suite.ownerID,
		mock.MatchedBy(func(req dto.PayrollRunRequest) bool {
			return req.EmployeeName == "Anna Svensson" && req.Period == "2025-03"
		}),
	).Return(&dto.PayrollRunResponse{TransactionID: "txn-pay"}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/payroll/runs", map[string]any{
		"baseSalary":           "35000",
		"contractHoursPerWeek": "40",
		"employeeName":         "Anna Svensson",
		"period":               "2025-03",
		"payDate":              "2025-03-25T00:00:00Z",
	})

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	env := decodeEnvelope[dto.PayrollRunResponse](suite, w)
	suite.Equal("txn-pay", env.Data.TransactionID)
}

func (suite *HandlersTestSuite) TestRunPayroll_UnmappedType() {
	suite.mockPayrollService.On("Run", mock.Anything, suite.ownerID, mock.Anything).
		Return(nil, &apperrors.UnmappedAdjustmentTypeError{Type: "tips"}).Once()

	w := suite.do(http.MethodPost, "/api/v1/payroll/runs", map[string]any{
		"baseSalary":           "35000",
		"contractHoursPerWeek": "40",
		"employeeName":         "Anna Svensson",
		"period":               "2025-03",
		"payDate":              "2025-03-25T00:00:00Z",
		"rows":                 []map[string]any{{"type": "tips", "total": "100"}},
	})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *HandlersTestSuite) TestRunPayroll_MissingEmployee() {
	w := suite.do(http.MethodPost, "/api/v1/payroll/runs", map[string]any{
		"baseSalary":           "35000",
		"contractHoursPerWeek": "40",
		"period":               "2025-03",
		"payDate":              "2025-03-25T00:00:00Z",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestListAccounts() {
	suite.mockAccountService.On("ListAccounts", mock.Anything).Return([]domain.Account{
		{Code: "1930", Name: "Företagskonto", Class: domain.Asset},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts", nil)

	suite.Equal(http.StatusOK, w.Code)
	env := decodeEnvelope[[]dto.AccountResponse](suite, w)
	suite.Require().Len(env.Data, 1)
	suite.Equal("1930", env.Data[0].Code)
}
