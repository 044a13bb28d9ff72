package handlers_test

import (
	"net/http"

	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
	"github.com/SscSPs/money_lending_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestGetPersonBalance_DefaultCurrency() {
	suite.mockBalanceService.On("GetPersonBalance", mock.Anything, "p-1").
		Return(&domain.PersonBalance{
			PersonID:       "p-1",
			Outstanding:    decimal.NewFromInt(5000),
			AccountBalance: decimal.NewFromInt(3300),
		}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/balances/persons/p-1", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PersonBalanceResponse
	suite.decode(w, &resp)
	suite.Equal("p-1", resp.PersonID)
	suite.True(decimal.NewFromInt(5000).Equal(resp.Outstanding))
	suite.Equal("¥5,000", resp.FormattedOutstanding)
	suite.Equal("¥3,300", resp.FormattedAccountBalance)
}

func (suite *HandlerTestSuite) TestGetPersonBalance_OrphanedID() {
	suite.mockBalanceService.On("GetPersonBalance", mock.Anything, "ghost").
		Return(&domain.PersonBalance{PersonID: "ghost", Outstanding: decimal.NewFromInt(500), AccountBalance: decimal.NewFromInt(500)}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/balances/persons/ghost", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PersonBalanceResponse
	suite.decode(w, &resp)
	suite.Equal("¥500", resp.FormattedOutstanding)
}

func (suite *HandlerTestSuite) TestGetAccountBalance_StoreFailure() {
	suite.mockBalanceService.On("GetAccountBalance", mock.Anything, "acc-a").
		Return(nil, assert.AnError).Once()

	w := suite.do(http.MethodGet, "/api/v1/balances/accounts/acc-a", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "Failed to compute account balance")
}

func (suite *HandlerTestSuite) TestGetAccountBalance_CurrencyOverride() {
	suite.mockBalanceService.On("GetAccountBalance", mock.Anything, "acc-b").
		Return(&domain.AccountBalance{
			AccountID:     "acc-b",
			Outstanding:   decimal.NewFromInt(-1000),
			LedgerBalance: decimal.RequireFromString("1234.5"),
		}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/balances/accounts/acc-b?currency=USD", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountBalanceResponse
	suite.decode(w, &resp)
	suite.Equal("-$1,000.00", resp.FormattedOutstanding)
	suite.Equal("$1,234.50", resp.FormattedLedgerBalance)
}

func (suite *HandlerTestSuite) TestGetPersonTotals() {
	suite.mockBalanceService.On("GetPersonTotals", mock.Anything).
		Return(&domain.PersonTotals{
			TotalLent:     decimal.NewFromInt(5000),
			TotalBorrowed: decimal.NewFromInt(1000),
		}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/balances/totals", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PersonTotalsResponse
	suite.decode(w, &resp)
	suite.True(decimal.NewFromInt(4000).Equal(resp.Net))
	suite.Equal("¥4,000", resp.FormattedNet)
}
