package handlers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/money_lending_ledger/internal/apperrors"
	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
	"github.com/SscSPs/money_lending_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func testAccount(id, name string) *domain.Account {
	return &domain.Account{
		ID:      id,
		Name:    name,
		Balance: decimal.NewFromInt(400),
		AuditFields: domain.AuditFields{
			CreatedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
			CreatedBy: testUserID,
		},
	}
}

func (suite *HandlerTestSuite) TestCreateAccount_Success() {
	req := dto.CreateAccountRequest{Name: "Main Wallet"}
	suite.mockAccountService.On("CreateAccount", mock.Anything, req, testUserID).
		Return(testAccount("acc-1", "Main Wallet"), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.decode(w, &resp)
	suite.Equal("acc-1", resp.ID)
	suite.Equal("Main Wallet", resp.Name)
	suite.True(decimal.NewFromInt(400).Equal(resp.Balance))
}

func (suite *HandlerTestSuite) TestCreateAccount_MissingName() {
	w := suite.do(http.MethodPost, "/api/v1/accounts", `{"businessId":"biz"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Invalid request format")
}

func (suite *HandlerTestSuite) TestCreateAccount_ServiceValidationError() {
	req := dto.CreateAccountRequest{Name: "   "}
	suite.mockAccountService.On("CreateAccount", mock.Anything, req, testUserID).
		Return(nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCreateAccount_Duplicate() {
	req := dto.CreateAccountRequest{Name: "Main Wallet"}
	suite.mockAccountService.On("CreateAccount", mock.Anything, req, testUserID).
		Return(nil, fmt.Errorf("%w: account", apperrors.ErrDuplicate)).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestGetAccount_NotFound() {
	suite.mockAccountService.On("GetAccountByID", mock.Anything, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestGetAccount_InternalError() {
	suite.mockAccountService.On("GetAccountByID", mock.Anything, "acc-1").
		Return(nil, fmt.Errorf("connection reset")).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/acc-1", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "Failed to retrieve account")
	suite.NotContains(w.Body.String(), "connection reset")
}

func (suite *HandlerTestSuite) TestListAccounts_IncludeArchived() {
	suite.mockAccountService.On("ListAccounts", mock.Anything, true).
		Return([]domain.Account{*testAccount("acc-1", "A"), *testAccount("acc-2", "B")}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts?includeArchived=true", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListAccountsResponse
	suite.decode(w, &resp)
	suite.Len(resp.Accounts, 2)
}

func (suite *HandlerTestSuite) TestListAccounts_DefaultHidesArchived() {
	suite.mockAccountService.On("ListAccounts", mock.Anything, false).
		Return([]domain.Account{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"accounts":[]}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestArchiveAccount() {
	archived := testAccount("acc-1", "A")
	archived.IsArchived = true
	suite.mockAccountService.On("SetAccountArchived", mock.Anything, "acc-1", true, testUserID).
		Return(archived, nil).Once()

	w := suite.do(http.MethodPatch, "/api/v1/accounts/acc-1/archive", `{"archived":true}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountResponse
	suite.decode(w, &resp)
	suite.True(resp.IsArchived)
}

func (suite *HandlerTestSuite) TestArchiveAccount_RequiresFlag() {
	w := suite.do(http.MethodPatch, "/api/v1/accounts/acc-1/archive", `{}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestRestoreAccount_FalseIsAccepted() {
	suite.mockAccountService.On("SetAccountArchived", mock.Anything, "acc-1", false, testUserID).
		Return(testAccount("acc-1", "A"), nil).Once()

	w := suite.do(http.MethodPatch, "/api/v1/accounts/acc-1/archive", `{"archived":false}`)

	suite.Equal(http.StatusOK, w.Code)
}
