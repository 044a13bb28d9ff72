package handlers_test

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/money_lending_ledger/internal/apperrors"
	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
	"github.com/SscSPs/money_lending_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestRecordLending_Success() {
	body := `{"accountId":"acc-1","counterpartyType":"person","counterpartyId":"p-1","type":"lend","amount":"5000","date":"2024-03-10","memo":"rent"}`
	matchReq := mock.MatchedBy(func(req dto.CreateLendingEventRequest) bool {
		return req.AccountID == "acc-1" &&
			req.CounterpartyType == domain.CounterpartyPerson &&
			req.CounterpartyID == "p-1" &&
			req.Type == domain.Lend &&
			req.Amount.Equal(decimal.NewFromInt(5000)) &&
			req.Date == domain.MustParseDate("2024-03-10")
	})
	suite.mockEventService.On("RecordLendingEvent", mock.Anything, matchReq, testUserID).
		Return(&domain.LendingEvent{
			ID:               "ev-1",
			AccountID:        "acc-1",
			CounterpartyType: domain.CounterpartyPerson,
			CounterpartyID:   "p-1",
			Type:             domain.Lend,
			Amount:           decimal.NewFromInt(5000),
			Date:             domain.MustParseDate("2024-03-10"),
		}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/lendings", body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp domain.LendingEvent
	suite.decode(w, &resp)
	suite.Equal("ev-1", resp.ID)
	suite.Equal(domain.CounterpartyPerson, resp.CounterpartyType)
}

func (suite *HandlerTestSuite) TestRecordLending_LegacyPersonIDIsForwarded() {
	body := `{"accountId":"acc-1","personId":"p-9","type":"borrow","amount":-300,"date":"2024-3-1"}`
	matchReq := mock.MatchedBy(func(req dto.CreateLendingEventRequest) bool {
		return req.PersonID == "p-9" && req.CounterpartyType == "" && req.Amount.Equal(decimal.NewFromInt(-300))
	})
	suite.mockEventService.On("RecordLendingEvent", mock.Anything, matchReq, testUserID).
		Return(&domain.LendingEvent{ID: "ev-2", Type: domain.Borrow}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/lendings", body)

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlerTestSuite) TestRecordLending_UnknownTypeRejectedByBinding() {
	w := suite.do(http.MethodPost, "/api/v1/lendings", `{"accountId":"acc-1","type":"gift","amount":"1"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestRecordLending_ArchivedCounterparty() {
	suite.mockEventService.On("RecordLendingEvent", mock.Anything, mock.Anything, testUserID).
		Return(nil, fmt.Errorf("%w: %w: person p-1", apperrors.ErrValidation, apperrors.ErrArchived)).Once()

	w := suite.do(http.MethodPost, "/api/v1/lendings", `{"accountId":"acc-1","counterpartyType":"person","counterpartyId":"p-1","type":"lend","amount":"10","date":"2024-03-10"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "archived")
}

func (suite *HandlerTestSuite) TestSetLendingReturned() {
	suite.mockEventService.On("SetLendingEventReturned", mock.Anything, "ev-1", true, testUserID).
		Return(&domain.LendingEvent{ID: "ev-1", Type: domain.Lend, Returned: true}, nil).Once()

	w := suite.do(http.MethodPatch, "/api/v1/lendings/ev-1/returned", `{"returned":true}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp domain.LendingEvent
	suite.decode(w, &resp)
	suite.True(resp.Returned)
}

func (suite *HandlerTestSuite) TestSetLendingReturned_ReturnEventRejected() {
	suite.mockEventService.On("SetLendingEventReturned", mock.Anything, "ev-r", true, testUserID).
		Return(nil, fmt.Errorf("%w: return events cannot be marked returned", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPatch, "/api/v1/lendings/ev-r/returned", `{"returned":true}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestSetLendingArchived_NotFound() {
	suite.mockEventService.On("SetLendingEventArchived", mock.Anything, "nope", true, testUserID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodPatch, "/api/v1/lendings/nope/archive", `{"archived":true}`)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestRecordTransfer() {
	body := `{"type":"transfer","fromAccountId":"acc-a","toAccountId":"acc-b","amount":"400","date":"2024-03-11"}`
	matchReq := mock.MatchedBy(func(req dto.CreateTransferEventRequest) bool {
		return req.Type == domain.Transfer && req.FromAccountID == "acc-a" && req.ToAccountID == "acc-b"
	})
	suite.mockEventService.On("RecordTransferEvent", mock.Anything, matchReq, testUserID).
		Return(&domain.AccountTransferEvent{ID: "tr-1", Type: domain.Transfer}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transfers", body)

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlerTestSuite) TestSetTransferArchived() {
	suite.mockEventService.On("SetTransferEventArchived", mock.Anything, "tr-1", true, testUserID).
		Return(&domain.AccountTransferEvent{ID: "tr-1", IsArchived: true}, nil).Once()

	w := suite.do(http.MethodPatch, "/api/v1/transfers/tr-1/archive", `{"archived":true}`)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestRecordNetFlow() {
	body := `{"personId":"p-1","type":"withdrawal","amount":"200","date":"2024-03-12"}`
	matchReq := mock.MatchedBy(func(req dto.CreateNetFlowEventRequest) bool {
		return req.PersonID == "p-1" && req.Type == domain.NetWithdrawal
	})
	suite.mockEventService.On("RecordNetFlowEvent", mock.Anything, matchReq, testUserID).
		Return(&domain.PersonNetFlowEvent{ID: "nf-1", PersonID: "p-1", Type: domain.NetWithdrawal}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/net-flows", body)

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlerTestSuite) TestRecordNetFlow_MissingPerson() {
	w := suite.do(http.MethodPost, "/api/v1/net-flows", `{"type":"deposit","amount":"200"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}
