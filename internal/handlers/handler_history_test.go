package handlers_test

import (
	"net/http"
	"net/url"

	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
	"github.com/SscSPs/money_lending_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func historyFixture() *domain.HistoryView {
	return &domain.HistoryView{
		Items: []domain.HistoryItem{
			{
				ID: "transfer-t1", OriginalID: "t1", Kind: domain.KindTransfer, Type: "transfer", Label: "振替",
				Amount: decimal.NewFromInt(400), Date: domain.MustParseDate("2024-03-12"),
				FromAccountID: "acc-a", ToAccountID: "acc-b",
			},
			{
				ID: "lending-l1", OriginalID: "l1", Kind: domain.KindLending, Type: "lend", Label: "貸し",
				Amount: decimal.NewFromInt(5000), Date: domain.MustParseDate("2024-03-10"),
				AccountID: "acc-a", CounterpartyType: domain.CounterpartyPerson, CounterpartyID: "p-1",
			},
			{
				ID: "lending-l2", OriginalID: "l2", Kind: domain.KindLending, Type: "borrow", Label: "借り",
				Amount: decimal.NewFromInt(-1000), Date: domain.MustParseDate("2024-03-09"),
				AccountID: "acc-b", CounterpartyType: domain.CounterpartyAccount, CounterpartyID: "acc-gone",
			},
		},
		AccountNames: map[string]string{"acc-a": "Cash", "acc-b": "Bank"},
		PersonNames:  map[string]string{"p-1": "Tanaka"},
	}
}

func (suite *HandlerTestSuite) TestGetHistory_JoinsNames() {
	suite.mockHistoryService.On("GetHistory", mock.Anything, true).Return(historyFixture(), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/history", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.HistoryResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp.Items, 3)
	suite.Empty(resp.NextPageToken)

	suite.Equal("Cash", resp.Items[0].FromAccountName)
	suite.Equal("Bank", resp.Items[0].ToAccountName)
	suite.Equal("¥400", resp.Items[0].FormattedAmount)
	suite.Equal("Tanaka", resp.Items[1].CounterpartyName)
	suite.Equal("acc-gone", resp.Items[2].CounterpartyName)
	suite.Equal("-¥1,000", resp.Items[2].FormattedAmount)
}

func (suite *HandlerTestSuite) TestGetHistory_IncludeArchived() {
	suite.mockHistoryService.On("GetHistory", mock.Anything, false).
		Return(&domain.HistoryView{Items: []domain.HistoryItem{}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/history?excludeArchived=false", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"items":[]}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestGetHistory_ExplicitExcludeArchived() {
	suite.mockHistoryService.On("GetHistory", mock.Anything, true).
		Return(&domain.HistoryView{Items: []domain.HistoryItem{}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/history?excludeArchived=true", nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestGetHistory_Paginates() {
	suite.mockHistoryService.On("GetHistory", mock.Anything, true).Return(historyFixture(), nil).Twice()

	w := suite.do(http.MethodGet, "/api/v1/history?limit=2", nil)
	suite.Equal(http.StatusOK, w.Code)
	var first dto.HistoryResponse
	suite.decode(w, &first)
	suite.Require().Len(first.Items, 2)
	suite.Require().NotEmpty(first.NextPageToken)

	w = suite.do(http.MethodGet, "/api/v1/history?limit=2&pageToken="+url.QueryEscape(first.NextPageToken), nil)
	suite.Equal(http.StatusOK, w.Code)
	var second dto.HistoryResponse
	suite.decode(w, &second)
	suite.Require().Len(second.Items, 1)
	suite.Equal("lending-l2", second.Items[0].ID)
	suite.Empty(second.NextPageToken)
}

func (suite *HandlerTestSuite) TestGetHistory_BadPageToken() {
	suite.mockHistoryService.On("GetHistory", mock.Anything, true).Return(historyFixture(), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/history?pageToken=%25%25", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetHistory_LimitOutOfRange() {
	w := suite.do(http.MethodGet, "/api/v1/history?limit=1000", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}
