package dto

import (
	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
	"github.com/SscSPs/money_lending_ledger/internal/utils"
)

// HistoryParams defines query parameters for the combined history.
// Archived events are hidden unless excludeArchived=false is passed.
type HistoryParams struct {
	ExcludeArchived bool   `form:"excludeArchived,default=true"`
	Currency        string `form:"currency"`
	Limit           int    `form:"limit" binding:"omitempty,min=1,max=500"`
	PageToken       string `form:"pageToken"`
}

// HistoryItemResponse is one history line with display joins applied.
type HistoryItemResponse struct {
	domain.HistoryItem
	FormattedAmount  string `json:"formattedAmount"`
	AccountName      string `json:"accountName,omitempty"`
	FromAccountName  string `json:"fromAccountName,omitempty"`
	ToAccountName    string `json:"toAccountName,omitempty"`
	CounterpartyName string `json:"counterpartyName,omitempty"`
}

// HistoryResponse wraps the combined history, newest first.
type HistoryResponse struct {
	Items         []HistoryItemResponse `json:"items"`
	NextPageToken string                `json:"nextPageToken,omitempty"`
}

// ToHistoryResponse joins names onto each line. Orphaned ids are shown as-is.
func ToHistoryResponse(view domain.HistoryView, currency string) HistoryResponse {
	items := make([]HistoryItemResponse, len(view.Items))
	for i, item := range view.Items {
		items[i] = HistoryItemResponse{
			HistoryItem:      item,
			FormattedAmount:  utils.FormatAmount(item.Amount, currency),
			AccountName:      view.AccountName(item.AccountID),
			FromAccountName:  view.AccountName(item.FromAccountID),
			ToAccountName:    view.AccountName(item.ToAccountID),
			CounterpartyName: view.CounterpartyName(item),
		}
	}
	return HistoryResponse{Items: items}
}
