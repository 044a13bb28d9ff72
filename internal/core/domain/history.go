package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// HistoryKind names the event collection a history line was projected from.
type HistoryKind string

const (
	KindLending  HistoryKind = "lending"
	KindTransfer HistoryKind = "transfer"
	KindNetFlow  HistoryKind = "netflow"
)

// HistoryItem is the display-normalized shape shared by all three event kinds.
type HistoryItem struct {
	ID               string           `json:"id"` // "<kind>-<originalId>"
	OriginalID       string           `json:"originalId"`
	Kind             HistoryKind      `json:"kind"`
	Type             string           `json:"type"`
	Label            string           `json:"label"`
	Amount           decimal.Decimal  `json:"amount"` // Signed
	Date             Date             `json:"date"`
	AccountID        string           `json:"accountId,omitempty"`
	FromAccountID    string           `json:"fromAccountId,omitempty"`
	ToAccountID      string           `json:"toAccountId,omitempty"`
	CounterpartyType CounterpartyType `json:"counterpartyType,omitempty"`
	CounterpartyID   string           `json:"counterpartyId,omitempty"`
	Memo             string           `json:"memo,omitempty"`
	Returned         bool             `json:"returned,omitempty"`
	IsArchived       bool             `json:"isArchived"`
	CreatedBy        string           `json:"createdBy,omitempty"`
	LastEditedBy     string           `json:"lastEditedBy,omitempty"`
	LastEditedAt     *time.Time       `json:"lastEditedAt,omitempty"`
}

// HistoryView is a composed history plus the name directory used to label it.
// Ids missing from the directory are orphans and are shown by id.
type HistoryView struct {
	Items        []HistoryItem
	AccountNames map[string]string
	PersonNames  map[string]string
}

// CounterpartyName resolves the display name of an item's counterparty.
func (v HistoryView) CounterpartyName(item HistoryItem) string {
	switch item.CounterpartyType {
	case CounterpartyAccount:
		return nameOr(v.AccountNames, item.CounterpartyID)
	case CounterpartyPerson:
		return nameOr(v.PersonNames, item.CounterpartyID)
	}
	return ""
}

// AccountName resolves an account id, falling back to the id itself.
func (v HistoryView) AccountName(accountID string) string {
	return nameOr(v.AccountNames, accountID)
}

func nameOr(names map[string]string, id string) string {
	if id == "" {
		return ""
	}
	if name, ok := names[id]; ok {
		return name
	}
	return id
}
