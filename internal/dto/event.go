package dto

import (
	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLendingEventRequest records a lend, borrow or return.
// PersonID is accepted for clients still sending the legacy single-person shape.
type CreateLendingEventRequest struct {
	AccountID        string                  `json:"accountId" binding:"required"`
	CounterpartyType domain.CounterpartyType `json:"counterpartyType" binding:"omitempty,oneof=account person"`
	CounterpartyID   string                  `json:"counterpartyId"`
	PersonID         string                  `json:"personId"`
	Type             domain.LendingType      `json:"type" binding:"required,oneof=lend borrow return"`
	Amount           decimal.Decimal         `json:"amount"`
	Date             domain.Date             `json:"date"`
	Memo             string                  `json:"memo"`
}

// CreateTransferEventRequest records an inter-account transfer or a single-account adjustment.
type CreateTransferEventRequest struct {
	Type          domain.TransferType `json:"type" binding:"required,oneof=transfer interest deposit withdrawal investment_gain"`
	FromAccountID string              `json:"fromAccountId"`
	ToAccountID   string              `json:"toAccountId"`
	AccountID     string              `json:"accountId"`
	Amount        decimal.Decimal     `json:"amount"`
	Date          domain.Date         `json:"date"`
	Memo          string              `json:"memo"`
}

// CreateNetFlowEventRequest records a net deposit or withdrawal with a person.
type CreateNetFlowEventRequest struct {
	PersonID string             `json:"personId" binding:"required"`
	Type     domain.NetFlowType `json:"type" binding:"required,oneof=deposit withdrawal"`
	Amount   decimal.Decimal    `json:"amount"`
	Date     domain.Date        `json:"date"`
	Memo     string             `json:"memo"`
}

// SetReturnedRequest toggles the returned flag of a lending event.
type SetReturnedRequest struct {
	Returned *bool `json:"returned" binding:"required"`
}
