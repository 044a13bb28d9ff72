package dto

import (
	"time"

	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name       string  `json:"name" binding:"required"`
	BusinessID *string `json:"businessId"` // Optional
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	BusinessID   *string         `json:"businessId,omitempty"`
	Balance      decimal.Decimal `json:"balance"`
	IsArchived   bool            `json:"isArchived"`
	CreatedAt    time.Time       `json:"createdAt"`
	CreatedBy    string          `json:"createdBy"`
	LastEditedAt time.Time       `json:"lastEditedAt"`
	LastEditedBy string          `json:"lastEditedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:           acc.ID,
		Name:         acc.Name,
		BusinessID:   acc.BusinessID,
		Balance:      acc.Balance,
		IsArchived:   acc.IsArchived,
		CreatedAt:    acc.CreatedAt,
		CreatedBy:    acc.CreatedBy,
		LastEditedAt: acc.LastEditedAt,
		LastEditedBy: acc.LastEditedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ListParams defines query parameters for listing accounts or persons.
type ListParams struct {
	IncludeArchived bool `form:"includeArchived"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ArchiveRequest toggles the archival flag of an entity or event.
type ArchiveRequest struct {
	Archived *bool `json:"archived" binding:"required"`
}
