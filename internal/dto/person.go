package dto

import (
	"time"

	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
)

// CreatePersonRequest defines the data needed to register a person.
type CreatePersonRequest struct {
	Name       string  `json:"name" binding:"required"`
	BusinessID *string `json:"businessId"`
}

// PersonResponse defines the data returned for a person.
type PersonResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	BusinessID   *string   `json:"businessId,omitempty"`
	IsArchived   bool      `json:"isArchived"`
	CreatedAt    time.Time `json:"createdAt"`
	CreatedBy    string    `json:"createdBy"`
	LastEditedAt time.Time `json:"lastEditedAt"`
	LastEditedBy string    `json:"lastEditedBy"`
}

func ToPersonResponse(p *domain.Person) PersonResponse {
	return PersonResponse{
		ID:           p.ID,
		Name:         p.Name,
		BusinessID:   p.BusinessID,
		IsArchived:   p.IsArchived,
		CreatedAt:    p.CreatedAt,
		CreatedBy:    p.CreatedBy,
		LastEditedAt: p.LastEditedAt,
		LastEditedBy: p.LastEditedBy,
	}
}

func ToListPersonResponse(persons []domain.Person) []PersonResponse {
	res := make([]PersonResponse, len(persons))
	for i, p := range persons {
		res[i] = ToPersonResponse(&p)
	}
	return res
}

// ListPersonsResponse wraps the list of persons.
type ListPersonsResponse struct {
	Persons []PersonResponse `json:"persons"`
}
