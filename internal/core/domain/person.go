package domain

// Person is an external ledger participant (an individual or an outside entity).
type Person struct {
	ID         string  `json:"id"`
	Name       string  `json:"name" validate:"required"`
	BusinessID *string `json:"businessId,omitempty"`
	IsArchived bool    `json:"isArchived"`
	AuditFields
}
