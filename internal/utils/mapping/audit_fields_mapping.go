package mapping

import (
	"time"

	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
	"github.com/SscSPs/money_lending_ledger/internal/models"
)

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	m := models.AuditFields{
		CreatedAt: d.CreatedAt,
		CreatedBy: d.CreatedBy,
	}
	if !d.LastEditedAt.IsZero() {
		editedAt := d.LastEditedAt
		m.LastEditedAt = &editedAt
	}
	m.LastEditedBy = optionalString(d.LastEditedBy)
	return m
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	d := domain.AuditFields{
		CreatedAt:    m.CreatedAt,
		CreatedBy:    m.CreatedBy,
		LastEditedBy: derefString(m.LastEditedBy),
	}
	if m.LastEditedAt != nil {
		d.LastEditedAt = *m.LastEditedAt
	}
	return d
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// dateOf maps a DATE column to the domain date; pgx scans DATE as midnight UTC.
func dateOf(t time.Time) domain.Date {
	return domain.DateOf(t.UTC())
}
