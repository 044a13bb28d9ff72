package models

import "time"

// AuditFields mirrors the audit columns shared by every table.
// last_edited_at is NULL until the first edit.
type AuditFields struct {
	CreatedAt    time.Time  `db:"created_at"`
	CreatedBy    string     `db:"created_by"`
	LastEditedAt *time.Time `db:"last_edited_at"`
	LastEditedBy *string    `db:"last_edited_by"`
}
