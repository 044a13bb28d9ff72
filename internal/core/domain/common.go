package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt    time.Time `json:"createdAt"`
	CreatedBy    string    `json:"createdBy"`    // UserID Reference
	LastEditedAt time.Time `json:"lastEditedAt"` // Zero until the first edit
	LastEditedBy string    `json:"lastEditedBy"` // UserID Reference
}

// Touch records an edit by userID at now.
func (a *AuditFields) Touch(userID string, now time.Time) {
	a.LastEditedAt = now
	a.LastEditedBy = userID
}
