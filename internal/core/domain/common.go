package domain

import "time"

// AuditFields holds creation audit information for immutable domain entities.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"` // Opaque owner or caller reference
}
