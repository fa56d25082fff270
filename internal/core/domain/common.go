package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// The system has a single operator, so only timestamps are tracked.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
