package models

import "time"

// AuditFields holds standard audit timestamps for persisted entities.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
