package models

import "time"

// AuditFields are the persistence-side timestamps shared by all tables.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
