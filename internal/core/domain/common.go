package domain

import "time"

// AuditFields holds the common creation/modification timestamps embedded in
// every domain entity.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
