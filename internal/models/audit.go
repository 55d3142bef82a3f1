package models

import "time"

// AuditRecord maps to the audit_records table. OldData/NewData are JSONB.
type AuditRecord struct {
	AuditID        string
	OrganizationID string
	UserID         string
	Action         string
	EntityType     string
	EntityID       string
	OldData        []byte
	NewData        []byte
	CreatedAt      time.Time
}
