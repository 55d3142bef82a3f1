package domain

import (
	"encoding/json"
	"time"
)

// AuditRecord describes a mutation for the audit trail. Writing one is always
// best-effort: a failed audit write never fails the operation it describes.
type AuditRecord struct {
	AuditID        string          `json:"auditID"` // Primary Key (UUID)
	OrganizationID string          `json:"organizationID"`
	UserID         string          `json:"userID"` // Actor
	Action         string          `json:"action"` // e.g. "deal.closed"
	EntityType     string          `json:"entityType"`
	EntityID       string          `json:"entityID"`
	OldData        json.RawMessage `json:"oldData"` // Nullable
	NewData        json.RawMessage `json:"newData"` // Nullable
	CreatedAt      time.Time       `json:"createdAt"`
}
