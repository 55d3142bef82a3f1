package services

import "context"

// AuditLoggerSvc records mutations for the audit trail. Callers treat it as
// best-effort: errors are logged, never propagated.
type AuditLoggerSvc interface {
	// Record persists one audit record. oldData and newData are marshalled
	// to JSON; either may be nil.
	Record(ctx context.Context, organizationID string, actorUserID string, action string, entityType string, entityID string, oldData any, newData any) error
}
