package repositories

import (
	"context"

	"github.com/imovelhub/crm_deals_app/internal/core/domain"
)

// AuditRepositoryFacade persists audit trail records.
type AuditRepositoryFacade interface {
	// SaveAuditRecord inserts a single audit record.
	SaveAuditRecord(ctx context.Context, record domain.AuditRecord) error
}
