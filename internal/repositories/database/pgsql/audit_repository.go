package pgsql

import (
	"context"

	"github.com/imovelhub/crm_deals_app/internal/apperrors"
	"github.com/imovelhub/crm_deals_app/internal/core/domain"
	portsrepo "github.com/imovelhub/crm_deals_app/internal/core/ports/repositories"
	"github.com/imovelhub/crm_deals_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxAuditRepository accesses the audit_records table.
type PgxAuditRepository struct {
	BaseRepository
}

// newPgxAuditRepository creates a new repository for audit records.
func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepositoryFacade {
	return &PgxAuditRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

// SaveAuditRecord inserts a single audit record.
func (r *PgxAuditRepository) SaveAuditRecord(ctx context.Context, record domain.AuditRecord) error {
	m := mapping.ToModelAuditRecord(record)
	query := `
		INSERT INTO audit_records (
			audit_id, organization_id, user_id, action,
			entity_type, entity_id, old_data, new_data, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AuditID, m.OrganizationID, m.UserID, m.Action,
		m.EntityType, m.EntityID, m.OldData, m.NewData, m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save audit record for "+m.EntityType+" "+m.EntityID, err)
	}
	return nil
}
