package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/imovelhub/crm_deals_app/internal/apperrors"
	"github.com/imovelhub/crm_deals_app/internal/core/domain"
	portsrepo "github.com/imovelhub/crm_deals_app/internal/core/ports/repositories"
	"github.com/imovelhub/crm_deals_app/internal/models"
	"github.com/imovelhub/crm_deals_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxLeadRepository accesses the leads table.
type PgxLeadRepository struct {
	BaseRepository
}

// newPgxLeadRepository creates a new repository for lead data.
func newPgxLeadRepository(pool *pgxpool.Pool) portsrepo.LeadRepositoryFacade {
	return &PgxLeadRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LeadRepositoryFacade = (*PgxLeadRepository)(nil)

// FindLeadByID retrieves a lead by its ID.
func (r *PgxLeadRepository) FindLeadByID(ctx context.Context, leadID string) (*domain.Lead, error) {
	query := `
		SELECT lead_id, organization_id, name, assigned_user_id, property_id,
		       pipeline_id, stage_id, deal_status, won_at,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM leads
		WHERE lead_id = $1;
	`
	var m models.Lead
	err := r.Pool.QueryRow(ctx, query, leadID).Scan(
		&m.LeadID,
		&m.OrganizationID,
		&m.Name,
		&m.AssignedUserID,
		&m.PropertyID,
		&m.PipelineID,
		&m.StageID,
		&m.DealStatus,
		&m.WonAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find lead by ID "+leadID, err)
	}

	lead := mapping.ToDomainLead(m)
	return &lead, nil
}

// MarkLeadWon sets the lead's deal status to WON and stamps won_at.
func (r *PgxLeadRepository) MarkLeadWon(ctx context.Context, leadID string, wonAt time.Time, updatedBy string) error {
	query := `
		UPDATE leads
		SET deal_status = $2, won_at = $3, last_updated_at = $3, last_updated_by = $4
		WHERE lead_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, leadID, models.DealWon, wonAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark lead "+leadID+" as won", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
