package pgsql

import (
	"context"

	"github.com/imovelhub/crm_deals_app/internal/apperrors"
	"github.com/imovelhub/crm_deals_app/internal/core/domain"
	portsrepo "github.com/imovelhub/crm_deals_app/internal/core/ports/repositories"
	"github.com/imovelhub/crm_deals_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCommissionRepository accesses the commissions table.
type PgxCommissionRepository struct {
	BaseRepository
}

// newPgxCommissionRepository creates a new repository for commission forecasts.
func newPgxCommissionRepository(pool *pgxpool.Pool) portsrepo.CommissionRepositoryFacade {
	return &PgxCommissionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CommissionRepositoryFacade = (*PgxCommissionRepository)(nil)

// SaveCommissions inserts a batch of commission records, one per broker.
func (r *PgxCommissionRepository) SaveCommissions(ctx context.Context, commissions []domain.Commission) error {
	if len(commissions) == 0 {
		return nil
	}

	query := `
		INSERT INTO commissions (
			commission_id, organization_id, contract_id, broker_id,
			base_value, percentage, calculated_value, status,
			forecast_date, notes,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		);
	`
	batch := &pgx.Batch{}
	for _, commission := range commissions {
		m := mapping.ToModelCommission(commission)
		batch.Queue(query,
			m.CommissionID, m.OrganizationID, m.ContractID, m.BrokerID,
			m.BaseValue, m.Percentage, m.CalculatedValue, m.Status,
			m.ForecastDate, m.Notes,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}

	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()

	for range commissions {
		if _, err := results.Exec(); err != nil {
			return apperrors.NewAppError(500, "failed to save commissions batch", err)
		}
	}
	return nil
}
