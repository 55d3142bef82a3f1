package pgsql

import (
	"context"

	"github.com/imovelhub/crm_deals_app/internal/apperrors"
	portsrepo "github.com/imovelhub/crm_deals_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxContractSequenceRepository owns the contract_sequences table.
type PgxContractSequenceRepository struct {
	BaseRepository
}

// newPgxContractSequenceRepository creates a new repository for the
// per-organization contract counter.
func newPgxContractSequenceRepository(pool *pgxpool.Pool) portsrepo.ContractSequenceRepositoryFacade {
	return &PgxContractSequenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ContractSequenceRepositoryFacade = (*PgxContractSequenceRepository)(nil)

// IncrementAndGet bumps the organization's counter and returns the new value.
//
// The upsert makes first use and increment a single atomic statement, so
// concurrent allocations for one organization serialize on the row and can
// never return the same number. Never split this into a read and a write.
func (r *PgxContractSequenceRepository) IncrementAndGet(ctx context.Context, organizationID string) (int64, error) {
	query := `
		INSERT INTO contract_sequences (organization_id, last_number, created_at, last_updated_at)
		VALUES ($1, 1, NOW(), NOW())
		ON CONFLICT (organization_id)
		DO UPDATE SET last_number = contract_sequences.last_number + 1,
		              last_updated_at = NOW()
		RETURNING last_number;
	`
	var lastNumber int64
	if err := r.Pool.QueryRow(ctx, query, organizationID).Scan(&lastNumber); err != nil {
		return 0, apperrors.NewAppError(500, "failed to increment contract sequence for organization "+organizationID, err)
	}
	return lastNumber, nil
}
