package pgsql

import (
	"context"

	"github.com/imovelhub/crm_deals_app/internal/apperrors"
	"github.com/imovelhub/crm_deals_app/internal/core/domain"
	portsrepo "github.com/imovelhub/crm_deals_app/internal/core/ports/repositories"
	"github.com/imovelhub/crm_deals_app/internal/models"
	"github.com/imovelhub/crm_deals_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxFinancialEntryRepository accesses the financial_entries table.
type PgxFinancialEntryRepository struct {
	BaseRepository
}

// newPgxFinancialEntryRepository creates a new repository for financial entries.
func newPgxFinancialEntryRepository(pool *pgxpool.Pool) portsrepo.FinancialEntryRepositoryFacade {
	return &PgxFinancialEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FinancialEntryRepositoryFacade = (*PgxFinancialEntryRepository)(nil)

// FindEntriesByContractID retrieves all entries linked to a contract, down
// payment first, installments in order, then payables.
func (r *PgxFinancialEntryRepository) FindEntriesByContractID(ctx context.Context, contractID string) ([]domain.FinancialEntry, error) {
	query := `
		SELECT entry_id, organization_id, contract_id, lead_id, direction,
		       category, description, amount, due_date, status,
		       installment_number, installment_total,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM financial_entries
		WHERE contract_id = $1
		ORDER BY installment_number ASC NULLS LAST, due_date ASC;
	`
	rows, err := r.Pool.Query(ctx, query, contractID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query financial entries for contract "+contractID, err)
	}
	defer rows.Close()

	var entries []models.FinancialEntry
	for rows.Next() {
		var m models.FinancialEntry
		if err := rows.Scan(
			&m.EntryID,
			&m.OrganizationID,
			&m.ContractID,
			&m.LeadID,
			&m.Direction,
			&m.Category,
			&m.Description,
			&m.Amount,
			&m.DueDate,
			&m.Status,
			&m.InstallmentNumber,
			&m.InstallmentTotal,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan financial entry row", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating financial entry rows", err)
	}

	return mapping.ToDomainFinancialEntrySlice(entries), nil
}

// SaveEntries inserts a batch of financial entries. pgx sends the batch in an
// implicit transaction, so the schedule lands whole or not at all.
func (r *PgxFinancialEntryRepository) SaveEntries(ctx context.Context, entries []domain.FinancialEntry) error {
	if len(entries) == 0 {
		return nil
	}

	query := `
		INSERT INTO financial_entries (
			entry_id, organization_id, contract_id, lead_id, direction,
			category, description, amount, due_date, status,
			installment_number, installment_total,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16
		);
	`
	batch := &pgx.Batch{}
	for _, entry := range entries {
		m := mapping.ToModelFinancialEntry(entry)
		batch.Queue(query,
			m.EntryID, m.OrganizationID, m.ContractID, m.LeadID, m.Direction,
			m.Category, m.Description, m.Amount, m.DueDate, m.Status,
			m.InstallmentNumber, m.InstallmentTotal,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}

	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()

	for range entries {
		if _, err := results.Exec(); err != nil {
			return apperrors.NewAppError(500, "failed to save financial entries batch", err)
		}
	}
	return nil
}
