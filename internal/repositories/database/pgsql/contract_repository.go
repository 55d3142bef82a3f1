package pgsql

import (
	"context"
	"errors"

	"github.com/imovelhub/crm_deals_app/internal/apperrors"
	"github.com/imovelhub/crm_deals_app/internal/core/domain"
	portsrepo "github.com/imovelhub/crm_deals_app/internal/core/ports/repositories"
	"github.com/imovelhub/crm_deals_app/internal/models"
	"github.com/imovelhub/crm_deals_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxContractRepository accesses the contracts and contract_brokers tables.
type PgxContractRepository struct {
	BaseRepository
}

// newPgxContractRepository creates a new repository for contract data.
func newPgxContractRepository(pool *pgxpool.Pool) portsrepo.ContractRepositoryFacade {
	return &PgxContractRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ContractRepositoryFacade = (*PgxContractRepository)(nil)

// FindContractByID retrieves a contract by its ID.
func (r *PgxContractRepository) FindContractByID(ctx context.Context, contractID string) (*domain.Contract, error) {
	query := `
		SELECT contract_id, organization_id, contract_number, contract_type, status,
		       lead_id, property_id, client_name, value, down_payment,
		       installment_count, commission_percentage, commission_value,
		       payment_terms, signed_at,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM contracts
		WHERE contract_id = $1;
	`
	var m models.Contract
	err := r.Pool.QueryRow(ctx, query, contractID).Scan(
		&m.ContractID,
		&m.OrganizationID,
		&m.ContractNumber,
		&m.ContractType,
		&m.Status,
		&m.LeadID,
		&m.PropertyID,
		&m.ClientName,
		&m.Value,
		&m.DownPayment,
		&m.InstallmentCount,
		&m.CommissionPercentage,
		&m.CommissionValue,
		&m.PaymentTerms,
		&m.SignedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find contract by ID "+contractID, err)
	}

	contract := mapping.ToDomainContract(m)
	return &contract, nil
}

// SaveContract inserts a new contract row.
func (r *PgxContractRepository) SaveContract(ctx context.Context, contract domain.Contract) error {
	m := mapping.ToModelContract(contract)
	query := `
		INSERT INTO contracts (
			contract_id, organization_id, contract_number, contract_type, status,
			lead_id, property_id, client_name, value, down_payment,
			installment_count, commission_percentage, commission_value,
			payment_terms, signed_at,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19
		);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ContractID, m.OrganizationID, m.ContractNumber, m.ContractType, m.Status,
		m.LeadID, m.PropertyID, m.ClientName, m.Value, m.DownPayment,
		m.InstallmentCount, m.CommissionPercentage, m.CommissionValue,
		m.PaymentTerms, m.SignedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "contract number "+m.ContractNumber+" already exists in this organization", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save contract "+m.ContractID, err)
	}
	return nil
}

// SaveContractBrokers inserts the broker links for a contract in a single batch.
func (r *PgxContractRepository) SaveContractBrokers(ctx context.Context, brokers []domain.ContractBroker) error {
	if len(brokers) == 0 {
		return nil
	}

	query := `
		INSERT INTO contract_brokers (
			contract_id, broker_id, percentage,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	batch := &pgx.Batch{}
	for _, broker := range brokers {
		m := mapping.ToModelContractBroker(broker)
		batch.Queue(query,
			m.ContractID, m.BrokerID, m.Percentage,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}

	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()

	for range brokers {
		if _, err := results.Exec(); err != nil {
			return apperrors.NewAppError(500, "failed to save contract brokers", err)
		}
	}
	return nil
}
