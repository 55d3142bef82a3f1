package repositories

import (
	"context"

	"github.com/imovelhub/crm_deals_app/internal/core/domain"
)

// ContractReader defines read operations for contract data.
type ContractReader interface {
	// FindContractByID retrieves a contract by its unique identifier.
	FindContractByID(ctx context.Context, contractID string) (*domain.Contract, error)
}

// ContractWriter defines write operations for contract data.
type ContractWriter interface {
	// SaveContract inserts a new contract row.
	SaveContract(ctx context.Context, contract domain.Contract) error

	// SaveContractBrokers inserts the broker links for a contract in batch.
	SaveContractBrokers(ctx context.Context, brokers []domain.ContractBroker) error
}

// ContractRepositoryFacade combines all contract repository interfaces.
type ContractRepositoryFacade interface {
	ContractReader
	ContractWriter
}
