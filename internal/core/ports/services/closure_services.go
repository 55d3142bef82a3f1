package services

import (
	"context"

	"github.com/imovelhub/crm_deals_app/internal/dto"
)

// DealCloserSvc runs the deal closure workflow.
type DealCloserSvc interface {
	// CloseDeal converts a won lead into a contract, its payment schedule,
	// the broker commission ledger and a payable obligation, then updates
	// the lead. See the package documentation for the partial-failure
	// semantics of the individual steps.
	CloseDeal(ctx context.Context, organizationID string, leadID string, req dto.CloseDealRequest, closerUserID string) (*dto.CloseDealResponse, error)
}

// ContractReaderSvc defines read operations for contracts.
type ContractReaderSvc interface {
	// GetContractWithEntries retrieves a contract and its financial entries.
	GetContractWithEntries(ctx context.Context, organizationID string, contractID string, requestingUserID string) (*dto.ContractResponse, error)
}

// DealClosureSvcFacade combines the closure workflow with its read side.
type DealClosureSvcFacade interface {
	DealCloserSvc
	ContractReaderSvc
}

// SequenceAllocatorSvc issues formatted contract numbers.
type SequenceAllocatorSvc interface {
	// AllocateNext returns the next contract number for the organization,
	// formatted CTR-<year>-<5 digit zero padded counter>.
	AllocateNext(ctx context.Context, organizationID string) (string, error)
}
