package repositories

import "context"

// ContractSequenceRepositoryFacade owns the per-organization contract counter.
//
// IncrementAndGet must be a single atomic operation against the store: two
// concurrent calls for the same organization must never observe the same
// counter value. A read-then-write implementation is not acceptable.
type ContractSequenceRepositoryFacade interface {
	// IncrementAndGet bumps the organization's counter (creating it at 1 on
	// first use) and returns the new value.
	IncrementAndGet(ctx context.Context, organizationID string) (int64, error)
}
