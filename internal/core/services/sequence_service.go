package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portsrepo "github.com/imovelhub/crm_deals_app/internal/core/ports/repositories"
	portssvc "github.com/imovelhub/crm_deals_app/internal/core/ports/services"
	"github.com/imovelhub/crm_deals_app/internal/middleware"
)

// contractSequenceService issues formatted contract numbers backed by the
// per-organization counter row.
type contractSequenceService struct {
	sequenceRepo portsrepo.ContractSequenceRepositoryFacade
}

// NewContractSequenceService creates a new sequence allocator service.
func NewContractSequenceService(sequenceRepo portsrepo.ContractSequenceRepositoryFacade) portssvc.SequenceAllocatorSvc {
	return &contractSequenceService{sequenceRepo: sequenceRepo}
}

var _ portssvc.SequenceAllocatorSvc = (*contractSequenceService)(nil)

// AllocateNext returns the next contract number for the organization.
//
// The counter increment is a single atomic repository operation, so two
// concurrent allocations for the same organization can never produce the same
// number, and organizations never affect each other's counters.
//
// The year prefix is the issuance year only; the counter does not reset at
// the turn of the year.
func (s *contractSequenceService) AllocateNext(ctx context.Context, organizationID string) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	next, err := s.sequenceRepo.IncrementAndGet(ctx, organizationID)
	if err != nil {
		logger.Error("Failed to increment contract sequence", slog.String("organization_id", organizationID), slog.String("error", err.Error()))
		return "", fmt.Errorf("failed to allocate contract number: %w", err)
	}

	return fmt.Sprintf("CTR-%d-%05d", time.Now().UTC().Year(), next), nil
}
