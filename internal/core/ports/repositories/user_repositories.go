package repositories

import (
	"context"

	"github.com/imovelhub/crm_deals_app/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a user by its unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListTeamLeadIDsByPipeline returns the user IDs of team leads whose
	// teams are linked to the given pipeline.
	ListTeamLeadIDsByPipeline(ctx context.Context, organizationID string, pipelineID string) ([]string, error)
}

// UserRepositoryFacade combines all user repository interfaces.
type UserRepositoryFacade interface {
	UserReader
}
