package repositories

import (
	"context"

	"github.com/imovelhub/crm_deals_app/internal/core/domain"
)

// OrganizationReader defines read operations for organization membership data.
type OrganizationReader interface {
	// FindUserRole returns the role the user holds in the organization, or
	// apperrors.ErrNotFound if the user is not a member.
	FindUserRole(ctx context.Context, organizationID string, userID string) (domain.OrganizationRole, error)

	// ListAdminUserIDs returns the user IDs of all active administrators of
	// the organization.
	ListAdminUserIDs(ctx context.Context, organizationID string) ([]string, error)
}

// OrganizationRepositoryFacade combines all organization repository interfaces.
type OrganizationRepositoryFacade interface {
	OrganizationReader
}
