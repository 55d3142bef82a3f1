package services

import (
	"context"

	"github.com/imovelhub/crm_deals_app/internal/core/domain"
)

// OrganizationAuthorizerSvc resolves whether a user may act within an
// organization. This is the identity/membership collaborator consulted before
// any closure step runs.
type OrganizationAuthorizerSvc interface {
	// AuthorizeUserAction returns nil when the user holds at least the
	// required role in the organization, apperrors.ErrNotFound when the user
	// is not a member, and apperrors.ErrForbidden when the role is too low.
	AuthorizeUserAction(ctx context.Context, userID string, organizationID string, requiredRole domain.OrganizationRole) error
}
