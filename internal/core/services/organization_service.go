package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/imovelhub/crm_deals_app/internal/apperrors"
	"github.com/imovelhub/crm_deals_app/internal/core/domain"
	portsrepo "github.com/imovelhub/crm_deals_app/internal/core/ports/repositories"
	portssvc "github.com/imovelhub/crm_deals_app/internal/core/ports/services"
	"github.com/imovelhub/crm_deals_app/internal/middleware"
)

// roleRank orders organization roles by privilege.
var roleRank = map[domain.OrganizationRole]int{
	domain.RoleReadOnly: 1,
	domain.RoleMember:   2,
	domain.RoleAdmin:    3,
}

// organizationService resolves organization membership and authorization.
type organizationService struct {
	orgRepo portsrepo.OrganizationRepositoryFacade
}

// NewOrganizationService creates a new organization service.
func NewOrganizationService(orgRepo portsrepo.OrganizationRepositoryFacade) portssvc.OrganizationAuthorizerSvc {
	return &organizationService{orgRepo: orgRepo}
}

var _ portssvc.OrganizationAuthorizerSvc = (*organizationService)(nil)

// AuthorizeUserAction checks that the user holds at least requiredRole in the
// organization. Non-members get ErrNotFound so membership is not revealed.
func (s *organizationService) AuthorizeUserAction(ctx context.Context, userID string, organizationID string, requiredRole domain.OrganizationRole) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	role, err := s.orgRepo.FindUserRole(ctx, organizationID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		logger.Error("Failed to resolve organization role", slog.String("user_id", userID), slog.String("organization_id", organizationID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to resolve organization membership: %w", err)
	}

	if roleRank[role] < roleRank[requiredRole] {
		return fmt.Errorf("%w: role %s cannot perform this action", apperrors.ErrForbidden, role)
	}
	return nil
}
