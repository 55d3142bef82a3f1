package services_test

import (
	"context"
	"testing"

	"github.com/imovelhub/crm_deals_app/internal/apperrors"
	"github.com/imovelhub/crm_deals_app/internal/core/domain"
	"github.com/imovelhub/crm_deals_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthorizeUserAction_RoleRanking(t *testing.T) {
	cases := []struct {
		name     string
		held     domain.OrganizationRole
		required domain.OrganizationRole
		wantErr  error
	}{
		{"admin can act as member", domain.RoleAdmin, domain.RoleMember, nil},
		{"member can act as member", domain.RoleMember, domain.RoleMember, nil},
		{"member can read", domain.RoleMember, domain.RoleReadOnly, nil},
		{"readonly cannot act as member", domain.RoleReadOnly, domain.RoleMember, apperrors.ErrForbidden},
		{"member cannot act as admin", domain.RoleMember, domain.RoleAdmin, apperrors.ErrForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			orgRepo := new(MockOrganizationRepository)
			orgRepo.On("FindUserRole", mock.Anything, "org-1", "user-1").Return(tc.held, nil).Once()

			svc := services.NewOrganizationService(orgRepo)
			err := svc.AuthorizeUserAction(context.Background(), "user-1", "org-1", tc.required)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthorizeUserAction_NonMemberGetsNotFound(t *testing.T) {
	orgRepo := new(MockOrganizationRepository)
	orgRepo.On("FindUserRole", mock.Anything, "org-1", "stranger").Return(domain.OrganizationRole(""), apperrors.ErrNotFound).Once()

	svc := services.NewOrganizationService(orgRepo)
	err := svc.AuthorizeUserAction(context.Background(), "stranger", "org-1", domain.RoleReadOnly)

	// Membership is not revealed: not-found, never forbidden.
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NotErrorIs(t, err, apperrors.ErrForbidden)
}
