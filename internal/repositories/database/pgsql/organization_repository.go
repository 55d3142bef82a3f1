package pgsql

import (
	"context"
	"errors"

	"github.com/imovelhub/crm_deals_app/internal/apperrors"
	"github.com/imovelhub/crm_deals_app/internal/core/domain"
	portsrepo "github.com/imovelhub/crm_deals_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxOrganizationRepository accesses organization membership data.
type PgxOrganizationRepository struct {
	BaseRepository
}

// newPgxOrganizationRepository creates a new repository for organization data.
func newPgxOrganizationRepository(pool *pgxpool.Pool) portsrepo.OrganizationRepositoryFacade {
	return &PgxOrganizationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OrganizationRepositoryFacade = (*PgxOrganizationRepository)(nil)

// FindUserRole returns the role the user holds in the organization.
// Returns apperrors.ErrNotFound when the user is not a member.
func (r *PgxOrganizationRepository) FindUserRole(ctx context.Context, organizationID string, userID string) (domain.OrganizationRole, error) {
	query := `
		SELECT ou.role
		FROM organization_users ou
		JOIN organizations o ON o.organization_id = ou.organization_id
		WHERE ou.organization_id = $1 AND ou.user_id = $2 AND o.is_active;
	`
	var role domain.OrganizationRole
	err := r.Pool.QueryRow(ctx, query, organizationID, userID).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.NewAppError(500, "failed to find role for user "+userID+" in organization "+organizationID, err)
	}
	return role, nil
}

// ListAdminUserIDs returns the user IDs of all active administrators of the
// organization.
func (r *PgxOrganizationRepository) ListAdminUserIDs(ctx context.Context, organizationID string) ([]string, error) {
	query := `
		SELECT ou.user_id
		FROM organization_users ou
		JOIN users u ON u.user_id = ou.user_id
		WHERE ou.organization_id = $1 AND ou.role = $2 AND u.is_active
		ORDER BY ou.user_id;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, domain.RoleAdmin)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list admins for organization "+organizationID, err)
	}
	defer rows.Close()

	var userIDs []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan admin user ID", err)
		}
		userIDs = append(userIDs, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating admin user rows", err)
	}
	return userIDs, nil
}
