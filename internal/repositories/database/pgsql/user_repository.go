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

// PgxUserRepository accesses the users table and team membership.
type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// FindUserByID retrieves a user by its ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, name, email, is_team_lead, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM users
		WHERE user_id = $1;
	`
	var user domain.User
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.IsTeamLead,
		&user.IsActive,
		&user.CreatedAt,
		&user.CreatedBy,
		&user.LastUpdatedAt,
		&user.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user by ID "+userID, err)
	}
	return &user, nil
}

// ListTeamLeadIDsByPipeline returns the user IDs of active team leads whose
// teams work the given pipeline.
func (r *PgxUserRepository) ListTeamLeadIDsByPipeline(ctx context.Context, organizationID string, pipelineID string) ([]string, error) {
	query := `
		SELECT DISTINCT tm.user_id
		FROM team_members tm
		JOIN teams t ON t.team_id = tm.team_id
		JOIN team_pipelines tp ON tp.team_id = tm.team_id
		JOIN users u ON u.user_id = tm.user_id
		WHERE t.organization_id = $1 AND tp.pipeline_id = $2
		  AND tm.is_lead AND u.is_active
		ORDER BY tm.user_id;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, pipelineID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list team leads for pipeline "+pipelineID, err)
	}
	defer rows.Close()

	var userIDs []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan team lead user ID", err)
		}
		userIDs = append(userIDs, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating team lead rows", err)
	}
	return userIDs, nil
}
