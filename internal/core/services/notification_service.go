package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/imovelhub/crm_deals_app/internal/core/domain"
	portsrepo "github.com/imovelhub/crm_deals_app/internal/core/ports/repositories"
	portssvc "github.com/imovelhub/crm_deals_app/internal/core/ports/services"
	"github.com/imovelhub/crm_deals_app/internal/dto"
	"github.com/imovelhub/crm_deals_app/internal/middleware"
)

// stakeholderNotifierService resolves the recipients of a deal-won event and
// fans out a batch of notification records.
type stakeholderNotifierService struct {
	userRepo         portsrepo.UserRepositoryFacade
	orgRepo          portsrepo.OrganizationRepositoryFacade
	notificationRepo portsrepo.NotificationRepositoryFacade
}

// NewStakeholderNotifierService creates a new stakeholder notifier.
func NewStakeholderNotifierService(userRepo portsrepo.UserRepositoryFacade, orgRepo portsrepo.OrganizationRepositoryFacade, notificationRepo portsrepo.NotificationRepositoryFacade) portssvc.StakeholderNotifier {
	return &stakeholderNotifierService{
		userRepo:         userRepo,
		orgRepo:          orgRepo,
		notificationRepo: notificationRepo,
	}
}

var _ portssvc.StakeholderNotifier = (*stakeholderNotifierService)(nil)

// NotifyDealWon resolves three recipient tiers in strict priority order —
// assigned representative, team leads of the lead's pipeline, organization
// admins — and inserts one notification per distinct recipient. A recipient
// appearing in multiple tiers gets exactly one notification, with the message
// variant of the first tier that matched them.
//
// Tier resolution failures degrade to the remaining tiers; only the final
// batch insert can fail the call.
func (s *stakeholderNotifierService) NotifyDealWon(ctx context.Context, input dto.DealWonNotification) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	notified := make(map[string]struct{})
	notifications := make([]domain.Notification, 0, 4)
	add := func(userID, title, message string) {
		if userID == "" {
			return
		}
		if _, seen := notified[userID]; seen {
			return
		}
		notified[userID] = struct{}{}
		notifications = append(notifications, domain.Notification{
			NotificationID: uuid.NewString(),
			OrganizationID: input.OrganizationID,
			UserID:         userID,
			Title:          title,
			Message:        message,
			LeadID:         input.LeadID,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     input.Source,
				LastUpdatedAt: now,
				LastUpdatedBy: input.Source,
			},
		})
	}

	// Tier 1: the assigned representative. A deactivated assignee is skipped;
	// a failed lookup degrades to the impersonal greeting.
	if input.AssignedUserID != "" {
		assignee, err := s.userRepo.FindUserByID(ctx, input.AssignedUserID)
		switch {
		case err != nil:
			logger.Warn("Failed to resolve assignee for deal-won notification", slog.String("user_id", input.AssignedUserID), slog.String("error", err.Error()))
			add(input.AssignedUserID, "Deal won",
				fmt.Sprintf("Your lead %q closed a deal. Congratulations!", input.LeadName))
		case !assignee.IsActive:
			logger.Debug("Skipping inactive assignee for deal-won notification", slog.String("user_id", input.AssignedUserID))
		default:
			add(input.AssignedUserID, "Deal won",
				fmt.Sprintf("Congratulations %s, your lead %q closed a deal!", assignee.Name, input.LeadName))
		}
	}

	// Tier 2: team leads of teams linked to the lead's pipeline.
	if input.PipelineID != "" {
		teamLeadIDs, err := s.userRepo.ListTeamLeadIDsByPipeline(ctx, input.OrganizationID, input.PipelineID)
		if err != nil {
			logger.Warn("Failed to resolve team leads for deal-won notification", slog.String("pipeline_id", input.PipelineID), slog.String("error", err.Error()))
		}
		for _, id := range teamLeadIDs {
			add(id, "Deal won", fmt.Sprintf("A deal on your team's pipeline was closed: %s.", input.LeadName))
		}
	}

	// Tier 3: organization administrators.
	adminIDs, err := s.orgRepo.ListAdminUserIDs(ctx, input.OrganizationID)
	if err != nil {
		logger.Warn("Failed to resolve admins for deal-won notification", slog.String("organization_id", input.OrganizationID), slog.String("error", err.Error()))
	}
	for _, id := range adminIDs {
		add(id, "Deal won", fmt.Sprintf("A deal was closed in your organization: %s.", input.LeadName))
	}

	if len(notifications) == 0 {
		logger.Debug("No recipients resolved for deal-won notification", slog.String("lead_id", input.LeadID))
		return nil
	}

	if err := s.notificationRepo.SaveNotifications(ctx, notifications); err != nil {
		return fmt.Errorf("failed to save deal-won notifications: %w", err)
	}

	logger.Info("Deal-won notifications created", slog.String("lead_id", input.LeadID), slog.Int("recipients", len(notifications)))
	return nil
}
