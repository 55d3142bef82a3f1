package repositories

import (
	"context"

	"github.com/imovelhub/crm_deals_app/internal/core/domain"
)

// NotificationRepositoryFacade persists notification records.
type NotificationRepositoryFacade interface {
	// SaveNotifications inserts a batch of notifications, one per recipient.
	SaveNotifications(ctx context.Context, notifications []domain.Notification) error
}
