package services

import (
	"context"

	"github.com/imovelhub/crm_deals_app/internal/dto"
)

// StakeholderNotifier fans out deal-won notifications to the assigned
// representative, the team leads of the lead's pipeline and the organization
// admins, deduplicated so no recipient is notified twice for one closure.
//
// The closure workflow invokes it asynchronously; its failure must never fail
// the closure.
type StakeholderNotifier interface {
	NotifyDealWon(ctx context.Context, input dto.DealWonNotification) error
}
