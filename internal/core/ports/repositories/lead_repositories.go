package repositories

import (
	"context"
	"time"

	"github.com/imovelhub/crm_deals_app/internal/core/domain"
)

// LeadReader defines read operations for lead data.
type LeadReader interface {
	// FindLeadByID retrieves a lead by its unique identifier.
	FindLeadByID(ctx context.Context, leadID string) (*domain.Lead, error)
}

// LeadWriter defines the single lead mutation the closure workflow performs.
type LeadWriter interface {
	// MarkLeadWon sets deal_status to WON and stamps won_at.
	MarkLeadWon(ctx context.Context, leadID string, wonAt time.Time, updatedBy string) error
}

// LeadRepositoryFacade combines all lead repository interfaces.
type LeadRepositoryFacade interface {
	LeadReader
	LeadWriter
}
