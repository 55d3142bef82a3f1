package repositories

import (
	"context"

	"github.com/imovelhub/crm_deals_app/internal/core/domain"
)

// CommissionWriter defines write operations for commission forecasts.
type CommissionWriter interface {
	// SaveCommissions inserts a batch of commission records.
	SaveCommissions(ctx context.Context, commissions []domain.Commission) error
}

// CommissionRepositoryFacade combines all commission repository interfaces.
type CommissionRepositoryFacade interface {
	CommissionWriter
}
