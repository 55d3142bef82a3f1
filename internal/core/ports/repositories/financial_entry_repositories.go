package repositories

import (
	"context"

	"github.com/imovelhub/crm_deals_app/internal/core/domain"
)

// FinancialEntryReader defines read operations for financial entries.
type FinancialEntryReader interface {
	// FindEntriesByContractID retrieves all entries linked to a contract,
	// ordered by installment number.
	FindEntriesByContractID(ctx context.Context, contractID string) ([]domain.FinancialEntry, error)
}

// FinancialEntryWriter defines write operations for financial entries.
type FinancialEntryWriter interface {
	// SaveEntries inserts a batch of financial entries. The batch either
	// fully succeeds or fully fails; there is no partial insert.
	SaveEntries(ctx context.Context, entries []domain.FinancialEntry) error
}

// FinancialEntryRepositoryFacade combines all financial entry repository interfaces.
type FinancialEntryRepositoryFacade interface {
	FinancialEntryReader
	FinancialEntryWriter
}
