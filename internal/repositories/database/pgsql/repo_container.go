package pgsql

import (
	portsrepo "github.com/imovelhub/crm_deals_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository against the shared
// connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LeadRepo:         newPgxLeadRepository(pool),
		ContractRepo:     newPgxContractRepository(pool),
		EntryRepo:        newPgxFinancialEntryRepository(pool),
		CommissionRepo:   newPgxCommissionRepository(pool),
		SequenceRepo:     newPgxContractSequenceRepository(pool),
		OrganizationRepo: newPgxOrganizationRepository(pool),
		UserRepo:         newPgxUserRepository(pool),
		AuditRepo:        newPgxAuditRepository(pool),
		NotificationRepo: newPgxNotificationRepository(pool),
	}
}
