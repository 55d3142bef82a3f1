package services

import (
	portsrepo "github.com/imovelhub/crm_deals_app/internal/core/ports/repositories"
	portssvc "github.com/imovelhub/crm_deals_app/internal/core/ports/services"
	"github.com/imovelhub/crm_deals_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Leaf services first; the closure service depends on all of them.
	container.Organization = NewOrganizationService(repos.OrganizationRepo)
	container.Sequence = NewContractSequenceService(repos.SequenceRepo)
	container.Audit = NewAuditLogService(repos.AuditRepo)
	container.Notifier = NewStakeholderNotifierService(repos.UserRepo, repos.OrganizationRepo, repos.NotificationRepo)

	container.DealClosure = NewDealClosureService(
		repos.LeadRepo,
		repos.ContractRepo,
		repos.EntryRepo,
		repos.CommissionRepo,
		container.Sequence,
		container.Organization,
		container.Audit,
		container.Notifier,
		cfg.PersistTimeout,
	)

	return container
}
