package repositories

// RepositoryProvider bundles all repository facades for dependency injection
// into the service layer.
type RepositoryProvider struct {
	LeadRepo         LeadRepositoryFacade
	ContractRepo     ContractRepositoryFacade
	EntryRepo        FinancialEntryRepositoryFacade
	CommissionRepo   CommissionRepositoryFacade
	SequenceRepo     ContractSequenceRepositoryFacade
	OrganizationRepo OrganizationRepositoryFacade
	UserRepo         UserRepositoryFacade
	AuditRepo        AuditRepositoryFacade
	NotificationRepo NotificationRepositoryFacade
}
