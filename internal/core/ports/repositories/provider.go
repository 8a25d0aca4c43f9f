package repositories

// RepositoryProvider bundles every repository implementation for injection
// into the service layer.
type RepositoryProvider struct {
	AccountRepo   AccountRepositoryFacade
	JournalRepo   JournalRepositoryFacade
	BudgetRepo    BudgetRepositoryFacade
	AssetRepo     AssetRepositoryFacade
	ReportingRepo ReportingRepository
	UserRepo      UserRepositoryFacade
}
