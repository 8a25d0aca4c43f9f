package services

// ServiceContainer bundles every service facade for injection into the HTTP
// layer.
type ServiceContainer struct {
	Account   AccountSvcFacade
	Journal   JournalSvcFacade
	Budget    BudgetSvcFacade
	Asset     AssetSvcFacade
	Reporting ReportingSvcFacade
	User      UserSvcFacade
}
