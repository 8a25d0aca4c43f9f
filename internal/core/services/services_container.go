package services

import (
	portsrepo "github.com/novaerp/accounting_backend/internal/core/ports/repositories"
	portssvc "github.com/novaerp/accounting_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Journal = NewJournalService(repos.JournalRepo, repos.AccountRepo)
	container.Budget = NewBudgetService(repos.BudgetRepo, repos.AccountRepo)
	container.Asset = NewAssetService(repos.AssetRepo, repos.AccountRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.AccountRepo, repos.BudgetRepo)
	container.User = NewUserService(repos.UserRepo)

	return container
}
