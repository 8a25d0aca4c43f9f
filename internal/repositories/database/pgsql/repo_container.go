package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/novaerp/accounting_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx repository against the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:   newPgxAccountRepository(dbPool),
		JournalRepo:   newPgxJournalRepository(dbPool),
		BudgetRepo:    newPgxBudgetRepository(dbPool),
		AssetRepo:     newPgxAssetRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
		UserRepo:      newPgxUserRepository(dbPool),
	}
}
