package repositories

import (
	"context"

	"github.com/novaerp/accounting_backend/internal/core/domain"
)

// BudgetFilter narrows ListBudgets. Nil fields are unconstrained.
type BudgetFilter struct {
	FiscalYear *int
	AccountID  *string
}

// BudgetRepositoryFacade defines operations for budget data.
type BudgetRepositoryFacade interface {
	// SaveBudget persists a new budget line. The composite unique constraint
	// on (account_id, fiscal_year) surfaces as apperrors.ErrDuplicate.
	SaveBudget(ctx context.Context, budget domain.Budget) error

	// FindBudgetByAccountAndYear retrieves one budget line or ErrNotFound.
	FindBudgetByAccountAndYear(ctx context.Context, accountID string, fiscalYear int) (*domain.Budget, error)

	// ListBudgets retrieves budgets matching the filter, annotated with
	// account code and name, ordered by fiscal year then account code.
	ListBudgets(ctx context.Context, filter BudgetFilter) ([]domain.Budget, error)
}
