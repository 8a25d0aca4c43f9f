package services

import (
	"context"

	"github.com/novaerp/accounting_backend/internal/core/domain"
	"github.com/novaerp/accounting_backend/internal/dto"
)

// BudgetSvcFacade exposes budget operations.
type BudgetSvcFacade interface {
	// CreateBudget persists a new budget line. A second budget for the same
	// (account, fiscal year) returns ErrDuplicate.
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, creatorUserID string) (*domain.Budget, error)

	// ListBudgets retrieves budget lines matching the supplied filters.
	ListBudgets(ctx context.Context, params dto.ListBudgetsParams) ([]domain.Budget, error)
}
