package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/novaerp/accounting_backend/internal/apperrors"
	"github.com/novaerp/accounting_backend/internal/core/domain"
	portsrepo "github.com/novaerp/accounting_backend/internal/core/ports/repositories"
	portssvc "github.com/novaerp/accounting_backend/internal/core/ports/services"
	"github.com/novaerp/accounting_backend/internal/dto"
)

var (
	ErrDuplicateBudget   = errors.New("budget already exists for this account and fiscal year")
	ErrBudgetAccountGone = errors.New("budget account not found")
)

// budgetService manages per-account annual budget allocations.
type budgetService struct {
	BaseService
	budgetRepo  portsrepo.BudgetRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewBudgetService creates a new budget service.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.BudgetSvcFacade {
	return &budgetService{
		budgetRepo:  budgetRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// CreateBudget validates and persists a budget allocation. At most one budget
// may exist per (account, fiscal year) pair.
func (s *budgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, creatorUserID string) (*domain.Budget, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: budget amount must not be negative", apperrors.ErrValidation)
	}

	if _, err := s.accountRepo.FindAccountByID(ctx, req.AccountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w: %s", apperrors.ErrValidation, ErrBudgetAccountGone, req.AccountID)
		}
		return nil, fmt.Errorf("failed to fetch budget account: %w", err)
	}

	if _, err := s.budgetRepo.FindBudgetByAccountAndYear(ctx, req.AccountID, req.FiscalYear); err == nil {
		return nil, fmt.Errorf("%w: account %s year %d: %w", apperrors.ErrDuplicate, req.AccountID, req.FiscalYear, ErrDuplicateBudget)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check budget uniqueness", slog.String("account_id", req.AccountID), slog.Int("fiscal_year", req.FiscalYear))
		return nil, fmt.Errorf("failed to check existing budget: %w", err)
	}

	now := time.Now().UTC()
	budget := domain.Budget{
		BudgetID:    uuid.NewString(),
		AccountID:   req.AccountID,
		FiscalYear:  req.FiscalYear,
		Amount:      req.Amount,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: account %s year %d: %w", apperrors.ErrDuplicate, req.AccountID, req.FiscalYear, ErrDuplicateBudget)
		}
		s.LogError(ctx, err, "Failed to save budget", slog.String("account_id", req.AccountID))
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	s.LogInfo(ctx, "Budget created successfully", slog.String("budget_id", budget.BudgetID), slog.Int("fiscal_year", budget.FiscalYear))
	return &budget, nil
}

// ListBudgets retrieves budgets, optionally filtered by fiscal year and account.
func (s *budgetService) ListBudgets(ctx context.Context, params dto.ListBudgetsParams) ([]domain.Budget, error) {
	filter := portsrepo.BudgetFilter{
		FiscalYear: params.FiscalYear,
		AccountID:  params.AccountID,
	}

	budgets, err := s.budgetRepo.ListBudgets(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets")
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}
