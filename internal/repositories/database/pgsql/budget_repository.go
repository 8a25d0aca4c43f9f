package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/novaerp/accounting_backend/internal/apperrors"
	"github.com/novaerp/accounting_backend/internal/core/domain"
	portsrepo "github.com/novaerp/accounting_backend/internal/core/ports/repositories"
	"github.com/novaerp/accounting_backend/internal/models"
	"github.com/novaerp/accounting_backend/internal/utils/mapping"
)

type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new repository for budget data.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

// SaveBudget inserts a new budget line. The composite unique constraint on
// (account_id, fiscal_year) closes the duplicate-check race.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)

	query := `
		INSERT INTO budgets (budget_id, account_id, fiscal_year, amount, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BudgetID,
		m.AccountID,
		m.FiscalYear,
		m.Amount,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: budget for account %s in %d already exists", apperrors.ErrDuplicate, m.AccountID, m.FiscalYear)
		}
		return fmt.Errorf("failed to save budget %s: %w", m.BudgetID, err)
	}
	return nil
}

// FindBudgetByAccountAndYear retrieves one budget line or ErrNotFound.
func (r *PgxBudgetRepository) FindBudgetByAccountAndYear(ctx context.Context, accountID string, fiscalYear int) (*domain.Budget, error) {
	query := `
		SELECT b.budget_id, b.account_id, a.code, a.name, b.fiscal_year, b.amount, b.description, b.created_at, b.created_by, b.last_updated_at, b.last_updated_by
		FROM budgets b
		JOIN chart_of_accounts a ON a.account_id = b.account_id
		WHERE b.account_id = $1 AND b.fiscal_year = $2;
	`
	var m models.Budget
	err := r.Pool.QueryRow(ctx, query, accountID, fiscalYear).Scan(
		&m.BudgetID,
		&m.AccountID,
		&m.AccountCode,
		&m.AccountName,
		&m.FiscalYear,
		&m.Amount,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget for account %s year %d: %w", accountID, fiscalYear, err)
	}

	d := mapping.ToDomainBudget(m)
	return &d, nil
}

// ListBudgets retrieves budgets matching the filter ordered by fiscal year
// then account code.
func (r *PgxBudgetRepository) ListBudgets(ctx context.Context, filter portsrepo.BudgetFilter) ([]domain.Budget, error) {
	query := `
		SELECT b.budget_id, b.account_id, a.code, a.name, b.fiscal_year, b.amount, b.description, b.created_at, b.created_by, b.last_updated_at, b.last_updated_by
		FROM budgets b
		JOIN chart_of_accounts a ON a.account_id = b.account_id
		WHERE 1=1
	`
	args := []any{}
	argN := 1
	if filter.FiscalYear != nil {
		query += fmt.Sprintf(" AND b.fiscal_year = $%d", argN)
		args = append(args, *filter.FiscalYear)
		argN++
	}
	if filter.AccountID != nil {
		query += fmt.Sprintf(" AND b.account_id = $%d", argN)
		args = append(args, *filter.AccountID)
		argN++
	}
	query += " ORDER BY b.fiscal_year, a.code;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	budgets := []domain.Budget{}
	for rows.Next() {
		var m models.Budget
		err := rows.Scan(
			&m.BudgetID,
			&m.AccountID,
			&m.AccountCode,
			&m.AccountName,
			&m.FiscalYear,
			&m.Amount,
			&m.Description,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget row: %w", err)
		}
		budgets = append(budgets, mapping.ToDomainBudget(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget rows: %w", err)
	}

	return budgets, nil
}
