package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/novaerp/accounting_backend/internal/core/domain"
	portsrepo "github.com/novaerp/accounting_backend/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetAccountTotalsAsOf sums debits and credits per account over posted
// entries dated on or before asOf. Draft and void entries never contribute.
func (r *reportingRepository) GetAccountTotalsAsOf(ctx context.Context, asOf time.Time) ([]domain.AccountTotals, error) {
	query := `
		SELECT d.account_id,
		       COALESCE(SUM(d.debit), 0) AS total_debit,
		       COALESCE(SUM(d.credit), 0) AS total_credit
		FROM journal_details d
		JOIN journal_entries e ON e.entry_id = d.entry_id
		WHERE e.status = 'POSTED'
			AND e.entry_date <= $1
		GROUP BY d.account_id;
	`
	return r.queryTotals(ctx, query, asOf)
}

// GetAccountTotalsBetween sums debits and credits per account over posted
// entries within the inclusive date range.
func (r *reportingRepository) GetAccountTotalsBetween(ctx context.Context, from, to time.Time) ([]domain.AccountTotals, error) {
	query := `
		SELECT d.account_id,
		       COALESCE(SUM(d.debit), 0) AS total_debit,
		       COALESCE(SUM(d.credit), 0) AS total_credit
		FROM journal_details d
		JOIN journal_entries e ON e.entry_id = d.entry_id
		WHERE e.status = 'POSTED'
			AND e.entry_date BETWEEN $1 AND $2
		GROUP BY d.account_id;
	`
	return r.queryTotals(ctx, query, from, to)
}

func (r *reportingRepository) queryTotals(ctx context.Context, query string, args ...any) ([]domain.AccountTotals, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying account totals: %w", err)
	}
	defer rows.Close()

	result := []domain.AccountTotals{}
	for rows.Next() {
		var t domain.AccountTotals
		if err := rows.Scan(&t.AccountID, &t.TotalDebit, &t.TotalCredit); err != nil {
			return nil, fmt.Errorf("error scanning account totals row: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account totals rows: %w", err)
	}

	return result, nil
}
