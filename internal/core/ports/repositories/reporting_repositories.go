package repositories

import (
	"context"
	"time"

	"github.com/novaerp/accounting_backend/internal/core/domain"
)

// ReportingRepository aggregates journal detail amounts for report generation.
// Only POSTED journal entries contribute.
type ReportingRepository interface {
	// GetAccountTotalsAsOf sums debits and credits per account over posted
	// entries with entry_date <= asOf.
	GetAccountTotalsAsOf(ctx context.Context, asOf time.Time) ([]domain.AccountTotals, error)

	// GetAccountTotalsBetween sums debits and credits per account over posted
	// entries with from <= entry_date <= to.
	GetAccountTotalsBetween(ctx context.Context, from, to time.Time) ([]domain.AccountTotals, error)
}
