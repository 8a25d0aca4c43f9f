package services

import (
	"context"
	"time"

	"github.com/novaerp/accounting_backend/internal/core/domain"
)

// ReportingSvcFacade generates financial reports from posted journal entries.
type ReportingSvcFacade interface {
	// BalanceSheet reports asset/liability/equity balances as of a date,
	// accounts laid out in chart-of-accounts tree order.
	BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error)

	// IncomeStatement reports revenue and expense balances over a period.
	IncomeStatement(ctx context.Context, from, to time.Time) (*domain.IncomeStatementReport, error)

	// TrialBalance lists every account's total debits and credits as of a
	// date, plus ledger-wide totals.
	TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalanceReport, error)

	// BudgetVsActual compares budgets for a fiscal year to the actual signed
	// balances of that calendar year.
	BudgetVsActual(ctx context.Context, fiscalYear int, accountID *string) ([]domain.BudgetVsActualRow, error)
}
