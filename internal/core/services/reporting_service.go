package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/novaerp/accounting_backend/internal/core/domain"
	portsrepo "github.com/novaerp/accounting_backend/internal/core/ports/repositories"
	portssvc "github.com/novaerp/accounting_backend/internal/core/ports/services"
	"github.com/novaerp/accounting_backend/internal/dto"
	"github.com/novaerp/accounting_backend/internal/utils/accounting"
)

// reportingService derives financial reports from posted journal entries.
// Hierarchy is resolved in memory from the flat account list, which is small
// enough for any realistic chart of accounts.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	accountRepo   portsrepo.AccountRepositoryFacade
	budgetRepo    portsrepo.BudgetRepositoryFacade
}

// NewReportingService creates a new reporting service.
func NewReportingService(
	reportingRepo portsrepo.ReportingRepository,
	accountRepo portsrepo.AccountRepositoryFacade,
	budgetRepo portsrepo.BudgetRepositoryFacade,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: reportingRepo,
		accountRepo:   accountRepo,
		budgetRepo:    budgetRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// accountTree indexes accounts for depth-first traversal in code order.
// ListAccounts returns accounts ordered by code, so children lists inherit
// that ordering without re-sorting.
type accountTree struct {
	byID     map[string]domain.Account
	children map[string][]string
	roots    []string
}

func buildAccountTree(accounts []domain.Account) accountTree {
	t := accountTree{
		byID:     make(map[string]domain.Account, len(accounts)),
		children: make(map[string][]string),
	}
	for _, a := range accounts {
		t.byID[a.AccountID] = a
	}
	for _, a := range accounts {
		if a.ParentAccountID != nil {
			if _, ok := t.byID[*a.ParentAccountID]; ok {
				t.children[*a.ParentAccountID] = append(t.children[*a.ParentAccountID], a.AccountID)
				continue
			}
		}
		t.roots = append(t.roots, a.AccountID)
	}
	return t
}

// walk visits accounts of the given types depth-first, parents before
// children, calling fn with each account and its depth.
func (t accountTree) walk(types map[domain.AccountType]bool, fn func(acct domain.Account, level int)) {
	var visit func(id string, level int)
	visit = func(id string, level int) {
		acct := t.byID[id]
		if types[acct.AccountType] {
			fn(acct, level)
		}
		for _, childID := range t.children[id] {
			visit(childID, level+1)
		}
	}
	for _, rootID := range t.roots {
		visit(rootID, 0)
	}
}

func totalsByAccount(totals []domain.AccountTotals) map[string]domain.AccountTotals {
	m := make(map[string]domain.AccountTotals, len(totals))
	for _, t := range totals {
		m[t.AccountID] = t
	}
	return m
}

// BalanceSheet reports asset, liability and equity balances as of a date.
func (s *reportingService) BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for balance sheet")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	totals, err := s.reportingRepo.GetAccountTotalsAsOf(ctx, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate totals for balance sheet")
		return nil, fmt.Errorf("failed to aggregate account totals: %w", err)
	}
	totalsMap := totalsByAccount(totals)
	tree := buildAccountTree(accounts)

	report := &domain.BalanceSheetReport{
		AsOfDate:         asOf.Format(dto.DateLayout),
		Assets:           []domain.ReportLine{},
		Liabilities:      []domain.ReportLine{},
		Equity:           []domain.ReportLine{},
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}

	appendLines := func(accountType domain.AccountType, lines *[]domain.ReportLine, total *decimal.Decimal) {
		tree.walk(map[domain.AccountType]bool{accountType: true}, func(acct domain.Account, level int) {
			tot := totalsMap[acct.AccountID]
			balance := accounting.SignedBalance(acct.AccountType, tot.TotalDebit, tot.TotalCredit)
			*lines = append(*lines, domain.ReportLine{
				AccountID:   acct.AccountID,
				AccountCode: acct.Code,
				AccountName: acct.Name,
				AccountType: acct.AccountType,
				Level:       level,
				Balance:     balance,
			})
			*total = total.Add(balance)
		})
	}

	appendLines(domain.Asset, &report.Assets, &report.TotalAssets)
	appendLines(domain.Liability, &report.Liabilities, &report.TotalLiabilities)
	appendLines(domain.Equity, &report.Equity, &report.TotalEquity)

	return report, nil
}

// IncomeStatement reports revenue and expense balances over a period.
func (s *reportingService) IncomeStatement(ctx context.Context, from, to time.Time) (*domain.IncomeStatementReport, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for income statement")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	totals, err := s.reportingRepo.GetAccountTotalsBetween(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate totals for income statement")
		return nil, fmt.Errorf("failed to aggregate account totals: %w", err)
	}
	totalsMap := totalsByAccount(totals)
	tree := buildAccountTree(accounts)

	report := &domain.IncomeStatementReport{
		StartDate:     from.Format(dto.DateLayout),
		EndDate:       to.Format(dto.DateLayout),
		Revenue:       []domain.ReportLine{},
		Expenses:      []domain.ReportLine{},
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	appendLines := func(accountType domain.AccountType, lines *[]domain.ReportLine, total *decimal.Decimal) {
		tree.walk(map[domain.AccountType]bool{accountType: true}, func(acct domain.Account, level int) {
			tot := totalsMap[acct.AccountID]
			balance := accounting.SignedBalance(acct.AccountType, tot.TotalDebit, tot.TotalCredit)
			*lines = append(*lines, domain.ReportLine{
				AccountID:   acct.AccountID,
				AccountCode: acct.Code,
				AccountName: acct.Name,
				AccountType: acct.AccountType,
				Level:       level,
				Balance:     balance,
			})
			*total = total.Add(balance)
		})
	}

	appendLines(domain.Revenue, &report.Revenue, &report.TotalRevenue)
	appendLines(domain.Expense, &report.Expenses, &report.TotalExpenses)
	report.NetIncome = report.TotalRevenue.Sub(report.TotalExpenses)

	return report, nil
}

// TrialBalance lists every account's total debits and credits as of a date.
func (s *reportingService) TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalanceReport, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for trial balance")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	totals, err := s.reportingRepo.GetAccountTotalsAsOf(ctx, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate totals for trial balance")
		return nil, fmt.Errorf("failed to aggregate account totals: %w", err)
	}
	totalsMap := totalsByAccount(totals)

	report := &domain.TrialBalanceReport{
		AsOfDate:    asOf.Format(dto.DateLayout),
		Rows:        make([]domain.TrialBalanceRow, 0, len(accounts)),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	// ListAccounts already orders by code.
	for _, acct := range accounts {
		tot := totalsMap[acct.AccountID]
		report.Rows = append(report.Rows, domain.TrialBalanceRow{
			AccountID:   acct.AccountID,
			AccountCode: acct.Code,
			AccountName: acct.Name,
			AccountType: acct.AccountType,
			TotalDebit:  tot.TotalDebit,
			TotalCredit: tot.TotalCredit,
			Balance:     tot.TotalDebit.Sub(tot.TotalCredit),
		})
		report.TotalDebit = report.TotalDebit.Add(tot.TotalDebit)
		report.TotalCredit = report.TotalCredit.Add(tot.TotalCredit)
	}

	return report, nil
}

// BudgetVsActual compares each budget for the fiscal year against the actual
// signed balance over that calendar year.
func (s *reportingService) BudgetVsActual(ctx context.Context, fiscalYear int, accountID *string) ([]domain.BudgetVsActualRow, error) {
	filter := portsrepo.BudgetFilter{FiscalYear: &fiscalYear, AccountID: accountID}
	budgets, err := s.budgetRepo.ListBudgets(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets for comparison")
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	from := time.Date(fiscalYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(fiscalYear, time.December, 31, 0, 0, 0, 0, time.UTC)
	totals, err := s.reportingRepo.GetAccountTotalsBetween(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate totals for budget comparison")
		return nil, fmt.Errorf("failed to aggregate account totals: %w", err)
	}
	totalsMap := totalsByAccount(totals)

	ids := make([]string, 0, len(budgets))
	for _, b := range budgets {
		ids = append(ids, b.AccountID)
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch accounts for budget comparison")
		return nil, fmt.Errorf("failed to fetch budget accounts: %w", err)
	}

	rows := make([]domain.BudgetVsActualRow, 0, len(budgets))
	for _, b := range budgets {
		acct, ok := accounts[b.AccountID]
		if !ok {
			continue
		}
		tot := totalsMap[b.AccountID]
		actual := accounting.SignedBalance(acct.AccountType, tot.TotalDebit, tot.TotalCredit)
		variance := actual.Sub(b.Amount)
		variancePct := decimal.Zero
		if !b.Amount.IsZero() {
			variancePct = variance.Div(b.Amount).Mul(decimal.NewFromInt(100)).Round(2)
		}
		rows = append(rows, domain.BudgetVsActualRow{
			AccountID:   b.AccountID,
			AccountCode: acct.Code,
			AccountName: acct.Name,
			AccountType: acct.AccountType,
			FiscalYear:  b.FiscalYear,
			Budgeted:    b.Amount,
			Actual:      actual,
			Variance:    variance,
			VariancePct: variancePct,
		})
	}

	return rows, nil
}
