package domain

import (
	"github.com/shopspring/decimal"
)

// AccountTotals carries one account's summed debits and credits over some
// date scope, as aggregated from posted journal details.
type AccountTotals struct {
	AccountID   string
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// ReportLine is one account row in a balance sheet or income statement.
// Level carries the account's depth in the chart-of-accounts tree; the list
// itself is flat, children follow their parents.
type ReportLine struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Level       int             `json:"level"`
	Balance     decimal.Decimal `json:"balance"`
}

// BalanceSheetReport groups asset, liability and equity balances as of a date.
type BalanceSheetReport struct {
	AsOfDate         string          `json:"asOfDate"`
	Assets           []ReportLine    `json:"assets"`
	Liabilities      []ReportLine    `json:"liabilities"`
	Equity           []ReportLine    `json:"equity"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
}

// IncomeStatementReport holds revenue and expense balances over a period.
type IncomeStatementReport struct {
	StartDate     string          `json:"startDate"`
	EndDate       string          `json:"endDate"`
	Revenue       []ReportLine    `json:"revenue"`
	Expenses      []ReportLine    `json:"expenses"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetIncome     decimal.Decimal `json:"netIncome"`
}

// TrialBalanceRow lists one account's total debits and credits.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Balance     decimal.Decimal `json:"balance"` // TotalDebit - TotalCredit
}

// TrialBalanceReport lists every account with ledger-wide totals.
// TotalDebit equals TotalCredit whenever all posted entries balance.
type TrialBalanceReport struct {
	AsOfDate    string            `json:"asOfDate"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}

// BudgetVsActualRow compares one account's budget to its actual balance.
type BudgetVsActualRow struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	FiscalYear  int             `json:"fiscalYear"`
	Budgeted    decimal.Decimal `json:"budgeted"`
	Actual      decimal.Decimal `json:"actual"`
	Variance    decimal.Decimal `json:"variance"`    // Actual - Budgeted
	VariancePct decimal.Decimal `json:"variancePct"` // Zero when Budgeted is zero
}
