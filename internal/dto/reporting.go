package dto

// Report endpoints return the domain report structures directly inside the
// response envelope; their shapes are already wire-friendly. Query parameter
// carriers live here.

// BalanceSheetParams carries the as-of date filter.
type BalanceSheetParams struct {
	AsOfDate *string `form:"as_of_date" binding:"omitempty,datetime=2006-01-02"`
}

// IncomeStatementParams carries the reporting period.
type IncomeStatementParams struct {
	StartDate string `form:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"required,datetime=2006-01-02"`
}

// TrialBalanceParams carries the as-of date filter.
type TrialBalanceParams struct {
	AsOfDate *string `form:"as_of_date" binding:"omitempty,datetime=2006-01-02"`
}

// BudgetVsActualParams carries the fiscal year and optional account filter.
type BudgetVsActualParams struct {
	FiscalYear int     `form:"fiscal_year" binding:"required,min=1900,max=2200"`
	AccountID  *string `form:"account_id"`
}
