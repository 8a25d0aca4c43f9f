package models

import "github.com/shopspring/decimal"

// Budget represents one row of budgets. Unique per (account_id, fiscal_year),
// enforced by a composite unique constraint.
type Budget struct {
	BudgetID    string          `db:"budget_id"`
	AccountID   string          `db:"account_id"`
	AccountCode string          `db:"account_code"`
	AccountName string          `db:"account_name"`
	FiscalYear  int             `db:"fiscal_year"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	AuditFields
}
