package models

// AccountType mirrors the account_type column values.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Account represents one row of chart_of_accounts.
// ParentAccountID is a nullable self-referencing FK; ParentName and
// HasChildren are populated by list/get queries, not stored.
type Account struct {
	AccountID       string      `db:"account_id"`
	Code            string      `db:"code"`
	Name            string      `db:"name"`
	AccountType     AccountType `db:"account_type"`
	Description     string      `db:"description"`
	ParentAccountID *string     `db:"parent_account_id"`
	ParentName      string      `db:"parent_name"`
	HasChildren     bool        `db:"has_children"`
	AuditFields
}
