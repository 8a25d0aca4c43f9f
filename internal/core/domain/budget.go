package domain

import "github.com/shopspring/decimal"

// Budget represents the planned amount for one account in one fiscal year.
// Unique per (AccountID, FiscalYear).
type Budget struct {
	BudgetID    string          `json:"budgetID"` // Primary key (UUID)
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"` // Denormalized for display
	AccountName string          `json:"accountName"` // Denormalized for display
	FiscalYear  int             `json:"fiscalYear"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	AuditFields
}
