package domain

// AccountType defines the fundamental accounting classification of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// ValidAccountType reports whether t is one of the five ledger classifications.
func ValidAccountType(t AccountType) bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// Account represents one node in the chart of accounts.
// Accounts form a tree via ParentAccountID; they are never hard-deleted
// because journal details and budgets reference them.
type Account struct {
	AccountID       string      `json:"accountID"`       // Primary key (UUID)
	Code            string      `json:"code"`            // Unique, >= 4 digits, immutable after creation
	Name            string      `json:"name"`            // User-defined name
	AccountType     AccountType `json:"accountType"`     // ASSET, LIABILITY, EQUITY, REVENUE, EXPENSE
	Description     string      `json:"description"`     // Nullable user description
	ParentAccountID *string     `json:"parentAccountID"` // Nullable FK -> accounts.account_id
	ParentName      string      `json:"parentName"`      // Denormalized for display, empty when root
	HasChildren     bool        `json:"hasChildren"`     // True when any account points here as parent
	AuditFields
}
