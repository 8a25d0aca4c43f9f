package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
// Entries are created as DRAFT, may be posted exactly once, and voiding is
// terminal. Only POSTED entries contribute to reports.
type JournalStatus string

const (
	Draft  JournalStatus = "DRAFT"
	Posted JournalStatus = "POSTED"
	Void   JournalStatus = "VOID"
)

// JournalEntry represents a single, balanced financial event composed of
// multiple journal details.
type JournalEntry struct {
	EntryID     string          `json:"entryID"`     // Primary key (UUID)
	EntryDate   time.Time       `json:"entryDate"`   // Date the event occurred
	ReferenceNo string          `json:"referenceNo"` // Unique, user-supplied
	Description string          `json:"description"`
	Status      JournalStatus   `json:"status"`
	Details     []JournalDetail `json:"details,omitempty"`
	AuditFields
}

// JournalDetail represents a single debit or credit line within a journal
// entry, affecting one account. Either Debit or Credit is positive, never
// both.
type JournalDetail struct {
	DetailID    string          `json:"detailID"` // Primary key (UUID)
	EntryID     string          `json:"entryID"`  // FK -> JournalEntry.EntryID
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"` // Denormalized for display
	AccountName string          `json:"accountName"` // Denormalized for display
	Debit       decimal.Decimal `json:"debit"`       // >= 0
	Credit      decimal.Decimal `json:"credit"`      // >= 0
	Description string          `json:"description"`
	LineNo      int             `json:"lineNo"` // Preserves line order within the entry
}

// TotalDebits sums the debit side of the entry.
func (e *JournalEntry) TotalDebits() decimal.Decimal {
	sum := decimal.Zero
	for _, d := range e.Details {
		sum = sum.Add(d.Debit)
	}
	return sum
}

// TotalCredits sums the credit side of the entry.
func (e *JournalEntry) TotalCredits() decimal.Decimal {
	sum := decimal.Zero
	for _, d := range e.Details {
		sum = sum.Add(d.Credit)
	}
	return sum
}

// IsBalanced reports whether debits equal credits exactly.
// Decimal arithmetic makes the invariant exact; no epsilon is needed.
func (e *JournalEntry) IsBalanced() bool {
	return e.TotalDebits().Equal(e.TotalCredits())
}
