package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus mirrors the status column values.
type JournalStatus string

const (
	Draft  JournalStatus = "DRAFT"
	Posted JournalStatus = "POSTED"
	Void   JournalStatus = "VOID"
)

// JournalEntry represents one row of journal_entries.
type JournalEntry struct {
	EntryID     string        `db:"entry_id"`
	EntryDate   time.Time     `db:"entry_date"`
	ReferenceNo string        `db:"reference_no"`
	Description string        `db:"description"`
	Status      JournalStatus `db:"status"`
	AuditFields
}

// JournalDetail represents one row of journal_details.
// AccountCode and AccountName come from the join with chart_of_accounts.
type JournalDetail struct {
	DetailID    string          `db:"detail_id"`
	EntryID     string          `db:"entry_id"`
	AccountID   string          `db:"account_id"`
	AccountCode string          `db:"account_code"`
	AccountName string          `db:"account_name"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
	Description string          `db:"description"`
	LineNo      int             `db:"line_no"`
}
