package dto

import (
	"time"

	"github.com/novaerp/accounting_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// JournalDetailRequest is one debit/credit line of a new journal entry.
type JournalDetailRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

// CreateJournalEntryRequest defines the data needed to create a journal entry.
// The entry is created in DRAFT status; posting is a separate operation.
type CreateJournalEntryRequest struct {
	EntryDate   string                 `json:"entryDate" binding:"required,datetime=2006-01-02"`
	ReferenceNo string                 `json:"referenceNo" binding:"required"`
	Description string                 `json:"description"`
	Details     []JournalDetailRequest `json:"details" binding:"required,min=1,dive"`
}

// UpdateJournalEntryRequest defines the fields allowed when patching a draft
// journal entry. Status transitions go through the post/void operations.
type UpdateJournalEntryRequest struct {
	EntryDate   *string `json:"entryDate" binding:"omitempty,datetime=2006-01-02"`
	Description *string `json:"description"`
}

// ListJournalEntriesParams carries the optional list filters.
type ListJournalEntriesParams struct {
	StartDate *string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Status    *string `form:"status" binding:"omitempty,oneof=DRAFT POSTED VOID"`
}

// JournalDetailResponse is one line of a journal entry as returned to clients.
type JournalDetailResponse struct {
	DetailID    string          `json:"detailID"`
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID     string                  `json:"entryID"`
	EntryDate   string                  `json:"entryDate"`
	ReferenceNo string                  `json:"referenceNo"`
	Description string                  `json:"description"`
	Status      domain.JournalStatus    `json:"status"`
	Details     []JournalDetailResponse `json:"details"`
	TotalDebit  decimal.Decimal         `json:"totalDebit"`
	TotalCredit decimal.Decimal         `json:"totalCredit"`
	CreatedAt   time.Time               `json:"createdAt"`
}

// ToJournalEntryResponse converts a domain JournalEntry with its details.
func ToJournalEntryResponse(entry *domain.JournalEntry) JournalEntryResponse {
	details := make([]JournalDetailResponse, len(entry.Details))
	for i, d := range entry.Details {
		details[i] = JournalDetailResponse{
			DetailID:    d.DetailID,
			AccountID:   d.AccountID,
			AccountCode: d.AccountCode,
			AccountName: d.AccountName,
			Debit:       d.Debit,
			Credit:      d.Credit,
			Description: d.Description,
		}
	}
	return JournalEntryResponse{
		EntryID:     entry.EntryID,
		EntryDate:   entry.EntryDate.Format(DateLayout),
		ReferenceNo: entry.ReferenceNo,
		Description: entry.Description,
		Status:      entry.Status,
		Details:     details,
		TotalDebit:  entry.TotalDebits(),
		TotalCredit: entry.TotalCredits(),
		CreatedAt:   entry.CreatedAt,
	}
}

// ToJournalEntryResponses converts a slice of domain journal entries.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	out := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		out[i] = ToJournalEntryResponse(&entries[i])
	}
	return out
}
