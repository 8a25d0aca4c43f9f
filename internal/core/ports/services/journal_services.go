package services

import (
	"context"

	"github.com/novaerp/accounting_backend/internal/core/domain"
	"github.com/novaerp/accounting_backend/internal/dto"
)

// JournalSvcFacade exposes journal engine operations.
type JournalSvcFacade interface {
	// CreateJournalEntry validates the double-entry invariant and persists
	// the entry with its details atomically. The new entry is DRAFT.
	CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error)

	// GetJournalEntryByID retrieves one entry with its details.
	GetJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListJournalEntries retrieves entries matching the supplied filters,
	// newest first, details included.
	ListJournalEntries(ctx context.Context, params dto.ListJournalEntriesParams) ([]domain.JournalEntry, error)

	// UpdateJournalEntry patches the date/description of a DRAFT entry.
	UpdateJournalEntry(ctx context.Context, entryID string, req dto.UpdateJournalEntryRequest, updaterUserID string) (*domain.JournalEntry, error)

	// PostJournalEntry transitions DRAFT -> POSTED after re-validating the
	// balance from the stored details.
	PostJournalEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error)

	// VoidJournalEntry transitions DRAFT or POSTED -> VOID. VOID is terminal.
	VoidJournalEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error)
}
