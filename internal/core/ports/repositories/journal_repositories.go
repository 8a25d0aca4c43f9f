package repositories

import (
	"context"
	"time"

	"github.com/novaerp/accounting_backend/internal/core/domain"
)

// JournalEntryFilter narrows ListJournalEntries. Nil fields are unconstrained.
type JournalEntryFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Status    *domain.JournalStatus
}

// JournalReader defines read operations for journal data.
type JournalReader interface {
	// FindEntryByID retrieves a journal entry with its detail lines, each
	// annotated with account code and name.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves entries matching the filter, ordered by entry
	// date descending then entry ID descending, details eagerly loaded.
	ListEntries(ctx context.Context, filter JournalEntryFilter) ([]domain.JournalEntry, error)

	// FindDetailsByEntryID retrieves the detail lines of one entry in line order.
	FindDetailsByEntryID(ctx context.Context, entryID string) ([]domain.JournalDetail, error)
}

// JournalWriter defines write operations for journal data.
type JournalWriter interface {
	// SaveEntry persists the entry row and every detail row in a single
	// database transaction; nothing is written when any insert fails.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, details []domain.JournalDetail) error

	// UpdateEntry updates a journal entry's date and description.
	UpdateEntry(ctx context.Context, entry domain.JournalEntry) error

	// UpdateEntryStatus moves an entry to a new status.
	UpdateEntryStatus(ctx context.Context, entryID string, status domain.JournalStatus, updatedBy string, updatedAt time.Time) error
}

// JournalRepositoryFacade combines all journal repository operations.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
