package repositories

import (
	"context"

	"github.com/novaerp/accounting_backend/internal/core/domain"
)

// AccountReader defines read operations for chart-of-accounts data.
type AccountReader interface {
	// FindAccountByID retrieves an account with its parent name annotation.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByCode retrieves an account by its unique code.
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts keyed by ID.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves every account ordered by code, annotated with
	// parent name and hasChildren.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// HasPostedDetails reports whether any POSTED journal entry has a detail
	// line referencing the account.
	HasPostedDetails(ctx context.Context, accountID string) (bool, error)
}

// AccountWriter defines write operations for chart-of-accounts data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's mutable fields.
	UpdateAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines all account repository operations.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
