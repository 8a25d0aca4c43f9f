package services

import (
	"context"

	"github.com/novaerp/accounting_backend/internal/core/domain"
	"github.com/novaerp/accounting_backend/internal/dto"
)

// AccountSvcFacade exposes chart-of-accounts operations.
type AccountSvcFacade interface {
	// CreateAccount validates and persists a new account. Duplicate codes
	// return ErrDuplicate; an unknown or cyclic parent returns ErrValidation.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)

	// GetAccountByID retrieves one account with its parent annotation.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts ordered by code.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// UpdateAccount merges the supplied fields into an existing account.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, updaterUserID string) (*domain.Account, error)
}
