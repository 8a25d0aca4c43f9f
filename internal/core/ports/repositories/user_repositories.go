package repositories

import (
	"context"

	"github.com/novaerp/accounting_backend/internal/core/domain"
)

// UserRepositoryFacade defines operations for user data.
type UserRepositoryFacade interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a user or ErrNotFound.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by username or ErrNotFound.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
