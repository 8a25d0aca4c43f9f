package services

import (
	"context"

	"github.com/novaerp/accounting_backend/internal/core/domain"
	"github.com/novaerp/accounting_backend/internal/dto"
)

// UserSvcFacade exposes user and credential operations.
type UserSvcFacade interface {
	// CreateUser persists a new user with a hashed password.
	CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// AuthenticateUser verifies credentials and returns the user, or
	// ErrForbidden when they do not match.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)

	// GetUserByID retrieves a user or ErrNotFound.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
