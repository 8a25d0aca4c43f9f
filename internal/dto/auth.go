package dto

import "github.com/novaerp/accounting_backend/internal/core/domain"

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token    string          `json:"token"`
	UserID   string          `json:"userID"`
	Username string          `json:"username"`
	Role     domain.UserRole `json:"role"`
}

// RegisterRequest creates a new API user.
type RegisterRequest struct {
	Username string          `json:"username" binding:"required,min=3"`
	Password string          `json:"password" binding:"required,min=8"`
	Role     domain.UserRole `json:"role" binding:"omitempty,oneof=ADMIN MANAGER USER"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID   string          `json:"userID"`
	Username string          `json:"username"`
	Role     domain.UserRole `json:"role"`
}

// ToUserResponse converts a domain.User to UserResponse.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:   u.UserID,
		Username: u.Username,
		Role:     u.Role,
	}
}
