package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/novaerp/accounting_backend/internal/core/domain"
)

// contextKey is a private type for context keys to prevent collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userIDKey    = contextKey("userID")
	userRoleKey  = contextKey("userRole")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context, falling back to the request context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(userIDKey)); exists {
		if userID, ok := v.(string); ok {
			return userID, true
		}
		return "", false
	}
	if v := c.Request.Context().Value(userIDKey); v != nil {
		if userID, ok := v.(string); ok {
			return userID, true
		}
	}
	return "", false
}

// GetUserRoleFromContext retrieves the authenticated user's role.
func GetUserRoleFromContext(c *gin.Context) (domain.UserRole, bool) {
	if v, exists := c.Get(string(userRoleKey)); exists {
		if role, ok := v.(domain.UserRole); ok {
			return role, true
		}
		return "", false
	}
	if v := c.Request.Context().Value(userRoleKey); v != nil {
		if role, ok := v.(domain.UserRole); ok {
			return role, true
		}
	}
	return "", false
}
