package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/novaerp/accounting_backend/internal/core/domain"
	"github.com/novaerp/accounting_backend/internal/dto"
)

// AuthClaims are the JWT claims issued at login. Subject carries the user ID.
type AuthClaims struct {
	Role domain.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware creates a Gin middleware handler that validates bearer JWTs
// and stores the user's ID and role in the request context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error("Authorization header required"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error("Authorization header format must be Bearer {token}"))
			return
		}

		token, err := jwt.ParseWithClaims(parts[1], &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(jwtSecret), nil
		})

		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error(msg))
			return
		}

		claims, ok := token.Claims.(*AuthClaims)
		if !ok || !token.Valid || claims.Subject == "" {
			logger.Warn("Invalid token claims")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error("Invalid token claims"))
			return
		}

		ctx := context.WithValue(c.Request.Context(), userIDKey, claims.Subject)
		ctx = context.WithValue(ctx, userRoleKey, claims.Role)

		enrichedLogger := logger.With(slog.String("user_id", claims.Subject))
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireRoles creates a middleware that aborts with 403 unless the
// authenticated user's role is in the allowed set. It must run after
// AuthMiddleware.
func RequireRoles(allowed ...domain.UserRole) gin.HandlerFunc {
	allowedSet := make(map[domain.UserRole]struct{}, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		role, ok := GetUserRoleFromContext(c)
		if !ok {
			logger.Error("User role not found in context")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error("Unauthorized"))
			return
		}

		if _, permitted := allowedSet[role]; !permitted {
			logger.Warn("User role not permitted for this operation", slog.String("role", string(role)))
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Error("You do not have permission to perform this action"))
			return
		}

		c.Next()
	}
}
