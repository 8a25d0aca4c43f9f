package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/novaerp/accounting_backend/internal/apperrors"
	portssvc "github.com/novaerp/accounting_backend/internal/core/ports/services"
	"github.com/novaerp/accounting_backend/internal/dto"
	"github.com/novaerp/accounting_backend/internal/middleware"
	"github.com/novaerp/accounting_backend/pkg/config"
)

// authHandler handles authentication related requests.
type authHandler struct {
	userService portssvc.UserSvcFacade
	jwtSecret   string
	jwtDuration time.Duration
	jwtIssuer   string
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(us portssvc.UserSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{
		userService: us,
		jwtSecret:   cfg.JWTSecret,
		jwtDuration: cfg.JWTExpiryDuration,
		jwtIssuer:   cfg.JWTIssuer,
	}
}

// registerAuthRoutes sets up the public routes for authentication.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, userService portssvc.UserSvcFacade) {
	h := newAuthHandler(userService, cfg)

	ipLimiter, err := middleware.NewIPRateLimiter(cfg.LoginRateLimit)
	if err != nil {
		// A malformed rate falls back to unthrottled login rather than
		// refusing to boot.
		slog.Warn("Invalid login rate limit, login throttling disabled", slog.String("rate", cfg.LoginRateLimit))
	}

	auth := r.Group("/api/auth")
	{
		if ipLimiter != nil {
			auth.POST("/login", middleware.RateLimit(ipLimiter), h.login)
		} else {
			auth.POST("/login", h.login)
		}
		auth.POST("/register", h.register)
	}
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.Response{data=dto.LoginResponse}
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /api/auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("Invalid request body"))
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusUnauthorized, dto.Error("Invalid username or password"))
			return
		}
		logger.Error("Failed to authenticate user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Error("Failed to authenticate"))
		return
	}

	now := time.Now()
	claims := middleware.AuthClaims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    h.jwtIssuer,
			Subject:   user.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(h.jwtDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Error("Failed to generate token"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.LoginResponse{
		Token:    signed,
		UserID:   user.UserID,
		Username: user.Username,
		Role:     user.Role,
	}))
}

// register godoc
// @Summary Register new user
// @Description Creates a new user account.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} dto.Response{data=dto.UserResponse}
// @Failure 400 {object} dto.Response
// @Failure 409 {object} dto.Response "Conflict (e.g., username exists)"
// @Failure 500 {object} dto.Response
// @Router /api/auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationError("Invalid request body", dto.FormatBindingError(err)))
		return
	}

	newUser, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, dto.Error("Username already exists"))
			return
		}
		logger.Error("Failed to register user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Error("Failed to register user"))
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.ToUserResponse(newUser)))
}
