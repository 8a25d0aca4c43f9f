package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/novaerp/accounting_backend/internal/apperrors"
	portssvc "github.com/novaerp/accounting_backend/internal/core/ports/services"
	"github.com/novaerp/accounting_backend/internal/dto"
	"github.com/novaerp/accounting_backend/internal/middleware"
)

// accountHandler handles HTTP requests related to the chart of accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// registerAccountRoutes registers routes related to the chart of accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, canMutate gin.HandlerFunc) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/chart-of-accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/:id", h.getAccount)
		accounts.POST("", canMutate, h.createAccount)
		accounts.PUT("/:id", canMutate, h.updateAccount)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates a new chart-of-accounts entry
// @Tags chart-of-accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.Response{data=dto.AccountResponse}
// @Failure 400 {object} dto.Response "Invalid input format or validation error"
// @Failure 401 {object} dto.Response "Unauthorized"
// @Failure 409 {object} dto.Response "Duplicate account code"
// @Failure 500 {object} dto.Response "Failed to create account"
// @Security BearerAuth
// @Router /chart-of-accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ValidationError("Invalid request format", dto.FormatBindingError(err)))
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Error("Unauthorized"))
		return
	}

	logger = logger.With(slog.String("account_code", req.Code))

	newAccount, err := h.accountService.CreateAccount(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Duplicate account code", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, dto.Error("Account code already exists"))
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating account", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		default:
			logger.Error("Failed to create account in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Error("Failed to create account"))
		}
		return
	}

	logger.Info("Account created successfully", slog.String("account_id", newAccount.AccountID))
	c.JSON(http.StatusCreated, dto.OK(dto.ToAccountResponse(newAccount)))
}

// getAccount godoc
// @Summary Get an account by ID
// @Description Retrieves details for a specific account by its ID
// @Tags chart-of-accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.Response{data=dto.AccountResponse}
// @Failure 401 {object} dto.Response "Unauthorized"
// @Failure 404 {object} dto.Response "Account not found"
// @Failure 500 {object} dto.Response "Failed to retrieve account"
// @Security BearerAuth
// @Router /chart-of-accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found", slog.String("account_id", accountID))
			c.JSON(http.StatusNotFound, dto.Error("Account not found"))
			return
		}
		logger.Error("Failed to get account from service", slog.String("error", err.Error()), slog.String("account_id", accountID))
		c.JSON(http.StatusInternalServerError, dto.Error("Failed to retrieve account"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToAccountResponse(account)))
}

// listAccounts godoc
// @Summary List all accounts
// @Description Retrieves the full chart of accounts ordered by code
// @Tags chart-of-accounts
// @Produce  json
// @Success 200 {object} dto.Response{data=[]dto.AccountResponse}
// @Failure 401 {object} dto.Response "Unauthorized"
// @Failure 500 {object} dto.Response "Failed to list accounts"
// @Security BearerAuth
// @Router /chart-of-accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list accounts from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Error("Failed to list accounts"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToAccountResponses(accounts)))
}

// updateAccount godoc
// @Summary Update an account
// @Description Updates the mutable fields of an account. The code is immutable.
// @Tags chart-of-accounts
// @Accept  json
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=dto.AccountResponse}
// @Failure 400 {object} dto.Response "Invalid input format or validation error"
// @Failure 401 {object} dto.Response "Unauthorized"
// @Failure 404 {object} dto.Response "Account not found"
// @Failure 409 {object} dto.Response "Type change conflicts with posted entries"
// @Failure 500 {object} dto.Response "Failed to update account"
// @Security BearerAuth
// @Router /chart-of-accounts/{id} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ValidationError("Invalid request format", dto.FormatBindingError(err)))
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Error("Unauthorized"))
		return
	}

	logger = logger.With(slog.String("account_id", accountID))

	updated, err := h.accountService.UpdateAccount(c.Request.Context(), accountID, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Account not found for update")
			c.JSON(http.StatusNotFound, dto.Error("Account not found"))
		case errors.Is(err, apperrors.ErrConflict):
			logger.Warn("Conflicting account update", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, dto.Error(err.Error()))
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error updating account", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		default:
			logger.Error("Failed to update account in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Error("Failed to update account"))
		}
		return
	}

	logger.Info("Account updated successfully")
	c.JSON(http.StatusOK, dto.OK(dto.ToAccountResponse(updated)))
}
