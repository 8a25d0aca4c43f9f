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

// budgetHandler handles HTTP requests related to budgets.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

// newBudgetHandler creates a new budgetHandler.
func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{
		budgetService: bs,
	}
}

// registerBudgetRoutes registers budget specific routes.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade, canMutate gin.HandlerFunc) {
	h := newBudgetHandler(budgetService)

	budgets := rg.Group("/budgets")
	{
		budgets.GET("", h.listBudgets)
		budgets.POST("", canMutate, h.createBudget)
	}
}

// createBudget godoc
// @Summary Create a budget line
// @Description Creates a budget amount for an account and fiscal year. One budget per (account, year).
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   budget body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} dto.Response{data=dto.BudgetResponse}
// @Failure 400 {object} dto.Response "Invalid input format or validation error"
// @Failure 401 {object} dto.Response "Unauthorized"
// @Failure 409 {object} dto.Response "Budget already exists for this account and year"
// @Failure 500 {object} dto.Response "Failed to create budget"
// @Security BearerAuth
// @Router /budgets [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createBudget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ValidationError("Invalid request format", dto.FormatBindingError(err)))
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Error("Unauthorized"))
		return
	}

	logger = logger.With(slog.String("account_id", req.AccountID), slog.Int("fiscal_year", req.FiscalYear))

	budget, err := h.budgetService.CreateBudget(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Duplicate budget", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, dto.Error("Budget already exists for this account and fiscal year"))
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating budget", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		default:
			logger.Error("Failed to create budget in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Error("Failed to create budget"))
		}
		return
	}

	logger.Info("Budget created successfully", slog.String("budget_id", budget.BudgetID))
	c.JSON(http.StatusCreated, dto.OK(dto.ToBudgetResponse(budget)))
}

// listBudgets godoc
// @Summary List budgets
// @Description Retrieves budget lines, optionally filtered by fiscal year and account
// @Tags budgets
// @Produce  json
// @Param   fiscal_year query int false "Fiscal year filter"
// @Param   account_id query string false "Account ID filter"
// @Success 200 {object} dto.Response{data=[]dto.BudgetResponse}
// @Failure 400 {object} dto.Response "Invalid filter parameters"
// @Failure 401 {object} dto.Response "Unauthorized"
// @Failure 500 {object} dto.Response "Failed to list budgets"
// @Security BearerAuth
// @Router /budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListBudgetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid budget list filters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ValidationError("Invalid filter parameters", dto.FormatBindingError(err)))
		return
	}

	budgets, err := h.budgetService.ListBudgets(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list budgets from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Error("Failed to list budgets"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToBudgetResponses(budgets)))
}
