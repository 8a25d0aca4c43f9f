package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/novaerp/accounting_backend/internal/core/ports/services"
	"github.com/novaerp/accounting_backend/internal/dto"
	"github.com/novaerp/accounting_backend/internal/middleware"
)

// reportingHandler handles HTTP requests for financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the report routes. Reports are read-only
// so no role gate applies.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/balance-sheet", h.balanceSheet)
		reports.GET("/income-statement", h.incomeStatement)
		reports.GET("/trial-balance", h.trialBalance)
		reports.GET("/budget-vs-actual", h.budgetVsActual)
	}
}

// parseAsOfDate resolves an optional as-of date parameter, defaulting to
// today.
func parseAsOfDate(raw *string) time.Time {
	if raw == nil {
		return time.Now().UTC()
	}
	// Binding already validated the layout.
	parsed, _ := time.Parse(dto.DateLayout, *raw)
	return parsed
}

// balanceSheet godoc
// @Summary Balance sheet
// @Description Reports asset, liability and equity balances as of a date, in chart-of-accounts tree order
// @Tags reports
// @Produce  json
// @Param   as_of_date query string false "As-of date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.Response{data=domain.BalanceSheetReport}
// @Failure 400 {object} dto.Response "Invalid parameters"
// @Failure 401 {object} dto.Response "Unauthorized"
// @Failure 500 {object} dto.Response "Failed to generate balance sheet"
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) balanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.BalanceSheetParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationError("Invalid parameters", dto.FormatBindingError(err)))
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), parseAsOfDate(params.AsOfDate))
	if err != nil {
		logger.Error("Failed to generate balance sheet", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Error("Failed to generate balance sheet"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(report))
}

// incomeStatement godoc
// @Summary Income statement
// @Description Reports revenue and expense balances over a period
// @Tags reports
// @Produce  json
// @Param   start_date query string true "Period start (YYYY-MM-DD)"
// @Param   end_date query string true "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.Response{data=domain.IncomeStatementReport}
// @Failure 400 {object} dto.Response "Invalid parameters"
// @Failure 401 {object} dto.Response "Unauthorized"
// @Failure 500 {object} dto.Response "Failed to generate income statement"
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) incomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.IncomeStatementParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationError("Invalid parameters", dto.FormatBindingError(err)))
		return
	}

	from, _ := time.Parse(dto.DateLayout, params.StartDate)
	to, _ := time.Parse(dto.DateLayout, params.EndDate)
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, dto.Error("end_date must not precede start_date"))
		return
	}

	report, err := h.reportingService.IncomeStatement(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to generate income statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Error("Failed to generate income statement"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(report))
}

// trialBalance godoc
// @Summary Trial balance
// @Description Lists every account's total debits and credits as of a date, plus ledger-wide totals
// @Tags reports
// @Produce  json
// @Param   as_of_date query string false "As-of date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.Response{data=domain.TrialBalanceReport}
// @Failure 400 {object} dto.Response "Invalid parameters"
// @Failure 401 {object} dto.Response "Unauthorized"
// @Failure 500 {object} dto.Response "Failed to generate trial balance"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) trialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.TrialBalanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationError("Invalid parameters", dto.FormatBindingError(err)))
		return
	}

	report, err := h.reportingService.TrialBalance(c.Request.Context(), parseAsOfDate(params.AsOfDate))
	if err != nil {
		logger.Error("Failed to generate trial balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Error("Failed to generate trial balance"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(report))
}

// budgetVsActual godoc
// @Summary Budget vs actual
// @Description Compares budgets for a fiscal year to the actual balances of that calendar year
// @Tags reports
// @Produce  json
// @Param   fiscal_year query int true "Fiscal year"
// @Param   account_id query string false "Account ID filter"
// @Success 200 {object} dto.Response{data=[]domain.BudgetVsActualRow}
// @Failure 400 {object} dto.Response "Invalid parameters"
// @Failure 401 {object} dto.Response "Unauthorized"
// @Failure 500 {object} dto.Response "Failed to generate budget vs actual report"
// @Security BearerAuth
// @Router /reports/budget-vs-actual [get]
func (h *reportingHandler) budgetVsActual(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.BudgetVsActualParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationError("Invalid parameters", dto.FormatBindingError(err)))
		return
	}

	rows, err := h.reportingService.BudgetVsActual(c.Request.Context(), params.FiscalYear, params.AccountID)
	if err != nil {
		logger.Error("Failed to generate budget vs actual report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Error("Failed to generate budget vs actual report"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(rows))
}
