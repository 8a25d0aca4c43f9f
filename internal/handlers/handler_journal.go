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

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: js,
	}
}

// registerJournalRoutes registers journal entry specific routes.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade, canMutate gin.HandlerFunc) {
	h := newJournalHandler(journalService)

	entries := rg.Group("/journal-entries")
	{
		entries.GET("", h.listJournalEntries)
		entries.GET("/:id", h.getJournalEntry)
		entries.POST("", canMutate, h.createJournalEntry)
		entries.PUT("/:id", canMutate, h.updateJournalEntry)
		entries.POST("/:id/post", canMutate, h.postJournalEntry)
		entries.POST("/:id/void", canMutate, h.voidJournalEntry)
	}
}

// createJournalEntry godoc
// @Summary Create a journal entry
// @Description Creates a new DRAFT journal entry with its detail lines. Debits must equal credits exactly.
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateJournalEntryRequest true "Journal entry and detail lines"
// @Success 201 {object} dto.Response{data=dto.JournalEntryResponse}
// @Failure 400 {object} dto.Response "Invalid input, unbalanced entry, or unknown account"
// @Failure 401 {object} dto.Response "Unauthorized"
// @Failure 409 {object} dto.Response "Duplicate reference number"
// @Failure 500 {object} dto.Response "Failed to create journal entry"
// @Security BearerAuth
// @Router /journal-entries [post]
func (h *journalHandler) createJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createJournalEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ValidationError("Invalid request format", dto.FormatBindingError(err)))
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Error("Unauthorized"))
		return
	}

	logger = logger.With(slog.String("reference_no", req.ReferenceNo))

	entry, err := h.journalService.CreateJournalEntry(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnbalanced):
			logger.Warn("Unbalanced journal entry rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Duplicate reference number", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, dto.Error("Reference number already exists"))
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating journal entry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		default:
			logger.Error("Failed to create journal entry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Error("Failed to create journal entry"))
		}
		return
	}

	logger.Info("Journal entry created successfully", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.OK(dto.ToJournalEntryResponse(entry)))
}

// getJournalEntry godoc
// @Summary Get a journal entry by ID
// @Description Retrieves one journal entry with its detail lines
// @Tags journal-entries
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {object} dto.Response{data=dto.JournalEntryResponse}
// @Failure 401 {object} dto.Response "Unauthorized"
// @Failure 404 {object} dto.Response "Journal entry not found"
// @Failure 500 {object} dto.Response "Failed to retrieve journal entry"
// @Security BearerAuth
// @Router /journal-entries/{id} [get]
func (h *journalHandler) getJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	entry, err := h.journalService.GetJournalEntryByID(c.Request.Context(), entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Journal entry not found", slog.String("entry_id", entryID))
			c.JSON(http.StatusNotFound, dto.Error("Journal entry not found"))
			return
		}
		logger.Error("Failed to get journal entry from service", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		c.JSON(http.StatusInternalServerError, dto.Error("Failed to retrieve journal entry"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToJournalEntryResponse(entry)))
}

// listJournalEntries godoc
// @Summary List journal entries
// @Description Retrieves journal entries matching the optional date range and status filters, newest first
// @Tags journal-entries
// @Produce  json
// @Param   start_date query string false "Start date (YYYY-MM-DD)"
// @Param   end_date query string false "End date (YYYY-MM-DD)"
// @Param   status query string false "Status filter" Enums(DRAFT, POSTED, VOID)
// @Success 200 {object} dto.Response{data=[]dto.JournalEntryResponse}
// @Failure 400 {object} dto.Response "Invalid filter parameters"
// @Failure 401 {object} dto.Response "Unauthorized"
// @Failure 500 {object} dto.Response "Failed to list journal entries"
// @Security BearerAuth
// @Router /journal-entries [get]
func (h *journalHandler) listJournalEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid journal list filters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ValidationError("Invalid filter parameters", dto.FormatBindingError(err)))
		return
	}

	entries, err := h.journalService.ListJournalEntries(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list journal entries from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Error("Failed to list journal entries"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToJournalEntryResponses(entries)))
}

// updateJournalEntry godoc
// @Summary Update a draft journal entry
// @Description Patches the date or description of a DRAFT entry. Posted and void entries are immutable.
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   id path string true "Entry ID"
// @Param   entry body dto.UpdateJournalEntryRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=dto.JournalEntryResponse}
// @Failure 400 {object} dto.Response "Invalid input format"
// @Failure 401 {object} dto.Response "Unauthorized"
// @Failure 404 {object} dto.Response "Journal entry not found"
// @Failure 409 {object} dto.Response "Entry is not in DRAFT status"
// @Failure 500 {object} dto.Response "Failed to update journal entry"
// @Security BearerAuth
// @Router /journal-entries/{id} [put]
func (h *journalHandler) updateJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	var req dto.UpdateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateJournalEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ValidationError("Invalid request format", dto.FormatBindingError(err)))
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Error("Unauthorized"))
		return
	}

	logger = logger.With(slog.String("entry_id", entryID))

	entry, err := h.journalService.UpdateJournalEntry(c.Request.Context(), entryID, req, updaterUserID)
	if err != nil {
		h.respondTransitionError(c, logger, err, "Failed to update journal entry")
		return
	}

	logger.Info("Journal entry updated successfully")
	c.JSON(http.StatusOK, dto.OK(dto.ToJournalEntryResponse(entry)))
}

// postJournalEntry godoc
// @Summary Post a journal entry
// @Description Transitions a DRAFT entry to POSTED after re-validating the balance
// @Tags journal-entries
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {object} dto.Response{data=dto.JournalEntryResponse}
// @Failure 400 {object} dto.Response "Entry no longer balances"
// @Failure 401 {object} dto.Response "Unauthorized"
// @Failure 404 {object} dto.Response "Journal entry not found"
// @Failure 409 {object} dto.Response "Entry is not in DRAFT status"
// @Failure 500 {object} dto.Response "Failed to post journal entry"
// @Security BearerAuth
// @Router /journal-entries/{id}/post [post]
func (h *journalHandler) postJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Error("Unauthorized"))
		return
	}

	logger = logger.With(slog.String("entry_id", entryID))

	entry, err := h.journalService.PostJournalEntry(c.Request.Context(), entryID, userID)
	if err != nil {
		h.respondTransitionError(c, logger, err, "Failed to post journal entry")
		return
	}

	logger.Info("Journal entry posted successfully")
	c.JSON(http.StatusOK, dto.OK(dto.ToJournalEntryResponse(entry)))
}

// voidJournalEntry godoc
// @Summary Void a journal entry
// @Description Transitions a DRAFT or POSTED entry to VOID. VOID is terminal.
// @Tags journal-entries
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {object} dto.Response{data=dto.JournalEntryResponse}
// @Failure 401 {object} dto.Response "Unauthorized"
// @Failure 404 {object} dto.Response "Journal entry not found"
// @Failure 409 {object} dto.Response "Entry is already void"
// @Failure 500 {object} dto.Response "Failed to void journal entry"
// @Security BearerAuth
// @Router /journal-entries/{id}/void [post]
func (h *journalHandler) voidJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Error("Unauthorized"))
		return
	}

	logger = logger.With(slog.String("entry_id", entryID))

	entry, err := h.journalService.VoidJournalEntry(c.Request.Context(), entryID, userID)
	if err != nil {
		h.respondTransitionError(c, logger, err, "Failed to void journal entry")
		return
	}

	logger.Info("Journal entry voided successfully")
	c.JSON(http.StatusOK, dto.OK(dto.ToJournalEntryResponse(entry)))
}

// respondTransitionError maps the shared error shapes of the update/post/void
// operations onto HTTP statuses.
func (h *journalHandler) respondTransitionError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Journal entry not found")
		c.JSON(http.StatusNotFound, dto.Error("Journal entry not found"))
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Journal entry state conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.Error(err.Error()))
	case errors.Is(err, apperrors.ErrUnbalanced):
		logger.Warn("Journal entry no longer balances", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error on journal entry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Error(fallback))
	}
}
