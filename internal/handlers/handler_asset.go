package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/novaerp/accounting_backend/internal/apperrors"
	portssvc "github.com/novaerp/accounting_backend/internal/core/ports/services"
	"github.com/novaerp/accounting_backend/internal/dto"
	"github.com/novaerp/accounting_backend/internal/middleware"
)

// assetHandler handles HTTP requests related to fixed assets and their
// depreciation.
type assetHandler struct {
	assetService portssvc.AssetSvcFacade
}

// newAssetHandler creates a new assetHandler.
func newAssetHandler(as portssvc.AssetSvcFacade) *assetHandler {
	return &assetHandler{
		assetService: as,
	}
}

// registerAssetRoutes registers fixed asset and depreciation routes.
func registerAssetRoutes(rg *gin.RouterGroup, assetService portssvc.AssetSvcFacade, canMutate gin.HandlerFunc) {
	h := newAssetHandler(assetService)

	assets := rg.Group("/fixed-assets")
	{
		assets.GET("", h.listFixedAssets)
		assets.POST("", canMutate, h.createFixedAsset)
	}

	depreciation := rg.Group("/asset-depreciation")
	{
		depreciation.GET("/:asset_id", h.getAssetDepreciation)
		depreciation.POST("/calculate", canMutate, h.calculateDepreciation)
	}
}

// createFixedAsset godoc
// @Summary Register a fixed asset
// @Description Creates a new fixed asset with its depreciation parameters
// @Tags fixed-assets
// @Accept  json
// @Produce  json
// @Param   asset body dto.CreateFixedAssetRequest true "Asset details"
// @Success 201 {object} dto.Response{data=dto.FixedAssetResponse}
// @Failure 400 {object} dto.Response "Invalid input format or validation error"
// @Failure 401 {object} dto.Response "Unauthorized"
// @Failure 409 {object} dto.Response "Duplicate asset code"
// @Failure 500 {object} dto.Response "Failed to create asset"
// @Security BearerAuth
// @Router /fixed-assets [post]
func (h *assetHandler) createFixedAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateFixedAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createFixedAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ValidationError("Invalid request format", dto.FormatBindingError(err)))
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Error("Unauthorized"))
		return
	}

	logger = logger.With(slog.String("asset_code", req.Code))

	asset, err := h.assetService.CreateFixedAsset(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Duplicate asset code", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, dto.Error("Asset code already exists"))
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating asset", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		default:
			logger.Error("Failed to create asset in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Error("Failed to create asset"))
		}
		return
	}

	logger.Info("Fixed asset created successfully", slog.String("asset_id", asset.AssetID))
	c.JSON(http.StatusCreated, dto.OK(dto.ToFixedAssetResponse(asset)))
}

// listFixedAssets godoc
// @Summary List fixed assets
// @Description Retrieves all fixed assets annotated with their current book value
// @Tags fixed-assets
// @Produce  json
// @Success 200 {object} dto.Response{data=[]dto.FixedAssetResponse}
// @Failure 401 {object} dto.Response "Unauthorized"
// @Failure 500 {object} dto.Response "Failed to list assets"
// @Security BearerAuth
// @Router /fixed-assets [get]
func (h *assetHandler) listFixedAssets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	assets, err := h.assetService.ListFixedAssets(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list assets from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Error("Failed to list assets"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToFixedAssetResponses(assets)))
}

// calculateDepreciation godoc
// @Summary Run one depreciation period
// @Description Appends a single monthly depreciation record for the asset. Fails once book value would fall below salvage value.
// @Tags fixed-assets
// @Accept  json
// @Produce  json
// @Param   run body dto.CalculateDepreciationRequest true "Asset and calculation date"
// @Success 200 {object} dto.Response{data=dto.DepreciationResultResponse}
// @Failure 400 {object} dto.Response "Invalid input or asset fully depreciated to salvage value"
// @Failure 401 {object} dto.Response "Unauthorized"
// @Failure 404 {object} dto.Response "Asset not found"
// @Failure 409 {object} dto.Response "Concurrent depreciation runs in progress"
// @Failure 500 {object} dto.Response "Failed to calculate depreciation"
// @Security BearerAuth
// @Router /asset-depreciation/calculate [post]
func (h *assetHandler) calculateDepreciation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CalculateDepreciationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for calculateDepreciation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ValidationError("Invalid request format", dto.FormatBindingError(err)))
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.Error("Unauthorized"))
		return
	}

	asOfDate, err := time.Parse(dto.DateLayout, req.CalculationDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("Invalid calculation_date"))
		return
	}

	logger = logger.With(slog.String("asset_id", req.AssetID))

	record, err := h.assetService.CalculateDepreciation(c.Request.Context(), req.AssetID, asOfDate, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Asset not found for depreciation")
			c.JSON(http.StatusNotFound, dto.Error("Asset not found"))
		case errors.Is(err, apperrors.ErrBelowSalvage):
			logger.Warn("Depreciation run refused", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		case errors.Is(err, apperrors.ErrConflict):
			logger.Warn("Depreciation run lost repeated races", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, dto.Error("Concurrent depreciation runs in progress, retry"))
		default:
			logger.Error("Failed to calculate depreciation in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Error("Failed to calculate depreciation"))
		}
		return
	}

	logger.Info("Depreciation period recorded",
		slog.String("period_amount", record.PeriodAmount.String()),
		slog.String("book_value", record.BookValue.String()))
	c.JSON(http.StatusOK, dto.OK(dto.DepreciationResultResponse{
		PeriodAmount:            record.PeriodAmount,
		AccumulatedDepreciation: record.AccumulatedDepreciation,
		BookValue:               record.BookValue,
	}))
}

// getAssetDepreciation godoc
// @Summary Get an asset's depreciation history
// @Description Retrieves a fixed asset with its full chronological depreciation history
// @Tags fixed-assets
// @Produce  json
// @Param   asset_id path string true "Asset ID"
// @Success 200 {object} dto.Response{data=dto.AssetDepreciationResponse}
// @Failure 401 {object} dto.Response "Unauthorized"
// @Failure 404 {object} dto.Response "Asset not found"
// @Failure 500 {object} dto.Response "Failed to retrieve depreciation history"
// @Security BearerAuth
// @Router /asset-depreciation/{asset_id} [get]
func (h *assetHandler) getAssetDepreciation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("asset_id")

	asset, history, err := h.assetService.GetAssetDepreciation(c.Request.Context(), assetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Asset not found", slog.String("asset_id", assetID))
			c.JSON(http.StatusNotFound, dto.Error("Asset not found"))
			return
		}
		logger.Error("Failed to get depreciation history from service", slog.String("error", err.Error()), slog.String("asset_id", assetID))
		c.JSON(http.StatusInternalServerError, dto.Error("Failed to retrieve depreciation history"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.AssetDepreciationResponse{
		Asset:   dto.ToFixedAssetResponse(asset),
		History: dto.ToDepreciationRecordResponses(history),
	}))
}
