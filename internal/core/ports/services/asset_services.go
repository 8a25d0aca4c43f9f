package services

import (
	"context"
	"time"

	"github.com/novaerp/accounting_backend/internal/core/domain"
	"github.com/novaerp/accounting_backend/internal/dto"
)

// AssetSvcFacade exposes fixed asset and depreciation operations.
type AssetSvcFacade interface {
	// CreateFixedAsset validates and persists a new asset.
	CreateFixedAsset(ctx context.Context, req dto.CreateFixedAssetRequest, creatorUserID string) (*domain.FixedAsset, error)

	// ListFixedAssets retrieves all assets annotated with their latest
	// depreciation state.
	ListFixedAssets(ctx context.Context) ([]domain.FixedAsset, error)

	// CalculateDepreciation appends one depreciation record for the asset.
	// Returns ErrBelowSalvage, writing nothing, once the floor is reached.
	CalculateDepreciation(ctx context.Context, assetID string, asOfDate time.Time, userID string) (*domain.DepreciationRecord, error)

	// GetAssetDepreciation retrieves an asset with its full history.
	GetAssetDepreciation(ctx context.Context, assetID string) (*domain.FixedAsset, []domain.DepreciationRecord, error)
}
