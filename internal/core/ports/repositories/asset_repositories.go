package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/novaerp/accounting_backend/internal/core/domain"
)

// AssetReader defines read operations for fixed asset data.
type AssetReader interface {
	// FindAssetByID retrieves an asset or ErrNotFound.
	FindAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error)

	// FindAssetByCode retrieves an asset by its unique code.
	FindAssetByCode(ctx context.Context, code string) (*domain.FixedAsset, error)

	// ListAssets retrieves every asset annotated with its latest accumulated
	// depreciation and book value, ordered by code.
	ListAssets(ctx context.Context) ([]domain.FixedAsset, error)

	// FindLatestDepreciation retrieves the most recent depreciation record
	// for an asset, or ErrNotFound when the asset has no history.
	FindLatestDepreciation(ctx context.Context, assetID string) (*domain.DepreciationRecord, error)

	// ListDepreciationByAsset retrieves an asset's full history in
	// chronological order.
	ListDepreciationByAsset(ctx context.Context, assetID string) ([]domain.DepreciationRecord, error)
}

// AssetWriter defines write operations for fixed asset data.
type AssetWriter interface {
	// SaveAsset persists a new fixed asset.
	SaveAsset(ctx context.Context, asset domain.FixedAsset) error

	// AppendDepreciation appends one depreciation record inside a database
	// transaction. The asset row is locked, then the latest accumulated
	// depreciation is re-read under the lock and compared against
	// priorAccumulated, the value the caller computed the record from. A
	// mismatch means another run committed in between and returns
	// apperrors.ErrConflict without writing. Records are never updated
	// afterwards.
	AppendDepreciation(ctx context.Context, record domain.DepreciationRecord, priorAccumulated decimal.Decimal) error
}

// AssetRepositoryFacade combines all fixed asset repository operations.
type AssetRepositoryFacade interface {
	AssetReader
	AssetWriter
}
