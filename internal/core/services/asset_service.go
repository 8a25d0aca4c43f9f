package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/novaerp/accounting_backend/internal/apperrors"
	"github.com/novaerp/accounting_backend/internal/core/domain"
	portsrepo "github.com/novaerp/accounting_backend/internal/core/ports/repositories"
	portssvc "github.com/novaerp/accounting_backend/internal/core/ports/services"
	"github.com/novaerp/accounting_backend/internal/dto"
	"github.com/novaerp/accounting_backend/internal/utils/accounting"
)

var (
	ErrDuplicateAssetCode = errors.New("asset code already exists")
	ErrSalvageTooHigh     = errors.New("salvage value must be less than purchase cost")
	ErrAssetAccountGone   = errors.New("linked account not found")
)

// assetService provides fixed asset registration and depreciation runs.
type assetService struct {
	BaseService
	assetRepo   portsrepo.AssetRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAssetService creates a new asset service.
func NewAssetService(assetRepo portsrepo.AssetRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.AssetSvcFacade {
	return &assetService{
		assetRepo:   assetRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.AssetSvcFacade = (*assetService)(nil)

// CreateFixedAsset validates and persists a new depreciable asset.
func (s *assetService) CreateFixedAsset(ctx context.Context, req dto.CreateFixedAssetRequest, creatorUserID string) (*domain.FixedAsset, error) {
	if !domain.ValidDepreciationMethod(req.DepreciationMethod) {
		return nil, fmt.Errorf("%w: unknown depreciation method %q", apperrors.ErrValidation, req.DepreciationMethod)
	}
	if req.PurchaseCost.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: purchase cost must be positive", apperrors.ErrValidation)
	}
	if req.SalvageValue.IsNegative() {
		return nil, fmt.Errorf("%w: salvage value must not be negative", apperrors.ErrValidation)
	}
	if req.SalvageValue.GreaterThanOrEqual(req.PurchaseCost) {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrSalvageTooHigh)
	}

	purchaseDate, err := time.Parse(dto.DateLayout, req.PurchaseDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid purchase date: %w", apperrors.ErrValidation, err)
	}

	if _, err := s.accountRepo.FindAccountByID(ctx, req.AccountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w: %s", apperrors.ErrValidation, ErrAssetAccountGone, req.AccountID)
		}
		return nil, fmt.Errorf("failed to fetch linked account: %w", err)
	}

	if _, err := s.assetRepo.FindAssetByCode(ctx, req.Code); err == nil {
		return nil, fmt.Errorf("%w: code %s: %w", apperrors.ErrDuplicate, req.Code, ErrDuplicateAssetCode)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check asset code uniqueness", slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to check asset code: %w", err)
	}

	now := time.Now().UTC()
	asset := domain.FixedAsset{
		AssetID:            uuid.NewString(),
		Code:               req.Code,
		Name:               req.Name,
		PurchaseDate:       purchaseDate,
		PurchaseCost:       req.PurchaseCost,
		UsefulLifeYears:    req.UsefulLifeYears,
		SalvageValue:       req.SalvageValue,
		DepreciationMethod: req.DepreciationMethod,
		AccountID:          req.AccountID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
		AccumulatedDepreciation: decimal.Zero,
		BookValue:               req.PurchaseCost,
	}

	if err := s.assetRepo.SaveAsset(ctx, asset); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: code %s: %w", apperrors.ErrDuplicate, req.Code, ErrDuplicateAssetCode)
		}
		s.LogError(ctx, err, "Failed to save fixed asset", slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to save fixed asset: %w", err)
	}

	s.LogInfo(ctx, "Fixed asset created successfully", slog.String("asset_id", asset.AssetID), slog.String("code", asset.Code))
	return &asset, nil
}

// ListFixedAssets retrieves all assets with their latest depreciation state.
func (s *assetService) ListFixedAssets(ctx context.Context) ([]domain.FixedAsset, error) {
	assets, err := s.assetRepo.ListAssets(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list fixed assets")
		return nil, fmt.Errorf("failed to list fixed assets: %w", err)
	}
	return assets, nil
}

// depreciationRetryLimit bounds how often a run re-seeds after losing a race
// with a concurrent run against the same asset.
const depreciationRetryLimit = 3

// CalculateDepreciation applies one monthly depreciation increment to the
// asset and appends an immutable record. Each call advances the schedule by
// exactly one period; the date is recorded but does not derive elapsed months.
// The repository refuses to append when another run committed between the
// seed read and the append, in which case the computation is retried from a
// fresh read so concurrent runs each land their own increment.
func (s *assetService) CalculateDepreciation(ctx context.Context, assetID string, asOfDate time.Time, userID string) (*domain.DepreciationRecord, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find asset for depreciation", slog.String("asset_id", assetID))
		}
		return nil, err
	}

	var lastErr error
	for attempt := 1; attempt <= depreciationRetryLimit; attempt++ {
		record, err := s.depreciateOnce(ctx, *asset, asOfDate)
		if err == nil {
			s.LogInfo(ctx, "Depreciation calculated",
				slog.String("asset_id", assetID),
				slog.String("period_amount", record.PeriodAmount.String()),
				slog.String("book_value", record.BookValue.String()))
			return record, nil
		}
		if !errors.Is(err, apperrors.ErrConflict) {
			return nil, err
		}
		lastErr = err
		s.LogWarn(ctx, "Concurrent depreciation run detected, retrying",
			slog.String("asset_id", assetID),
			slog.Int("attempt", attempt))
	}
	return nil, lastErr
}

// depreciateOnce seeds one increment from the latest record and appends it.
// The repository re-checks the seed under its lock and returns ErrConflict
// when it went stale.
func (s *assetService) depreciateOnce(ctx context.Context, asset domain.FixedAsset, asOfDate time.Time) (*domain.DepreciationRecord, error) {
	// Seed from the latest record, or from the purchase cost when the asset
	// has never been depreciated.
	accumulated := decimal.Zero
	bookValue := asset.PurchaseCost
	latest, err := s.assetRepo.FindLatestDepreciation(ctx, asset.AssetID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to load latest depreciation record", slog.String("asset_id", asset.AssetID))
		return nil, fmt.Errorf("failed to load depreciation history: %w", err)
	}
	if latest != nil {
		accumulated = latest.AccumulatedDepreciation
		bookValue = latest.BookValue
	}

	periodAmount := accounting.PeriodAmount(asset, bookValue)
	newAccumulated := accumulated.Add(periodAmount)
	newBookValue := asset.PurchaseCost.Sub(newAccumulated)

	// The asset is never depreciated past its salvage floor.
	if newBookValue.LessThan(asset.SalvageValue) {
		s.LogWarn(ctx, "Depreciation would breach salvage floor",
			slog.String("asset_id", asset.AssetID),
			slog.String("book_value", bookValue.String()),
			slog.String("salvage_value", asset.SalvageValue.String()))
		return nil, fmt.Errorf("%w: asset %s", apperrors.ErrBelowSalvage, asset.AssetID)
	}

	record := domain.DepreciationRecord{
		RecordID:                uuid.NewString(),
		AssetID:                 asset.AssetID,
		DepreciationDate:        asOfDate,
		PeriodAmount:            periodAmount,
		AccumulatedDepreciation: newAccumulated,
		BookValue:               newBookValue,
		CreatedAt:               time.Now().UTC(),
	}

	if err := s.assetRepo.AppendDepreciation(ctx, record, accumulated); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to append depreciation record", slog.String("asset_id", asset.AssetID))
		return nil, fmt.Errorf("failed to append depreciation record: %w", err)
	}

	return &record, nil
}

// GetAssetDepreciation retrieves an asset with its chronological history.
func (s *assetService) GetAssetDepreciation(ctx context.Context, assetID string) (*domain.FixedAsset, []domain.DepreciationRecord, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find asset", slog.String("asset_id", assetID))
		}
		return nil, nil, err
	}

	history, err := s.assetRepo.ListDepreciationByAsset(ctx, assetID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load depreciation history", slog.String("asset_id", assetID))
		return nil, nil, fmt.Errorf("failed to load depreciation history: %w", err)
	}

	if n := len(history); n > 0 {
		asset.AccumulatedDepreciation = history[n-1].AccumulatedDepreciation
		asset.BookValue = history[n-1].BookValue
	} else {
		asset.AccumulatedDepreciation = decimal.Zero
		asset.BookValue = asset.PurchaseCost
	}

	return asset, history, nil
}
