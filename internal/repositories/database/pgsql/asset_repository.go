package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/novaerp/accounting_backend/internal/apperrors"
	"github.com/novaerp/accounting_backend/internal/core/domain"
	portsrepo "github.com/novaerp/accounting_backend/internal/core/ports/repositories"
	"github.com/novaerp/accounting_backend/internal/models"
	"github.com/novaerp/accounting_backend/internal/utils/mapping"
)

type PgxAssetRepository struct {
	BaseRepository
}

// newPgxAssetRepository creates a new repository for fixed asset data.
func newPgxAssetRepository(pool *pgxpool.Pool) portsrepo.AssetRepositoryFacade {
	return &PgxAssetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AssetRepositoryFacade = (*PgxAssetRepository)(nil)

const assetSelectColumns = `
	SELECT asset_id, code, name, purchase_date, purchase_cost, useful_life_years, salvage_value, depreciation_method, account_id, created_at, created_by, last_updated_at, last_updated_by
	FROM fixed_assets
`

func scanAssetRow(row pgx.Row) (models.FixedAsset, error) {
	var m models.FixedAsset
	err := row.Scan(
		&m.AssetID,
		&m.Code,
		&m.Name,
		&m.PurchaseDate,
		&m.PurchaseCost,
		&m.UsefulLifeYears,
		&m.SalvageValue,
		&m.DepreciationMethod,
		&m.AccountID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveAsset inserts a new fixed asset.
func (r *PgxAssetRepository) SaveAsset(ctx context.Context, asset domain.FixedAsset) error {
	m := mapping.ToModelFixedAsset(asset)

	query := `
		INSERT INTO fixed_assets (asset_id, code, name, purchase_date, purchase_cost, useful_life_years, salvage_value, depreciation_method, account_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AssetID,
		m.Code,
		m.Name,
		m.PurchaseDate,
		m.PurchaseCost,
		m.UsefulLifeYears,
		m.SalvageValue,
		m.DepreciationMethod,
		m.AccountID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: asset code %s already exists", apperrors.ErrDuplicate, m.Code)
		}
		return fmt.Errorf("failed to save fixed asset %s: %w", m.AssetID, err)
	}
	return nil
}

// FindAssetByID retrieves an asset by its ID.
func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error) {
	query := assetSelectColumns + ` WHERE asset_id = $1;`

	m, err := scanAssetRow(r.Pool.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find asset by ID %s: %w", assetID, err)
	}

	d := mapping.ToDomainFixedAsset(m)
	return &d, nil
}

// FindAssetByCode retrieves an asset by its unique code.
func (r *PgxAssetRepository) FindAssetByCode(ctx context.Context, code string) (*domain.FixedAsset, error) {
	query := assetSelectColumns + ` WHERE code = $1;`

	m, err := scanAssetRow(r.Pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find asset by code %s: %w", code, err)
	}

	d := mapping.ToDomainFixedAsset(m)
	return &d, nil
}

// ListAssets retrieves every asset ordered by code, each annotated with the
// accumulated depreciation and book value from its latest record.
func (r *PgxAssetRepository) ListAssets(ctx context.Context) ([]domain.FixedAsset, error) {
	query := `
		SELECT f.asset_id, f.code, f.name, f.purchase_date, f.purchase_cost, f.useful_life_years, f.salvage_value, f.depreciation_method, f.account_id,
		       f.created_at, f.created_by, f.last_updated_at, f.last_updated_by,
		       COALESCE(latest.accumulated_depreciation, 0) AS accumulated_depreciation
		FROM fixed_assets f
		LEFT JOIN LATERAL (
			SELECT accumulated_depreciation
			FROM asset_depreciation d
			WHERE d.asset_id = f.asset_id
			ORDER BY d.created_at DESC
			LIMIT 1
		) latest ON TRUE
		ORDER BY f.code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query fixed assets: %w", err)
	}
	defer rows.Close()

	assets := []domain.FixedAsset{}
	for rows.Next() {
		var m models.FixedAsset
		var accumulated decimal.Decimal
		err := rows.Scan(
			&m.AssetID,
			&m.Code,
			&m.Name,
			&m.PurchaseDate,
			&m.PurchaseCost,
			&m.UsefulLifeYears,
			&m.SalvageValue,
			&m.DepreciationMethod,
			&m.AccountID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&accumulated,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fixed asset row: %w", err)
		}
		d := mapping.ToDomainFixedAsset(m)
		d.AccumulatedDepreciation = accumulated
		d.BookValue = d.PurchaseCost.Sub(accumulated)
		assets = append(assets, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fixed asset rows: %w", err)
	}

	return assets, nil
}

// FindLatestDepreciation retrieves the newest depreciation record for an
// asset, or ErrNotFound when it has never been depreciated.
func (r *PgxAssetRepository) FindLatestDepreciation(ctx context.Context, assetID string) (*domain.DepreciationRecord, error) {
	query := `
		SELECT record_id, asset_id, depreciation_date, period_amount, accumulated_depreciation, book_value, created_at
		FROM asset_depreciation
		WHERE asset_id = $1
		ORDER BY created_at DESC
		LIMIT 1;
	`
	var m models.DepreciationRecord
	err := r.Pool.QueryRow(ctx, query, assetID).Scan(
		&m.RecordID,
		&m.AssetID,
		&m.DepreciationDate,
		&m.PeriodAmount,
		&m.AccumulatedDepreciation,
		&m.BookValue,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest depreciation for asset %s: %w", assetID, err)
	}

	d := mapping.ToDomainDepreciationRecord(m)
	return &d, nil
}

// ListDepreciationByAsset retrieves an asset's history in chronological order.
func (r *PgxAssetRepository) ListDepreciationByAsset(ctx context.Context, assetID string) ([]domain.DepreciationRecord, error) {
	query := `
		SELECT record_id, asset_id, depreciation_date, period_amount, accumulated_depreciation, book_value, created_at
		FROM asset_depreciation
		WHERE asset_id = $1
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query depreciation history for asset %s: %w", assetID, err)
	}
	defer rows.Close()

	records := []domain.DepreciationRecord{}
	for rows.Next() {
		var m models.DepreciationRecord
		err := rows.Scan(
			&m.RecordID,
			&m.AssetID,
			&m.DepreciationDate,
			&m.PeriodAmount,
			&m.AccumulatedDepreciation,
			&m.BookValue,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan depreciation row for asset %s: %w", assetID, err)
		}
		records = append(records, mapping.ToDomainDepreciationRecord(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating depreciation rows for asset %s: %w", assetID, err)
	}

	return records, nil
}

// AppendDepreciation inserts one depreciation record inside a transaction.
// The asset row is locked first, then the latest accumulated depreciation is
// re-read under the lock. If it no longer matches priorAccumulated another
// run committed in between and the append is refused with ErrConflict, so
// concurrent runs serialize instead of both writing from the same seed.
func (r *PgxAssetRepository) AppendDepreciation(ctx context.Context, record domain.DepreciationRecord, priorAccumulated decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var assetID string
	err = tx.QueryRow(ctx, `SELECT asset_id FROM fixed_assets WHERE asset_id = $1 FOR UPDATE;`, record.AssetID).Scan(&assetID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock asset %s: %w", record.AssetID, err)
	}

	currentAccumulated := decimal.Zero
	err = tx.QueryRow(ctx, `
		SELECT accumulated_depreciation
		FROM asset_depreciation
		WHERE asset_id = $1
		ORDER BY created_at DESC
		LIMIT 1;
	`, record.AssetID).Scan(&currentAccumulated)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to re-read latest depreciation for asset %s: %w", record.AssetID, err)
	}
	if !currentAccumulated.Equal(priorAccumulated) {
		return fmt.Errorf("%w: depreciation for asset %s advanced concurrently", apperrors.ErrConflict, record.AssetID)
	}

	query := `
		INSERT INTO asset_depreciation (record_id, asset_id, depreciation_date, period_amount, accumulated_depreciation, book_value, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, query,
		record.RecordID,
		record.AssetID,
		record.DepreciationDate,
		record.PeriodAmount,
		record.AccumulatedDepreciation,
		record.BookValue,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert depreciation record %s: %w", record.RecordID, err)
	}

	return r.Commit(ctx, tx)
}
