package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepreciationMethod mirrors the depreciation_method column values.
type DepreciationMethod string

const (
	StraightLine     DepreciationMethod = "STRAIGHT_LINE"
	DecliningBalance DepreciationMethod = "DECLINING_BALANCE"
)

// FixedAsset represents one row of fixed_assets.
type FixedAsset struct {
	AssetID            string             `db:"asset_id"`
	Code               string             `db:"code"`
	Name               string             `db:"name"`
	PurchaseDate       time.Time          `db:"purchase_date"`
	PurchaseCost       decimal.Decimal    `db:"purchase_cost"`
	UsefulLifeYears    int                `db:"useful_life_years"`
	SalvageValue       decimal.Decimal    `db:"salvage_value"`
	DepreciationMethod DepreciationMethod `db:"depreciation_method"`
	AccountID          string             `db:"account_id"`
	AuditFields
}

// DepreciationRecord represents one row of asset_depreciation.
// Rows are append-only; they are never updated or deleted.
type DepreciationRecord struct {
	RecordID                string          `db:"record_id"`
	AssetID                 string          `db:"asset_id"`
	DepreciationDate        time.Time       `db:"depreciation_date"`
	PeriodAmount            decimal.Decimal `db:"period_amount"`
	AccumulatedDepreciation decimal.Decimal `db:"accumulated_depreciation"`
	BookValue               decimal.Decimal `db:"book_value"`
	CreatedAt               time.Time       `db:"created_at"`
}
