package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepreciationMethod selects the numeric method used to depreciate an asset.
type DepreciationMethod string

const (
	StraightLine     DepreciationMethod = "STRAIGHT_LINE"
	DecliningBalance DepreciationMethod = "DECLINING_BALANCE"
)

// ValidDepreciationMethod reports whether m is a supported method.
func ValidDepreciationMethod(m DepreciationMethod) bool {
	return m == StraightLine || m == DecliningBalance
}

// FixedAsset represents a depreciable asset linked to a ledger account.
type FixedAsset struct {
	AssetID            string             `json:"assetID"` // Primary key (UUID)
	Code               string             `json:"code"`    // Unique
	Name               string             `json:"name"`
	PurchaseDate       time.Time          `json:"purchaseDate"`
	PurchaseCost       decimal.Decimal    `json:"purchaseCost"`
	UsefulLifeYears    int                `json:"usefulLifeYears"`
	SalvageValue       decimal.Decimal    `json:"salvageValue"` // Book value floor, default 0
	DepreciationMethod DepreciationMethod `json:"depreciationMethod"`
	AccountID          string             `json:"accountID"` // FK -> chart of accounts
	AuditFields

	// Derived from the latest depreciation record; zero / purchase cost when
	// the asset has never been depreciated.
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	BookValue               decimal.Decimal `json:"bookValue"`
}

// DepreciationRecord is one line of an asset's append-only depreciation
// ledger. Records are never mutated once written; accumulated depreciation is
// monotonically non-decreasing and book value never drops below salvage.
type DepreciationRecord struct {
	RecordID                string          `json:"recordID"` // Primary key (UUID)
	AssetID                 string          `json:"assetID"`
	DepreciationDate        time.Time       `json:"depreciationDate"`
	PeriodAmount            decimal.Decimal `json:"periodAmount"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	BookValue               decimal.Decimal `json:"bookValue"`
	CreatedAt               time.Time       `json:"createdAt"`
}
