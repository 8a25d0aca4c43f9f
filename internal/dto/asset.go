package dto

import (
	"github.com/novaerp/accounting_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateFixedAssetRequest defines the data needed to register a fixed asset.
type CreateFixedAssetRequest struct {
	Code               string                    `json:"code" binding:"required"`
	Name               string                    `json:"name" binding:"required"`
	PurchaseDate       string                    `json:"purchaseDate" binding:"required,datetime=2006-01-02"`
	PurchaseCost       decimal.Decimal           `json:"purchaseCost" binding:"required"`
	UsefulLifeYears    int                       `json:"usefulLifeYears" binding:"required,min=1"`
	SalvageValue       decimal.Decimal           `json:"salvageValue"`
	DepreciationMethod domain.DepreciationMethod `json:"depreciationMethod" binding:"required,oneof=STRAIGHT_LINE DECLINING_BALANCE"`
	AccountID          string                    `json:"accountID" binding:"required"`
}

// CalculateDepreciationRequest triggers one depreciation run for an asset.
type CalculateDepreciationRequest struct {
	AssetID         string `json:"asset_id" binding:"required"`
	CalculationDate string `json:"calculation_date" binding:"required,datetime=2006-01-02"`
}

// FixedAssetResponse defines the data returned for a fixed asset, annotated
// with its latest depreciation state.
type FixedAssetResponse struct {
	AssetID                 string                    `json:"assetID"`
	Code                    string                    `json:"code"`
	Name                    string                    `json:"name"`
	PurchaseDate            string                    `json:"purchaseDate"`
	PurchaseCost            decimal.Decimal           `json:"purchaseCost"`
	UsefulLifeYears         int                       `json:"usefulLifeYears"`
	SalvageValue            decimal.Decimal           `json:"salvageValue"`
	DepreciationMethod      domain.DepreciationMethod `json:"depreciationMethod"`
	AccountID               string                    `json:"accountID"`
	AccumulatedDepreciation decimal.Decimal           `json:"accumulatedDepreciation"`
	BookValue               decimal.Decimal           `json:"bookValue"`
}

// DepreciationRecordResponse is one line of an asset's depreciation history.
type DepreciationRecordResponse struct {
	RecordID                string          `json:"recordID"`
	DepreciationDate        string          `json:"depreciationDate"`
	PeriodAmount            decimal.Decimal `json:"periodAmount"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	BookValue               decimal.Decimal `json:"bookValue"`
}

// DepreciationResultResponse is the outcome of one depreciation run.
type DepreciationResultResponse struct {
	PeriodAmount            decimal.Decimal `json:"periodAmount"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	BookValue               decimal.Decimal `json:"bookValue"`
}

// AssetDepreciationResponse is an asset plus its full history.
type AssetDepreciationResponse struct {
	Asset   FixedAssetResponse           `json:"asset"`
	History []DepreciationRecordResponse `json:"history"`
}

// ToFixedAssetResponse converts a domain.FixedAsset to FixedAssetResponse.
func ToFixedAssetResponse(a *domain.FixedAsset) FixedAssetResponse {
	return FixedAssetResponse{
		AssetID:                 a.AssetID,
		Code:                    a.Code,
		Name:                    a.Name,
		PurchaseDate:            a.PurchaseDate.Format(DateLayout),
		PurchaseCost:            a.PurchaseCost,
		UsefulLifeYears:         a.UsefulLifeYears,
		SalvageValue:            a.SalvageValue,
		DepreciationMethod:      a.DepreciationMethod,
		AccountID:               a.AccountID,
		AccumulatedDepreciation: a.AccumulatedDepreciation,
		BookValue:               a.BookValue,
	}
}

// ToFixedAssetResponses converts a slice of domain fixed assets.
func ToFixedAssetResponses(as []domain.FixedAsset) []FixedAssetResponse {
	out := make([]FixedAssetResponse, len(as))
	for i := range as {
		out[i] = ToFixedAssetResponse(&as[i])
	}
	return out
}

// ToDepreciationRecordResponses converts a depreciation history.
func ToDepreciationRecordResponses(rs []domain.DepreciationRecord) []DepreciationRecordResponse {
	out := make([]DepreciationRecordResponse, len(rs))
	for i, r := range rs {
		out[i] = DepreciationRecordResponse{
			RecordID:                r.RecordID,
			DepreciationDate:        r.DepreciationDate.Format(DateLayout),
			PeriodAmount:            r.PeriodAmount,
			AccumulatedDepreciation: r.AccumulatedDepreciation,
			BookValue:               r.BookValue,
		}
	}
	return out
}
