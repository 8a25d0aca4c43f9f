package mapping

import (
	"github.com/novaerp/accounting_backend/internal/core/domain"
	"github.com/novaerp/accounting_backend/internal/models"
)

// ToModelFixedAsset converts a domain FixedAsset to a model FixedAsset.
func ToModelFixedAsset(d domain.FixedAsset) models.FixedAsset {
	return models.FixedAsset{
		AssetID:            d.AssetID,
		Code:               d.Code,
		Name:               d.Name,
		PurchaseDate:       d.PurchaseDate,
		PurchaseCost:       d.PurchaseCost,
		UsefulLifeYears:    d.UsefulLifeYears,
		SalvageValue:       d.SalvageValue,
		DepreciationMethod: models.DepreciationMethod(d.DepreciationMethod),
		AccountID:          d.AccountID,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFixedAsset converts a model FixedAsset to a domain FixedAsset.
// AccumulatedDepreciation and BookValue are derived fields and are filled in
// by the caller from the latest depreciation record.
func ToDomainFixedAsset(m models.FixedAsset) domain.FixedAsset {
	return domain.FixedAsset{
		AssetID:            m.AssetID,
		Code:               m.Code,
		Name:               m.Name,
		PurchaseDate:       m.PurchaseDate,
		PurchaseCost:       m.PurchaseCost,
		UsefulLifeYears:    m.UsefulLifeYears,
		SalvageValue:       m.SalvageValue,
		DepreciationMethod: domain.DepreciationMethod(m.DepreciationMethod),
		AccountID:          m.AccountID,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDepreciationRecord converts a model DepreciationRecord.
func ToDomainDepreciationRecord(m models.DepreciationRecord) domain.DepreciationRecord {
	return domain.DepreciationRecord{
		RecordID:                m.RecordID,
		AssetID:                 m.AssetID,
		DepreciationDate:        m.DepreciationDate,
		PeriodAmount:            m.PeriodAmount,
		AccumulatedDepreciation: m.AccumulatedDepreciation,
		BookValue:               m.BookValue,
		CreatedAt:               m.CreatedAt,
	}
}

// ToDomainDepreciationRecordSlice converts a slice of model DepreciationRecords.
func ToDomainDepreciationRecordSlice(ms []models.DepreciationRecord) []domain.DepreciationRecord {
	ds := make([]domain.DepreciationRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDepreciationRecord(m)
	}
	return ds
}
