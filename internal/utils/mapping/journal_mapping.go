package mapping

import (
	"github.com/novaerp/accounting_backend/internal/core/domain"
	"github.com/novaerp/accounting_backend/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry.
// Details are mapped separately; the entry row does not carry them.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:     d.EntryID,
		EntryDate:   d.EntryDate,
		ReferenceNo: d.ReferenceNo,
		Description: d.Description,
		Status:      models.JournalStatus(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry.
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:     m.EntryID,
		EntryDate:   m.EntryDate,
		ReferenceNo: m.ReferenceNo,
		Description: m.Description,
		Status:      domain.JournalStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalDetail converts a domain JournalDetail to a model JournalDetail.
func ToModelJournalDetail(d domain.JournalDetail) models.JournalDetail {
	return models.JournalDetail{
		DetailID:    d.DetailID,
		EntryID:     d.EntryID,
		AccountID:   d.AccountID,
		Debit:       d.Debit,
		Credit:      d.Credit,
		Description: d.Description,
		LineNo:      d.LineNo,
	}
}

// ToDomainJournalDetail converts a model JournalDetail to a domain JournalDetail.
func ToDomainJournalDetail(m models.JournalDetail) domain.JournalDetail {
	return domain.JournalDetail{
		DetailID:    m.DetailID,
		EntryID:     m.EntryID,
		AccountID:   m.AccountID,
		AccountCode: m.AccountCode,
		AccountName: m.AccountName,
		Debit:       m.Debit,
		Credit:      m.Credit,
		Description: m.Description,
		LineNo:      m.LineNo,
	}
}

// ToDomainJournalDetailSlice converts a slice of model JournalDetails.
func ToDomainJournalDetailSlice(ms []models.JournalDetail) []domain.JournalDetail {
	ds := make([]domain.JournalDetail, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalDetail(m)
	}
	return ds
}
