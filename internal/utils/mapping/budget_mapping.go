package mapping

import (
	"github.com/novaerp/accounting_backend/internal/core/domain"
	"github.com/novaerp/accounting_backend/internal/models"
)

// ToModelBudget converts a domain Budget to a model Budget.
func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:    d.BudgetID,
		AccountID:   d.AccountID,
		FiscalYear:  d.FiscalYear,
		Amount:      d.Amount,
		Description: d.Description,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudget converts a model Budget to a domain Budget.
func ToDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		BudgetID:    m.BudgetID,
		AccountID:   m.AccountID,
		AccountCode: m.AccountCode,
		AccountName: m.AccountName,
		FiscalYear:  m.FiscalYear,
		Amount:      m.Amount,
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBudgetSlice converts a slice of model Budgets to domain Budgets.
func ToDomainBudgetSlice(ms []models.Budget) []domain.Budget {
	ds := make([]domain.Budget, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBudget(m)
	}
	return ds
}
