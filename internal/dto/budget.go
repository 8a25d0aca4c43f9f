package dto

import (
	"github.com/novaerp/accounting_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to create a budget line.
type CreateBudgetRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	FiscalYear  int             `json:"fiscalYear" binding:"required,min=1900,max=2200"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
}

// ListBudgetsParams carries the optional budget list filters.
type ListBudgetsParams struct {
	FiscalYear *int    `form:"fiscal_year"`
	AccountID  *string `form:"account_id"`
}

// BudgetResponse defines the data returned for a budget line.
type BudgetResponse struct {
	BudgetID    string          `json:"budgetID"`
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	FiscalYear  int             `json:"fiscalYear"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// ToBudgetResponse converts a domain.Budget to BudgetResponse.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:    b.BudgetID,
		AccountID:   b.AccountID,
		AccountCode: b.AccountCode,
		AccountName: b.AccountName,
		FiscalYear:  b.FiscalYear,
		Amount:      b.Amount,
		Description: b.Description,
	}
}

// ToBudgetResponses converts a slice of domain budgets.
func ToBudgetResponses(bs []domain.Budget) []BudgetResponse {
	out := make([]BudgetResponse, len(bs))
	for i := range bs {
		out[i] = ToBudgetResponse(&bs[i])
	}
	return out
}
