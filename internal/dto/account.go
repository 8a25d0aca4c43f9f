package dto

import (
	"time"

	"github.com/novaerp/accounting_backend/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a chart-of-accounts
// entry. Code must be at least four digits.
type CreateAccountRequest struct {
	Code            string             `json:"code" binding:"required,numeric,min=4"`
	Name            string             `json:"name" binding:"required"`
	AccountType     domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Description     string             `json:"description"`
	ParentAccountID *string            `json:"parentAccountID"`
}

// UpdateAccountRequest defines the fields allowed when updating an account.
// Pointers distinguish "not provided" from zero values; code is immutable and
// deliberately absent.
type UpdateAccountRequest struct {
	Name            *string             `json:"name"`
	AccountType     *domain.AccountType `json:"accountType" binding:"omitempty,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Description     *string             `json:"description"`
	ParentAccountID *string             `json:"parentAccountID"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID       string             `json:"accountID"`
	Code            string             `json:"code"`
	Name            string             `json:"name"`
	AccountType     domain.AccountType `json:"accountType"`
	Description     string             `json:"description"`
	ParentAccountID *string            `json:"parentAccountID"`
	ParentName      string             `json:"parentName,omitempty"`
	HasChildren     bool               `json:"hasChildren"`
	CreatedAt       time.Time          `json:"createdAt"`
	LastUpdatedAt   time.Time          `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       acc.AccountID,
		Code:            acc.Code,
		Name:            acc.Name,
		AccountType:     acc.AccountType,
		Description:     acc.Description,
		ParentAccountID: acc.ParentAccountID,
		ParentName:      acc.ParentName,
		HasChildren:     acc.HasChildren,
		CreatedAt:       acc.CreatedAt,
		LastUpdatedAt:   acc.LastUpdatedAt,
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(accs []domain.Account) []AccountResponse {
	out := make([]AccountResponse, len(accs))
	for i := range accs {
		out[i] = ToAccountResponse(&accs[i])
	}
	return out
}
