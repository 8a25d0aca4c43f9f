package domain_test

import (
	"testing"

	"github.com/novaerp/accounting_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestJournalEntry_IsBalanced(t *testing.T) {
	tests := []struct {
		name    string
		details []domain.JournalDetail
		want    bool
	}{
		{
			name: "balanced two line entry",
			details: []domain.JournalDetail{
				{Debit: decimal.RequireFromString("100.00"), Credit: decimal.Zero},
				{Debit: decimal.Zero, Credit: decimal.RequireFromString("100.00")},
			},
			want: true,
		},
		{
			name: "unbalanced entry",
			details: []domain.JournalDetail{
				{Debit: decimal.RequireFromString("100.00"), Credit: decimal.Zero},
				{Debit: decimal.Zero, Credit: decimal.RequireFromString("90.00")},
			},
			want: false,
		},
		{
			name: "split credit side balances",
			details: []domain.JournalDetail{
				{Debit: decimal.RequireFromString("150.00"), Credit: decimal.Zero},
				{Debit: decimal.Zero, Credit: decimal.RequireFromString("100.00")},
				{Debit: decimal.Zero, Credit: decimal.RequireFromString("50.00")},
			},
			want: true,
		},
		{
			name: "cent level mismatch is rejected exactly",
			details: []domain.JournalDetail{
				{Debit: decimal.RequireFromString("100.00"), Credit: decimal.Zero},
				{Debit: decimal.Zero, Credit: decimal.RequireFromString("99.99")},
			},
			want: false,
		},
		{
			name:    "empty entry trivially balances",
			details: nil,
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := domain.JournalEntry{Details: tt.details}
			assert.Equal(t, tt.want, entry.IsBalanced())
		})
	}
}

func TestJournalEntry_Totals(t *testing.T) {
	entry := domain.JournalEntry{
		Details: []domain.JournalDetail{
			{Debit: decimal.RequireFromString("75.25"), Credit: decimal.Zero},
			{Debit: decimal.RequireFromString("24.75"), Credit: decimal.Zero},
			{Debit: decimal.Zero, Credit: decimal.RequireFromString("100.00")},
		},
	}

	assert.True(t, entry.TotalDebits().Equal(decimal.RequireFromString("100.00")))
	assert.True(t, entry.TotalCredits().Equal(decimal.RequireFromString("100.00")))
}
