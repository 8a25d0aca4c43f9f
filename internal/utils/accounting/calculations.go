package accounting

import (
	"github.com/novaerp/accounting_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Currency amounts are kept to two decimal places.
const moneyScale = 2

var twelve = decimal.NewFromInt(12)

// SignedBalance computes the report balance of an account from its total
// debits and credits. Revenue accounts grow with credits, every other type is
// reported debit minus credit.
func SignedBalance(accountType domain.AccountType, debit, credit decimal.Decimal) decimal.Decimal {
	if accountType == domain.Revenue {
		return credit.Sub(debit)
	}
	return debit.Sub(credit)
}

// StraightLinePeriodAmount returns the fixed monthly depreciation amount for
// the straight-line method: (cost - salvage) / life / 12.
func StraightLinePeriodAmount(purchaseCost, salvageValue decimal.Decimal, usefulLifeYears int) decimal.Decimal {
	months := decimal.NewFromInt(int64(usefulLifeYears)).Mul(twelve)
	return purchaseCost.Sub(salvageValue).Div(months).Round(moneyScale)
}

// DecliningBalancePeriodAmount returns one month of double-declining-balance
// depreciation: bookValue * (2 / life) / 12.
func DecliningBalancePeriodAmount(bookValue decimal.Decimal, usefulLifeYears int) decimal.Decimal {
	rate := decimal.NewFromInt(2).Div(decimal.NewFromInt(int64(usefulLifeYears)))
	return bookValue.Mul(rate).Div(twelve).Round(moneyScale)
}

// PeriodAmount dispatches on the asset's depreciation method, using the
// current book value as the declining-balance base.
func PeriodAmount(asset domain.FixedAsset, bookValue decimal.Decimal) decimal.Decimal {
	if asset.DepreciationMethod == domain.DecliningBalance {
		return DecliningBalancePeriodAmount(bookValue, asset.UsefulLifeYears)
	}
	return StraightLinePeriodAmount(asset.PurchaseCost, asset.SalvageValue, asset.UsefulLifeYears)
}
