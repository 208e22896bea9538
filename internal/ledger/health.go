package ledger

import (
	"github.com/shopspring/decimal"
)

var permille = decimal.NewFromInt(1000)

// CollateralValue risk weighted value of a deposit:
// amount * price * ltv / 1000, ltv in permille
func CollateralValue(amount, price decimal.Decimal, loanToValue int64) decimal.Decimal {
	return amount.Mul(price).Mul(decimal.NewFromInt(loanToValue)).Div(permille)
}

// DebtValue full notional value of a borrow, no weighting
func DebtValue(amount, price decimal.Decimal) decimal.Decimal {
	return amount.Mul(price)
}

// HealthFactor permille ratio of collateral value to debt value,
// truncated. debt must be positive; the debt free case is decided
// by the caller.
func HealthFactor(collateralValue, debtValue decimal.Decimal) decimal.Decimal {
	return collateralValue.Mul(permille).Div(debtValue).Truncate(0)
}
