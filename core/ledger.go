package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// ILedgerService ledger operations interface
type ILedgerService interface {
	// Deposit credits the user's collateral balance and the market's
	// total deposits. amount must be positive and the market must exist.
	Deposit(ctx context.Context, userID, assetID string, amount decimal.Decimal) error
	// Borrow checks the projected post-borrow health factor and, if the
	// account stays at or above MinHealthFactor, commits the debt
	// increase. rejection leaves all state untouched.
	Borrow(ctx context.Context, userID, assetID string, amount decimal.Decimal) error
}
