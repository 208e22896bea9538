package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// MinHealthFactor solvency boundary, permille. an account at exactly
// 1000 is fully collateralized at the risk weighted value.
var MinHealthFactor = decimal.NewFromInt(PermilleBase)

// MaxHealthFactor health factor of a debt free account
var MaxHealthFactor = decimal.New(1, 12)

// AccountSummary aggregate view of one account
type AccountSummary struct {
	UserID string `json:"user_id"`
	// undiscounted sums, no loan-to-value weighting
	TotalDepositValue decimal.Decimal `json:"total_deposit_value"`
	TotalDebtValue    decimal.Decimal `json:"total_debt_value"`
	// weighted permille ratio
	HealthFactor decimal.Decimal `json:"health_factor"`
}

// IAccountStore account cache store interface
type IAccountStore interface {
	SaveHealthFactor(ctx context.Context, userID string, hf decimal.Decimal) error
	FindHealthFactor(ctx context.Context, userID string) (decimal.Decimal, error)
}

// IAccountService account service interface
type IAccountService interface {
	// calculate account health factor by real time
	CalculateHealthFactor(ctx context.Context, userID string) (decimal.Decimal, error)
	// health factor as it would be right after the borrow is applied
	ProjectedHealthFactor(ctx context.Context, userID, assetID string, borrowAmount decimal.Decimal) (decimal.Decimal, error)
	GetUserPosition(ctx context.Context, userID string) (*AccountSummary, error)
}
