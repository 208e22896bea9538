package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// PermilleBase permille scale, 1000 = 100%
	PermilleBase int64 = 1000
)

// MaxValue upper bound for any stored amount or computed value.
// the amount columns are decimal(32,16); a wider value would be
// truncated by the database, so the core rejects it first.
var MaxValue = decimal.New(1, 16)

// Market per asset market info
type Market struct {
	ID      uint64 `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	AssetID string `sql:"size:36;unique_index:asset_idx" json:"asset_id"`
	// interest rate parameters, stored only, no accrual here
	DepositRate uint64 `sql:"default:0" json:"deposit_rate"`
	BorrowRate  uint64 `sql:"default:0" json:"borrow_rate"`
	// 抵押率, permille. 800 = 80% of the raw value counts as collateral
	LoanToValue int64 `sql:"default:0" json:"loan_to_value"`
	// 清算阈值, permille, >= LoanToValue
	LiquidationThreshold int64           `sql:"default:0" json:"liquidation_threshold"`
	TotalDeposits        decimal.Decimal `sql:"type:decimal(32,16)" json:"total_deposits"`
	TotalDebt            decimal.Decimal `sql:"type:decimal(32,16)" json:"total_debt"`
	Version              int64           `sql:"default:0" json:"version"`
	CreatedAt            time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt            time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// ValidateRiskParameters checks 0 <= ltv <= liquidation threshold <= 1000
func (m *Market) ValidateRiskParameters() error {
	if m.LoanToValue < 0 ||
		m.LoanToValue > m.LiquidationThreshold ||
		m.LiquidationThreshold > PermilleBase {
		return ErrInvalidMarketParameter
	}

	return nil
}

// IMarketStore market store interface
//
// Find returns ErrMarketNotFound if no market exists for the asset
type IMarketStore interface {
	Create(ctx context.Context, market *Market) error
	Find(ctx context.Context, assetID string) (*Market, error)
	All(ctx context.Context) ([]*Market, error)
	AllAsMap(ctx context.Context) (map[string]*Market, error)
	Update(ctx context.Context, market *Market) error
}

// IMarketService market administration interface
type IMarketService interface {
	// CreateOrUpdate registers the market for market.AssetID, or replaces
	// its rate/risk parameters. Running totals survive an overwrite and
	// are zero only on first creation.
	CreateOrUpdate(ctx context.Context, authority string, market *Market) error
}
