package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Deposit user collateral balance, one row per user and asset
type Deposit struct {
	ID        uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	UserID    string          `sql:"size:36;unique_index:deposit_idx" json:"-"`
	AssetID   string          `sql:"size:36;unique_index:deposit_idx" json:"asset_id"`
	Amount    decimal.Decimal `sql:"type:decimal(32,16)" json:"amount"`
	Version   int64           `sql:"default:0" json:"version"`
	CreatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// Borrow user debt balance, one row per user and asset
type Borrow struct {
	ID        uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	UserID    string          `sql:"size:36;unique_index:borrow_idx" json:"-"`
	AssetID   string          `sql:"size:36;unique_index:borrow_idx" json:"asset_id"`
	Amount    decimal.Decimal `sql:"type:decimal(32,16)" json:"amount"`
	Version   int64           `sql:"default:0" json:"version"`
	CreatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// IPositionStore user position store.
//
// Deposit and Borrow commit the user balance row and the market
// aggregates (total deposits / total debt, updated_at) in one
// transaction; either both move or neither does.
type IPositionStore interface {
	Deposit(ctx context.Context, userID, assetID string, amount decimal.Decimal) error
	Borrow(ctx context.Context, userID, assetID string, amount decimal.Decimal) error
	FindDeposits(ctx context.Context, userID string) ([]*Deposit, error)
	FindBorrows(ctx context.Context, userID string) ([]*Borrow, error)
}
