package position

import (
	"context"

	"lever/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
)

type positionStore struct {
	db *db.DB
}

// New new position store
func New(db *db.DB) core.IPositionStore {
	return &positionStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		if err := db.Update().Model(core.Deposit{}).AutoMigrate(core.Deposit{}).Error; err != nil {
			return err
		}

		if err := db.Update().Model(core.Borrow{}).AutoMigrate(core.Borrow{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *positionStore) Deposit(ctx context.Context, userID, assetID string, amount decimal.Decimal) error {
	return s.db.Tx(func(tx *db.DB) error {
		if err := bumpMarket(tx, assetID, "total_deposits", amount); err != nil {
			return err
		}

		return upsertBalance(tx, core.Deposit{}, userID, assetID, amount)
	})
}

func (s *positionStore) Borrow(ctx context.Context, userID, assetID string, amount decimal.Decimal) error {
	return s.db.Tx(func(tx *db.DB) error {
		if err := bumpMarket(tx, assetID, "total_debt", amount); err != nil {
			return err
		}

		return upsertBalance(tx, core.Borrow{}, userID, assetID, amount)
	})
}

func (s *positionStore) FindDeposits(ctx context.Context, userID string) ([]*core.Deposit, error) {
	var deposits []*core.Deposit
	if err := s.db.View().Where("user_id=?", userID).Find(&deposits).Error; err != nil {
		return nil, err
	}
	return deposits, nil
}

func (s *positionStore) FindBorrows(ctx context.Context, userID string) ([]*core.Borrow, error) {
	var borrows []*core.Borrow
	if err := s.db.View().Where("user_id=?", userID).Find(&borrows).Error; err != nil {
		return nil, err
	}
	return borrows, nil
}

// bumpMarket increments the market aggregate column; gorm refreshes
// updated_at alongside. the storable-range cap is enforced in the
// update predicate so concurrent writers cannot jointly exceed it.
// missing market or a capped total fails the whole transaction.
func bumpMarket(tx *db.DB, assetID, column string, amount decimal.Decimal) error {
	update := tx.Update().Model(core.Market{}).
		Where("asset_id=? and "+column+" + ? <= cast(? as decimal(32,16))", assetID, amount, core.MaxValue).
		Updates(map[string]interface{}{
			column:    gorm.Expr(column+" + ?", amount),
			"version": gorm.Expr("version + 1"),
		})
	if update.Error != nil {
		return update.Error
	}

	if update.RowsAffected > 0 {
		return nil
	}

	var count int
	if err := tx.Update().Model(core.Market{}).Where("asset_id=?", assetID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return core.ErrMarketNotFound
	}

	return core.ErrOverflow
}

func upsertBalance(tx *db.DB, model interface{}, userID, assetID string, amount decimal.Decimal) error {
	update := tx.Update().Model(model).
		Where("user_id=? and asset_id=?", userID, assetID).
		Updates(map[string]interface{}{
			"amount":  gorm.Expr("amount + ?", amount),
			"version": gorm.Expr("version + 1"),
		})
	if update.Error != nil {
		return update.Error
	}

	if update.RowsAffected > 0 {
		return nil
	}

	switch model.(type) {
	case core.Deposit:
		return tx.Update().Create(&core.Deposit{
			UserID:  userID,
			AssetID: assetID,
			Amount:  amount,
		}).Error
	default:
		return tx.Update().Create(&core.Borrow{
			UserID:  userID,
			AssetID: assetID,
			Amount:  amount,
		}).Error
	}
}
