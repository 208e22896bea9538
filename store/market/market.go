package market

import (
	"context"

	"lever/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type marketStore struct {
	db *db.DB
}

// New new market store
func New(db *db.DB) core.IMarketStore {
	return &marketStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Market{})
		if err := tx.AutoMigrate(core.Market{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *marketStore) Create(ctx context.Context, market *core.Market) error {
	if err := s.db.Update().Create(market).Error; err != nil {
		return err
	}
	return nil
}

func (s *marketStore) Find(ctx context.Context, assetID string) (*core.Market, error) {
	var market core.Market
	if err := s.db.View().Where("asset_id=?", assetID).First(&market).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, core.ErrMarketNotFound
		}
		return nil, err
	}

	return &market, nil
}

func (s *marketStore) All(ctx context.Context) ([]*core.Market, error) {
	var markets []*core.Market
	if err := s.db.View().Find(&markets).Error; err != nil {
		return nil, err
	}
	return markets, nil
}

func (s *marketStore) AllAsMap(ctx context.Context) (map[string]*core.Market, error) {
	markets, e := s.All(ctx)
	if e != nil {
		return nil, e
	}

	maps := make(map[string]*core.Market)

	for _, m := range markets {
		maps[m.AssetID] = m
	}

	return maps, nil
}

func (s *marketStore) Update(ctx context.Context, market *core.Market) error {
	// column map, not the struct: zero is a valid value for every
	// parameter here and must overwrite
	update := s.db.Update().Model(core.Market{}).
		Where("asset_id=? and version=?", market.AssetID, market.Version).
		Updates(map[string]interface{}{
			"deposit_rate":          market.DepositRate,
			"borrow_rate":           market.BorrowRate,
			"loan_to_value":         market.LoanToValue,
			"liquidation_threshold": market.LiquidationThreshold,
			"version":               market.Version + 1,
		})
	if update.Error != nil {
		return update.Error
	}

	if update.RowsAffected == 0 {
		return core.ErrMarketVersionConflict
	}

	market.Version++
	return nil
}
