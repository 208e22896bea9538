package oracle

import (
	"context"

	"lever/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type oracleStore struct {
	db *db.DB
}

// New new oracle store
func New(db *db.DB) core.IOracleStore {
	return &oracleStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.PriceSource{})

		if err := tx.AutoMigrate(core.PriceSource{}).Error; err != nil {
			return err
		}

		return nil
	})
}

// Save registers or overwrites the source for (provider, asset)
func (s *oracleStore) Save(ctx context.Context, source *core.PriceSource) error {
	return s.db.Tx(func(tx *db.DB) error {
		update := tx.Update().Model(core.PriceSource{}).
			Where("provider=? and asset_id=?", source.Provider, source.AssetID).
			Updates(map[string]interface{}{
				"type":      source.Type,
				"price":     source.Price,
				"reference": source.Reference,
				"version":   gorm.Expr("version + 1"),
			})
		if update.Error != nil {
			return update.Error
		}

		if update.RowsAffected > 0 {
			return nil
		}

		return tx.Update().Create(source).Error
	})
}

func (s *oracleStore) Find(ctx context.Context, provider, assetID string) (*core.PriceSource, error) {
	var source core.PriceSource
	if err := s.db.View().Where("provider=? and asset_id=?", provider, assetID).First(&source).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, core.ErrPriceNotFound
		}
		return nil, err
	}

	return &source, nil
}
