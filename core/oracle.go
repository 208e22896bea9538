package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// PriceSourceTypeFixed static price set by configuration
	PriceSourceTypeFixed = "fixed"
	// PriceSourceTypeProvider delegates to another registered provider
	PriceSourceTypeProvider = "provider"

	// RootPriceProvider the provider namespace queried first
	RootPriceProvider = "root"
)

// PriceSource price source info, one per provider and asset
type PriceSource struct {
	ID       int64  `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id,omitempty"`
	Provider string `sql:"size:64;unique_index:idx_price_sources" json:"provider,omitempty"`
	AssetID  string `sql:"size:36;unique_index:idx_price_sources" json:"asset_id,omitempty"`
	Type     string `sql:"size:16" json:"type,omitempty"`
	// fixed sources only
	Price decimal.Decimal `sql:"type:decimal(32,16)" json:"price,omitempty"`
	// provider sources only, the delegated provider handle
	Reference string    `sql:"size:64" json:"reference,omitempty"`
	Version   int64     `sql:"default:0" json:"version,omitempty"`
	CreatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at,omitempty"`
	UpdatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at,omitempty"`
}

// Validate checks the source against its type tag
func (s *PriceSource) Validate() error {
	switch s.Type {
	case PriceSourceTypeFixed:
		if s.Price.IsNegative() {
			return ErrInvalidPriceSource
		}
	case PriceSourceTypeProvider:
		if s.Reference == "" {
			return ErrInvalidPriceSource
		}
	default:
		return ErrInvalidPriceSource
	}

	if s.Provider == "" || s.AssetID == "" {
		return ErrInvalidPriceSource
	}

	return nil
}

// IOracleStore price source store interface
//
// Find returns ErrPriceNotFound if the provider has no source for the asset
type IOracleStore interface {
	Save(ctx context.Context, source *PriceSource) error
	Find(ctx context.Context, provider, assetID string) (*PriceSource, error)
}

// IPriceOracleService oracle price service interface
type IPriceOracleService interface {
	SetPriceSource(ctx context.Context, authority string, source *PriceSource) error
	GetPrice(ctx context.Context, assetID string) (decimal.Decimal, error)
}
