package market

import (
	"context"
	"errors"

	"lever/core"

	"github.com/shopspring/decimal"
)

type marketService struct {
	config      *core.Config
	marketStore core.IMarketStore
}

// New new market service
func New(cfg *core.Config, marketStore core.IMarketStore) core.IMarketService {
	return &marketService{
		config:      cfg,
		marketStore: marketStore,
	}
}

func (s *marketService) CreateOrUpdate(ctx context.Context, authority string, market *core.Market) error {
	if !s.config.IsAdmin(authority) {
		return core.ErrOperationForbidden
	}

	if err := market.ValidateRiskParameters(); err != nil {
		return err
	}

	existing, err := s.marketStore.Find(ctx, market.AssetID)
	if err != nil {
		if errors.Is(err, core.ErrMarketNotFound) {
			market.TotalDeposits = decimal.Zero
			market.TotalDebt = decimal.Zero
			return s.marketStore.Create(ctx, market)
		}
		return err
	}

	// overwrite replaces parameters only; the running totals stay
	// consistent with the user rows behind them
	existing.DepositRate = market.DepositRate
	existing.BorrowRate = market.BorrowRate
	existing.LoanToValue = market.LoanToValue
	existing.LiquidationThreshold = market.LiquidationThreshold

	return s.marketStore.Update(ctx, existing)
}
