package account

import (
	"context"

	"lever/core"
	"lever/internal/ledger"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

type accountService struct {
	marketStore   core.IMarketStore
	positionStore core.IPositionStore
	accountStore  core.IAccountStore
	priceService  core.IPriceOracleService
}

// New new account service
func New(
	marketStore core.IMarketStore,
	positionStore core.IPositionStore,
	accountStore core.IAccountStore,
	priceSrv core.IPriceOracleService,
) core.IAccountService {
	return &accountService{
		marketStore:   marketStore,
		positionStore: positionStore,
		accountStore:  accountStore,
		priceService:  priceSrv,
	}
}

func (s *accountService) CalculateHealthFactor(ctx context.Context, userID string) (decimal.Decimal, error) {
	collateralValue, debtValue, err := s.accountValues(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	return healthFactor(collateralValue, debtValue), nil
}

func (s *accountService) ProjectedHealthFactor(ctx context.Context, userID, assetID string, borrowAmount decimal.Decimal) (decimal.Decimal, error) {
	collateralValue, debtValue, err := s.accountValues(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	price, err := s.priceService.GetPrice(ctx, assetID)
	if err != nil {
		return decimal.Zero, err
	}

	debtValue = debtValue.Add(ledger.DebtValue(borrowAmount, price))
	if debtValue.GreaterThan(core.MaxValue) {
		return decimal.Zero, core.ErrOverflow
	}

	return healthFactor(collateralValue, debtValue), nil
}

func (s *accountService) GetUserPosition(ctx context.Context, userID string) (*core.AccountSummary, error) {
	log := logger.FromContext(ctx).WithField("service", "account")

	deposits, err := s.positionStore.FindDeposits(ctx, userID)
	if err != nil {
		return nil, err
	}

	markets, err := s.marketStore.AllAsMap(ctx)
	if err != nil {
		return nil, err
	}

	depositValue := decimal.Zero
	collateralValue := decimal.Zero
	for _, d := range deposits {
		market, ok := markets[d.AssetID]
		if !ok {
			return nil, core.ErrMarketNotFound
		}

		price, err := s.priceService.GetPrice(ctx, d.AssetID)
		if err != nil {
			return nil, err
		}

		depositValue = depositValue.Add(d.Amount.Mul(price))
		collateralValue = collateralValue.Add(ledger.CollateralValue(d.Amount, price, market.LoanToValue))
		if depositValue.GreaterThan(core.MaxValue) {
			return nil, core.ErrOverflow
		}
	}

	borrows, err := s.positionStore.FindBorrows(ctx, userID)
	if err != nil {
		return nil, err
	}

	debtValue := decimal.Zero
	for _, b := range borrows {
		price, err := s.priceService.GetPrice(ctx, b.AssetID)
		if err != nil {
			return nil, err
		}

		debtValue = debtValue.Add(ledger.DebtValue(b.Amount, price))
		if debtValue.GreaterThan(core.MaxValue) {
			return nil, core.ErrOverflow
		}
	}

	hf := healthFactor(collateralValue, debtValue)

	if err := s.accountStore.SaveHealthFactor(ctx, userID, hf); err != nil {
		log.WithError(err).Errorln("cache health factor error")
	}

	return &core.AccountSummary{
		UserID:            userID,
		TotalDepositValue: depositValue,
		TotalDebtValue:    debtValue,
		HealthFactor:      hf,
	}, nil
}

// accountValues sums the risk weighted collateral value and the
// unweighted debt value of the account. a missing market or price is
// a hard failure, never skipped.
func (s *accountService) accountValues(ctx context.Context, userID string) (decimal.Decimal, decimal.Decimal, error) {
	deposits, err := s.positionStore.FindDeposits(ctx, userID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	markets, err := s.marketStore.AllAsMap(ctx)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	collateralValue := decimal.Zero
	for _, d := range deposits {
		market, ok := markets[d.AssetID]
		if !ok {
			return decimal.Zero, decimal.Zero, core.ErrMarketNotFound
		}

		price, err := s.priceService.GetPrice(ctx, d.AssetID)
		if err != nil {
			return decimal.Zero, decimal.Zero, err
		}

		collateralValue = collateralValue.Add(ledger.CollateralValue(d.Amount, price, market.LoanToValue))
		if collateralValue.GreaterThan(core.MaxValue) {
			return decimal.Zero, decimal.Zero, core.ErrOverflow
		}
	}

	borrows, err := s.positionStore.FindBorrows(ctx, userID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	debtValue := decimal.Zero
	for _, b := range borrows {
		price, err := s.priceService.GetPrice(ctx, b.AssetID)
		if err != nil {
			return decimal.Zero, decimal.Zero, err
		}

		debtValue = debtValue.Add(ledger.DebtValue(b.Amount, price))
		if debtValue.GreaterThan(core.MaxValue) {
			return decimal.Zero, decimal.Zero, core.ErrOverflow
		}
	}

	return collateralValue, debtValue, nil
}

func healthFactor(collateralValue, debtValue decimal.Decimal) decimal.Decimal {
	if !debtValue.IsPositive() {
		return core.MaxHealthFactor
	}

	return ledger.HealthFactor(collateralValue, debtValue)
}
