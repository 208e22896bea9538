package ledger

import (
	"context"

	"lever/core"
	"lever/pkg/concurrency"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

type ledgerService struct {
	marketStore    core.IMarketStore
	positionStore  core.IPositionStore
	accountService core.IAccountService
	// serializes the borrow check-then-commit per account
	locks *concurrency.LockSet
}

// New new ledger service
func New(
	marketStore core.IMarketStore,
	positionStore core.IPositionStore,
	accountSrv core.IAccountService,
) core.ILedgerService {
	return &ledgerService{
		marketStore:    marketStore,
		positionStore:  positionStore,
		accountService: accountSrv,
		locks:          concurrency.NewLockSet(),
	}
}

func (s *ledgerService) Deposit(ctx context.Context, userID, assetID string, amount decimal.Decimal) error {
	log := logger.FromContext(ctx).WithField("service", "ledger")

	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	market, err := s.marketStore.Find(ctx, assetID)
	if err != nil {
		return err
	}

	// cheap early reject; the commit re-checks the cap inside the
	// transaction, which is what holds under concurrent writers
	if market.TotalDeposits.Add(amount).GreaterThan(core.MaxValue) {
		return core.ErrOverflow
	}

	if err := s.positionStore.Deposit(ctx, userID, assetID, amount); err != nil {
		log.WithError(err).Errorln("deposit commit error")
		return err
	}

	log.Infoln("deposit, user:", userID, "asset:", assetID, "amount:", amount)
	return nil
}

func (s *ledgerService) Borrow(ctx context.Context, userID, assetID string, amount decimal.Decimal) error {
	log := logger.FromContext(ctx).WithField("service", "ledger")

	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	s.locks.Lock(userID)
	defer s.locks.Unlock(userID)

	market, err := s.marketStore.Find(ctx, assetID)
	if err != nil {
		return err
	}

	// early reject only, see Deposit
	if market.TotalDebt.Add(amount).GreaterThan(core.MaxValue) {
		return core.ErrOverflow
	}

	hf, err := s.accountService.ProjectedHealthFactor(ctx, userID, assetID, amount)
	if err != nil {
		return err
	}

	if hf.LessThan(core.MinHealthFactor) {
		log.Infoln("borrow rejected, user:", userID, "health factor:", hf)
		return core.ErrInsufficientCollateral
	}

	if err := s.positionStore.Borrow(ctx, userID, assetID, amount); err != nil {
		log.WithError(err).Errorln("borrow commit error")
		return err
	}

	log.Infoln("borrow, user:", userID, "asset:", assetID, "amount:", amount)
	return nil
}
