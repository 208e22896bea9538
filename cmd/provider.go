package cmd

import (
	"context"
	"time"

	"lever/core"
	accountservice "lever/service/account"
	ledgerservice "lever/service/ledger"
	marketservice "lever/service/market"
	oracleservice "lever/service/oracle"
	accountstore "lever/store/account"
	"lever/store/market"
	"lever/store/oracle"
	"lever/store/position"

	"lever/pkg/sysconfig"

	"github.com/fox-one/pkg/property"
	"github.com/fox-one/pkg/store/db"
	propertystore "github.com/fox-one/pkg/store/property"
	"github.com/go-redis/redis"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

func provideRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
}

func provideConfig() *core.Config {
	return &cfg
}

// ---------------store-----------------------------------------

func providePropertyStore(db *db.DB) property.Store {
	return propertystore.New(db)
}

func provideMarketStore(db *db.DB) core.IMarketStore {
	return market.New(db)
}

func providePositionStore(db *db.DB) core.IPositionStore {
	return position.New(db)
}

func provideOracleStore(db *db.DB) core.IOracleStore {
	return oracle.Cache(oracle.New(db), time.Minute)
}

func provideAccountStore() core.IAccountStore {
	return accountstore.New(provideRedis())
}

// ------------------service------------------------------------

func providePriceService(db *db.DB) core.IPriceOracleService {
	// the active provider is fixed at bootstrap; set-oracle-provider
	// takes effect on the next start
	provider, err := sysconfig.ReadOracleProvider(context.Background(), providePropertyStore(db))
	if err != nil {
		provider = ""
	}

	return oracleservice.New(provideConfig(), provideOracleStore(db), provider)
}

func provideAccountService(db *db.DB) core.IAccountService {
	return accountservice.New(
		provideMarketStore(db),
		providePositionStore(db),
		provideAccountStore(),
		providePriceService(db))
}

func provideLedgerService(db *db.DB) core.ILedgerService {
	return ledgerservice.New(
		provideMarketStore(db),
		providePositionStore(db),
		provideAccountService(db))
}

func provideMarketService(db *db.DB) core.IMarketService {
	return marketservice.New(provideConfig(), provideMarketStore(db))
}
