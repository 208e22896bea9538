package position

import (
	"context"
	"path/filepath"
	"testing"

	"lever/core"
	"lever/store/market"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStores(t *testing.T) (*db.DB, core.IMarketStore, core.IPositionStore) {
	t.Helper()

	database := db.MustOpen(db.Config{
		Dialect: "sqlite3",
		Host:    filepath.Join(t.TempDir(), "lever.db"),
	})
	t.Cleanup(func() { _ = database.Close() })
	require.Nil(t, db.Migrate(database))

	return database, market.New(database), New(database)
}

func setTotal(t *testing.T, database *db.DB, assetID, column string, value decimal.Decimal) {
	t.Helper()

	update := database.Update().Model(core.Market{}).
		Where("asset_id=?", assetID).
		Updates(map[string]interface{}{column: value})
	require.Nil(t, update.Error)
	require.EqualValues(t, 1, update.RowsAffected)
}

func TestDepositUpsertsBalanceAndAggregate(t *testing.T) {
	_, markets, positions := testStores(t)
	ctx := context.Background()

	require.Nil(t, markets.Create(ctx, &core.Market{AssetID: "asset-x", LoanToValue: 800, LiquidationThreshold: 850}))

	err := positions.Deposit(ctx, "user-1", "unknown", decimal.NewFromInt(1))
	assert.Equal(t, core.ErrMarketNotFound, err)

	require.Nil(t, positions.Deposit(ctx, "user-1", "asset-x", decimal.NewFromInt(10)))
	require.Nil(t, positions.Deposit(ctx, "user-1", "asset-x", decimal.NewFromInt(2)))
	require.Nil(t, positions.Deposit(ctx, "user-2", "asset-x", decimal.NewFromInt(5)))

	m, err := markets.Find(ctx, "asset-x")
	require.Nil(t, err)
	assert.True(t, decimal.NewFromInt(17).Equal(m.TotalDeposits))

	deposits, err := positions.FindDeposits(ctx, "user-1")
	require.Nil(t, err)
	require.Len(t, deposits, 1)
	assert.True(t, decimal.NewFromInt(12).Equal(deposits[0].Amount))
}

func TestDepositValueCapEnforcedInTransaction(t *testing.T) {
	database, markets, positions := testStores(t)
	ctx := context.Background()

	require.Nil(t, markets.Create(ctx, &core.Market{AssetID: "asset-x", LoanToValue: 800, LiquidationThreshold: 850}))
	setTotal(t, database, "asset-x", "total_deposits", core.MaxValue.Sub(decimal.NewFromInt(1)))

	// exactly filling the cap is still allowed
	require.Nil(t, positions.Deposit(ctx, "user-1", "asset-x", decimal.NewFromInt(1)))

	// one more unit must be rejected by the update predicate itself,
	// whatever any caller checked beforehand
	err := positions.Deposit(ctx, "user-2", "asset-x", decimal.NewFromInt(1))
	assert.Equal(t, core.ErrOverflow, err)

	m, err := markets.Find(ctx, "asset-x")
	require.Nil(t, err)
	assert.True(t, core.MaxValue.Equal(m.TotalDeposits))

	// no user row was committed for the rejected deposit
	deposits, err := positions.FindDeposits(ctx, "user-2")
	require.Nil(t, err)
	assert.Len(t, deposits, 0)
}

func TestBorrowValueCapEnforcedInTransaction(t *testing.T) {
	database, markets, positions := testStores(t)
	ctx := context.Background()

	require.Nil(t, markets.Create(ctx, &core.Market{AssetID: "asset-y", LoanToValue: 0, LiquidationThreshold: 0}))
	setTotal(t, database, "asset-y", "total_debt", core.MaxValue)

	err := positions.Borrow(ctx, "user-1", "asset-y", decimal.NewFromInt(1))
	assert.Equal(t, core.ErrOverflow, err)

	borrows, err := positions.FindBorrows(ctx, "user-1")
	require.Nil(t, err)
	assert.Len(t, borrows, 0)
}
