package oracle

import (
	"context"
	"fmt"
	"testing"

	"lever/core"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockOracleStore struct {
	sources map[string]*core.PriceSource
}

func newMockOracleStore() *mockOracleStore {
	return &mockOracleStore{sources: make(map[string]*core.PriceSource)}
}

func (s *mockOracleStore) Save(ctx context.Context, source *core.PriceSource) error {
	s.sources[source.Provider+"/"+source.AssetID] = source
	return nil
}

func (s *mockOracleStore) Find(ctx context.Context, provider, assetID string) (*core.PriceSource, error) {
	source, ok := s.sources[provider+"/"+assetID]
	if !ok {
		return nil, core.ErrPriceNotFound
	}
	return source, nil
}

func testConfig() *core.Config {
	return &core.Config{Admins: []string{"admin"}}
}

func TestGetPriceFixed(t *testing.T) {
	store := newMockOracleStore()
	srv := New(testConfig(), store, "")

	require.Nil(t, store.Save(context.Background(), &core.PriceSource{
		Provider: core.RootPriceProvider,
		AssetID:  "asset-z",
		Type:     core.PriceSourceTypeFixed,
		Price:    decimal.NewFromInt(50),
	}))

	price, err := srv.GetPrice(context.Background(), "asset-z")
	require.Nil(t, err)
	assert.True(t, decimal.NewFromInt(50).Equal(price))
}

func TestGetPriceDelegated(t *testing.T) {
	store := newMockOracleStore()
	srv := New(testConfig(), store, "")

	ctx := context.Background()
	_ = store.Save(ctx, &core.PriceSource{
		Provider:  core.RootPriceProvider,
		AssetID:   "asset-w",
		Type:      core.PriceSourceTypeProvider,
		Reference: "provider-p",
	})
	_ = store.Save(ctx, &core.PriceSource{
		Provider: "provider-p",
		AssetID:  "asset-w",
		Type:     core.PriceSourceTypeFixed,
		Price:    decimal.NewFromInt(42),
	})

	price, err := srv.GetPrice(ctx, "asset-w")
	require.Nil(t, err)
	assert.True(t, decimal.NewFromInt(42).Equal(price))
}

func TestGetPriceDanglingReference(t *testing.T) {
	store := newMockOracleStore()
	srv := New(testConfig(), store, "")

	ctx := context.Background()
	_ = store.Save(ctx, &core.PriceSource{
		Provider:  core.RootPriceProvider,
		AssetID:   "asset-w",
		Type:      core.PriceSourceTypeProvider,
		Reference: "provider-p",
	})

	_, err := srv.GetPrice(ctx, "asset-w")
	assert.Equal(t, core.ErrPriceNotFound, err)
}

func TestGetPriceMissing(t *testing.T) {
	srv := New(testConfig(), newMockOracleStore(), "")

	_, err := srv.GetPrice(context.Background(), "unknown")
	assert.Equal(t, core.ErrPriceNotFound, err)
}

func TestGetPriceCycle(t *testing.T) {
	store := newMockOracleStore()
	srv := New(testConfig(), store, "")

	ctx := context.Background()
	_ = store.Save(ctx, &core.PriceSource{
		Provider:  core.RootPriceProvider,
		AssetID:   "asset-x",
		Type:      core.PriceSourceTypeProvider,
		Reference: "provider-p",
	})
	_ = store.Save(ctx, &core.PriceSource{
		Provider:  "provider-p",
		AssetID:   "asset-x",
		Type:      core.PriceSourceTypeProvider,
		Reference: core.RootPriceProvider,
	})

	_, err := srv.GetPrice(ctx, "asset-x")
	assert.Equal(t, core.ErrPriceNotFound, err)
}

func TestGetPriceChainTooDeep(t *testing.T) {
	store := newMockOracleStore()
	srv := New(testConfig(), store, "")

	ctx := context.Background()
	_ = store.Save(ctx, &core.PriceSource{
		Provider:  core.RootPriceProvider,
		AssetID:   "asset-x",
		Type:      core.PriceSourceTypeProvider,
		Reference: "p0",
	})
	for i := 0; i < 10; i++ {
		_ = store.Save(ctx, &core.PriceSource{
			Provider:  fmt.Sprintf("p%d", i),
			AssetID:   "asset-x",
			Type:      core.PriceSourceTypeProvider,
			Reference: fmt.Sprintf("p%d", i+1),
		})
	}

	_, err := srv.GetPrice(ctx, "asset-x")
	assert.Equal(t, core.ErrPriceNotFound, err)
}

func TestSetPriceSource(t *testing.T) {
	store := newMockOracleStore()
	srv := New(testConfig(), store, "")
	ctx := context.Background()

	source := &core.PriceSource{
		Provider: core.RootPriceProvider,
		AssetID:  "asset-z",
		Type:     core.PriceSourceTypeFixed,
		Price:    decimal.NewFromInt(50),
	}

	err := srv.SetPriceSource(ctx, "nobody", source)
	assert.Equal(t, core.ErrOperationForbidden, err)

	err = srv.SetPriceSource(ctx, "admin", &core.PriceSource{
		Provider: core.RootPriceProvider,
		AssetID:  "asset-z",
		Type:     "bogus",
	})
	assert.Equal(t, core.ErrInvalidPriceSource, err)

	require.Nil(t, srv.SetPriceSource(ctx, "admin", source))

	// overwrite is allowed
	source2 := &core.PriceSource{
		Provider: core.RootPriceProvider,
		AssetID:  "asset-z",
		Type:     core.PriceSourceTypeFixed,
		Price:    decimal.NewFromInt(60),
	}
	require.Nil(t, srv.SetPriceSource(ctx, "admin", source2))

	price, err := srv.GetPrice(ctx, "asset-z")
	require.Nil(t, err)
	assert.True(t, decimal.NewFromInt(60).Equal(price))
}
