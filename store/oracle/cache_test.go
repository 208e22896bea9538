package oracle

import (
	"context"
	"testing"
	"time"

	"lever/core"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	sources map[string]*core.PriceSource
	finds   int
}

func (s *countingStore) Save(ctx context.Context, source *core.PriceSource) error {
	s.sources[source.Provider+"/"+source.AssetID] = source
	return nil
}

func (s *countingStore) Find(ctx context.Context, provider, assetID string) (*core.PriceSource, error) {
	s.finds++
	source, ok := s.sources[provider+"/"+assetID]
	if !ok {
		return nil, core.ErrPriceNotFound
	}
	return source, nil
}

func TestCacheReadThrough(t *testing.T) {
	inner := &countingStore{sources: make(map[string]*core.PriceSource)}
	store := Cache(inner, time.Minute)
	ctx := context.Background()

	source := &core.PriceSource{
		Provider: core.RootPriceProvider,
		AssetID:  "asset-z",
		Type:     core.PriceSourceTypeFixed,
		Price:    decimal.NewFromInt(50),
	}
	require.Nil(t, store.Save(ctx, source))

	for i := 0; i < 3; i++ {
		found, err := store.Find(ctx, core.RootPriceProvider, "asset-z")
		require.Nil(t, err)
		assert.True(t, decimal.NewFromInt(50).Equal(found.Price))
	}
	assert.Equal(t, 1, inner.finds)
}

func TestCacheInvalidatedOnSave(t *testing.T) {
	inner := &countingStore{sources: make(map[string]*core.PriceSource)}
	store := Cache(inner, time.Minute)
	ctx := context.Background()

	_ = store.Save(ctx, &core.PriceSource{
		Provider: core.RootPriceProvider,
		AssetID:  "asset-z",
		Type:     core.PriceSourceTypeFixed,
		Price:    decimal.NewFromInt(50),
	})

	_, err := store.Find(ctx, core.RootPriceProvider, "asset-z")
	require.Nil(t, err)

	// overwrite must not serve the stale source
	_ = store.Save(ctx, &core.PriceSource{
		Provider: core.RootPriceProvider,
		AssetID:  "asset-z",
		Type:     core.PriceSourceTypeFixed,
		Price:    decimal.NewFromInt(60),
	})

	found, err := store.Find(ctx, core.RootPriceProvider, "asset-z")
	require.Nil(t, err)
	assert.True(t, decimal.NewFromInt(60).Equal(found.Price))

	// misses are not cached
	_, err = store.Find(ctx, core.RootPriceProvider, "unknown")
	assert.Equal(t, core.ErrPriceNotFound, err)
}
