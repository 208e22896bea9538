package oracle

import (
	"context"
	"fmt"
	"time"

	"lever/core"

	"github.com/bluele/gcache"
	"golang.org/x/sync/singleflight"
)

// Cache wraps an oracle store with a read-through source cache
func Cache(store core.IOracleStore, exp time.Duration) core.IOracleStore {
	return &cacheOracleStore{
		IOracleStore: store,
		cache:        gcache.New(2048).LRU().Expiration(exp).Build(),
		sf:           &singleflight.Group{},
	}
}

type cacheOracleStore struct {
	core.IOracleStore
	cache gcache.Cache
	sf    *singleflight.Group
}

func (s *cacheOracleStore) Save(ctx context.Context, source *core.PriceSource) error {
	if err := s.IOracleStore.Save(ctx, source); err != nil {
		return err
	}
	s.cache.Remove(s.sourceKey(source.Provider, source.AssetID))
	return nil
}

func (s *cacheOracleStore) Find(ctx context.Context, provider, assetID string) (*core.PriceSource, error) {
	key := s.sourceKey(provider, assetID)

	if v, err := s.cache.Get(key); err == nil {
		if source, ok := v.(*core.PriceSource); ok {
			return source, nil
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		source, err := s.IOracleStore.Find(ctx, provider, assetID)
		if err != nil {
			return nil, err
		}

		_ = s.cache.Set(key, source)
		return source, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*core.PriceSource), nil
}

func (s *cacheOracleStore) sourceKey(provider, assetID string) string {
	return fmt.Sprintf("price_sources:%s:%s", provider, assetID)
}
