package account

import (
	"context"
	"fmt"
	"time"

	"lever/core"

	"github.com/go-redis/redis"
	"github.com/shopspring/decimal"
)

type accountStore struct {
	Redis *redis.Client
}

// New new account store
func New(redis *redis.Client) core.IAccountStore {
	return &accountStore{
		Redis: redis,
	}
}

func (s *accountStore) SaveHealthFactor(ctx context.Context, userID string, hf decimal.Decimal) error {
	k := s.healthFactorCacheKey(userID)
	s.Redis.Set(k, []byte(hf.String()), time.Minute)
	return nil
}

func (s *accountStore) FindHealthFactor(ctx context.Context, userID string) (decimal.Decimal, error) {
	k := s.healthFactorCacheKey(userID)
	bs, e := s.Redis.Get(k).Bytes()
	if e != nil {
		return decimal.Zero, e
	}
	hf, e := decimal.NewFromString(string(bs))
	if e != nil {
		return decimal.Zero, e
	}

	return hf, nil
}

func (s *accountStore) healthFactorCacheKey(userID string) string {
	return fmt.Sprintf("lever:healthfactor:%s", userID)
}
