package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// FlagStore keeps session flags in Redis. Flags expire after ttl so that
// abandoned sessions do not pile up; a zero ttl keeps them forever.
type FlagStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewFlagStore(rdb *redis.Client, ttl time.Duration) *FlagStore {
	return &FlagStore{rdb: rdb, ttl: ttl}
}

func (s *FlagStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, KeyFlag(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return v, true, nil
}

func (s *FlagStore) Set(ctx context.Context, key, value string) error {
	return s.rdb.Set(ctx, KeyFlag(key), value, s.ttl).Err()
}

func (s *FlagStore) Remove(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, KeyFlag(key)).Err()
}
