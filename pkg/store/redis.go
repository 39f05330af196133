// Package store provides the key-value backends for the corpus cache and the
// build-frequency logs: Redis in deployment, an in-memory variant for tests
// and Redis-less development.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"book-duets-be/pkg/corpus"
)

// RedisStore backs the corpus cache with plain string keys under TTL and the
// build-frequency logs with sorted sets (ZINCRBY/ZSCORE). Single-key atomicity
// comes from Redis itself; no additional locking is layered on top.
type RedisStore struct {
	rdb *redis.Client
}

var (
	_ corpus.Cache    = (*RedisStore)(nil)
	_ corpus.BuildLog = (*RedisStore)(nil)
)

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, text string, ttl time.Duration) error {
	return s.rdb.Set(ctx, key, text, ttl).Err()
}

func (s *RedisStore) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete invalidates a cache entry explicitly, ahead of its TTL.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}

func (s *RedisStore) Incr(ctx context.Context, log, member string) error {
	return s.rdb.ZIncrBy(ctx, log, 1, member).Err()
}

func (s *RedisStore) Score(ctx context.Context, log, member string) (float64, bool, error) {
	score, err := s.rdb.ZScore(ctx, log, member).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return score, true, nil
}
