// Package storage implements the external store collaborator on Redis.
//
// Two access modes with different guarantees: Get treats Redis as the system
// of record and retries before giving up with an error, while CacheGet and
// CacheSet are best effort and never surface failures to callers.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	getAttempts  = 5
	setAttempts  = 5
	retryBackoff = 100 * time.Millisecond
)

// Store wraps a Redis client with the retry semantics the handlers rely on.
type Store struct {
	rdb    *redis.Client
	logger *slog.Logger
}

// New creates a store on top of an established Redis client.
func New(rdb *redis.Client, logger *slog.Logger) *Store {
	return &Store{rdb: rdb, logger: logger}
}

// Get reads a key from the system of record. A missing key is (nil, nil);
// connection failures are retried and reported as an error once attempts
// are exhausted.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < getAttempts; attempt++ {
		if attempt > 0 {
			retriesTotal.Inc()
			time.Sleep(retryBackoff)
		}
		value, err := s.rdb.Get(ctx, key).Bytes()
		if err == nil {
			return value, nil
		}
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("storage unavailable: %w", lastErr)
}

// CacheGet reads a cached value, best effort. Any failure, including an
// unreachable backend, is a cache miss.
func (s *Store) CacheGet(ctx context.Context, key string) []byte {
	value, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.DebugContext(ctx, "cache get failed", "key", key, "error", err.Error())
		}
		return nil
	}
	return value
}

// CacheSet writes a cached value with a TTL, best effort. Failures are
// retried a bounded number of times and then swallowed.
func (s *Store) CacheSet(ctx context.Context, key string, value []byte, ttl time.Duration) {
	var lastErr error
	for attempt := 0; attempt < setAttempts; attempt++ {
		if attempt > 0 {
			retriesTotal.Inc()
			time.Sleep(retryBackoff)
		}
		err := s.rdb.Set(ctx, key, value, ttl).Err()
		if err == nil {
			return
		}
		lastErr = err
	}
	s.logger.DebugContext(ctx, "cache set failed", "key", key, "error", lastErr.Error())
}
