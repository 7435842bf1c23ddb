package embcache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"
)

// RedisStore is a rueidis-backed key-value store for cached embeddings.
type RedisStore struct {
	client rueidis.Client
}

// NewRedisStore connects to Redis and returns the cache store.
func NewRedisStore(addrs []string, password string) (*RedisStore, error) {
	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress: addrs,
		Password:    password,
	})
	if err != nil {
		return nil, fmt.Errorf("create redis client: %w", err)
	}
	return &RedisStore{client: client}, nil
}

// Get retrieves a value by key. Returns ErrKeyNotFound on a missing key.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	cmd := s.client.B().Get().Key(key).Build()
	data, err := s.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return data, nil
}

// SetWithTTL stores a value with an expiration.
func (s *RedisStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	cmd := s.client.B().Set().Key(key).Value(rueidis.BinaryString(value)).Ex(ttl).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Ping verifies connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	cmd := s.client.B().Ping().Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (s *RedisStore) Close() {
	s.client.Close()
}
