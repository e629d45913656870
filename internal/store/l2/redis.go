package l2

import (
	"context"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"notice-cache/internal/config"
	"notice-cache/internal/interfaces"
)

// Ensure RedisStore implements interfaces.Store
var _ interfaces.Store = (*RedisStore)(nil)

// RedisStore is the persistent key-value tier. Values are stored without
// server-side expiry: staleness is computed lazily by the cache layer and
// entries live until explicitly removed, which also makes them available as
// stale fallbacks after upstream outages. The store expects a dedicated
// Redis database.
type RedisStore struct {
	client interfaces.RedisClient
	config *config.RedisConfig
	logger *zap.Logger
}

// New creates a RedisStore with the provided client.
func New(cfg *config.RedisConfig, client interfaces.RedisClient, logger *zap.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		config: cfg,
		logger: logger,
	}
}

// Get returns the stored value and a found flag.
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	opCtx, cancel := context.WithTimeout(ctx, s.config.ReadTimeout.Std())
	defer cancel()

	value, err := s.client.Get(opCtx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

// Set overwrites the value for key, with no expiry.
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	opCtx, cancel := context.WithTimeout(ctx, s.config.SendTimeout.Std())
	defer cancel()

	return s.client.Set(opCtx, key, value, 0).Err()
}

// Remove deletes one key.
func (s *RedisStore) Remove(ctx context.Context, key string) error {
	opCtx, cancel := context.WithTimeout(ctx, s.config.SendTimeout.Std())
	defer cancel()

	return s.client.Del(opCtx, key).Err()
}

// RemoveMany deletes a batch of keys.
func (s *RedisStore) RemoveMany(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	opCtx, cancel := context.WithTimeout(ctx, s.config.SendTimeout.Std())
	defer cancel()

	return s.client.Del(opCtx, keys...).Err()
}

// ListKeys iterates the whole keyspace with SCAN.
func (s *RedisStore) ListKeys(ctx context.Context) ([]string, error) {
	opCtx, cancel := context.WithTimeout(ctx, s.config.ReadTimeout.Std())
	defer cancel()

	var (
		keys   []string
		cursor uint64
	)
	for {
		batch, next, err := s.client.Scan(opCtx, cursor, "*", 100).Result()
		if err != nil {
			return nil, err
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			return keys, nil
		}
	}
}

// Close closes the client connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
