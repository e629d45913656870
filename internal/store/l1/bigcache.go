package l1

import (
	"context"
	"errors"
	"time"

	"github.com/allegro/bigcache/v3"
	"go.uber.org/zap"

	"notice-cache/internal/interfaces"
)

// Ensure BigCacheStore implements interfaces.Store
var _ interfaces.Store = (*BigCacheStore)(nil)

// BigCacheStore is an in-process accelerator tier backed by BigCache. Unlike
// the authoritative stores it may evict under memory pressure or after its
// life window; the layered store falls through to the next tier when that
// happens.
type BigCacheStore struct {
	cache  *bigcache.BigCache
	logger *zap.Logger
}

// New creates a BigCacheStore. sizeMB bounds the hard cache size;
// lifeWindow bounds how long an entry survives in this tier (zero selects
// one hour).
func New(sizeMB int, lifeWindow time.Duration, logger *zap.Logger) (*BigCacheStore, error) {
	if lifeWindow <= 0 {
		lifeWindow = time.Hour
	}

	cfg := bigcache.DefaultConfig(lifeWindow)
	cfg.HardMaxCacheSize = sizeMB
	cfg.Verbose = false
	cfg.MaxEntrySize = 1024 * 1024 // 1MB max entry size

	cache, err := bigcache.New(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	return &BigCacheStore{cache: cache, logger: logger}, nil
}

// Get returns the stored value and a found flag.
func (s *BigCacheStore) Get(_ context.Context, key string) (string, bool, error) {
	data, err := s.cache.Get(key)
	if err != nil {
		if errors.Is(err, bigcache.ErrEntryNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(data), true, nil
}

// Set overwrites the value for key.
func (s *BigCacheStore) Set(_ context.Context, key, value string) error {
	return s.cache.Set(key, []byte(value))
}

// Remove deletes one key.
func (s *BigCacheStore) Remove(_ context.Context, key string) error {
	err := s.cache.Delete(key)
	if err != nil && !errors.Is(err, bigcache.ErrEntryNotFound) {
		return err
	}
	return nil
}

// RemoveMany deletes a batch of keys.
func (s *BigCacheStore) RemoveMany(ctx context.Context, keys []string) error {
	for _, key := range keys {
		if err := s.Remove(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// ListKeys returns every key currently held in this tier.
func (s *BigCacheStore) ListKeys(_ context.Context) ([]string, error) {
	var keys []string
	iterator := s.cache.Iterator()
	for iterator.SetNext() {
		info, err := iterator.Value()
		if err != nil {
			s.logger.Warn("skipping unreadable cache iterator entry", zap.Error(err))
			continue
		}
		keys = append(keys, info.Key())
	}
	return keys, nil
}

// Close releases the underlying cache.
func (s *BigCacheStore) Close() error {
	return s.cache.Close()
}
