package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"notice-cache/internal/interfaces"
	"notice-cache/internal/metrics"
	"notice-cache/internal/models"
)

// DefaultTTL is the freshness window used when the configuration does not
// override it.
const DefaultTTL = time.Hour

// Entry is the stored form of a cached value. Entries are created or
// overwritten whole on a successful fetch and never partially updated.
type Entry[T any] struct {
	Value     T         `json:"value"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Result is what a read-through lookup hands back to the consumer.
type Result[T any] struct {
	Value     T
	Outcome   models.Outcome
	FetchedAt time.Time
}

// Config carries the per-instance cache settings so independent caches can
// coexist on one store without key collisions.
type Config struct {
	Namespace string
	TTL       time.Duration
}

// Cache is a read-through cache over an injected key-value store. Staleness
// is evaluated lazily against the injected clock; nothing is ever evicted,
// entries live until explicitly cleared. Concurrent lookups for the same key
// are not coalesced (last write wins).
type Cache[T any] struct {
	store     interfaces.Store
	clock     clock.Clock
	logger    *zap.Logger
	namespace string
	ttl       time.Duration
}

// New creates a cache bound to a namespace, using wall-clock time.
func New[T any](store interfaces.Store, cfg Config, logger *zap.Logger) *Cache[T] {
	return NewWithClock[T](store, cfg, clock.New(), logger)
}

// NewWithClock creates a cache with an explicit clock. Tests use a mock
// clock to step past the TTL.
func NewWithClock[T any](store interfaces.Store, cfg Config, clk clock.Clock, logger *zap.Logger) *Cache[T] {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache[T]{
		store:     store,
		clock:     clk,
		logger:    logger,
		namespace: cfg.Namespace,
		ttl:       ttl,
	}
}

// Namespace returns the key prefix this cache owns.
func (c *Cache[T]) Namespace() string {
	return c.namespace
}

// Get returns the stored entry for id without evaluating freshness. Absence
// and storage failures both report not-found; a lookup never fails.
func (c *Cache[T]) Get(ctx context.Context, id string) (Entry[T], bool) {
	var entry Entry[T]

	key := Key(c.namespace, id)
	raw, found, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		metrics.RecordStoreError(c.namespace, "get")
		return entry, false
	}
	if !found {
		return entry, false
	}

	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		c.logger.Warn("removing corrupted cache entry", zap.String("key", key), zap.Error(err))
		metrics.RecordStoreError(c.namespace, "decode")
		if rmErr := c.store.Remove(ctx, key); rmErr != nil {
			c.logger.Warn("failed to remove corrupted cache entry", zap.String("key", key), zap.Error(rmErr))
		}
		return Entry[T]{}, false
	}

	return entry, true
}

// IsStale reports whether id needs a refresh: true when no entry exists or
// the entry's age exceeds the configured TTL.
func (c *Cache[T]) IsStale(ctx context.Context, id string) bool {
	entry, found := c.Get(ctx, id)
	if !found {
		return true
	}
	return c.stale(entry)
}

// Put overwrites the entry for id with value stamped at the current time.
func (c *Cache[T]) Put(ctx context.Context, id string, value T) error {
	return c.put(ctx, Key(c.namespace, id), value, c.clock.Now())
}

// Clear removes the entry for id.
func (c *Cache[T]) Clear(ctx context.Context, id string) error {
	key := Key(c.namespace, id)
	if err := c.store.Remove(ctx, key); err != nil {
		return &models.StorageError{Op: "remove", Key: key, Err: err}
	}
	return nil
}

// ClearAll removes every entry in this cache's namespace.
func (c *Cache[T]) ClearAll(ctx context.Context) error {
	return ClearNamespace(ctx, c.store, c.namespace)
}

// Fetch is the composed read-through lookup:
//
//  1. Unless forceRefresh is set, a present fresh entry is returned as-is
//     with no upstream call.
//  2. Otherwise fetch is invoked. On success the value is stored (a failed
//     store write is logged and swallowed) and returned as fresh.
//  3. On failure any previously stored entry is returned as a stale
//     fallback; with no fallback the fetch error is returned.
//
// Fetch never retries; resilience is limited to serving the last good value.
func (c *Cache[T]) Fetch(ctx context.Context, id string, fetch func(context.Context) (T, error), forceRefresh bool) (Result[T], error) {
	metrics.RecordLookup(c.namespace)
	done := metrics.TimeLookup(c.namespace)
	defer done()

	if !forceRefresh {
		if entry, found := c.Get(ctx, id); found && !c.stale(entry) {
			metrics.RecordHit(c.namespace)
			return Result[T]{Value: entry.Value, Outcome: models.OutcomeCached, FetchedAt: entry.FetchedAt}, nil
		}
	}
	metrics.RecordMiss(c.namespace)

	value, err := fetch(ctx)
	if err != nil {
		metrics.RecordRemoteError(c.namespace)
		if entry, found := c.Get(ctx, id); found {
			metrics.RecordFallback(c.namespace)
			c.logger.Warn("upstream fetch failed, serving cached fallback",
				zap.String("key", Key(c.namespace, id)),
				zap.Time("fetched_at", entry.FetchedAt),
				zap.Error(err))
			return Result[T]{Value: entry.Value, Outcome: models.OutcomeFallback, FetchedAt: entry.FetchedAt}, nil
		}
		return Result[T]{}, err
	}

	now := c.clock.Now()
	key := Key(c.namespace, id)
	if err := c.put(ctx, key, value, now); err != nil {
		// A failed cache write must never fail the lookup; the fetched
		// value is still good.
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
		metrics.RecordStoreError(c.namespace, "set")
	}

	return Result[T]{Value: value, Outcome: models.OutcomeFresh, FetchedAt: now}, nil
}

func (c *Cache[T]) put(ctx context.Context, key string, value T, now time.Time) error {
	raw, err := json.Marshal(Entry[T]{Value: value, FetchedAt: now})
	if err != nil {
		return &models.StorageError{Op: "encode", Key: key, Err: err}
	}
	if err := c.store.Set(ctx, key, string(raw)); err != nil {
		return &models.StorageError{Op: "set", Key: key, Err: err}
	}
	return nil
}

func (c *Cache[T]) stale(entry Entry[T]) bool {
	return c.clock.Now().Sub(entry.FetchedAt) > c.ttl
}

// ClearNamespace removes every stored key under prefix. Used by
// logout/reset flows that span multiple caches.
func ClearNamespace(ctx context.Context, store interfaces.Store, prefix string) error {
	keys, err := store.ListKeys(ctx)
	if err != nil {
		return &models.StorageError{Op: "list", Key: prefix, Err: err}
	}

	matched := make([]string, 0, len(keys))
	for _, key := range keys {
		if strings.HasPrefix(key, prefix) {
			matched = append(matched, key)
		}
	}
	if len(matched) == 0 {
		return nil
	}

	if err := store.RemoveMany(ctx, matched); err != nil {
		return &models.StorageError{Op: "remove", Key: prefix, Err: err}
	}
	return nil
}
