package layered

import (
	"context"

	"go.uber.org/zap"

	"notice-cache/internal/interfaces"
)

// Ensure LayeredStore implements interfaces.Store
var _ interfaces.Store = (*LayeredStore)(nil)

// LayeredStore composes store tiers in lookup order: fast accelerator tiers
// first, the authoritative tier last. Reads fall through; writes and removes
// propagate to every tier. Only the authoritative tier's failures surface,
// accelerator failures are logged and tolerated.
type LayeredStore struct {
	layers            []interfaces.Store
	logger            *zap.Logger
	enablePropagation bool
}

// New creates a LayeredStore. With enablePropagation set, a read hit in a
// deeper tier is copied into the tiers in front of it.
func New(layers []interfaces.Store, logger *zap.Logger, enablePropagation bool) *LayeredStore {
	return &LayeredStore{
		layers:            layers,
		logger:            logger,
		enablePropagation: enablePropagation,
	}
}

// Get returns the value from the first tier that has the key.
func (s *LayeredStore) Get(ctx context.Context, key string) (string, bool, error) {
	var firstErr error

	for i, layer := range s.layers {
		value, found, err := layer.Get(ctx, key)
		if err != nil {
			s.logger.Warn("store tier get failed", zap.Int("tier", i), zap.String("key", key), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if found {
			if s.enablePropagation && i > 0 {
				s.propagate(ctx, key, value, i)
			}
			return value, true, nil
		}
	}

	return "", false, firstErr
}

// Set writes the value to every tier. The authoritative tier's error is
// returned; accelerator errors are logged.
func (s *LayeredStore) Set(ctx context.Context, key, value string) error {
	var authErr error

	for i, layer := range s.layers {
		err := layer.Set(ctx, key, value)
		if err == nil {
			continue
		}
		if i == len(s.layers)-1 {
			authErr = err
		} else {
			s.logger.Warn("store tier set failed", zap.Int("tier", i), zap.String("key", key), zap.Error(err))
		}
	}

	return authErr
}

// Remove deletes the key from every tier.
func (s *LayeredStore) Remove(ctx context.Context, key string) error {
	var firstErr error

	for i, layer := range s.layers {
		if err := layer.Remove(ctx, key); err != nil {
			s.logger.Warn("store tier remove failed", zap.Int("tier", i), zap.String("key", key), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// RemoveMany deletes the keys from every tier.
func (s *LayeredStore) RemoveMany(ctx context.Context, keys []string) error {
	var firstErr error

	for i, layer := range s.layers {
		if err := layer.RemoveMany(ctx, keys); err != nil {
			s.logger.Warn("store tier bulk remove failed", zap.Int("tier", i), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// ListKeys reads from the authoritative tier, which holds the full keyspace.
func (s *LayeredStore) ListKeys(ctx context.Context) ([]string, error) {
	if len(s.layers) == 0 {
		return nil, nil
	}
	return s.layers[len(s.layers)-1].ListKeys(ctx)
}

// propagate copies a deep-tier hit into the tiers in front of it.
func (s *LayeredStore) propagate(ctx context.Context, key, value string, hitTier int) {
	for i := 0; i < hitTier; i++ {
		if err := s.layers[i].Set(ctx, key, value); err != nil {
			s.logger.Warn("store tier propagation failed", zap.Int("tier", i), zap.String("key", key), zap.Error(err))
		}
	}
}
