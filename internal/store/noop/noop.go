package noop

import (
	"context"

	"notice-cache/internal/interfaces"
)

// Ensure Store implements interfaces.Store
var _ interfaces.Store = (*Store)(nil)

// Store is a no-operation store for disabled tiers: every read misses and
// every write is dropped.
type Store struct{}

// New creates a new no-operation store instance
func New() *Store {
	return &Store{}
}

// Get always reports absent
func (s *Store) Get(_ context.Context, _ string) (string, bool, error) {
	return "", false, nil
}

// Set does nothing
func (s *Store) Set(_ context.Context, _, _ string) error {
	return nil
}

// Remove does nothing
func (s *Store) Remove(_ context.Context, _ string) error {
	return nil
}

// RemoveMany does nothing
func (s *Store) RemoveMany(_ context.Context, _ []string) error {
	return nil
}

// ListKeys always returns an empty keyspace
func (s *Store) ListKeys(_ context.Context) ([]string, error) {
	return nil, nil
}
