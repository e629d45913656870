package interfaces

import "context"

//go:generate mockgen -package=mock -source=store.go -destination=mock/store.go

// Store is the persistent key-value collaborator behind the read-through
// cache. Values are opaque string encodings (JSON); staleness is never
// evaluated here, entries live until explicitly removed.
type Store interface {
	// Get returns the stored value and a found flag. Absence is not an
	// error.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set overwrites the value for key.
	Set(ctx context.Context, key, value string) error

	// Remove deletes one key. Removing an absent key is a no-op.
	Remove(ctx context.Context, key string) error

	// RemoveMany deletes a batch of keys.
	RemoveMany(ctx context.Context, keys []string) error

	// ListKeys returns every key currently stored.
	ListKeys(ctx context.Context) ([]string, error)
}
