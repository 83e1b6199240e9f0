// Package cache stores computed layouts and rendered artifacts.
//
// Three backends implement [Cache]:
//
//   - [FileCache] keeps JSON entries under a directory, for the CLI
//   - [RedisCache] shares entries between server replicas
//   - [NullCache] stores nothing, for tests and --no-cache
//
// Keys come from a [Keyer]. Layout keys hash the input text together with
// every option that influences placement; artifact keys hash the layout
// document together with every option that influences rendering. Changing
// a color therefore reuses the cached layout and only re-renders.
package cache

import (
	"context"
	"time"
)

const (
	// LayoutTTL is how long computed layouts are kept.
	LayoutTTL = 7 * 24 * time.Hour

	// ArtifactTTL is how long rendered outputs are kept.
	ArtifactTTL = 24 * time.Hour
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key and whether it was found. Expired
	// entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
