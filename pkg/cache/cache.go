// Package cache stores generated layouts and rendered artifacts.
//
// Generation is deterministic and a layout's ID is derived from its
// parameters, so entries are content addressed: the parameters of a layout
// are stored under its ID, and an artifact under the layout ID plus the
// render options. Entries never go stale for a given build, and TTLs only
// bound disk and memory use.
//
// Backends:
//
//   - [FileCache] stores one JSON file per entry under a directory (CLI).
//   - [RedisCache] and [MongoCache] share a cache between API servers.
//   - [NullCache] disables caching.
//
// [Open] picks a backend from a URL.
package cache

import (
	"context"
	"time"
)

// Default time-to-live values.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store. Implementations must be safe
// for concurrent use.
type Cache interface {
	// Get returns the value for key and whether it was found. A missing or
	// expired entry is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the backend's resources.
	Close() error
}
