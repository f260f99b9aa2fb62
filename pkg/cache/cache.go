// Package cache stores rendered artifacts so that re-rendering an unchanged
// DOT document is free.
//
// Keys are derived from a content hash of the input plus the output format
// (see [RenderKey]); entries never go stale on their own because a changed
// input produces a different key. [FileCache] persists entries under the
// user's cache directory; [NullCache] disables caching.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store.
type Cache interface {
	// Get returns the stored value and true, or nil and false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}

// NullCache stores nothing; every Get is a miss. It backs --no-cache.
type NullCache struct{}

// NewNullCache returns a cache that never stores anything.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (NullCache) Delete(context.Context, string) error { return nil }

func (NullCache) Close() error { return nil }
