package cache

import (
	"context"
	"errors"
	"time"
)

// key has no live entry in the cache.
var ErrMiss = errors.New("cache miss")

// Cache is an expiring key-value store used for read acceleration.
//
// It is never the source of truth. Callers are expected to survive any
// of these operations failing.
type Cache interface {
	// Get returns the value stored under key.
	//
	// returned error wraps ErrMiss when there is no live entry.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key. The entry expires after ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete drops the entry under key, if any.
	// Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Ping checks connectivity to the backing store.
	// It is for the readiness probe, not for general use.
	Ping(ctx context.Context) error

	Close() error
}
