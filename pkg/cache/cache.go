// Package cache provides the byte cache used for fetched games and rendered
// artifacts.
//
// # Backends
//
//   - [FileCache]: JSON entry files under a local directory (CLI default)
//   - [RedisCache]: a shared Redis instance (server deployments)
//   - [NullCache]: never stores anything (--no-cache)
//
// # Keys
//
// Keys come from a [Keyer] so that every producer and consumer agrees on the
// layout:
//
//	game:<game-id>
//	artifact:<sha256 of game id and render options>
//
// [ScopedKeyer] prefixes every key, for example to separate environments
// sharing one Redis database.
package cache

import (
	"context"
	"time"
)

// Default entry lifetimes.
const (
	// GameTTL bounds how long a fetched game is reused. Finished games do not
	// change, but games fetched while in progress do.
	GameTTL = 24 * time.Hour

	// ArtifactTTL bounds how long a rendered document is reused.
	ArtifactTTL = 7 * 24 * time.Hour
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get returns the value for key. A miss is reported as ok == false with
	// a nil error.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
