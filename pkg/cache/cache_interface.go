package cache

import (
	"context"
	"time"
)

// Cache is the contract for the response cache layer.
// Entries can be associated with tags; EvictByTag drops every entry
// carrying a tag without callers having to know individual keys.
type Cache interface {
	// Get reads the entry at key and unmarshals it into dest.
	// Returns found=false on a miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with a TTL and optional tags.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration, tags ...string) error

	// Delete removes individual keys.
	Delete(ctx context.Context, keys ...string) error

	// EvictByTag removes every entry that was stored with the given tag.
	EvictByTag(ctx context.Context, tag string) error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
