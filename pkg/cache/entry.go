// Package cache provides the in-memory TTL cache used to memoize
// normalized upstream responses, with deterministic per-endpoint keys
// and a bounded LRU store.
package cache

import (
	"time"
)

// Entry is a cached value with an absolute expiry time.
type Entry struct {
	// Value is the normalized response stored for this key.
	Value any

	// Expires is when the entry becomes stale.
	Expires time.Time
}

// IsExpired returns true if the entry has expired.
func (e *Entry) IsExpired() bool {
	return time.Now().After(e.Expires)
}

// TTL returns the time until expiration.
// Returns 0 if already expired.
func (e *Entry) TTL() time.Duration {
	ttl := time.Until(e.Expires)
	if ttl < 0 {
		return 0
	}
	return ttl
}
