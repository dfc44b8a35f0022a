// Package cache provides pluggable byte caches used to memoize expensive
// group computations, chiefly normal-closure saturations keyed by a
// canonical hash of the generator set.
//
// Backends:
//   - [FileCache]: directory-backed, for CLI usage
//   - [MemoryCache]: process-local, for tests and the API server
//   - [RedisCache]: shared, for multi-instance deployments
//   - [NullCache]: disabled caching
//
// All backends store opaque bytes with an optional TTL and treat corrupt or
// expired entries as misses.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with optional expiry.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer derives cache keys for the toolkit's cacheable computations. All
// keys embed a canonical hash so that logically identical queries collide
// regardless of generator ordering at the call site.
type Keyer interface {
	// ClosureKey identifies a normal-closure computation by degree, the
	// canonical forms of the generators, and the ambient group kind
	// (e.g. "S5", "A5").
	ClosureKey(degree int, ambient string, generators []string) string

	// ConjugacyKey identifies a conjugator construction for an ordered pair.
	ConjugacyKey(a, b string) string

	// RenderKey identifies a rendered artifact by its DOT source and format.
	RenderKey(dot, format string) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// ClosureKey generates a key for closure caching.
func (k *DefaultKeyer) ClosureKey(degree int, ambient string, generators []string) string {
	return hashKey("closure", degree, ambient, generators)
}

// ConjugacyKey generates a key for conjugator caching.
func (k *DefaultKeyer) ConjugacyKey(a, b string) string {
	return hashKey("conjugacy", a, b)
}

// RenderKey generates a key for rendered artifacts.
func (k *DefaultKeyer) RenderKey(dot, format string) string {
	return hashKey("render", dot, format)
}

// ScopedKeyer wraps a Keyer with a prefix so separate contexts (per user,
// per server instance) get isolated namespaces in a shared backend.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ClosureKey generates a prefixed closure key.
func (k *ScopedKeyer) ClosureKey(degree int, ambient string, generators []string) string {
	return k.prefix + k.inner.ClosureKey(degree, ambient, generators)
}

// ConjugacyKey generates a prefixed conjugacy key.
func (k *ScopedKeyer) ConjugacyKey(a, b string) string {
	return k.prefix + k.inner.ConjugacyKey(a, b)
}

// RenderKey generates a prefixed render key.
func (k *ScopedKeyer) RenderKey(dot, format string) string {
	return k.prefix + k.inner.RenderKey(dot, format)
}
