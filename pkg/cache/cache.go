// Package cache provides the caching layer used by the CLI and the HTTP API.
//
// Computed plans and rendered artifacts are cached keyed by a hash of their
// inputs, so repeated invocations with the same configuration skip the
// compute/render path. Three backends are provided:
//
//   - [FileCache]: JSON files under the XDG cache directory (CLI default)
//   - [RedisCache]: shared cache for the HTTP API
//   - [NullCache]: disables caching
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface for cached bytes.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer generates cache keys from typed inputs.
type Keyer interface {
	// PlanKey generates a key for a computed plan from the hash of its
	// configuration and the item count.
	PlanKey(configHash string, count int) string

	// ArtifactKey generates a key for a rendered artifact (svg, dot)
	// from the hash of its plan.
	ArtifactKey(planHash, format string) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// PlanKey generates a key for plan caching.
func (k *DefaultKeyer) PlanKey(configHash string, count int) string {
	return hashKey("plan", configHash, count)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(planHash, format string) string {
	return hashKey("artifact", planHash, format)
}
