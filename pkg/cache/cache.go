// Package cache provides pluggable caching for computed layouts and
// rendered artifacts.
//
// A [Cache] stores opaque byte blobs under string keys with optional TTLs.
// Four backends are provided:
//
//   - [FileCache]: JSON entries under a directory, for CLI usage
//   - [RedisCache]: shared cache for server deployments
//   - [MongoCache]: document-store backend with TTL filtering
//   - [NullCache]: no-op, for tests and --no-cache
//
// A [Keyer] derives deterministic cache keys from content hashes plus the
// option sets that influence each pipeline stage, so any option change
// produces a distinct key.
package cache

import (
	"context"
	"time"
)

// TTLs per pipeline stage. Layouts are pure functions of their inputs, so
// the TTL only bounds disk growth, not staleness.
const (
	TTLLayout   = 30 * 24 * time.Hour
	TTLArtifact = 30 * 24 * time.Hour
)

// Cache is the storage interface shared by all backends.
// Implementations must treat keys as opaque strings.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value with a TTL. A non-positive TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// LayoutKeyOpts are the options that influence layout computation.
// Directedness is part of the graph itself and therefore already covered
// by the graph content hash.
type LayoutKeyOpts struct {
	VizType string
	Scale   float64
}

// ArtifactKeyOpts are the options that influence artifact rendering.
type ArtifactKeyOpts struct {
	Format  string
	Style   string
	Labels  bool
	Padding float64
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// LayoutKey generates a key for a layout computed from the graph with
	// the given content hash.
	LayoutKey(graphHash string, opts LayoutKeyOpts) string
	// ArtifactKey generates a key for an artifact rendered from the layout
	// with the given content hash.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the content hash together with the option struct.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey generates a key for layout caching.
func (DefaultKeyer) LayoutKey(graphHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", graphHash, opts)
}

// ArtifactKey generates a key for artifact caching.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
