// Package cache provides pluggable byte caches for render memoization.
//
// The pipeline caches two things: computed page assignments (which facet
// levels land on which page) and rendered artifacts (SVG/PNG/PDF bytes).
// Keys are content-addressed through a [Keyer], so a dataset edit, a grid
// change, or a style change each produce a fresh key.
//
// Backends:
//   - [FileCache]: directory-backed, for CLI usage
//   - [RedisCache]: Redis-backed, for shared or long-lived setups
//   - [NullCache]: no-op, for --refresh runs and tests
package cache

import (
	"context"
	"time"
)

// Default time-to-live per key type. Pagination results are cheap to
// recompute; rendered artifacts are not.
const (
	TTLPages    = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the interface for cache backends.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was present
	// and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// PageKeyOpts captures everything that changes page membership.
type PageKeyOpts struct {
	Facets []string
	NRow   int
	NCol   int
	Scales string
}

// ArtifactKeyOpts captures everything that changes rendered bytes for a page.
type ArtifactKeyOpts struct {
	Page   int
	Format string
	Style  string
	Width  float64
	Height float64
}

// Keyer generates cache keys for the pipeline's cacheable stages.
type Keyer interface {
	// DatasetKey generates a key identifying the dataset's content.
	DatasetKey(contentHash string) string

	// PageKey generates a key for a pagination result over a dataset.
	PageKey(datasetHash string, opts PageKeyOpts) string

	// ArtifactKey generates a key for one rendered page artifact.
	ArtifactKey(datasetHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer generates hashed, prefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// DatasetKey generates a key for dataset content.
// Format: dataset:hash(contentHash)
func (k *DefaultKeyer) DatasetKey(contentHash string) string {
	return hashKey("dataset", contentHash)
}

// PageKey generates a key for a pagination result.
// Format: pages:hash(datasetHash, facets, nrow, ncol, scales)
func (k *DefaultKeyer) PageKey(datasetHash string, opts PageKeyOpts) string {
	return hashKey("pages", datasetHash, opts.Facets, opts.NRow, opts.NCol, opts.Scales)
}

// ArtifactKey generates a key for a rendered page artifact.
// Format: artifact:hash(datasetHash, page, format, style, width, height)
func (k *DefaultKeyer) ArtifactKey(datasetHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", datasetHash, opts.Page, opts.Format, opts.Style, opts.Width, opts.Height)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
