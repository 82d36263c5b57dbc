package cache

// ScopedKeyer wraps a Keyer with a prefix so separate projects or working
// directories sharing one backend (typically Redis) get isolated namespaces.
//
// Example usage:
//
//	// Project-specific keys on a shared Redis
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "proj:survey2026:")
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
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// DatasetKey generates a prefixed key for dataset content.
func (k *ScopedKeyer) DatasetKey(contentHash string) string {
	return k.prefix + k.inner.DatasetKey(contentHash)
}

// PageKey generates a prefixed key for a pagination result.
func (k *ScopedKeyer) PageKey(datasetHash string, opts PageKeyOpts) string {
	return k.prefix + k.inner.PageKey(datasetHash, opts)
}

// ArtifactKey generates a prefixed key for a rendered page artifact.
func (k *ScopedKeyer) ArtifactKey(datasetHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(datasetHash, opts)
}
