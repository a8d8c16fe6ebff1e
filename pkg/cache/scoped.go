package cache

// ScopedKeyer prefixes every key of an inner Keyer. The CLI and API scope
// keys by build version, so a release that changes the geometry never reads
// layouts cut by an older one.
//
//	k := NewScopedKeyer(NewDefaultKeyer(), "v1.2.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or the DefaultKeyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// LayoutKey implements Keyer.
func (k *ScopedKeyer) LayoutKey(layoutID string) string {
	return k.prefix + k.inner.LayoutKey(layoutID)
}

// ArtifactKey implements Keyer.
func (k *ScopedKeyer) ArtifactKey(layoutID string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutID, opts)
}
