package cache

// Keyer builds cache keys.
type Keyer interface {
	// LayoutKey is the key under which the parameters of a generated layout
	// are stored, so the layout can be rebuilt from its ID alone.
	LayoutKey(layoutID string) string
	// ArtifactKey is the key for one rendering of a layout.
	ArtifactKey(layoutID string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts holds the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format    string  `json:"format"`
	Stroke    string  `json:"stroke,omitempty"`
	Width     float64 `json:"width,omitempty"`
	Units     string  `json:"units,omitempty"`
	Labels    bool    `json:"labels,omitempty"`
	Precision int     `json:"precision,omitempty"`
	Scale     float64 `json:"scale,omitempty"`
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey implements Keyer.
func (DefaultKeyer) LayoutKey(layoutID string) string {
	return "layout:" + layoutID
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(layoutID string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+opts.Format, layoutID, opts)
}
