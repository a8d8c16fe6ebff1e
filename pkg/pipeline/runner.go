package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fingerbox/pkg/box"
	"github.com/matzehuels/fingerbox/pkg/cache"
	"github.com/matzehuels/fingerbox/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner holds no per-run state, so one Runner can serve many goroutines
// with different options.
type Runner struct {
	Cache   cache.Cache
	Keyer   cache.Keyer
	Factory *box.Factory
	Logger  *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// selects the DefaultKeyer and a nil factory the built-in box types.
func NewRunner(c cache.Cache, keyer cache.Keyer, factory *box.Factory, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if factory == nil {
		factory = box.NewFactory(nil)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:   c,
		Keyer:   keyer,
		Factory: factory,
		Logger:  logger,
	}
}

// Execute runs generate → render.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1: Generate
	genStart := time.Now()
	l, err := r.Generate(ctx, opts.Params)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Layout = l
	result.Stats.GenerateTime = time.Since(genStart)
	result.Stats.Panels = len(l.Panels)

	r.Logger.Info("generated layout",
		"id", l.ID,
		"type", l.Params.Type,
		"panels", len(l.Panels),
		"duration", result.Stats.GenerateTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = hit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Generate builds the layout for p and stores its parameters so [Runner.Lookup]
// can rebuild it by ID.
func (r *Runner) Generate(ctx context.Context, p box.Params) (*box.Layout, error) {
	typ := string(p.WithDefaults().Type)
	observability.Pipeline().OnGenerateStart(ctx, typ)
	start := time.Now()

	l, err := Generate(r.Factory, p)

	panels := 0
	if l != nil {
		panels = len(l.Panels)
	}
	observability.Pipeline().OnGenerateComplete(ctx, typ, panels, time.Since(start), err)
	if err != nil {
		r.Logger.Debug("generation failed", "type", typ, "error", err)
		return nil, err
	}

	r.remember(ctx, l)
	return l, nil
}

// RenderWithCacheInfo renders l with caching and reports whether every
// artifact came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l *box.Layout, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	id := l.ID.String()
	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		if !opts.Refresh {
			key := r.Keyer.ArtifactKey(id, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				r.hooks().OnCacheHit(ctx, "artifact")
				artifacts[format] = data
				continue
			}
		}
		r.hooks().OnCacheMiss(ctx, "artifact")
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return artifacts, true, nil
	}

	renderOpts := opts
	renderOpts.Formats = missing
	observability.Pipeline().OnRenderStart(ctx, missing)
	start := time.Now()
	rendered, err := renderSafely(ctx, l, renderOpts)
	observability.Pipeline().OnRenderComplete(ctx, missing, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		artifacts[format] = data
		key := r.Keyer.ArtifactKey(id, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("cache artifact", "format", format, "error", err)
			continue
		}
		r.hooks().OnCacheSet(ctx, "artifact", len(data))
	}
	return artifacts, false, nil
}

// Render is RenderWithCacheInfo without the cache hit info.
func (r *Runner) Render(ctx context.Context, l *box.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) hooks() observability.CacheHooks {
	return observability.Cache()
}
