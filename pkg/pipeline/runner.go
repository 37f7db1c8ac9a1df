package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/segaxis/pkg/cache"
	"github.com/matzehuels/segaxis/pkg/layout"
	"github.com/matzehuels/segaxis/pkg/observability"
)

// Cache key types reported to cache hooks.
const (
	keyTypeLayout   = "layout"
	keyTypeArtifact = "artifact"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it so they share cache keys and defaults.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Layout
	layoutStart := time.Now()
	l, hash, layoutHit, err := r.layout(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.ConfigHash = hash
	result.Stats = statsFor(l)
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	opts.Logger.Info("computed layout",
		"segments", result.Stats.Segments,
		"ticks", result.Stats.Ticks,
		"axis_length", l.AxisLength,
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LayoutWithCacheInfo computes the axis layout with caching and returns cache hit info.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, opts Options) (layout.Layout, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return layout.Layout{}, false, err
	}
	l, _, hit, err := r.layout(ctx, opts)
	return l, hit, err
}

// Layout is a convenience wrapper that calls LayoutWithCacheInfo and discards the cache hit info.
func (r *Runner) Layout(ctx context.Context, opts Options) (layout.Layout, error) {
	l, _, err := r.LayoutWithCacheInfo(ctx, opts)
	return l, err
}

func (r *Runner) layout(ctx context.Context, opts Options) (layout.Layout, string, bool, error) {
	hash, err := cache.HashJSON(opts.Config)
	if err != nil {
		return layout.Layout{}, "", false, fmt.Errorf("hash config: %w", err)
	}
	cacheKey := r.Keyer.LayoutKey(hash, opts.LayoutKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if cached, err := layout.Unmarshal(data); err == nil {
				observability.Cache().OnCacheHit(ctx, keyTypeLayout)
				return cached, hash, true, nil
			}
			// If deserialization fails, fall through to recompute
		} else if err != nil {
			opts.Logger.Warn("cache read failed", "key", cacheKey, "error", err)
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeLayout)
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, len(opts.Config.Segments), opts.AxisLength)
	start := time.Now()

	cfg, err := opts.Config.Process()
	if err == nil && opts.MinorSplitNumber > 0 {
		err = cfg.Segments.CheckMinorTicks(opts.MinorSplitNumber)
	}
	if err != nil {
		hooks.OnLayoutComplete(ctx, len(opts.Config.Segments), time.Since(start), err)
		return layout.Layout{}, "", false, err
	}
	l := ComputeLayout(cfg, opts)
	hooks.OnLayoutComplete(ctx, len(l.Segments), time.Since(start), nil)

	opts.Logger.Debug("laid out segments",
		"configured", cfg.Segments.Len(),
		"effective", len(l.Segments),
		"extent", l.Extent)

	if data, err := layout.Marshal(l); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.LayoutTTL); err != nil {
			opts.Logger.Warn("cache write failed", "key", cacheKey, "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, keyTypeLayout, len(data))
		}
	}

	return l, hash, false, nil
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l layout.Layout, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	// Compute cache key from layout data
	layoutData, err := layout.Marshal(l)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		data, hit, err := r.Cache.Get(ctx, cacheKey)
		if err != nil || !hit {
			observability.Cache().OnCacheMiss(ctx, keyTypeArtifact)
			break
		}
		observability.Cache().OnCacheHit(ctx, keyTypeArtifact)
		artifacts[format] = data
	}

	if len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil // All artifacts from cache
	}

	// Render all formats
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := Render(ctx, l, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.ArtifactTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, keyTypeArtifact, len(data))
		}
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, l layout.Layout, opts Options) (map[string][]byte, error) {
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

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
