package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/tagcloud/pkg/cache"
	"github.com/matzehuels/tagcloud/pkg/observability"
	"github.com/matzehuels/tagcloud/pkg/style"
)

// Runner executes the pipeline with caching. It holds no per-run state, so
// one Runner can serve concurrent runs with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil keyer means DefaultKeyer, a nil cache
// disables caching and a nil logger means log.Default().
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
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Prepare applies defaults and validates opts, attaching the runner's
// logger when opts has none.
func (r *Runner) Prepare(opts *Options) error {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

// Execute runs extract → size → layout → decorate → render.
func (r *Runner) Execute(ctx context.Context, text string, opts Options) (*Result, error) {
	if err := r.Prepare(&opts); err != nil {
		return nil, err
	}
	result := &Result{ID: uuid.NewString()}
	logger := opts.Logger.With("run", result.ID)

	start := time.Now()
	words, err := r.extract(ctx, text, opts)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	result.Words = words
	result.Stats.WordCount = len(words)
	result.Stats.ExtractTime = time.Since(start)
	logger.Debug("extracted words", "words", len(words), "duration", result.Stats.ExtractTime)

	start = time.Now()
	layout, layoutHit, err := r.layout(ctx, words, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = layout
	result.Stats.TagCount = len(layout.Tags)
	result.Stats.Radius = layout.Radius
	result.Stats.LayoutTime = time.Since(start)
	result.CacheInfo.LayoutHit = layoutHit
	logger.Info("computed layout",
		"layouter", layout.Layouter,
		"tags", len(layout.Tags),
		"radius", layout.Radius,
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	start = time.Now()
	drawings, artifacts, renderHit, err := r.render(ctx, layout, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Drawings = drawings
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(start)
	result.CacheInfo.RenderHit = renderHit
	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Extract reads the excluded words and splits text into words.
func (r *Runner) Extract(ctx context.Context, text string, opts Options) ([]string, error) {
	if err := r.Prepare(&opts); err != nil {
		return nil, err
	}
	return r.extract(ctx, text, opts)
}

func (r *Runner) extract(ctx context.Context, text string, opts Options) (words []string, err error) {
	hooks := observability.Pipeline()
	hooks.OnExtractStart(ctx, len(text))
	start := time.Now()
	defer func() { hooks.OnExtractComplete(ctx, len(words), time.Since(start), err) }()

	excluded, err := ExcludedWords(opts)
	if err != nil {
		return nil, err
	}
	return Extract(text, excluded, opts), nil
}

// Layout sizes and places words. See LayoutWithCacheInfo.
func (r *Runner) Layout(ctx context.Context, words []string, opts Options) (*Layout, error) {
	l, _, err := r.LayoutWithCacheInfo(ctx, words, opts)
	return l, err
}

// LayoutWithCacheInfo sizes and places words, reusing a cached layout for
// the same words and layout options unless opts.Refresh is set.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, words []string, opts Options) (*Layout, bool, error) {
	if err := r.Prepare(&opts); err != nil {
		return nil, false, err
	}
	return r.layout(ctx, words, opts)
}

func (r *Runner) layout(ctx context.Context, words []string, opts Options) (*Layout, bool, error) {
	key := r.Keyer.LayoutKey(cache.HashStrings(words), opts.LayoutKeyOpts())
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if l, err := UnmarshalLayout(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return l, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	tags, err := Size(words, opts)
	if err != nil {
		return nil, false, err
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, opts.Layouter, len(tags))
	start := time.Now()
	l, err := Place(ctx, tags, opts)
	placed := 0
	if l != nil {
		placed = len(l.Rects)
	}
	hooks.OnLayoutComplete(ctx, opts.Layouter, placed, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if data, err := MarshalLayout(l); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.LayoutTTL); err != nil {
			opts.Logger.Warn("cache write failed", "key", key, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}
	return l, false, nil
}

// Render decorates a layout and renders it. See RenderWithCacheInfo.
func (r *Runner) Render(ctx context.Context, l *Layout, opts Options) (map[string][]byte, error) {
	_, artifacts, _, err := r.RenderWithCacheInfo(ctx, l, opts)
	return artifacts, err
}

// RenderWithCacheInfo decorates a layout and renders every requested
// format. The cached artifacts are used only when all formats are present.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l *Layout, opts Options) ([]style.Drawing, map[string][]byte, bool, error) {
	if err := r.Prepare(&opts); err != nil {
		return nil, nil, false, err
	}
	return r.render(ctx, l, opts)
}

func (r *Runner) render(ctx context.Context, l *Layout, opts Options) (drawings []style.Drawing, artifacts map[string][]byte, hit bool, err error) {
	drawings, err = Decorate(l, opts)
	if err != nil {
		return nil, nil, false, err
	}

	data, err := MarshalLayout(l)
	if err != nil {
		return nil, nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(data)

	if !opts.Refresh {
		if cached, ok := r.cachedArtifacts(ctx, layoutHash, opts); ok {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return drawings, cached, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	artifacts, err = Render(ctx, drawings, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, nil, false, err
	}

	for format, out := range artifacts {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, out, cache.ArtifactTTL); err != nil {
			opts.Logger.Warn("cache write failed", "key", key, "err", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, "artifact", len(out))
	}
	return drawings, artifacts, false, nil
}

func (r *Runner) cachedArtifacts(ctx context.Context, layoutHash string, opts Options) (map[string][]byte, bool) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, f := range opts.Formats {
		format := normalizeFormat(f)
		data, hit, err := r.Cache.Get(ctx, r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format)))
		if err != nil || !hit {
			return nil, false
		}
		artifacts[format] = data
	}
	return artifacts, true
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
