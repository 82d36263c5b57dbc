package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/facetpager/facetpager/pkg/cache"
	pio "github.com/facetpager/facetpager/pkg/io"
	"github.com/facetpager/facetpager/pkg/observability"
	"github.com/facetpager/facetpager/pkg/paginate"
)

// Runner encapsulates pipeline execution with caching.
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

// Execute runs the complete load → paginate → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[int]map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	d, err := Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Dataset = d
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.RowCount = d.NumRows()

	// Content hash for cache keys
	if data, err := pio.MarshalDataset(d); err == nil {
		result.DatasetHash = cache.Hash(data)
	}

	r.Logger.Info("loaded dataset",
		"rows", d.NumRows(),
		"columns", d.NumColumns(),
		"duration", result.Stats.LoadTime)

	// Stage 2: Paginate
	paginateStart := time.Now()
	pages, err := BuildPages(ctx, d, opts)
	if err != nil {
		return nil, fmt.Errorf("paginate: %w", err)
	}
	result.Pages = pages
	result.Stats.PaginateTime = time.Since(paginateStart)
	result.Stats.PageCount = len(pages)

	r.Logger.Info("split pages",
		"pages", len(pages),
		"grid", fmt.Sprintf("%dx%d", opts.NRow, opts.NCol),
		"duration", result.Stats.PaginateTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, pages, result.DatasetHash, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered pages",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// RenderWithCacheInfo renders every page with per-artifact caching and
// reports whether all artifacts came from cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, pages []paginate.Page, datasetHash string, opts Options) (map[int]map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	artifacts := make(map[int]map[string][]byte, len(pages))
	// Each page is looked up independently; one miss must not stop lookups
	// for the pages after it.
	lookup := datasetHash != "" && !opts.Refresh
	allCached := lookup

	for _, pg := range pages {
		cached := make(map[string][]byte, len(opts.Formats))
		pageCached := lookup
		if pageCached {
			for _, format := range opts.Formats {
				key := r.Keyer.ArtifactKey(datasetHash, opts.ArtifactKeyOpts(pg.Index, format))
				data, hit, err := r.Cache.Get(ctx, key)
				if err != nil || !hit {
					observability.Cache().OnCacheMiss(ctx, "artifact")
					pageCached = false
					break
				}
				observability.Cache().OnCacheHit(ctx, "artifact")
				cached[format] = data
			}
		}
		if pageCached {
			artifacts[pg.Index] = cached
			continue
		}
		allCached = false

		observability.Pipeline().OnRenderStart(ctx, pg.Index, opts.Formats)
		start := time.Now()
		rendered, err := RenderPage(pg, opts)
		observability.Pipeline().OnRenderComplete(ctx, pg.Index, opts.Formats, time.Since(start), err)
		if err != nil {
			return nil, false, err
		}
		artifacts[pg.Index] = rendered

		if datasetHash != "" {
			for format, data := range rendered {
				key := r.Keyer.ArtifactKey(datasetHash, opts.ArtifactKeyOpts(pg.Index, format))
				if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
					observability.Cache().OnCacheSet(ctx, "artifact", len(data))
				}
			}
		}
	}

	return artifacts, allCached && len(pages) > 0, nil
}

// Inspect computes the page assignment summary without rendering. The
// summary is cached under the dataset's content hash so repeated inspections
// of an unchanged dataset skip the load and split work.
func (r *Runner) Inspect(ctx context.Context, opts Options) (*pio.Manifest, bool, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, false, err
	}
	if err := opts.ValidateForPaginate(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	d, err := Load(ctx, opts)
	if err != nil {
		return nil, false, fmt.Errorf("load: %w", err)
	}

	var key string
	if data, err := pio.MarshalDataset(d); err == nil {
		key = r.Keyer.PageKey(cache.Hash(data), opts.PageKeyOpts())
	}

	if key != "" && !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var m pio.Manifest
			if err := json.Unmarshal(data, &m); err == nil {
				observability.Cache().OnCacheHit(ctx, "pages")
				// The key covers facets, grid, and scales but not the
				// title, so the cached copy may carry an older one.
				m.Title = opts.Title
				return &m, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "pages")
	}

	pages, err := BuildPages(ctx, d, opts)
	if err != nil {
		return nil, false, fmt.Errorf("paginate: %w", err)
	}

	m := &pio.Manifest{
		Title:  opts.Title,
		Facets: opts.Facets,
		NRow:   opts.NRow,
		NCol:   opts.NCol,
		Scales: opts.Scales,
		Pages:  make([]pio.ManifestPage, 0, len(pages)),
	}
	for _, pg := range pages {
		mp := pio.ManifestPage{Index: pg.Index, Total: pg.Total, Rows: pg.Rows}
		for _, lvl := range pg.Levels {
			mp.Levels = append(mp.Levels, lvl.Label())
		}
		m.Pages = append(m.Pages, mp)
	}

	if key != "" {
		if data, err := json.Marshal(m); err == nil {
			if err := r.Cache.Set(ctx, key, data, cache.TTLPages); err == nil {
				observability.Cache().OnCacheSet(ctx, "pages", len(data))
			}
		}
	}
	return m, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Render(ctx context.Context, pages []paginate.Page, datasetHash string, opts Options) (map[int]map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, pages, datasetHash, opts)
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
