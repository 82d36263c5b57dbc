// Package pkg provides the core libraries for facetpager plot pagination.
//
// # Overview
//
// Facetpager splits a faceted statistical plot into a sequence of "Page i of N"
// pages so grids with many facet levels stay readable. The pkg directory is
// organized into these areas:
//
//  1. [dataset] - Columnar tabular data with typed column accessors
//  2. [plot] - Immutable plot specification (aesthetics, facets, scales)
//  3. [facet] - Facet keying and first-appearance level ordering
//  4. [paginate] - The page split itself
//  5. [render] - Layout and output sinks (SVG, PNG, PDF, JSON)
//  6. [pipeline] - Orchestration (load → paginate → render) with caching
//
// # Architecture
//
// The typical data flow through facetpager:
//
//	CSV / columnar JSON file
//	         ↓
//	    [io] package (import into a dataset)
//	         ↓
//	    [plot] package (plot spec with facet directive)
//	         ↓
//	    [paginate] package (split into pages)
//	         ↓
//	    [render/grid] package (panel layout + sinks)
//	         ↓
//	    SVG/PDF/PNG/JSON output
//
// # Quick Start
//
// Split a plot and render the first page:
//
//	import (
//	    "github.com/facetpager/facetpager/pkg/io"
//	    "github.com/facetpager/facetpager/pkg/paginate"
//	    "github.com/facetpager/facetpager/pkg/plot"
//	    "github.com/facetpager/facetpager/pkg/render/grid"
//	    "github.com/facetpager/facetpager/pkg/render/grid/sink"
//	)
//
//	d, _ := io.ImportCSV("iris.csv")
//	p := plot.New(d).
//	    WithTitle("Iris measurements").
//	    WithAes(plot.Aes{X: "sepal_length", Y: "sepal_width"})
//
//	pages, _ := paginate.Paginate(p, []string{"species"}, 2, 2, plot.ScaleFixed)
//
//	l, _ := grid.Build(pages[0].Plot)
//	svg := sink.RenderSVG(l, sink.WithPlot(pages[0].Plot))
//
// # Infrastructure
//
// [pipeline] - Complete pagination pipeline used by the CLI and embedders.
// Caches rendered artifacts and page assignments under the dataset's
// content hash.
//
// [cache] - Cache backends (file, Redis, null) with structured key
// derivation and retry helpers.
//
// [observability] - Pluggable pipeline and cache hooks.
//
// [errors] - Structured error codes shared across packages.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/paginate/...  # Specific package
//
// [dataset]: https://pkg.go.dev/github.com/facetpager/facetpager/pkg/dataset
// [plot]: https://pkg.go.dev/github.com/facetpager/facetpager/pkg/plot
// [facet]: https://pkg.go.dev/github.com/facetpager/facetpager/pkg/facet
// [paginate]: https://pkg.go.dev/github.com/facetpager/facetpager/pkg/paginate
// [render]: https://pkg.go.dev/github.com/facetpager/facetpager/pkg/render
// [render/grid]: https://pkg.go.dev/github.com/facetpager/facetpager/pkg/render/grid
// [io]: https://pkg.go.dev/github.com/facetpager/facetpager/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/facetpager/facetpager/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/facetpager/facetpager/pkg/cache
// [observability]: https://pkg.go.dev/github.com/facetpager/facetpager/pkg/observability
// [errors]: https://pkg.go.dev/github.com/facetpager/facetpager/pkg/errors
package pkg
