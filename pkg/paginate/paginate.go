// Package paginate splits a faceted plot into pages of panels.
//
// Paginate is pure: it validates its arguments, computes page membership, and
// returns the full ordered sequence of page plots. It never renders - callers
// hand pages to a sink (see pkg/render/grid/sink) or the pipeline Runner when
// they want output. The single-page case returns the faceted plot unchanged:
// no page subtitle, no forced coordinate limits.
package paginate

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/facetpager/facetpager/pkg/dataset"
	"github.com/facetpager/facetpager/pkg/errors"
	"github.com/facetpager/facetpager/pkg/facet"
	"github.com/facetpager/facetpager/pkg/plot"
)

// Page is one renderable page of the paginated plot.
type Page struct {
	// Index is the 1-based page number.
	Index int
	// Total is the number of pages in the sequence.
	Total int
	// Plot is the page's plot spec, bound to the page's row subset with the
	// facet directive applied and, on multi-page sequences, a "Page i of N"
	// subtitle and shared axis limits for fixed scales.
	Plot plot.Spec
	// Levels are the facet keys shown on this page, in level order.
	Levels []facet.Key
	// Rows is the number of dataset rows on this page.
	Rows int
}

// Option configures Paginate.
type Option func(*paginator)

type paginator struct {
	logger *log.Logger
}

// WithLogger sets the logger used for the informational no-facets notice.
// Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(p *paginator) {
		if l != nil {
			p.logger = l
		}
	}
}

// Paginate splits p into pages of at most nrow*ncol facet panels.
//
// Facet levels are ordered by first appearance in the dataset and bucketed
// into consecutive groups of nrow*ncol, so page membership is deterministic.
// Pages partition the dataset: every row lands on exactly one page.
//
// When facets is empty this is the "no pagination requested" path: a notice
// is logged and the input plot comes back as the sole page, untouched. When
// all panels fit on one page the faceted plot comes back as the sole page
// with no subtitle and no forced limits.
//
// For multi-page output, any axis the scale mode keeps fixed that maps to a
// numeric column without an explicit scale is locked to the full-dataset
// min/max before splitting, so every page shares identical axis bounds.
//
// Validation failures (missing dataset, unknown facet columns, non-positive
// grid) are fatal and reported before any page is built.
func Paginate(p plot.Spec, facets []string, nrow, ncol int, scales plot.ScaleMode, opts ...Option) ([]Page, error) {
	pg := paginator{logger: log.Default()}
	for _, opt := range opts {
		opt(&pg)
	}

	data := p.Data()
	if data == nil {
		return nil, errors.New(errors.ErrCodeMissingArgument, "plot is required and must be bound to a dataset")
	}

	if len(facets) == 0 {
		pg.logger.Info("no facets provided, returning plot unchanged")
		return []Page{{Index: 1, Total: 1, Plot: p, Rows: data.NumRows()}}, nil
	}

	if missing := missingColumns(data, facets); len(missing) > 0 {
		return nil, errors.MissingColumns(missing)
	}

	if err := errors.ValidateGridShape(nrow, ncol); err != nil {
		return nil, err
	}

	keyer, err := facet.NewKeyer(data, facets)
	if err != nil {
		// Unreachable after the existence check above; kept as a guard.
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "resolve facet columns")
	}

	levels := facet.Levels(keyer, data.NumRows())
	perPage := nrow * ncol
	nPages := facet.NumPages(len(levels), perPage)

	directive := plot.FacetSpec{Columns: facets, NRow: nrow, NCol: ncol, Scales: scales}
	faceted := p.WithScaleMode(scales).WithFacet(directive)

	if nPages <= 1 {
		return []Page{{
			Index:  1,
			Total:  1,
			Plot:   faceted,
			Levels: levels,
			Rows:   data.NumRows(),
		}}, nil
	}

	faceted = lockFixedAxes(faceted, scales)

	assignment := facet.Assign(levels, perPage)
	rowsByPage := make([][]int, nPages+1)
	for i := 0; i < data.NumRows(); i++ {
		page := assignment.PageOf(keyer.Key(i))
		rowsByPage[page] = append(rowsByPage[page], i)
	}

	pages := make([]Page, 0, nPages)
	for i := 1; i <= nPages; i++ {
		pagePlot := faceted.
			WithData(data.Subset(rowsByPage[i])).
			WithSubtitle(fmt.Sprintf("Page %d of %d", i, nPages))
		if i == nPages {
			// The trailing, possibly sparse page keeps the requested shape.
			pagePlot = pagePlot.WithFacet(directive)
		}
		pages = append(pages, Page{
			Index:  i,
			Total:  nPages,
			Plot:   pagePlot,
			Levels: assignment.LevelsForPage(i),
			Rows:   len(rowsByPage[i]),
		})
	}
	return pages, nil
}

// missingColumns returns the facet names absent from the dataset, in call order.
func missingColumns(d *dataset.Dataset, facets []string) []string {
	var missing []string
	for _, name := range facets {
		if !d.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// lockFixedAxes fixes each non-freed numeric axis to the full-dataset range
// unless an explicit scale already covers it.
func lockFixedAxes(p plot.Spec, scales plot.ScaleMode) plot.Spec {
	aes := p.Aes()

	if !scales.FreesX() && aes.X != "" {
		if _, explicit := p.XScale(); !explicit {
			if lim, ok := columnRange(p, aes.X); ok {
				p = p.WithXLim(lim)
			}
		}
	}
	if !scales.FreesY() && aes.Y != "" {
		if _, explicit := p.YScale(); !explicit {
			if lim, ok := columnRange(p, aes.Y); ok {
				p = p.WithYLim(lim)
			}
		}
	}
	return p
}

func columnRange(p plot.Spec, column string) (plot.Limits, bool) {
	ref, err := p.Data().Column(column)
	if err != nil || !ref.IsNumeric() {
		return plot.Limits{}, false
	}
	lo, hi, ok := ref.Range()
	if !ok {
		return plot.Limits{}, false
	}
	return plot.Limits{Min: lo, Max: hi}, true
}
