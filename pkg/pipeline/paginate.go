package pipeline

import (
	"context"
	"time"

	"github.com/facetpager/facetpager/pkg/dataset"
	"github.com/facetpager/facetpager/pkg/observability"
	"github.com/facetpager/facetpager/pkg/paginate"
	"github.com/facetpager/facetpager/pkg/plot"
)

// BuildPages constructs the plot from the options and splits it into pages.
func BuildPages(ctx context.Context, d *dataset.Dataset, opts Options) ([]paginate.Page, error) {
	if err := opts.ValidateForPaginate(); err != nil {
		return nil, err
	}

	observability.Pipeline().OnPaginateStart(ctx, opts.Facets, opts.NRow, opts.NCol)
	start := time.Now()

	p := plot.New(d).
		WithTitle(opts.Title).
		WithAes(plot.Aes{X: opts.Aes.X, Y: opts.Aes.Y, Color: opts.Aes.Color})

	pages, err := paginate.Paginate(p, opts.Facets, opts.NRow, opts.NCol, opts.ScaleMode(),
		paginate.WithLogger(opts.Logger))

	observability.Pipeline().OnPaginateComplete(ctx, len(pages), time.Since(start), err)
	return pages, err
}
