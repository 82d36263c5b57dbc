package pipeline

import (
	"fmt"

	"github.com/facetpager/facetpager/pkg/paginate"
	"github.com/facetpager/facetpager/pkg/plot"
	"github.com/facetpager/facetpager/pkg/render/grid"
	"github.com/facetpager/facetpager/pkg/render/grid/sink"
	"github.com/facetpager/facetpager/pkg/render/grid/styles"
)

// RenderPage renders one page in all requested formats.
func RenderPage(pg paginate.Page, opts Options) (map[string][]byte, error) {
	style, err := styleByName(opts.Style)
	if err != nil {
		return nil, err
	}

	// Pages without a facet directive (the no-facets notice path) still
	// render: a 1x1 grid with no facet columns keys every row to the single
	// panel.
	page := pg.Plot
	if _, ok := page.Facet(); !ok {
		page = page.WithFacet(plot.FacetSpec{NRow: 1, NCol: 1, Scales: opts.ScaleMode()})
	}

	l, err := grid.Build(page, grid.WithFrameSize(opts.Width, opts.Height))
	if err != nil {
		return nil, fmt.Errorf("layout page %d: %w", pg.Index, err)
	}

	svgOpts := []sink.SVGOption{sink.WithPlot(page), sink.WithStyle(style)}

	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(l, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(l, sink.WithPNGSVGOptions(svgOpts...))
		case FormatPDF:
			data, err = sink.RenderPDF(l, sink.WithPDFSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = sink.RenderJSON(l, sink.WithJSONPlot(page), sink.WithJSONStyle(opts.Style))
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render page %d as %s: %w", pg.Index, format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func styleByName(name string) (styles.Style, error) {
	if err := ValidateStyle(name); err != nil {
		return nil, err
	}
	return styles.Simple{}, nil
}
