// Package sink provides output format renderers for facet grid pages.
//
// # Overview
//
// A "sink" transforms a computed [grid.Layout] into a final output format.
// This package provides renderers for:
//
//   - SVG: Scalable vector graphics
//   - JSON: Layout and page data export for external tools
//   - PDF: Print-ready output (requires rsvg-convert)
//   - PNG: Raster image output (requires rsvg-convert)
//
// # SVG Output
//
// [RenderSVG] draws the page: a title block with the plot title and the
// "Page i of N" subtitle, one framed panel per facet level with its label
// strip, axis tick labels, and the page's data points scaled into each
// panel. Pass the page plot to get data and headings; without it only the
// empty panel frames are drawn.
//
// Basic usage:
//
//	svg := sink.RenderSVG(layout,
//	    sink.WithPlot(page.Plot),
//	    sink.WithStyle(styles.Simple{}),
//	)
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] render the layout as PDF/PNG by first
// generating SVG, then converting via [render.ToPDF] and [render.ToPNG]:
//
//	pdf, err := sink.RenderPDF(layout, opts...)
//	png, err := sink.RenderPNG(layout, sink.WithScale(2), opts...)
//
// These require librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// # JSON Output
//
// [RenderJSON] exports the page layout as JSON for external tools: frame
// geometry, per-panel cells with their facet levels, and the page heading.
//
// [grid.Layout]: github.com/facetpager/facetpager/pkg/render/grid.Layout
// [render.ToPDF]: github.com/facetpager/facetpager/pkg/render.ToPDF
// [render.ToPNG]: github.com/facetpager/facetpager/pkg/render.ToPNG
package sink
