package sink

import (
	"bytes"
	"fmt"

	"github.com/facetpager/facetpager/pkg/dataset"
	"github.com/facetpager/facetpager/pkg/facet"
	"github.com/facetpager/facetpager/pkg/plot"
	"github.com/facetpager/facetpager/pkg/render/grid"
	"github.com/facetpager/facetpager/pkg/render/grid/styles"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	plot  *plot.Spec
	style styles.Style
}

// WithPlot attaches the page plot so the renderer can draw the title block,
// axis labels, and data points. Without it only panel frames and strips are
// drawn.
func WithPlot(p plot.Spec) SVGOption { return func(r *svgRenderer) { r.plot = &p } }

// WithStyle sets the visual style (default [styles.Simple]).
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// RenderSVG renders one page layout as SVG.
func RenderSVG(l grid.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{style: styles.Simple{}}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.FrameWidth, l.FrameHeight, l.FrameWidth, l.FrameHeight)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="#ffffff"/>`+"\n",
		l.FrameWidth, l.FrameHeight)

	r.style.RenderDefs(&buf)

	if r.plot != nil && l.TitleHeight > 0 {
		r.style.RenderTitle(&buf, styles.TitleBlock{
			Title:    r.plot.Title(),
			Subtitle: r.plot.Subtitle(),
			CX:       l.FrameWidth / 2,
			Y:        l.MarginY + 18,
			H:        l.TitleHeight,
		})
	}

	for _, pn := range l.Panels {
		px, py, pw, ph := pn.PlotRect()
		r.style.RenderPanel(&buf, styles.PanelBox{X: px, Y: py, W: pw, H: ph})

		sx, sy, sw, sh := pn.StripRect()
		r.style.RenderStrip(&buf, styles.Strip{Label: pn.Key.Label(), X: sx, Y: sy, W: sw, H: sh})
	}

	if r.plot != nil {
		r.renderData(&buf, l)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// renderData draws axis ticks and points for each panel by bucketing the
// page's rows per facet level and scaling values into the panel rects.
func (r *svgRenderer) renderData(buf *bytes.Buffer, l grid.Layout) {
	p := *r.plot
	data := p.Data()
	f, ok := p.Facet()
	if !ok || data == nil {
		return
	}

	aes := p.Aes()
	xRef, errX := data.Column(aes.X)
	yRef, errY := data.Column(aes.Y)
	if errX != nil || errY != nil || !xRef.IsNumeric() || !yRef.IsNumeric() {
		return
	}

	colors := pointColors(data, aes.Color)

	keyer, err := facet.NewKeyer(data, f.Columns)
	if err != nil {
		return
	}
	rowsByKey := make(map[facet.Key][]int)
	for i := 0; i < data.NumRows(); i++ {
		k := keyer.Key(i)
		rowsByKey[k] = append(rowsByKey[k], i)
	}

	for _, pn := range l.Panels {
		rows := rowsByKey[pn.Key]
		px, py, pw, ph := pn.PlotRect()

		xlim, okX := axisLimits(p.XLim, p.XScale, f.Scales.FreesX(), xRef, rows)
		ylim, okY := axisLimits(p.YLim, p.YScale, f.Scales.FreesY(), yRef, rows)
		if !okX || !okY {
			continue
		}

		r.style.RenderAxes(buf, styles.Axes{
			PanelX: px, PanelY: py, PanelW: pw, PanelH: ph,
			XTicks: xTicks(xlim, px, pw),
			YTicks: yTicks(ylim, py, ph),
		})

		for _, i := range rows {
			pt := styles.Point{
				X: px + scale(xRef.Number(i), xlim)*pw,
				Y: py + (1-scale(yRef.Number(i), ylim))*ph, // SVG y grows downward
			}
			if colors != nil {
				pt.Color = colors[i]
			}
			r.style.RenderPoint(buf, pt)
		}
	}
}

// pointColors resolves the color aesthetic to a per-row fill. Distinct column
// values get palette colors in dataset row order, so the assignment is stable
// across panels. Returns nil when no color column is mapped or it is unknown,
// leaving every point on the style default.
func pointColors(data *dataset.Dataset, column string) []string {
	if column == "" {
		return nil
	}
	ref, err := data.Column(column)
	if err != nil {
		return nil
	}
	colors := make([]string, data.NumRows())
	assigned := make(map[string]string)
	for i := range colors {
		v := ref.Value(i)
		c, ok := assigned[v]
		if !ok {
			c = styles.PaletteColor(len(assigned))
			assigned[v] = c
		}
		colors[i] = c
	}
	return colors
}

// axisLimits resolves the drawing range for one axis. Forced page limits win,
// then an explicit user scale; free axes fall back to the panel's own rows,
// fixed axes to the page dataset.
func axisLimits(lim, explicit func() (plot.Limits, bool), free bool, ref rangeRef, rows []int) (plot.Limits, bool) {
	if l, ok := lim(); ok {
		return l, true
	}
	if l, ok := explicit(); ok {
		return l, true
	}
	if free {
		return rowRange(ref, rows)
	}
	lo, hi, ok := ref.Range()
	if !ok {
		return plot.Limits{}, false
	}
	return plot.Limits{Min: lo, Max: hi}, true
}

type rangeRef interface {
	Number(i int) float64
	Range() (float64, float64, bool)
}

func rowRange(ref rangeRef, rows []int) (plot.Limits, bool) {
	if len(rows) == 0 {
		return plot.Limits{}, false
	}
	lo, hi := ref.Number(rows[0]), ref.Number(rows[0])
	for _, i := range rows[1:] {
		v := ref.Number(i)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return plot.Limits{Min: lo, Max: hi}, true
}

// scale maps v into [0,1] within lim. Degenerate ranges center the point.
func scale(v float64, lim plot.Limits) float64 {
	span := lim.Max - lim.Min
	if span == 0 {
		return 0.5
	}
	return (v - lim.Min) / span
}

func xTicks(lim plot.Limits, px, pw float64) []styles.Tick {
	return []styles.Tick{
		{Pos: px, Label: styles.FormatTick(lim.Min)},
		{Pos: px + pw/2, Label: styles.FormatTick((lim.Min + lim.Max) / 2)},
		{Pos: px + pw, Label: styles.FormatTick(lim.Max)},
	}
}

func yTicks(lim plot.Limits, py, ph float64) []styles.Tick {
	return []styles.Tick{
		{Pos: py + ph, Label: styles.FormatTick(lim.Min)},
		{Pos: py + ph/2, Label: styles.FormatTick((lim.Min + lim.Max) / 2)},
		{Pos: py, Label: styles.FormatTick(lim.Max)},
	}
}
