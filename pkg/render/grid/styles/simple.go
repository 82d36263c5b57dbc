package styles

import (
	"bytes"
	"fmt"
)

// Simple is a clean, flat style: light panel backgrounds, grey strips, and
// solid points. It is the default style for all sinks.
type Simple struct{}

const (
	simplePanelFill  = "#fafafa"
	simplePanelLine  = "#d0d0d0"
	simpleStripFill  = "#e4e4e4"
	simpleTextColor  = "#2b2b2b"
	simpleMutedColor = "#6b6b6b"
	simplePointColor = "#3366cc"
	simplePointR     = 2.5
)

func (Simple) RenderDefs(buf *bytes.Buffer) {}

func (Simple) RenderPanel(buf *bytes.Buffer, p PanelBox) {
	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
		p.X, p.Y, p.W, p.H, simplePanelFill, simplePanelLine)
}

func (Simple) RenderStrip(buf *bytes.Buffer, s Strip) {
	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
		s.X, s.Y, s.W, s.H, simpleStripFill, simplePanelLine)

	size := StripFontSize(s)
	label := TruncateLabel(s.Label, s.W*0.9, size)
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="%.1f" font-family="sans-serif" fill="%s" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
		s.X+s.W/2, s.Y+s.H/2, size, simpleTextColor, EscapeXML(label))
}

func (Simple) RenderPoint(buf *bytes.Buffer, pt Point) {
	r := pt.R
	if r <= 0 {
		r = simplePointR
	}
	color := pt.Color
	if color == "" {
		color = simplePointColor
	}
	fmt.Fprintf(buf, `  <circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" fill-opacity="0.85"/>`+"\n",
		pt.X, pt.Y, r, color)
}

func (Simple) RenderAxes(buf *bytes.Buffer, a Axes) {
	for _, t := range a.XTicks {
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="9" font-family="sans-serif" fill="%s" text-anchor="middle">%s</text>`+"\n",
			t.Pos, a.PanelY+a.PanelH+11, simpleMutedColor, EscapeXML(t.Label))
	}
	for _, t := range a.YTicks {
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="9" font-family="sans-serif" fill="%s" text-anchor="end" dominant-baseline="middle">%s</text>`+"\n",
			a.PanelX-5, t.Pos, simpleMutedColor, EscapeXML(t.Label))
	}
}

func (Simple) RenderTitle(buf *bytes.Buffer, t TitleBlock) {
	if t.Title != "" {
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="18" font-family="sans-serif" font-weight="bold" fill="%s" text-anchor="middle">%s</text>`+"\n",
			t.CX, t.Y, simpleTextColor, EscapeXML(t.Title))
	}
	if t.Subtitle != "" {
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="12" font-family="sans-serif" font-style="italic" fill="%s" text-anchor="middle">%s</text>`+"\n",
			t.CX, t.Y+18, simpleMutedColor, EscapeXML(t.Subtitle))
	}
}
