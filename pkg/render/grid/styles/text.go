package styles

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"unicode/utf8"
)

const (
	fontCharWidth = 0.55
	fontSizeMin   = 8.0
	fontSizeMax   = 16.0
)

// StripFontSize picks a font size that fits the label into the strip.
func StripFontSize(s Strip) float64 {
	n := max(1, utf8.RuneCountInString(s.Label))
	byHeight := s.H * 0.65
	byWidth := (s.W * 0.9) / (float64(n) * fontCharWidth)
	return max(fontSizeMin, min(fontSizeMax, min(byHeight, byWidth)))
}

// TruncateLabel shortens a label to fit availWidth at the given font size.
// Truncation counts runes, not bytes, so multi-byte facet labels never get
// split mid-character.
func TruncateLabel(label string, availWidth, fontSize float64) string {
	charWidth := fontSize * fontCharWidth
	maxChars := int(availWidth / charWidth)
	if maxChars < 3 {
		maxChars = 3
	}
	runes := []rune(label)
	if len(runes) <= maxChars {
		return label
	}
	return string(runes[:maxChars-2]) + ".."
}

// categoricalPalette colors points by the color aesthetic. Values beyond the
// palette wrap around.
var categoricalPalette = []string{
	"#3366cc", "#dc3912", "#ff9900", "#109618", "#990099",
	"#0099c6", "#dd4477", "#66aa00", "#b82e2e", "#316395",
}

// PaletteColor returns the fill for the nth distinct color-aesthetic value.
func PaletteColor(n int) string {
	return categoricalPalette[n%len(categoricalPalette)]
}

// FormatTick renders a tick value compactly (no trailing zeros).
func FormatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
