package styles

import "testing"

func TestTruncateLabel(t *testing.T) {
	tests := []struct {
		name  string
		label string
		avail float64
		size  float64
		want  string
	}{
		{name: "fits", label: "setosa", avail: 100, size: 12, want: "setosa"},
		{name: "truncated", label: "a very long facet level label", avail: 60, size: 12, want: "a very .."},
		{name: "tiny space keeps three chars", label: "abcdef", avail: 1, size: 12, want: "a.."},
		{name: "multi-byte runes survive truncation", label: "ääääääääää", avail: 34, size: 12, want: "äää.."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateLabel(tt.label, tt.avail, tt.size); got != tt.want {
				t.Errorf("TruncateLabel(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestStripFontSizeBounds(t *testing.T) {
	small := StripFontSize(Strip{Label: "a very very long label", W: 20, H: 18})
	if small != fontSizeMin {
		t.Errorf("cramped strip font = %g, want floor %g", small, fontSizeMin)
	}
	large := StripFontSize(Strip{Label: "a", W: 500, H: 100})
	if large != fontSizeMax {
		t.Errorf("roomy strip font = %g, want cap %g", large, fontSizeMax)
	}
}

func TestFormatTick(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{v: 0, want: "0"},
		{v: 2.5, want: "2.5"},
		{v: 100, want: "100"},
		{v: 0.333333, want: "0.3333"},
	}
	for _, tt := range tests {
		if got := FormatTick(tt.v); got != tt.want {
			t.Errorf("FormatTick(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestPaletteColor(t *testing.T) {
	if PaletteColor(0) == PaletteColor(1) {
		t.Error("adjacent palette entries should differ")
	}
	// Indices beyond the palette wrap around.
	if PaletteColor(0) != PaletteColor(len(categoricalPalette)) {
		t.Error("palette should wrap")
	}
}

func TestEscapeXML(t *testing.T) {
	if got := EscapeXML(`a<b & "c"`); got != `a&lt;b &amp; &#34;c&#34;` {
		t.Errorf("EscapeXML = %q", got)
	}
}
