package vellum

// TextMetrics are a font's line metrics at a size.
type TextMetrics struct {
	Ascent     float64 // baseline to top, positive
	Descent    float64 // baseline to bottom, positive
	LineHeight float64 // baseline to baseline
}

// GlyphAdvance positions one glyph along the line. Offsets are relative to
// the text origin and increase monotonically.
type GlyphAdvance struct {
	Offset float64
	Width  float64
}

// FontService measures text. Looking up an unknown font is an authoring
// error and panics; loading fonts is a setup step owned by the backend.
type FontService interface {
	Measure(font, text string, size float64) TextMetrics
	GlyphAdvances(font, text string, size float64) []GlyphAdvance
}

// advanceWidth returns the extent of a glyph run.
func advanceWidth(glyphs []GlyphAdvance) float64 {
	if len(glyphs) == 0 {
		return 0
	}
	last := glyphs[len(glyphs)-1]
	return last.Offset + last.Width
}

// PrefixAdvances builds glyph advances from a function returning the
// advance width of a string, measuring every rune-boundary prefix. Offsets
// are forced monotonic so kerning quirks cannot move a glyph backwards.
func PrefixAdvances(text string, advance func(string) float64) []GlyphAdvance {
	out := make([]GlyphAdvance, 0, len(text))
	prev := 0.0
	for i := range text {
		if i == 0 {
			continue
		}
		w := advance(text[:i])
		if w < prev {
			w = prev
		}
		out = append(out, GlyphAdvance{Offset: prev, Width: w - prev})
		prev = w
	}
	if text != "" {
		w := advance(text)
		if w < prev {
			w = prev
		}
		out = append(out, GlyphAdvance{Offset: prev, Width: w - prev})
	}
	return out
}
