// Package metrics measures label text.
//
// A Provider answers one question: how wide is this single line of text in
// this font, and how tall is its line box. Three implementations are
// provided:
//
//   - FaceProvider shapes text with HarfBuzz (go-text/typesetting) against
//     real font files. The Go fonts are built in.
//   - Approximate estimates sizes from the font size alone. It is used for
//     fonts that cannot be parsed.
//   - Cached memoizes any Provider per (font, text) pair.
//
// Sizes are in CSS pixels at scale 1.
package metrics

// Extent is the measured size of one line of text.
type Extent struct {
	// Width is the advance width of the line.
	Width float64

	// Height is the line box height.
	Height float64

	// Ascent is the distance from the top of the line box to the
	// alphabetic baseline.
	Ascent float64
}

// Provider measures single lines of text. Implementations must be safe for
// concurrent use.
type Provider interface {
	Measure(font, text string) Extent
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(font, text string) Extent

// Measure calls f(font, text).
func (f ProviderFunc) Measure(font, text string) Extent { return f(font, text) }
