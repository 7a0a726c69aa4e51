package metrics

import "unicode/utf8"

// Fallback proportions relative to the font size.
const (
	approxAdvance = 0.6
	approxHeight  = 1.2
	approxAscent  = 0.8
)

// DefaultSize is the font size assumed when a font cannot be parsed.
const DefaultSize = 10

// Approximate estimates text extents from the font size: every rune
// advances 0.6em and the line box is 1.2em tall.
type Approximate struct{}

// Measure implements Provider.
func (Approximate) Measure(font, text string) Extent {
	size := float64(DefaultSize)
	lh := 0.0
	if spec, err := ParseFont(font); err == nil {
		size, lh = spec.Size, spec.LineHeight
	}
	return approximate(size, lh, text)
}

func approximate(size, lineHeight float64, text string) Extent {
	h := size * approxHeight
	if lineHeight > 0 {
		h = size * lineHeight
	}
	return Extent{
		Width:  size * approxAdvance * float64(utf8.RuneCountInString(text)),
		Height: h,
		Ascent: size*approxAscent + (h-size*approxHeight)/2,
	}
}
