package metrics

import (
	"strconv"
	"strings"
)

// FontStyle is the slant requested by a font shorthand.
type FontStyle int

const (
	StyleNormal FontStyle = iota
	StyleItalic
	StyleOblique
)

// Common font weights.
const (
	WeightNormal = 400
	WeightBold   = 700
)

// FontSpec is a parsed CSS font shorthand.
type FontSpec struct {
	Style  FontStyle
	Weight int

	// Size in CSS pixels.
	Size float64

	// LineHeight is the line box height as a multiple of Size, or 0 for
	// the font's own line spacing.
	LineHeight float64

	// Families in preference order, without quotes.
	Families []string
}

// Bold reports whether the weight selects a bold face.
func (s FontSpec) Bold() bool { return s.Weight >= 600 }

// Slanted reports whether the style selects an italic face.
func (s FontSpec) Slanted() bool { return s.Style != StyleNormal }

// ParseFont parses a CSS font shorthand:
//
//	[style] [variant] [weight] [stretch] size[/line-height] family[, family...]
//
// for example "bold 14px sans-serif" or "italic 600 12pt/1.5 'Noto Sans', serif".
// Sizes may be given in px, pt, em or rem (1em = 16px).
func ParseFont(font string) (FontSpec, error) {
	spec := FontSpec{Weight: WeightNormal}
	rest := strings.TrimSpace(font)
	if rest == "" {
		return spec, &FontError{Font: font, Reason: "empty"}
	}

	for {
		word, tail := nextWord(rest)
		if word == "" {
			return spec, &FontError{Font: font, Reason: "missing size"}
		}
		if size, lh, ok, err := parseSize(word); ok {
			if err != nil {
				return spec, &FontError{Font: font, Reason: err.Error()}
			}
			spec.Size, spec.LineHeight = size, lh
			rest = tail
			break
		}
		if !spec.applyKeyword(word) {
			return spec, &FontError{Font: font, Reason: "unexpected " + strconv.Quote(word)}
		}
		rest = tail
	}

	for _, f := range strings.Split(rest, ",") {
		f = strings.Trim(strings.TrimSpace(f), `"'`)
		if f != "" {
			spec.Families = append(spec.Families, f)
		}
	}
	if len(spec.Families) == 0 {
		return spec, &FontError{Font: font, Reason: "missing family"}
	}
	return spec, nil
}

func nextWord(s string) (word, rest string) {
	s = strings.TrimLeft(s, " \t")
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], strings.TrimLeft(s[i:], " \t")
	}
	return s, ""
}

// applyKeyword consumes a style, variant, weight or stretch keyword.
func (s *FontSpec) applyKeyword(w string) bool {
	switch strings.ToLower(w) {
	case "normal", "small-caps":
	case "italic":
		s.Style = StyleItalic
	case "oblique":
		s.Style = StyleOblique
	case "bold", "bolder":
		s.Weight = WeightBold
	case "lighter":
		s.Weight = 300
	case "ultra-condensed", "extra-condensed", "condensed", "semi-condensed",
		"semi-expanded", "expanded", "extra-expanded", "ultra-expanded":
	default:
		n, err := strconv.Atoi(w)
		if err != nil || n < 1 || n > 1000 {
			return false
		}
		s.Weight = n
	}
	return true
}

var units = []struct {
	suffix string
	px     float64
}{
	{"rem", 16},
	{"px", 1},
	{"pt", 4.0 / 3.0},
	{"em", 16},
}

// parseSize recognizes "14px" or "14px/1.2". ok is false when w is not a
// size token at all.
func parseSize(w string) (size, lineHeight float64, ok bool, err error) {
	sizePart, lhPart, hasLH := strings.Cut(w, "/")
	for _, u := range units {
		num, found := strings.CutSuffix(strings.ToLower(sizePart), u.suffix)
		if !found {
			continue
		}
		v, perr := strconv.ParseFloat(num, 64)
		if perr != nil {
			return 0, 0, false, nil
		}
		if v <= 0 {
			return 0, 0, true, errSize
		}
		size = v * u.px
		if hasLH {
			lineHeight, err = parseLineHeight(lhPart, size)
		}
		return size, lineHeight, true, err
	}
	return 0, 0, false, nil
}

type fontErr string

func (e fontErr) Error() string { return string(e) }

const (
	errSize       = fontErr("size must be positive")
	errLineHeight = fontErr("invalid line height")
)

// parseLineHeight returns the line height as a multiple of size.
func parseLineHeight(s string, size float64) (float64, error) {
	if strings.EqualFold(s, "normal") {
		return 0, nil
	}
	if px, ok := strings.CutSuffix(strings.ToLower(s), "px"); ok {
		v, err := strconv.ParseFloat(px, 64)
		if err != nil || v <= 0 {
			return 0, errLineHeight
		}
		return v / size, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, errLineHeight
	}
	return v, nil
}
