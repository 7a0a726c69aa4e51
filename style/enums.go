package style

import (
	"fmt"
	"strings"
)

// TextAlign controls the horizontal anchor of a label.
type TextAlign int

const (
	// AlignAuto is the unset value. Point labels center on the anchor;
	// path labels center on the path midpoint.
	AlignAuto TextAlign = iota
	AlignLeft
	AlignRight
	AlignCenter
)

var alignNames = [...]string{
	AlignAuto:   "auto",
	AlignLeft:   "left",
	AlignRight:  "right",
	AlignCenter: "center",
}

// String returns the string representation of the alignment.
func (a TextAlign) String() string {
	return enumString(alignNames[:], int(a))
}

// MarshalText implements encoding.TextMarshaler.
func (a TextAlign) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler. The empty string
// decodes to AlignAuto.
func (a *TextAlign) UnmarshalText(text []byte) error {
	v, err := enumParse("textAlign", alignNames[:], string(text))
	*a = TextAlign(v)
	return err
}

// TextBaseline controls the vertical anchor of a label.
type TextBaseline int

const (
	// BaselineAlphabetic puts the first line's alphabetic baseline on the
	// anchor. It is the default.
	BaselineAlphabetic TextBaseline = iota
	BaselineTop
	BaselineMiddle
	BaselineBottom
)

var baselineNames = [...]string{
	BaselineAlphabetic: "alphabetic",
	BaselineTop:        "top",
	BaselineMiddle:     "middle",
	BaselineBottom:     "bottom",
}

// String returns the string representation of the baseline.
func (b TextBaseline) String() string {
	return enumString(baselineNames[:], int(b))
}

// MarshalText implements encoding.TextMarshaler.
func (b TextBaseline) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *TextBaseline) UnmarshalText(text []byte) error {
	v, err := enumParse("textBaseline", baselineNames[:], string(text))
	*b = TextBaseline(v)
	return err
}

// Placement selects how a label derives its anchor from the geometry.
type Placement int

const (
	// PlacementPoint draws the label once per reference point.
	PlacementPoint Placement = iota
	// PlacementLine lays the label along every line or ring of the geometry.
	PlacementLine
)

var placementNames = [...]string{
	PlacementPoint: "point",
	PlacementLine:  "line",
}

// String returns the string representation of the placement.
func (p Placement) String() string {
	return enumString(placementNames[:], int(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p Placement) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Placement) UnmarshalText(text []byte) error {
	v, err := enumParse("placement", placementNames[:], string(text))
	*p = Placement(v)
	return err
}

func enumString(names []string, v int) string {
	if v >= 0 && v < len(names) {
		return names[v]
	}
	return "unknown"
}

func enumParse(field string, names []string, s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, nil
	}
	for i, name := range names {
		if name == s {
			return i, nil
		}
	}
	return 0, &FieldError{Field: field, Value: s, Reason: fmt.Sprintf("must be one of %s", strings.Join(names, ", "))}
}
