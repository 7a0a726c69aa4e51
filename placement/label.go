package placement

import (
	"github.com/gogpu/maplabel"
	"github.com/gogpu/maplabel/style"
)

// Kind tells how a label was placed.
type Kind int

const (
	KindPoint Kind = iota
	KindPath
)

var kindNames = [...]string{
	KindPoint: "point",
	KindPath:  "path",
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Glyphs is a run of text drawn with a single origin and rotation. A point
// label has one run per line; a path label has one run per chunk of
// grapheme clusters sharing a path segment.
//
// All positions and sizes are in device pixels.
type Glyphs struct {
	Text string

	// Origin is the left end of the run's alphabetic baseline.
	Origin maplabel.Point

	// Rotation turns the run clockwise around Origin, in radians.
	Rotation float64

	// Width, Height and Ascent describe the run's box: it extends Ascent
	// above the baseline and Height-Ascent below.
	Width, Height, Ascent float64

	// Font is the CSS font shorthand to draw with.
	Font string

	// ScaleX and ScaleY stretch glyphs drawn at the font's nominal size
	// to device pixels.
	ScaleX, ScaleY float64
}

// Box returns the run's rotated box.
func (g Glyphs) Box() Box {
	return Box{
		Origin:   g.Origin,
		Rotation: g.Rotation,
		Rect:     maplabel.RectXYWH(0, -g.Ascent, g.Width, g.Height),
	}
}

// Box is a rectangle rotated around Origin.
type Box struct {
	Origin   maplabel.Point
	Rotation float64

	// Rect is given relative to Origin, before rotation.
	Rect maplabel.Rect
}

// Corners returns the four corners in device space.
func (b Box) Corners() [4]maplabel.Point {
	c := b.Rect.Corners()
	for i := range c {
		c[i] = b.Origin.Add(c[i].Rotate(b.Rotation))
	}
	return c
}

// Contains reports whether p lies inside the box.
func (b Box) Contains(p maplabel.Point) bool {
	return b.Rect.Contains(p.Sub(b.Origin).Rotate(-b.Rotation))
}

// Bounds returns the axis-aligned bounding box in device space.
func (b Box) Bounds() maplabel.Rect {
	r := maplabel.EmptyRect()
	for _, c := range b.Corners() {
		r = r.Extend(c)
	}
	return r
}

// Label is one positioned text run: everything a backend needs to paint a
// label, with sizes resolved to device pixels. It holds no reference to
// the style it came from.
type Label struct {
	Kind Kind

	// Anchor is the point the label hangs on: the offset reference point
	// of a point label, or the middle of the span of a path label.
	Anchor maplabel.Point

	// Rotation is the label's overall rotation. For path labels it is the
	// direction of the span.
	Rotation float64

	Glyphs []Glyphs

	// Fill and Stroke decorate every run. Stroke.Width is in device pixels.
	Fill   *style.Fill
	Stroke *style.Stroke

	// Box is the padded block box of a point label. Path labels leave it
	// zero.
	Box Box

	// BackgroundFill and BackgroundStroke paint Box. They are only set on
	// point labels.
	BackgroundFill   *style.Fill
	BackgroundStroke *style.Stroke
}

// HasBackground reports whether the label paints its box.
func (l *Label) HasBackground() bool {
	return l.BackgroundFill != nil || l.BackgroundStroke != nil
}

// Contains reports whether the device pixel p hits the label: its padded
// box for point labels, any of its runs for path labels.
func (l *Label) Contains(p maplabel.Point) bool {
	if l.Kind == KindPoint {
		return l.Box.Contains(p)
	}
	for _, g := range l.Glyphs {
		if g.Box().Contains(p) {
			return true
		}
	}
	return false
}

// Bounds returns the device-space bounding box of the label.
func (l *Label) Bounds() maplabel.Rect {
	if l.Kind == KindPoint {
		return l.Box.Bounds()
	}
	r := maplabel.EmptyRect()
	for _, g := range l.Glyphs {
		r = r.Union(g.Box().Bounds())
	}
	return r
}

// Text returns the concatenated text of all runs.
func (l *Label) Text() string {
	n := 0
	for _, g := range l.Glyphs {
		n += len(g.Text)
	}
	b := make([]byte, 0, n)
	for _, g := range l.Glyphs {
		b = append(b, g.Text...)
	}
	return string(b)
}
