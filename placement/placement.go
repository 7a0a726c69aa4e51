// Package placement positions labels for geometries.
//
// Place is a pure function of a text style, a geometry and the view
// scalars: it measures the text, lays out its lines and returns zero or
// more positioned labels in device pixels. Point placement hangs the block
// on each reference point of the geometry. Line placement walks every line
// and ring of the geometry and, for each one that can carry the text,
// bends the text along it:
//
//  1. fit check: the widest line must fit on the path unless overflow is set
//  2. upright keeping: text that would read upside-down is read from the
//     other end of the path
//  3. angle check: the path must not turn by more than the maximum angle
//     under the text
//  4. every run, once laid on its segment, must still read upright
//
// A candidate that fails a check is silently omitted.
package placement

import (
	"math"

	"github.com/gogpu/maplabel"
	"github.com/gogpu/maplabel/geom"
	"github.com/gogpu/maplabel/layout"
	"github.com/gogpu/maplabel/metrics"
	"github.com/gogpu/maplabel/style"
)

// Place returns the labels for g drawn with t in view v. Text sizes come
// from m. A line placement on a Point falls back to point placement.
func Place(g geom.Geometry, t *style.Text, v maplabel.View, m metrics.Provider) []Label {
	if g == nil || t == nil || t.Text() == "" {
		return nil
	}
	p := newPlacer(t, v, m)
	if p.block.Empty() {
		return nil
	}

	if t.Placement() == style.PlacementLine {
		if g.Kind() != geom.KindPoint {
			return p.paths(g.Paths())
		}
		maplabel.Logger().Debug("placement: line placement on a point, using point placement")
	}
	refs := g.ReferencePoints()
	labels := make([]Label, 0, len(refs))
	for _, ref := range refs {
		labels = append(labels, p.point(ref))
	}
	return labels
}

// AtPoint places t on the map coordinate ref.
func AtPoint(ref maplabel.Point, t *style.Text, v maplabel.View, m metrics.Provider) (Label, bool) {
	if t == nil || t.Text() == "" {
		return Label{}, false
	}
	p := newPlacer(t, v, m)
	if p.block.Empty() {
		return Label{}, false
	}
	return p.point(ref), true
}

// AlongPath places t along the map coordinates pts. It reports false when
// the path cannot carry the text.
func AlongPath(pts []maplabel.Point, t *style.Text, v maplabel.View, m metrics.Provider) (Label, bool) {
	if t == nil || t.Text() == "" {
		return Label{}, false
	}
	p := newPlacer(t, v, m)
	if p.block.Empty() {
		return Label{}, false
	}
	return p.path(pts)
}

// placer holds everything derived from the style and the view that is
// shared by all candidates of one geometry.
type placer struct {
	text    *style.Text
	view    maplabel.View
	toPixel maplabel.Matrix
	ratio   float64
	metrics metrics.Provider

	font           string
	scaleX, scaleY float64 // style scale times pixel ratio
	block          layout.Block

	fill             *style.Fill
	stroke           *style.Stroke
	backgroundFill   *style.Fill
	backgroundStroke *style.Stroke
}

func newPlacer(t *style.Text, v maplabel.View, m metrics.Provider) *placer {
	if m == nil {
		m = metrics.Approximate{}
	}
	pr := v.Ratio()
	sx, sy := t.Scale()
	p := &placer{
		text:    t,
		view:    v,
		toPixel: v.Transform(),
		ratio:   pr,
		metrics: m,
		font:    t.Font(),
		scaleX:  sx * pr,
		scaleY:  sy * pr,
	}

	pad := t.Padding()
	for i := range pad {
		pad[i] *= pr
	}
	p.block = layout.New(t.Text(), layout.Options{
		Align:    t.TextAlign(),
		Baseline: t.TextBaseline(),
		Padding:  pad,
	}, p.measure)

	// Halo and outline widths follow the geometric mean of the scale.
	strokeScale := pr * math.Sqrt(sx*sy)
	p.fill = t.Fill()
	p.stroke = scaledStroke(t.Stroke(), strokeScale)
	p.backgroundFill = t.BackgroundFill()
	p.backgroundStroke = scaledStroke(t.BackgroundStroke(), pr)
	return p
}

// measure returns the device pixel extent of one line.
func (p *placer) measure(s string) metrics.Extent {
	e := p.metrics.Measure(p.font, s)
	return metrics.Extent{
		Width:  e.Width * p.scaleX,
		Height: e.Height * p.scaleY,
		Ascent: e.Ascent * p.scaleY,
	}
}

func scaledStroke(s *style.Stroke, scale float64) *style.Stroke {
	if s == nil {
		return nil
	}
	s.Width = s.LineWidth() * scale
	return s
}

func (p *placer) label(kind Kind) Label {
	return Label{
		Kind:   kind,
		Fill:   copyFill(p.fill),
		Stroke: copyStroke(p.stroke),
	}
}

func (p *placer) glyphs(text string, origin maplabel.Point, rotation, width float64, line layout.Line) Glyphs {
	return Glyphs{
		Text:     text,
		Origin:   origin,
		Rotation: rotation,
		Width:    width,
		Height:   line.Height,
		Ascent:   line.Ascent,
		Font:     p.font,
		ScaleX:   p.scaleX,
		ScaleY:   p.scaleY,
	}
}

// point hangs the block on the map coordinate ref.
func (p *placer) point(ref maplabel.Point) Label {
	rotation := p.text.Rotation()
	if p.text.RotateWithView() {
		rotation -= p.view.Rotation
	}
	ox, oy := p.text.Offset()
	offset := maplabel.Pt(ox*p.ratio, oy*p.ratio).Rotate(rotation)
	anchor := p.toPixel.TransformPoint(ref).Add(offset)

	l := p.label(KindPoint)
	l.Anchor = anchor
	l.Rotation = rotation
	l.Glyphs = make([]Glyphs, 0, len(p.block.Lines))
	for _, line := range p.block.Lines {
		origin := anchor.Add(maplabel.Pt(line.X, line.Baseline()).Rotate(rotation))
		l.Glyphs = append(l.Glyphs, p.glyphs(line.Text, origin, rotation, line.Width, line))
	}
	l.Box = Box{Origin: anchor, Rotation: rotation, Rect: p.block.Background}
	l.BackgroundFill = copyFill(p.backgroundFill)
	l.BackgroundStroke = copyStroke(p.backgroundStroke)
	return l
}

func copyFill(f *style.Fill) *style.Fill {
	if f == nil {
		return nil
	}
	c := *f
	return &c
}

func copyStroke(s *style.Stroke) *style.Stroke {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
