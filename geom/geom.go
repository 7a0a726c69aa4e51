// Package geom defines the closed set of geometries that labels attach to.
//
// Every geometry flattens to a list of paths (lines or rings) and a list of
// reference points. Path placement consumes the former, point placement the
// latter, so neither needs to know the concrete geometry type.
package geom

import (
	"github.com/gogpu/maplabel"
	"github.com/gogpu/maplabel/internal/pathwalk"
)

// Kind identifies the geometry variant.
type Kind int

const (
	KindPoint Kind = iota
	KindLineString
	KindPolygon
	KindMultiLineString
	KindMultiPolygon
)

var kindNames = [...]string{
	KindPoint:           "Point",
	KindLineString:      "LineString",
	KindPolygon:         "Polygon",
	KindMultiLineString: "MultiLineString",
	KindMultiPolygon:    "MultiPolygon",
}

// String returns the string representation of a Kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Geometry is implemented by Point, LineString, Polygon, MultiLineString
// and MultiPolygon. The set is closed.
type Geometry interface {
	// Kind returns the geometry variant.
	Kind() Kind

	// Paths returns the candidate paths for line placement: the coordinates
	// of a line, of every component line, or of every ring. A Point has none.
	Paths() [][]maplabel.Point

	// ReferencePoints returns the anchors used for point placement, one per
	// component.
	ReferencePoints() []maplabel.Point

	// Bounds returns the bounding box of all coordinates.
	Bounds() maplabel.Rect

	// Translate returns a copy moved by (dx, dy).
	Translate(dx, dy float64) Geometry

	// Clone returns a deep copy.
	Clone() Geometry

	// private prevents external implementation
	private()
}

// Point is a single position.
type Point struct {
	Coord maplabel.Point
}

// LineString is an ordered sequence of positions.
type LineString struct {
	Coords []maplabel.Point
}

// Polygon is a list of linear rings. The first ring is the exterior, the
// rest are holes. Rings are expected to be closed (first == last) but this
// is not enforced.
type Polygon struct {
	Rings [][]maplabel.Point
}

// MultiLineString is a list of independent lines.
type MultiLineString struct {
	Lines []LineString
}

// MultiPolygon is a list of independent polygons.
type MultiPolygon struct {
	Polygons []Polygon
}

// NewPoint creates a Point geometry.
func NewPoint(x, y float64) *Point {
	return &Point{Coord: maplabel.Pt(x, y)}
}

// NewLineString creates a LineString from flat x, y pairs.
func NewLineString(flat ...float64) *LineString {
	return &LineString{Coords: FromFlat(flat)}
}

// NewPolygon creates a single-ring Polygon from flat x, y pairs.
func NewPolygon(flat ...float64) *Polygon {
	return &Polygon{Rings: [][]maplabel.Point{FromFlat(flat)}}
}

// FromFlat converts interleaved x, y values into points. A trailing odd
// value is ignored.
func FromFlat(flat []float64) []maplabel.Point {
	out := make([]maplabel.Point, 0, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		out = append(out, maplabel.Pt(flat[i], flat[i+1]))
	}
	return out
}

// Kind implements Geometry.
func (*Point) Kind() Kind { return KindPoint }

// Kind implements Geometry.
func (*LineString) Kind() Kind { return KindLineString }

// Kind implements Geometry.
func (*Polygon) Kind() Kind { return KindPolygon }

// Kind implements Geometry.
func (*MultiLineString) Kind() Kind { return KindMultiLineString }

// Kind implements Geometry.
func (*MultiPolygon) Kind() Kind { return KindMultiPolygon }

// Paths implements Geometry.
func (*Point) Paths() [][]maplabel.Point { return nil }

// Paths implements Geometry.
func (g *LineString) Paths() [][]maplabel.Point {
	return [][]maplabel.Point{g.Coords}
}

// Paths implements Geometry.
func (g *Polygon) Paths() [][]maplabel.Point {
	return g.Rings
}

// Paths implements Geometry.
func (g *MultiLineString) Paths() [][]maplabel.Point {
	out := make([][]maplabel.Point, len(g.Lines))
	for i, l := range g.Lines {
		out[i] = l.Coords
	}
	return out
}

// Paths implements Geometry.
func (g *MultiPolygon) Paths() [][]maplabel.Point {
	var out [][]maplabel.Point
	for _, p := range g.Polygons {
		out = append(out, p.Rings...)
	}
	return out
}

// ReferencePoints implements Geometry.
func (g *Point) ReferencePoints() []maplabel.Point {
	return []maplabel.Point{g.Coord}
}

// ReferencePoints implements Geometry. The reference point of a line is the
// position halfway along its length.
func (g *LineString) ReferencePoints() []maplabel.Point {
	if len(g.Coords) == 0 {
		return nil
	}
	return []maplabel.Point{midpoint(g.Coords)}
}

// ReferencePoints implements Geometry. The reference point of a polygon is
// the area centroid of its exterior ring.
func (g *Polygon) ReferencePoints() []maplabel.Point {
	if len(g.Rings) == 0 || len(g.Rings[0]) == 0 {
		return nil
	}
	return []maplabel.Point{centroid(g.Rings[0])}
}

// ReferencePoints implements Geometry.
func (g *MultiLineString) ReferencePoints() []maplabel.Point {
	var out []maplabel.Point
	for i := range g.Lines {
		out = append(out, g.Lines[i].ReferencePoints()...)
	}
	return out
}

// ReferencePoints implements Geometry.
func (g *MultiPolygon) ReferencePoints() []maplabel.Point {
	var out []maplabel.Point
	for i := range g.Polygons {
		out = append(out, g.Polygons[i].ReferencePoints()...)
	}
	return out
}

// Bounds implements Geometry.
func (g *Point) Bounds() maplabel.Rect {
	return maplabel.EmptyRect().Extend(g.Coord)
}

// Bounds implements Geometry.
func (g *LineString) Bounds() maplabel.Rect { return bounds(g.Paths()) }

// Bounds implements Geometry.
func (g *Polygon) Bounds() maplabel.Rect { return bounds(g.Paths()) }

// Bounds implements Geometry.
func (g *MultiLineString) Bounds() maplabel.Rect { return bounds(g.Paths()) }

// Bounds implements Geometry.
func (g *MultiPolygon) Bounds() maplabel.Rect { return bounds(g.Paths()) }

// Translate implements Geometry.
func (g *Point) Translate(dx, dy float64) Geometry {
	return &Point{Coord: g.Coord.Add(maplabel.Pt(dx, dy))}
}

// Translate implements Geometry.
func (g *LineString) Translate(dx, dy float64) Geometry {
	return &LineString{Coords: translate(g.Coords, dx, dy)}
}

// Translate implements Geometry.
func (g *Polygon) Translate(dx, dy float64) Geometry {
	return &Polygon{Rings: translateAll(g.Rings, dx, dy)}
}

// Translate implements Geometry.
func (g *MultiLineString) Translate(dx, dy float64) Geometry {
	out := &MultiLineString{Lines: make([]LineString, len(g.Lines))}
	for i, l := range g.Lines {
		out.Lines[i] = LineString{Coords: translate(l.Coords, dx, dy)}
	}
	return out
}

// Translate implements Geometry.
func (g *MultiPolygon) Translate(dx, dy float64) Geometry {
	out := &MultiPolygon{Polygons: make([]Polygon, len(g.Polygons))}
	for i, p := range g.Polygons {
		out.Polygons[i] = Polygon{Rings: translateAll(p.Rings, dx, dy)}
	}
	return out
}

// Clone implements Geometry.
func (g *Point) Clone() Geometry { return g.Translate(0, 0) }

// Clone implements Geometry.
func (g *LineString) Clone() Geometry { return g.Translate(0, 0) }

// Clone implements Geometry.
func (g *Polygon) Clone() Geometry { return g.Translate(0, 0) }

// Clone implements Geometry.
func (g *MultiLineString) Clone() Geometry { return g.Translate(0, 0) }

// Clone implements Geometry.
func (g *MultiPolygon) Clone() Geometry { return g.Translate(0, 0) }

func (*Point) private()           {}
func (*LineString) private()      {}
func (*Polygon) private()         {}
func (*MultiLineString) private() {}
func (*MultiPolygon) private()    {}

func translate(pts []maplabel.Point, dx, dy float64) []maplabel.Point {
	if pts == nil {
		return nil
	}
	return maplabel.Translate(dx, dy).TransformPoints(pts)
}

func translateAll(rings [][]maplabel.Point, dx, dy float64) [][]maplabel.Point {
	if rings == nil {
		return nil
	}
	out := make([][]maplabel.Point, len(rings))
	for i, r := range rings {
		out[i] = translate(r, dx, dy)
	}
	return out
}

func bounds(paths [][]maplabel.Point) maplabel.Rect {
	r := maplabel.EmptyRect()
	for _, path := range paths {
		for _, p := range path {
			r = r.Extend(p)
		}
	}
	return r
}

func midpoint(pts []maplabel.Point) maplabel.Point {
	walk := pathwalk.New(pts)
	if walk.Degenerate() {
		return pts[0]
	}
	p, _ := walk.At(walk.Length() / 2)
	return p
}

// centroid returns the area centroid of a ring, falling back to the vertex
// average when the ring has no area.
func centroid(ring []maplabel.Point) maplabel.Point {
	var a, cx, cy float64
	n := len(ring)
	for i := 0; i < n; i++ {
		p, q := ring[i], ring[(i+1)%n]
		cross := p.X*q.Y - q.X*p.Y
		a += cross
		cx += (p.X + q.X) * cross
		cy += (p.Y + q.Y) * cross
	}
	if a == 0 {
		var sum maplabel.Point
		for _, p := range ring {
			sum = sum.Add(p)
		}
		return sum.Mul(1 / float64(n))
	}
	return maplabel.Pt(cx/(3*a), cy/(3*a))
}
