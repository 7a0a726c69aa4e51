// Package pathwalk parametrises a polyline by arc length.
package pathwalk

import (
	"math"
	"sort"

	"github.com/gogpu/maplabel"
)

// Path is a polyline with precomputed cumulative segment lengths.
// Zero-length segments are kept so indices line up with the input, but
// they never contain a position and have no direction of their own.
type Path struct {
	pts []maplabel.Point
	cum []float64 // cum[i] is the arc length at pts[i]
}

// New builds a Path over pts. The slice is not copied and must not be
// modified while the Path is in use.
func New(pts []maplabel.Point) *Path {
	cum := make([]float64, len(pts))
	for i := 1; i < len(pts); i++ {
		cum[i] = cum[i-1] + pts[i].Distance(pts[i-1])
	}
	return &Path{pts: pts, cum: cum}
}

// Reversed returns the same polyline walked from its last vertex.
func (p *Path) Reversed() *Path {
	n := len(p.pts)
	rev := make([]maplabel.Point, n)
	for i, pt := range p.pts {
		rev[n-1-i] = pt
	}
	return New(rev)
}

// Points returns the vertices of the path.
func (p *Path) Points() []maplabel.Point {
	return p.pts
}

// Length returns the total arc length.
func (p *Path) Length() float64 {
	if len(p.cum) == 0 {
		return 0
	}
	return p.cum[len(p.cum)-1]
}

// Segments returns the number of segments (vertices minus one).
func (p *Path) Segments() int {
	if len(p.pts) < 2 {
		return 0
	}
	return len(p.pts) - 1
}

// Degenerate reports whether the path cannot carry a label: fewer than two
// vertices or zero total length.
func (p *Path) Degenerate() bool {
	return p.Segments() == 0 || p.Length() == 0
}

// SegmentAt returns the index of the segment holding arc length s.
// Positions before the start map to the first non-empty segment and
// positions past the end to the last non-empty one. Where s falls exactly on
// a vertex the earlier segment is used.
func (p *Path) SegmentAt(s float64) int {
	n := p.Segments()
	if n == 0 {
		return -1
	}
	// First vertex index whose cumulative length is >= s.
	i := sort.SearchFloat64s(p.cum, s)
	seg := i - 1
	if seg < 0 {
		seg = 0
	}
	if seg > n-1 {
		seg = n - 1
	}
	return p.nonEmpty(seg)
}

// nonEmpty moves seg to the nearest segment with a positive length,
// preferring later segments.
func (p *Path) nonEmpty(seg int) int {
	n := p.Segments()
	for i := seg; i < n; i++ {
		if p.SegmentLength(i) > 0 {
			return i
		}
	}
	for i := seg - 1; i >= 0; i-- {
		if p.SegmentLength(i) > 0 {
			return i
		}
	}
	return seg
}

// SegmentLength returns the length of segment i.
func (p *Path) SegmentLength(i int) float64 {
	return p.cum[i+1] - p.cum[i]
}

// SegmentStart returns the arc length at the first vertex of segment i.
func (p *Path) SegmentStart(i int) float64 {
	return p.cum[i]
}

// SegmentAngle returns the direction of segment i in radians.
func (p *Path) SegmentAngle(i int) float64 {
	return p.pts[i+1].Sub(p.pts[i]).Angle()
}

// At returns the position at arc length s and the index of the segment it
// lies on. Values outside [0, Length] extrapolate along the first or last
// segment.
func (p *Path) At(s float64) (maplabel.Point, int) {
	seg := p.SegmentAt(s)
	if seg < 0 {
		if len(p.pts) == 1 {
			return p.pts[0], -1
		}
		return maplabel.Point{}, -1
	}
	l := p.SegmentLength(seg)
	if l == 0 {
		return p.pts[seg], seg
	}
	t := (s - p.cum[seg]) / l
	return p.pts[seg].Lerp(p.pts[seg+1], t), seg
}

// TurningAngle returns the summed absolute change of direction between
// consecutive non-empty segments covering the arc length range [from, to].
func (p *Path) TurningAngle(from, to float64) float64 {
	first, last := p.SegmentAt(from), p.SegmentAt(to)
	if first < 0 {
		return 0
	}
	total := 0.0
	prev := p.SegmentAngle(first)
	for i := first + 1; i <= last; i++ {
		if p.SegmentLength(i) == 0 {
			continue
		}
		angle := p.SegmentAngle(i)
		total += math.Abs(maplabel.NormalizeAngle(angle - prev))
		prev = angle
	}
	return total
}

// OnSegment returns the position at arc length s on the line through
// segment i, extrapolating past either end of the segment.
func (p *Path) OnSegment(i int, s float64) maplabel.Point {
	l := p.SegmentLength(i)
	if l == 0 {
		return p.pts[i]
	}
	return p.pts[i].Lerp(p.pts[i+1], (s-p.cum[i])/l)
}
