package geom

import (
	"testing"

	"github.com/gogpu/maplabel"
)

var uglyPolygon = []float64{151, 17, 163, 22, 159, 30, 150, 30, 143, 24, 151, 17}

func TestPathsPerKind(t *testing.T) {
	line := NewLineString(0, 0, 10, 0)
	poly := &Polygon{Rings: [][]maplabel.Point{
		FromFlat([]float64{0, 0, 10, 0, 10, 10, 0, 0}),
		FromFlat([]float64{2, 2, 3, 2, 3, 3, 2, 2}),
	}}

	tests := []struct {
		name string
		g    Geometry
		want int
	}{
		{"point", NewPoint(1, 2), 0},
		{"linestring", line, 1},
		{"polygon rings", poly, 2},
		{"multilinestring", &MultiLineString{Lines: []LineString{*line, *line, *line}}, 3},
		{"multipolygon rings", &MultiPolygon{Polygons: []Polygon{*poly, *NewPolygon(uglyPolygon...)}}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(tt.g.Paths()); got != tt.want {
				t.Errorf("%s: len(Paths()) = %d, want %d", tt.g.Kind(), got, tt.want)
			}
		})
	}
}

func TestReferencePoints(t *testing.T) {
	tests := []struct {
		name string
		g    Geometry
		want []maplabel.Point
	}{
		{"point", NewPoint(-20, 18), []maplabel.Point{maplabel.Pt(-20, 18)}},
		{"line midpoint by length", NewLineString(0, 0, 10, 0, 10, 30), []maplabel.Point{maplabel.Pt(10, 10)}},
		{"square centroid", NewPolygon(0, 0, 4, 0, 4, 4, 0, 4, 0, 0), []maplabel.Point{maplabel.Pt(2, 2)}},
		{"degenerate polygon", NewPolygon(0, 0, 2, 0, 4, 0), []maplabel.Point{maplabel.Pt(2, 0)}},
		{"multi line", &MultiLineString{Lines: []LineString{
			*NewLineString(0, 0, 2, 0),
			*NewLineString(0, 5, 4, 5),
		}}, []maplabel.Point{maplabel.Pt(1, 0), maplabel.Pt(2, 5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.g.ReferencePoints()
			if len(got) != len(tt.want) {
				t.Fatalf("ReferencePoints() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i].Distance(tt.want[i]) > 1e-9 {
					t.Errorf("ReferencePoints()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTranslateDoesNotAlias(t *testing.T) {
	orig := NewLineString(0, 0, 10, 0)
	moved := orig.Translate(0, 5).(*LineString)
	if moved.Coords[1] != maplabel.Pt(10, 5) {
		t.Errorf("Translate = %v", moved.Coords)
	}
	if orig.Coords[1] != maplabel.Pt(10, 0) {
		t.Error("Translate modified the original")
	}

	clone := orig.Clone().(*LineString)
	clone.Coords[0] = maplabel.Pt(99, 99)
	if orig.Coords[0] == clone.Coords[0] {
		t.Error("Clone shares coordinates with the original")
	}
}

func TestBounds(t *testing.T) {
	g := NewPolygon(uglyPolygon...)
	want := maplabel.Rect{MinX: 143, MinY: 17, MaxX: 163, MaxY: 30}
	if got := g.Bounds(); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}

func TestKindString(t *testing.T) {
	if KindMultiPolygon.String() != "MultiPolygon" || Kind(42).String() != "Unknown" {
		t.Error("Kind.String() mismatch")
	}
}
