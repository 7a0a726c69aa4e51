package placement

import (
	"math"
	"testing"
	"unicode/utf8"

	"github.com/gogpu/maplabel"
	"github.com/gogpu/maplabel/geom"
	"github.com/gogpu/maplabel/metrics"
	"github.com/gogpu/maplabel/style"
)

// fixed gives every rune an advance of 10 and every line a 20 high box
// with the baseline 16 below its top, whatever the font.
var fixed = metrics.ProviderFunc(func(_, text string) metrics.Extent {
	return metrics.Extent{Width: 10 * float64(utf8.RuneCountInString(text)), Height: 20, Ascent: 16}
})

// view maps map coordinate (x, y) to device pixel (100+x, 100-y).
var view = maplabel.View{Resolution: 1, Width: 200, Height: 200}

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) <= eps }

func nearPoint(a, b maplabel.Point) bool { return near(a.X, b.X) && near(a.Y, b.Y) }

func text(opts style.TextOptions) *style.Text {
	return style.MustText(opts)
}

func place(t *testing.T, g geom.Geometry, s *style.Text, v maplabel.View) []Label {
	t.Helper()
	return Place(g, s, v, fixed)
}

func TestPointOffset(t *testing.T) {
	s := text(style.TextOptions{Text: "ab", OffsetX: 10})
	labels := place(t, geom.NewPoint(0, 0), s, view)
	if len(labels) != 1 {
		t.Fatalf("len(labels) = %d, want 1", len(labels))
	}
	l := labels[0]
	if !nearPoint(l.Anchor, maplabel.Pt(110, 100)) {
		t.Errorf("Anchor = %v, want (110, 100)", l.Anchor)
	}
	if l.Kind != KindPoint || l.Rotation != 0 {
		t.Errorf("Kind = %v Rotation = %v", l.Kind, l.Rotation)
	}
	if len(l.Glyphs) != 1 || !nearPoint(l.Glyphs[0].Origin, maplabel.Pt(100, 100)) {
		t.Errorf("Glyphs = %+v, want one run at (100, 100)", l.Glyphs)
	}
}

func TestPointRotateWithView(t *testing.T) {
	rotated := view
	rotated.Rotation = math.Pi / 2

	tests := []struct {
		name           string
		rotateWithView bool
		wantAnchor     maplabel.Point
		wantRotation   float64
	}{
		{"fixed", false, maplabel.Pt(110, 100), 0},
		{"with view", true, maplabel.Pt(100, 90), -math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := text(style.TextOptions{Text: "ab", OffsetX: 10, RotateWithView: tt.rotateWithView})
			l := place(t, geom.NewPoint(0, 0), s, rotated)[0]
			if !nearPoint(l.Anchor, tt.wantAnchor) {
				t.Errorf("Anchor = %v, want %v", l.Anchor, tt.wantAnchor)
			}
			if !near(l.Rotation, tt.wantRotation) || !near(l.Glyphs[0].Rotation, tt.wantRotation) {
				t.Errorf("Rotation = %v, want %v", l.Rotation, tt.wantRotation)
			}
		})
	}
}

func TestPointPixelRatioAndScale(t *testing.T) {
	v := maplabel.View{Resolution: 1, Width: 100, Height: 100, PixelRatio: 2}
	s := text(style.TextOptions{
		Text:             "ab",
		OffsetX:          10,
		Scale:            1.5,
		Stroke:           &style.Stroke{Color: maplabel.White, Width: 2},
		BackgroundStroke: &style.Stroke{Color: maplabel.Black, Width: 1},
	})
	l := place(t, geom.NewPoint(0, 0), s, v)[0]
	if !nearPoint(l.Anchor, maplabel.Pt(120, 100)) {
		t.Errorf("Anchor = %v, want (120, 100)", l.Anchor)
	}
	g := l.Glyphs[0]
	if !near(g.Width, 60) || !near(g.Height, 60) || !near(g.ScaleX, 3) || !near(g.ScaleY, 3) {
		t.Errorf("run = %+v, want width 60 height 60 scale 3", g)
	}
	if !near(l.Stroke.Width, 6) {
		t.Errorf("Stroke.Width = %v, want 6", l.Stroke.Width)
	}
	if !near(l.BackgroundStroke.Width, 2) {
		t.Errorf("BackgroundStroke.Width = %v, want 2", l.BackgroundStroke.Width)
	}
	if s.Stroke().Width != 2 {
		t.Error("placement modified the style")
	}
}

func TestPointBackgroundAndContains(t *testing.T) {
	s := text(style.TextOptions{
		Text:           "hello",
		Padding:        style.Padding{5, 10, 15, 0},
		BackgroundFill: &style.Fill{Color: maplabel.White},
	})
	l := place(t, geom.NewPoint(0, 0), s, view)[0]
	if !l.HasBackground() {
		t.Fatal("HasBackground() = false")
	}
	want := maplabel.Rect{MinX: -25, MinY: -21, MaxX: 35, MaxY: 19}
	if l.Box.Rect != want {
		t.Errorf("Box.Rect = %+v, want %+v", l.Box.Rect, want)
	}

	tests := []struct {
		p    maplabel.Point
		want bool
	}{
		{maplabel.Pt(130, 100), true},  // in the right padding
		{maplabel.Pt(73, 100), false},  // no left padding
		{maplabel.Pt(100, 117), true},  // in the bottom padding
		{maplabel.Pt(100, 121), false}, // below it
	}
	for _, tt := range tests {
		if got := l.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestPointRotatedBox(t *testing.T) {
	s := text(style.TextOptions{Text: "hello", Rotation: math.Pi / 2})
	l := place(t, geom.NewPoint(0, 0), s, view)[0]
	// The 50 wide label now runs down the screen.
	if !l.Contains(maplabel.Pt(100, 120)) || l.Contains(maplabel.Pt(120, 100)) {
		t.Error("rotated box does not follow the rotation")
	}
	b := l.Bounds()
	if !near(b.Height(), 50) || !near(b.Width(), 20) {
		t.Errorf("Bounds() = %+v, want 20x50", b)
	}
}

func TestPointPlacementOnOtherGeometries(t *testing.T) {
	square := geom.NewPolygon(0, 0, 10, 0, 10, 10, 0, 10, 0, 0)
	tests := []struct {
		name    string
		g       geom.Geometry
		anchors []maplabel.Point
	}{
		{"polygon", square, []maplabel.Point{maplabel.Pt(105, 95)}},
		{"line", geom.NewLineString(0, 0, 20, 0), []maplabel.Point{maplabel.Pt(110, 100)}},
		{"multipolygon", &geom.MultiPolygon{Polygons: []geom.Polygon{*square, *square.Translate(20, 0).(*geom.Polygon)}},
			[]maplabel.Point{maplabel.Pt(105, 95), maplabel.Pt(125, 95)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labels := place(t, tt.g, text(style.TextOptions{Text: "x"}), view)
			if len(labels) != len(tt.anchors) {
				t.Fatalf("len(labels) = %d, want %d", len(labels), len(tt.anchors))
			}
			for i, l := range labels {
				if !nearPoint(l.Anchor, tt.anchors[i]) {
					t.Errorf("labels[%d].Anchor = %v, want %v", i, l.Anchor, tt.anchors[i])
				}
			}
		})
	}
}

func TestLinePlacementOnPointFallsBack(t *testing.T) {
	s := text(style.TextOptions{Text: "ab", Placement: style.PlacementLine})
	labels := place(t, geom.NewPoint(0, 0), s, view)
	if len(labels) != 1 || labels[0].Kind != KindPoint {
		t.Fatalf("labels = %+v, want one point label", labels)
	}
}

func TestEmptyText(t *testing.T) {
	if labels := place(t, geom.NewPoint(0, 0), text(style.TextOptions{}), view); len(labels) != 0 {
		t.Errorf("len(labels) = %d, want 0", len(labels))
	}
	if _, ok := AtPoint(maplabel.Pt(0, 0), text(style.TextOptions{}), view, fixed); ok {
		t.Error("AtPoint with empty text reported ok")
	}
}

func TestAtPointNilMetrics(t *testing.T) {
	l, ok := AtPoint(maplabel.Pt(0, 0), text(style.TextOptions{Text: "ab"}), view, nil)
	if !ok || l.Glyphs[0].Width <= 0 {
		t.Errorf("AtPoint with nil provider = %+v, %v", l, ok)
	}
}

func TestKindString(t *testing.T) {
	if KindPath.String() != "path" || Kind(7).String() != "unknown" {
		t.Error("Kind.String mismatch")
	}
}
