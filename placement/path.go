package placement

import (
	"math"
	"strings"

	"github.com/go-text/typesetting/segmenter"

	"github.com/gogpu/maplabel"
	"github.com/gogpu/maplabel/internal/pathwalk"
	"github.com/gogpu/maplabel/layout"
	"github.com/gogpu/maplabel/style"
)

// Omission reasons logged at debug level.
const (
	omitDegenerate = "degenerate"
	omitFit        = "fit"
	omitAngle      = "angle"
	omitUpright    = "upright"
)

func (p *placer) paths(paths [][]maplabel.Point) []Label {
	var labels []Label
	for _, pts := range paths {
		if l, ok := p.path(pts); ok {
			labels = append(labels, l)
		}
	}
	return labels
}

// path bends the block along one candidate path given in map coordinates.
func (p *placer) path(pts []maplabel.Point) (Label, bool) {
	walk := pathwalk.New(p.toPixel.TransformPoints(pts))
	if walk.Degenerate() {
		p.omit(omitDegenerate, walk)
		return Label{}, false
	}

	length := walk.Length()
	width := p.block.Width()
	if width > length && !p.text.Overflow() {
		p.omit(omitFit, walk)
		return Label{}, false
	}

	// The span is fixed on the path as given; only the reading direction
	// changes when the text would be upside-down.
	start := p.spanStart(length, width)
	end := start + width
	a, _ := walk.At(start)
	b, _ := walk.At(end)
	rotation := maplabel.NormalizeAngle(b.Sub(a).Angle() + p.text.Rotation())
	reverse := !upright(rotation)

	if maxAngle := p.text.MaxAngle(); !math.IsInf(maxAngle, 1) && walk.TurningAngle(start, end) > maxAngle {
		p.omit(omitAngle, walk)
		return Label{}, false
	}

	read := walk
	if reverse {
		read = walk.Reversed()
		rotation = maplabel.NormalizeAngle(rotation + math.Pi)
	}

	l := p.label(KindPath)
	l.Anchor, _ = walk.At(start + width/2)
	l.Rotation = rotation
	for _, line := range p.block.Lines {
		s := p.spanStart(length, line.Width)
		if reverse {
			s = length - s - line.Width
		}
		l.Glyphs = p.along(l.Glyphs, read, line, s)
	}
	if len(l.Glyphs) == 0 {
		return Label{}, false
	}
	// A sharp bend under the span can leave single runs upside-down even
	// when the span as a whole reads upright.
	for _, g := range l.Glyphs {
		if !upright(g.Rotation) {
			p.omit(omitUpright, walk)
			return Label{}, false
		}
	}
	return l, true
}

// spanStart returns the arc length where text of the given width starts.
func (p *placer) spanStart(length, width float64) float64 {
	if width > length {
		return 0
	}
	switch p.text.TextAlign() {
	case style.AlignLeft:
		return 0
	case style.AlignRight:
		return length - width
	default:
		return (length - width) / 2
	}
}

// upright reports whether text rotated by a normalized angle reads from
// left to right.
func upright(rotation float64) bool {
	return rotation > -math.Pi/2 && rotation <= math.Pi/2
}

// along appends the runs of one line starting at arc length s on read.
// Consecutive grapheme clusters whose centers fall on the same segment
// share one run.
func (p *placer) along(dst []Glyphs, read *pathwalk.Path, line layout.Line, s float64) []Glyphs {
	clusters := graphemes(line.Text)
	if len(clusters) == 0 {
		return dst
	}

	widths := make([]float64, len(clusters))
	total := 0.0
	for i, c := range clusters {
		widths[i] = p.measure(c).Width
		total += widths[i]
	}
	// Cluster widths are scaled to the measured line width so kerning
	// across clusters does not shift the end of the line.
	k := 1.0
	if total > 0 {
		k = line.Width / total
	}

	var (
		chunk      strings.Builder
		chunkStart float64
		chunkWidth float64
		chunkSeg   = -1
	)
	flush := func() {
		if chunk.Len() == 0 {
			return
		}
		angle := maplabel.NormalizeAngle(read.SegmentAngle(chunkSeg) + p.text.Rotation())
		center := read.OnSegment(chunkSeg, chunkStart+chunkWidth/2)
		origin := center.Add(maplabel.Pt(-chunkWidth/2, line.Baseline()).Rotate(angle))
		dst = append(dst, p.glyphs(chunk.String(), origin, angle, chunkWidth, line))
		chunk.Reset()
		chunkWidth = 0
	}

	m := s
	for i, c := range clusters {
		w := widths[i] * k
		seg := read.SegmentAt(m + w/2)
		if seg != chunkSeg {
			flush()
			chunkStart, chunkSeg = m, seg
		}
		chunk.WriteString(c)
		chunkWidth += w
		m += w
	}
	flush()
	return dst
}

func (p *placer) omit(reason string, walk *pathwalk.Path) {
	maplabel.Logger().Debug("placement: omitted path label",
		"reason", reason,
		"text", p.text.Text(),
		"length", walk.Length(),
		"width", p.block.Width())
}

// graphemes splits text into user-perceived characters.
func graphemes(text string) []string {
	if text == "" {
		return nil
	}
	var seg segmenter.Segmenter
	seg.Init([]rune(text))
	it := seg.GraphemeIterator()
	var out []string
	for it.Next() {
		out = append(out, string(it.Grapheme().Text))
	}
	return out
}
