// Package layout stacks the lines of a label relative to its anchor.
//
// All offsets are relative to the anchor, with y growing downwards. A
// block is computed once per label and shared by point and path
// placement: point placement rotates the whole block around the anchor,
// path placement uses each line's y offset as a perpendicular shift from
// the path.
package layout

import (
	"strings"

	"github.com/gogpu/maplabel"
	"github.com/gogpu/maplabel/metrics"
	"github.com/gogpu/maplabel/style"
)

// MeasureFunc measures one line of text in final pixel units.
type MeasureFunc func(text string) metrics.Extent

// Options controls block alignment.
type Options struct {
	Align    style.TextAlign
	Baseline style.TextBaseline

	// Padding expands the background box, in the same units as the
	// measured extents.
	Padding style.Padding
}

// Line is one laid-out line.
type Line struct {
	Text string

	// X is the offset of the line's left edge from the anchor.
	X float64

	// Y is the offset of the top of the line box from the anchor.
	Y float64

	Width  float64
	Height float64
	Ascent float64
}

// Baseline returns the offset of the line's alphabetic baseline.
func (l Line) Baseline() float64 { return l.Y + l.Ascent }

// Box returns the line box relative to the anchor.
func (l Line) Box() maplabel.Rect {
	return maplabel.RectXYWH(l.X, l.Y, l.Width, l.Height)
}

// Block is a laid-out multi-line label.
type Block struct {
	Lines []Line

	// Bounds is the union of all line boxes.
	Bounds maplabel.Rect

	// Background is Bounds expanded by the padding.
	Background maplabel.Rect
}

// Empty reports whether the block has no lines.
func (b Block) Empty() bool { return len(b.Lines) == 0 }

// Width returns the width of the widest line.
func (b Block) Width() float64 { return b.Bounds.Width() }

// Height returns the total height of all lines.
func (b Block) Height() float64 { return b.Bounds.Height() }

// Split breaks text into lines at "\n", accepting "\r\n". Empty text has
// no lines.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// New lays out text. Lines are stacked downwards in order; each line is
// measured with measure.
func New(text string, opts Options, measure MeasureFunc) Block {
	parts := Split(text)
	if len(parts) == 0 {
		return Block{}
	}

	lines := make([]Line, len(parts))
	total := 0.0
	for i, s := range parts {
		ext := measure(s)
		lines[i] = Line{
			Text:   s,
			X:      alignX(opts.Align, ext.Width),
			Y:      total,
			Width:  ext.Width,
			Height: ext.Height,
			Ascent: ext.Ascent,
		}
		total += ext.Height
	}

	dy := blockY(opts.Baseline, total, lines[0])
	bounds := maplabel.EmptyRect()
	for i := range lines {
		lines[i].Y += dy
		bounds = bounds.Union(lines[i].Box())
	}

	p := opts.Padding
	return Block{
		Lines:      lines,
		Bounds:     bounds,
		Background: bounds.Expand(p.Top(), p.Right(), p.Bottom(), p.Left()),
	}
}

// alignX returns the offset of a line's left edge from the anchor.
func alignX(a style.TextAlign, width float64) float64 {
	switch a {
	case style.AlignLeft:
		return 0
	case style.AlignRight:
		return -width
	default:
		return -width / 2
	}
}

// blockY returns the offset of the block's top from the anchor.
func blockY(b style.TextBaseline, height float64, first Line) float64 {
	switch b {
	case style.BaselineTop:
		return 0
	case style.BaselineBottom:
		return -height
	case style.BaselineMiddle:
		return -height / 2
	default:
		return -first.Ascent
	}
}
