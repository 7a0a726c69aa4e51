// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"io"

	"github.com/gogpu/maplabel"
	"github.com/gogpu/maplabel/metrics"
	"github.com/gogpu/maplabel/placement"
)

// Renderer is the drawing contract between label placement and a backend.
//
// All coordinates are device pixels. A glyph run is drawn from its origin
// on the alphabetic baseline, rotated by its rotation, with glyphs of the
// run's font stretched by its scale. Stroke widths are device pixels and
// are not scaled again.
//
// Errors are returned to the caller of Draw unchanged.
type Renderer interface {
	// Measure reports the extent of one line of text at scale 1.
	metrics.Provider

	// FillText paints the glyphs of g.
	FillText(g placement.Glyphs, fill maplabel.RGBA) error

	// StrokeText paints the outline (halo) of the glyphs of g.
	StrokeText(g placement.Glyphs, stroke maplabel.RGBA, width float64) error

	// FillRect paints the inside of a rotated box.
	FillRect(b placement.Box, fill maplabel.RGBA) error

	// StrokeRect paints the outline of a rotated box.
	StrokeRect(b placement.Box, stroke maplabel.RGBA, width float64) error
}

// Backend is a Renderer that produces output, such as an image or a
// command log.
type Backend interface {
	Renderer
	io.WriterTo
}
