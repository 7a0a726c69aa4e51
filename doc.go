// Package maplabel places and draws text labels for vector map features.
//
// # Overview
//
// A label is text attached to a geometry (a point, line, polygon or one of
// their multi-part variants) and drawn with a text style. Placement decides
// where the text goes: around an anchor for point placement, or along the
// lines and rings of the geometry for line placement, where it follows the
// path, stays upright and is dropped when the path bends too sharply.
// Placement produces positioned, oriented text runs; a backend paints them.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/maplabel"
//		"github.com/gogpu/maplabel/geom"
//		"github.com/gogpu/maplabel/render"
//		"github.com/gogpu/maplabel/render/raster"
//		"github.com/gogpu/maplabel/style"
//	)
//
//	road := style.MustText(style.DefaultTextOptions()).
//		WithText("Main St").
//		WithPlacement(style.PlacementLine)
//
//	view := maplabel.View{Resolution: 1, Width: 512, Height: 512}
//	r, _ := raster.New(512, 512, raster.WithBackground(maplabel.White))
//
//	e := render.NewEngine(render.WithMetrics(r))
//	_ = e.Render(r, geom.NewLineString(-200, 0, 200, 40), road, view)
//	_ = r.SavePNG("labels.png")
//
// # Packages
//
// This package holds the shared value types: [Point], [Matrix], [Rect],
// [RGBA] and the per-frame [View]. The work is split across sub-packages:
//
//   - geom: the closed set of geometries labels attach to
//   - style: immutable text style descriptors and style sheet loading
//   - metrics: text measurement, font parsing and the metric cache
//   - layout: multi-line text layout around an anchor
//   - placement: point and path placement producing [placement.Label]s
//   - render: the drawing contract, draw ordering and the Engine
//   - render/raster and render/recorder: the bundled backends
//
// # Coordinates
//
// Geometries are in map units with Y pointing up. [View.Transform] maps
// them to device pixels with Y pointing down, applying the view rotation,
// resolution and pixel ratio. All placement output is in device pixels.
//
// # Logging
//
// The module logs through [log/slog] and is silent by default. Call
// [SetLogger] to see omitted labels and degraded font metrics at Debug
// level.
package maplabel
