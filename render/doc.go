// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render turns placed labels into drawing calls.
//
// The core never paints. It talks to a drawing backend through Renderer, a
// narrow contract of four paint operations plus text measurement, and
// sequences the calls for every label:
//
//  1. background box fill, then background box stroke
//  2. for every glyph run: the halo (stroke text), then the fill
//
// so that halos never cover the fill of the run they belong to.
//
// # Engine
//
// Engine ties measurement, placement and drawing together and owns the
// metric cache:
//
//	e := render.NewEngine()
//	labels := e.Place(geometry, textStyle, view)
//	err := render.Draw(backend, labels)
//
// # Backends
//
// Backends register themselves by name, following the database/sql driver
// pattern:
//
//	import _ "github.com/gogpu/maplabel/render/raster"
//
//	b, err := render.NewBackend("raster", 512, 512)
//
// Two backends are provided: render/raster paints into an *image.RGBA and
// render/recorder records the calls for inspection.
package render
