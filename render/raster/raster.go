// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster provides a backend that paints labels into an
// *image.RGBA. Glyph outlines come from the fonts of a
// metrics.FaceProvider and are filled with an anti-aliasing scanline
// rasterizer.
//
//	r, err := raster.New(512, 512, raster.WithBackground(maplabel.White))
//	err = render.Draw(r, labels)
//	err = r.SavePNG("labels.png")
package raster

import (
	"bufio"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"sync"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/maplabel"
	"github.com/gogpu/maplabel/metrics"
	"github.com/gogpu/maplabel/placement"
	"github.com/gogpu/maplabel/render"
)

func init() {
	render.Register("raster", func(w, h int) (render.Backend, error) {
		return New(w, h)
	})
}

// fallbackFont is drawn when a run's font does not parse.
const fallbackFont = "10px sans-serif"

// DefaultHaloSamples is the number of offset copies that make up a halo.
const DefaultHaloSamples = 16

// Option configures a Raster.
type Option func(*config)

type config struct {
	background  maplabel.RGBA
	faces       *metrics.FaceProvider
	haloSamples int
}

// WithBackground clears the canvas to c. The default is transparent.
func WithBackground(c maplabel.RGBA) Option {
	return func(cfg *config) {
		cfg.background = c
	}
}

// WithFaces draws and measures with p instead of a provider holding only
// the built-in Go fonts.
func WithFaces(p *metrics.FaceProvider) Option {
	return func(cfg *config) {
		cfg.faces = p
	}
}

// WithHaloSamples sets how many offset copies of a run approximate its
// halo. Values below 4 are raised to 4.
func WithHaloSamples(n int) Option {
	return func(cfg *config) {
		cfg.haloSamples = max(n, 4)
	}
}

// Raster implements render.Backend on an *image.RGBA. It is safe for
// concurrent use; calls are serialized.
type Raster struct {
	mu          sync.Mutex
	img         *image.RGBA
	ras         *vector.Rasterizer
	faces       *metrics.FaceProvider
	buf         sfnt.Buffer
	haloSamples int
}

var _ render.Backend = (*Raster)(nil)

// New creates a canvas of w by h device pixels.
func New(w, h int, opts ...Option) (*Raster, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", render.ErrInvalidSize, w, h)
	}
	cfg := config{haloSamples: DefaultHaloSamples}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.faces == nil {
		p, err := metrics.NewFaceProvider()
		if err != nil {
			return nil, err
		}
		cfg.faces = p
	}

	r := &Raster{
		img:         image.NewRGBA(image.Rect(0, 0, w, h)),
		ras:         vector.NewRasterizer(w, h),
		faces:       cfg.faces,
		haloSamples: cfg.haloSamples,
	}
	if !cfg.background.IsTransparent() {
		draw.Draw(r.img, r.img.Bounds(), image.NewUniform(cfg.background), image.Point{}, draw.Src)
	}
	return r, nil
}

// Image returns the canvas. It is shared, not copied.
func (r *Raster) Image() *image.RGBA { return r.img }

// Measure implements render.Renderer.
func (r *Raster) Measure(font, text string) metrics.Extent {
	return r.faces.Measure(font, text)
}

// FillText implements render.Renderer.
func (r *Raster) FillText(g placement.Glyphs, fill maplabel.RGBA) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reset()
	if err := r.addRun(g, maplabel.Point{}); err != nil {
		return err
	}
	r.paint(fill)
	return nil
}

// StrokeText implements render.Renderer. The halo is the union of copies
// of the run shifted around a circle of radius width/2.
func (r *Raster) StrokeText(g placement.Glyphs, stroke maplabel.RGBA, width float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reset()
	radius := width / 2
	for i := 0; i < r.haloSamples; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(r.haloSamples))
		if err := r.addRun(g, maplabel.Pt(cos*radius, sin*radius)); err != nil {
			return err
		}
	}
	r.paint(stroke)
	return nil
}

// FillRect implements render.Renderer.
func (r *Raster) FillRect(b placement.Box, fill maplabel.RGBA) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reset()
	r.addPolygon(b.Corners(), false)
	r.paint(fill)
	return nil
}

// StrokeRect implements render.Renderer. The outline is centered on the
// box edges.
func (r *Raster) StrokeRect(b placement.Box, stroke maplabel.RGBA, width float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	h := width / 2
	outer, inner := b, b
	outer.Rect = b.Rect.Expand(h, h, h, h)
	inner.Rect = b.Rect.Expand(-h, -h, -h, -h)

	r.reset()
	r.addPolygon(outer.Corners(), false)
	if !inner.Rect.Empty() {
		r.addPolygon(inner.Corners(), true)
	}
	r.paint(stroke)
	return nil
}

// WriteTo encodes the canvas as PNG.
func (r *Raster) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	r.mu.Lock()
	defer r.mu.Unlock()
	err := png.Encode(cw, r.img)
	return cw.n, err
}

// SavePNG writes the canvas to a PNG file.
func (r *Raster) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if _, err := r.WriteTo(bw); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (r *Raster) reset() {
	b := r.img.Bounds()
	r.ras.Reset(b.Dx(), b.Dy())
}

func (r *Raster) paint(c maplabel.RGBA) {
	r.ras.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{})
}

// addPolygon adds a closed polygon. reverse flips its winding so it cuts a
// hole into a polygon added before.
func (r *Raster) addPolygon(pts [4]maplabel.Point, reverse bool) {
	if reverse {
		pts[1], pts[3] = pts[3], pts[1]
	}
	r.ras.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		r.ras.LineTo(float32(p.X), float32(p.Y))
	}
	r.ras.ClosePath()
}

// addRun adds the outlines of every glyph of g, shifted by offset device
// pixels.
func (r *Raster) addRun(g placement.Glyphs, offset maplabel.Point) error {
	shaped, ok := r.faces.Shape(g.Font, g.Text)
	if !ok {
		if shaped, ok = r.faces.Shape(fallbackFont, g.Text); !ok {
			return fmt.Errorf("raster: no font for %q", g.Font)
		}
	}
	origin := g.Origin.Add(offset)
	toDevice := func(p fixed.Point26_6, pen, dx, dy float64) (float32, float32) {
		local := maplabel.Pt((pen+dx+fixedToFloat(p.X))*g.ScaleX, (dy+fixedToFloat(p.Y))*g.ScaleY)
		d := origin.Add(local.Rotate(g.Rotation))
		return float32(d.X), float32(d.Y)
	}

	font := shaped.Typeface.Outline()
	ppem := fixed.Int26_6(shaped.Size * 64)
	pen := 0.0
	for _, gl := range shaped.Glyphs {
		segs, err := font.LoadGlyph(&r.buf, gl.Index, ppem, nil)
		if err != nil {
			// Colored and missing glyphs have no outline to fill.
			pen += gl.Advance
			continue
		}
		for _, s := range segs {
			switch s.Op {
			case sfnt.SegmentOpMoveTo:
				r.ras.MoveTo(toDevice(s.Args[0], pen, gl.X, gl.Y))
			case sfnt.SegmentOpLineTo:
				r.ras.LineTo(toDevice(s.Args[0], pen, gl.X, gl.Y))
			case sfnt.SegmentOpQuadTo:
				bx, by := toDevice(s.Args[0], pen, gl.X, gl.Y)
				cx, cy := toDevice(s.Args[1], pen, gl.X, gl.Y)
				r.ras.QuadTo(bx, by, cx, cy)
			case sfnt.SegmentOpCubeTo:
				bx, by := toDevice(s.Args[0], pen, gl.X, gl.Y)
				cx, cy := toDevice(s.Args[1], pen, gl.X, gl.Y)
				dx, dy := toDevice(s.Args[2], pen, gl.X, gl.Y)
				r.ras.CubeTo(bx, by, cx, cy, dx, dy)
			}
		}
		r.ras.ClosePath()
		pen += gl.Advance
	}
	return nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
