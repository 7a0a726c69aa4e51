// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/maplabel"
	"github.com/gogpu/maplabel/geom"
	"github.com/gogpu/maplabel/metrics"
	"github.com/gogpu/maplabel/placement"
	"github.com/gogpu/maplabel/style"
)

// Option configures an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	provider   metrics.Provider
	cacheLimit int
}

// WithMetrics measures text with p instead of the built-in Go fonts. Pass
// a Renderer to measure with the backend that will draw.
func WithMetrics(p metrics.Provider) Option {
	return func(c *engineConfig) {
		c.provider = p
	}
}

// WithCacheLimit sets the soft limit of the metric cache. Zero selects
// metrics.DefaultCacheLimit; a negative value disables eviction.
func WithCacheLimit(n int) Option {
	return func(c *engineConfig) {
		c.cacheLimit = n
	}
}

// Engine places and draws labels. Measured extents are cached per
// (font, text) pair for the life of the Engine.
//
// Engine is safe for concurrent use.
type Engine struct {
	metrics *metrics.Cached
}

// NewEngine creates an engine. Without WithMetrics, text is measured with
// the Go fonts; if those cannot be loaded, sizes are approximated.
func NewEngine(opts ...Option) *Engine {
	var cfg engineConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	p := cfg.provider
	if p == nil {
		fp, err := metrics.NewFaceProvider()
		if err != nil {
			maplabel.Logger().Warn("render: built-in fonts unavailable, approximating metrics", "err", err)
			p = metrics.Approximate{}
		} else {
			p = fp
		}
	}
	return &Engine{metrics: metrics.NewCached(p, cfg.cacheLimit)}
}

// Metrics returns the engine's cached provider.
func (e *Engine) Metrics() *metrics.Cached { return e.metrics }

// InvalidateFont drops cached extents measured with font.
func (e *Engine) InvalidateFont(font string) int { return e.metrics.Invalidate(font) }

// Place computes the labels of g drawn with t in view v.
func (e *Engine) Place(g geom.Geometry, t *style.Text, v maplabel.View) []placement.Label {
	return placement.Place(g, t, v, e.metrics)
}

// Render places the labels of g and draws them with r. It fails without
// drawing when the view is invalid.
func (e *Engine) Render(r Renderer, g geom.Geometry, t *style.Text, v maplabel.View) error {
	if err := v.Validate(); err != nil {
		return err
	}
	return Draw(r, e.Place(g, t, v))
}

// Feature is a geometry paired with the style of its label.
type Feature struct {
	Geometry geom.Geometry
	Style    *style.Text
}

// RenderAll places and draws the labels of every feature in order.
func (e *Engine) RenderAll(r Renderer, features []Feature, v maplabel.View) error {
	for _, f := range features {
		if err := e.Render(r, f.Geometry, f.Style, v); err != nil {
			return err
		}
	}
	return nil
}
