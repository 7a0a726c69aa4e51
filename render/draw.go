// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/maplabel/placement"
)

// Draw paints labels in order. It stops at the first backend error and
// returns it unchanged.
func Draw(r Renderer, labels []placement.Label) error {
	for i := range labels {
		if err := DrawLabel(r, &labels[i]); err != nil {
			return err
		}
	}
	return nil
}

// DrawLabel paints one label: the background fill and stroke, then for
// every run the halo before the fill.
func DrawLabel(r Renderer, l *placement.Label) error {
	if f := l.BackgroundFill; f != nil {
		if err := r.FillRect(l.Box, f.Color); err != nil {
			return err
		}
	}
	if s := l.BackgroundStroke; s != nil {
		if err := r.StrokeRect(l.Box, s.Color, s.Width); err != nil {
			return err
		}
	}
	for _, g := range l.Glyphs {
		if s := l.Stroke; s != nil {
			if err := r.StrokeText(g, s.Color, s.Width); err != nil {
				return err
			}
		}
		if f := l.Fill; f != nil {
			if err := r.FillText(g, f.Color); err != nil {
				return err
			}
		}
	}
	return nil
}
