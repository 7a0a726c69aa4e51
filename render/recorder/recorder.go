// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package recorder provides a backend that records Renderer calls instead
// of painting them. It is used to inspect and test draw ordering, and to
// dump the calls of a frame as text.
//
//	rec := recorder.New()
//	err := render.Draw(rec, labels)
//	for _, cmd := range rec.Commands() {
//	    fmt.Println(cmd)
//	}
package recorder

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/gogpu/maplabel"
	"github.com/gogpu/maplabel/metrics"
	"github.com/gogpu/maplabel/placement"
	"github.com/gogpu/maplabel/render"
)

func init() {
	render.Register("recorder", func(_, _ int) (render.Backend, error) {
		return New(), nil
	})
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithMetrics answers Measure with p. The default is metrics.Approximate.
func WithMetrics(p metrics.Provider) Option {
	return func(r *Recorder) {
		r.metrics = p
	}
}

// WithHook calls hook before recording every command. A non-nil error is
// returned from the Renderer call and the command is not recorded.
func WithHook(hook func(Command) error) Option {
	return func(r *Recorder) {
		r.hook = hook
	}
}

// Recorder implements render.Backend by recording commands. It is safe for
// concurrent use.
type Recorder struct {
	mu       sync.Mutex
	commands []Command
	metrics  metrics.Provider
	hook     func(Command) error
}

var _ render.Backend = (*Recorder)(nil)

// New creates an empty recorder.
func New(opts ...Option) *Recorder {
	r := &Recorder{metrics: metrics.Approximate{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Measure implements render.Renderer.
func (r *Recorder) Measure(font, text string) metrics.Extent {
	return r.metrics.Measure(font, text)
}

// FillText implements render.Renderer.
func (r *Recorder) FillText(g placement.Glyphs, fill maplabel.RGBA) error {
	return r.record(FillTextCommand{Glyphs: g, Color: fill})
}

// StrokeText implements render.Renderer.
func (r *Recorder) StrokeText(g placement.Glyphs, stroke maplabel.RGBA, width float64) error {
	return r.record(StrokeTextCommand{Glyphs: g, Color: stroke, Width: width})
}

// FillRect implements render.Renderer.
func (r *Recorder) FillRect(b placement.Box, fill maplabel.RGBA) error {
	return r.record(FillRectCommand{Box: b, Color: fill})
}

// StrokeRect implements render.Renderer.
func (r *Recorder) StrokeRect(b placement.Box, stroke maplabel.RGBA, width float64) error {
	return r.record(StrokeRectCommand{Box: b, Color: stroke, Width: width})
}

func (r *Recorder) record(cmd Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.hook != nil {
		if err := r.hook(cmd); err != nil {
			return err
		}
	}
	r.commands = append(r.commands, cmd)
	return nil
}

// Commands returns a copy of the recorded commands in call order.
func (r *Recorder) Commands() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Types returns the type of every recorded command in call order.
func (r *Recorder) Types() []CommandType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]CommandType, len(r.commands))
	for i, c := range r.commands {
		out[i] = c.Type()
	}
	return out
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.commands)
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = r.commands[:0]
}

// WriteTo writes one line per recorded command.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for _, c := range r.Commands() {
		fmt.Fprintln(&buf, c)
	}
	return buf.WriteTo(w)
}
