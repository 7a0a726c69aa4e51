// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recorder

import (
	"fmt"

	"github.com/gogpu/maplabel"
	"github.com/gogpu/maplabel/placement"
)

// CommandType identifies a recorded call.
type CommandType uint8

const (
	CmdFillRect CommandType = iota
	CmdStrokeRect
	CmdStrokeText
	CmdFillText
)

var commandTypeNames = [...]string{
	CmdFillRect:   "FillRect",
	CmdStrokeRect: "StrokeRect",
	CmdStrokeText: "StrokeText",
	CmdFillText:   "FillText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is one recorded Renderer call.
type Command interface {
	Type() CommandType
	fmt.Stringer
}

// FillTextCommand records Renderer.FillText.
type FillTextCommand struct {
	Glyphs placement.Glyphs
	Color  maplabel.RGBA
}

// Type implements Command.
func (FillTextCommand) Type() CommandType { return CmdFillText }

func (c FillTextCommand) String() string {
	return fmt.Sprintf("FillText %q %s %s", c.Glyphs.Text, formatRun(c.Glyphs), c.Color)
}

// StrokeTextCommand records Renderer.StrokeText.
type StrokeTextCommand struct {
	Glyphs placement.Glyphs
	Color  maplabel.RGBA
	Width  float64
}

// Type implements Command.
func (StrokeTextCommand) Type() CommandType { return CmdStrokeText }

func (c StrokeTextCommand) String() string {
	return fmt.Sprintf("StrokeText %q %s %s width=%.2f", c.Glyphs.Text, formatRun(c.Glyphs), c.Color, c.Width)
}

// FillRectCommand records Renderer.FillRect.
type FillRectCommand struct {
	Box   placement.Box
	Color maplabel.RGBA
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

func (c FillRectCommand) String() string {
	return fmt.Sprintf("FillRect %s %s", formatBox(c.Box), c.Color)
}

// StrokeRectCommand records Renderer.StrokeRect.
type StrokeRectCommand struct {
	Box   placement.Box
	Color maplabel.RGBA
	Width float64
}

// Type implements Command.
func (StrokeRectCommand) Type() CommandType { return CmdStrokeRect }

func (c StrokeRectCommand) String() string {
	return fmt.Sprintf("StrokeRect %s %s width=%.2f", formatBox(c.Box), c.Color, c.Width)
}

func formatRun(g placement.Glyphs) string {
	return fmt.Sprintf("at=(%.2f,%.2f) rot=%.4f font=%q scale=(%.2f,%.2f)",
		g.Origin.X, g.Origin.Y, g.Rotation, g.Font, g.ScaleX, g.ScaleY)
}

func formatBox(b placement.Box) string {
	return fmt.Sprintf("at=(%.2f,%.2f) rot=%.4f rect=(%.2f,%.2f,%.2f,%.2f)",
		b.Origin.X, b.Origin.Y, b.Rotation, b.Rect.MinX, b.Rect.MinY, b.Rect.MaxX, b.Rect.MaxY)
}
