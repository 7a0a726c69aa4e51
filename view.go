package maplabel

import (
	"fmt"
	"math"
)

// View holds the per-frame scalars that placement consumes. It is passed by
// value into every placement call; nothing in this module keeps a reference
// to it between frames.
type View struct {
	// Center is the map coordinate shown in the middle of the viewport.
	Center Point

	// Resolution is the number of map units per CSS pixel.
	// Zero is treated as 1.
	Resolution float64

	// Rotation is the view rotation in radians (counter-clockwise in map
	// coordinates).
	Rotation float64

	// PixelRatio is the number of device pixels per CSS pixel.
	// Zero is treated as 1.
	PixelRatio float64

	// Width and Height are the viewport size in CSS pixels.
	Width, Height float64
}

// Ratio returns the effective device pixel ratio.
func (v View) Ratio() float64 {
	if v.PixelRatio == 0 {
		return 1
	}
	return v.PixelRatio
}

func (v View) resolution() float64 {
	if v.Resolution == 0 {
		return 1
	}
	return v.Resolution
}

// Validate reports whether the view scalars are usable.
func (v View) Validate() error {
	res, pr := v.resolution(), v.Ratio()
	if res <= 0 || math.IsInf(res, 0) || math.IsNaN(res) {
		return fmt.Errorf("%w: resolution %v", ErrInvalidView, v.Resolution)
	}
	if pr <= 0 || math.IsInf(pr, 0) || math.IsNaN(pr) {
		return fmt.Errorf("%w: pixel ratio %v", ErrInvalidView, v.PixelRatio)
	}
	if math.IsNaN(v.Rotation) || math.IsInf(v.Rotation, 0) {
		return fmt.Errorf("%w: rotation %v", ErrInvalidView, v.Rotation)
	}
	return nil
}

// Transform returns the matrix mapping map coordinates to device pixels.
// The map Y axis points up and the device Y axis points down, so the
// matrix includes a vertical flip. The composition is
//
//	ratio * translate(size/2) * scale(1/res, -1/res) * rotate(-rotation) * translate(-center)
func (v View) Transform() Matrix {
	res := v.resolution()
	pr := v.Ratio()
	return Scale(pr, pr).
		Multiply(Translate(v.Width/2, v.Height/2)).
		Multiply(Scale(1/res, -1/res)).
		Multiply(Rotate(-v.Rotation)).
		Multiply(Translate(-v.Center.X, -v.Center.Y))
}
