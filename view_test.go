package maplabel

import (
	"errors"
	"math"
	"testing"
)

func TestViewTransform(t *testing.T) {
	v := View{Center: Pt(0, 0), Resolution: 1, Width: 200, Height: 200}
	m := v.Transform()

	tests := []struct {
		in, want Point
	}{
		{Pt(0, 0), Pt(100, 100)},
		{Pt(20, 10), Pt(120, 90)},
		{Pt(-10, -20), Pt(90, 120)},
	}
	for _, tt := range tests {
		if got := m.TransformPoint(tt.in); !nearPoint(got, tt.want) {
			t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestViewTransformPixelRatioAndResolution(t *testing.T) {
	v := View{Resolution: 0.5, PixelRatio: 2, Width: 100, Height: 100}
	got := v.Transform().TransformPoint(Pt(10, 0))
	// 10 map units = 20 CSS px = 40 device px right of the center (100 device px).
	if !nearPoint(got, Pt(140, 100)) {
		t.Errorf("TransformPoint = %v, want (140, 100)", got)
	}
}

func TestViewTransformRotationPi(t *testing.T) {
	v := View{Resolution: 1, Rotation: math.Pi, Width: 100, Height: 100}
	got := v.Transform().TransformPoint(Pt(10, 0))
	if !nearPoint(got, Pt(40, 50)) {
		t.Errorf("rotated TransformPoint = %v, want (40, 50)", got)
	}
}

func TestViewValidate(t *testing.T) {
	if err := (View{}).Validate(); err != nil {
		t.Errorf("zero View.Validate() = %v, want nil", err)
	}
	bad := []View{
		{Resolution: -1},
		{PixelRatio: math.NaN()},
		{Rotation: math.Inf(1)},
	}
	for _, v := range bad {
		if err := v.Validate(); !errors.Is(err, ErrInvalidView) {
			t.Errorf("Validate(%+v) = %v, want ErrInvalidView", v, err)
		}
	}
}
