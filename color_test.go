package maplabel

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#000", color.NRGBA{0, 0, 0, 255}},
		{"#333", color.NRGBA{0x33, 0x33, 0x33, 255}},
		{"#ff000080", color.NRGBA{255, 0, 0, 128}},
		{"#3498DB", color.NRGBA{0x34, 0x98, 0xdb, 255}},
		{"red", color.NRGBA{255, 0, 0, 255}},
		{"  Cyan ", color.NRGBA{0, 255, 255, 255}},
		{"rgba(10, 10, 10, 0.5)", color.NRGBA{10, 10, 10, 128}},
		{"rgb(0,0,255)", color.NRGBA{0, 0, 255, 255}},
		{"transparent", color.NRGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.in, err)
			}
			if got := c.Color(); got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "#12", "#zzzzzz", "notacolor", "rgb(1,2)", "rgba(1,2,x,1)"} {
		_, err := ParseColor(in)
		var ce *ColorError
		if !errors.As(err, &ce) {
			t.Errorf("ParseColor(%q) error = %v, want *ColorError", in, err)
		}
	}
}

func TestRGBAUnmarshalText(t *testing.T) {
	var c RGBA
	if err := c.UnmarshalText([]byte("white")); err != nil {
		t.Fatal(err)
	}
	if c != White {
		t.Errorf("UnmarshalText(white) = %v, want %v", c, White)
	}
	text, _ := c.MarshalText()
	if string(text) != "#ffffffff" {
		t.Errorf("MarshalText = %s", text)
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	in := RGBA{R: 0.8, G: 0.3, B: 0.5, A: 0.9}
	out := FromColor(in)
	for _, d := range []float64{in.R - out.R, in.G - out.G, in.B - out.B, in.A - out.A} {
		if math.Abs(d) > 0.01 {
			t.Fatalf("FromColor(%v) = %v", in, out)
		}
	}
}
