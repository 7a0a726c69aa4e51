package metrics

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestParseFont(t *testing.T) {
	tests := []struct {
		font string
		want FontSpec
	}{
		{"10px sans-serif", FontSpec{Weight: 400, Size: 10, Families: []string{"sans-serif"}}},
		{"bold 14px sans-serif", FontSpec{Weight: 700, Size: 14, Families: []string{"sans-serif"}}},
		{"italic 600 12pt/1.5 'Noto Sans', serif", FontSpec{
			Style: StyleItalic, Weight: 600, Size: 16, LineHeight: 1.5,
			Families: []string{"Noto Sans", "serif"},
		}},
		{"oblique small-caps 2em monospace", FontSpec{Style: StyleOblique, Weight: 400, Size: 32, Families: []string{"monospace"}}},
		{`normal normal 20px/30px "Go Mono"`, FontSpec{Weight: 400, Size: 20, LineHeight: 1.5, Families: []string{"Go Mono"}}},
	}
	for _, tt := range tests {
		t.Run(tt.font, func(t *testing.T) {
			got, err := ParseFont(tt.font)
			if err != nil {
				t.Fatalf("ParseFont() error = %v", err)
			}
			if math.Abs(got.Size-tt.want.Size) > 1e-9 {
				t.Errorf("Size = %v, want %v", got.Size, tt.want.Size)
			}
			got.Size = tt.want.Size
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseFont() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseFontErrors(t *testing.T) {
	for _, font := range []string{
		"",
		"sans-serif",
		"bold",
		"14px",
		"fancy 14px serif",
		"0px serif",
		"12px/abc serif",
	} {
		t.Run(font, func(t *testing.T) {
			_, err := ParseFont(font)
			var fe *FontError
			if !errors.As(err, &fe) {
				t.Fatalf("ParseFont(%q) error = %v, want *FontError", font, err)
			}
			if fe.Font != font {
				t.Errorf("FontError.Font = %q, want %q", fe.Font, font)
			}
		})
	}
}

func TestFontSpecVariant(t *testing.T) {
	spec, _ := ParseFont("italic bold 10px serif")
	if !spec.Bold() || !spec.Slanted() {
		t.Errorf("Bold/Slanted = %v/%v, want true/true", spec.Bold(), spec.Slanted())
	}
	spec, _ = ParseFont("500 10px serif")
	if spec.Bold() {
		t.Error("weight 500 reported bold")
	}
}
