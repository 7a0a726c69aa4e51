package main

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/maplabel"
	"github.com/gogpu/maplabel/geom"
	"github.com/gogpu/maplabel/render"
	"github.com/gogpu/maplabel/style"
)

// Scene is a view plus the labeled features drawn in it.
type Scene struct {
	View       maplabel.View
	Background maplabel.RGBA
	Styles     style.Sheet
	Features   []render.Feature
}

// DeviceSize returns the canvas size in device pixels.
func (s *Scene) DeviceSize() (w, h int) {
	pr := s.View.Ratio()
	return int(math.Ceil(s.View.Width * pr)), int(math.Ceil(s.View.Height * pr))
}

type sceneFile struct {
	View     viewFile       `toml:"view"`
	Styles   map[string]any `toml:"styles"`
	Features []featureFile  `toml:"features"`
}

type viewFile struct {
	Width      float64       `toml:"width"`
	Height     float64       `toml:"height"`
	Center     [2]float64    `toml:"center"`
	Resolution float64       `toml:"resolution"`
	Rotation   float64       `toml:"rotation"`
	PixelRatio float64       `toml:"pixelRatio"`
	Background maplabel.RGBA `toml:"background"`
}

type featureFile struct {
	Kind   string      `toml:"kind"`
	Coords []float64   `toml:"coords"`
	Parts  [][]float64 `toml:"parts"`
	Style  string      `toml:"style"`
	Text   string      `toml:"text"`
}

// DecodeScene reads a TOML scene. Styles are decoded as a style sheet;
// extra, when non-nil, adds to or replaces them before features resolve
// their style names.
//
//	[view]
//	width = 512
//	height = 256
//
//	[styles.city]
//	font = "bold 16px sans-serif"
//
//	[[features]]
//	kind = "point"
//	coords = [0, 0]
//	style = "city"
//	text = "Hamburg"
func DecodeScene(r io.Reader, extra style.Sheet) (*Scene, error) {
	var f sceneFile
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if f.View.Width <= 0 || f.View.Height <= 0 {
		return nil, fmt.Errorf("scene: view size %vx%v", f.View.Width, f.View.Height)
	}

	sheet := style.Sheet{}
	if len(f.Styles) > 0 {
		data, err := toml.Marshal(f.Styles)
		if err != nil {
			return nil, fmt.Errorf("scene: styles: %w", err)
		}
		if sheet, err = style.Decode(bytes.NewReader(data), style.FormatTOML); err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
	}
	for name, t := range extra {
		sheet[name] = t
	}

	s := &Scene{
		View: maplabel.View{
			Center:     maplabel.Pt(f.View.Center[0], f.View.Center[1]),
			Resolution: f.View.Resolution,
			Rotation:   f.View.Rotation,
			PixelRatio: f.View.PixelRatio,
			Width:      f.View.Width,
			Height:     f.View.Height,
		},
		Background: f.View.Background,
		Styles:     sheet,
	}
	if err := s.View.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	for i, ff := range f.Features {
		feat, err := ff.feature(sheet)
		if err != nil {
			return nil, fmt.Errorf("scene: feature %d: %w", i, err)
		}
		s.Features = append(s.Features, feat)
	}
	return s, nil
}

// LoadScene reads a scene file.
func LoadScene(path string, extra style.Sheet) (*Scene, error) {
	// #nosec G304 -- scene path is provided by the user
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeScene(f, extra)
}

func (ff featureFile) feature(sheet style.Sheet) (render.Feature, error) {
	t, ok := sheet[ff.Style]
	if !ok {
		return render.Feature{}, fmt.Errorf("unknown style %q", ff.Style)
	}
	if ff.Text != "" {
		t = t.WithText(ff.Text)
	}
	g, err := ff.geometry()
	if err != nil {
		return render.Feature{}, err
	}
	return render.Feature{Geometry: g, Style: t}, nil
}

func (ff featureFile) geometry() (geom.Geometry, error) {
	switch ff.Kind {
	case "point":
		if len(ff.Coords) != 2 {
			return nil, fmt.Errorf("point needs 2 coordinates, got %d", len(ff.Coords))
		}
		return geom.NewPoint(ff.Coords[0], ff.Coords[1]), nil
	case "line":
		if len(ff.Coords) < 4 {
			return nil, fmt.Errorf("line needs at least 2 points")
		}
		return geom.NewLineString(ff.Coords...), nil
	case "polygon":
		rings, err := ff.parts()
		if err != nil {
			return nil, err
		}
		return &geom.Polygon{Rings: rings}, nil
	case "multiline":
		parts, err := ff.parts()
		if err != nil {
			return nil, err
		}
		ml := &geom.MultiLineString{}
		for _, p := range parts {
			ml.Lines = append(ml.Lines, geom.LineString{Coords: p})
		}
		return ml, nil
	case "multipolygon":
		parts, err := ff.parts()
		if err != nil {
			return nil, err
		}
		mp := &geom.MultiPolygon{}
		for _, p := range parts {
			mp.Polygons = append(mp.Polygons, geom.Polygon{Rings: [][]maplabel.Point{p}})
		}
		return mp, nil
	default:
		return nil, fmt.Errorf("unknown geometry kind %q", ff.Kind)
	}
}

// parts returns Parts, or Coords as the only part.
func (ff featureFile) parts() ([][]maplabel.Point, error) {
	flat := ff.Parts
	if len(flat) == 0 && len(ff.Coords) > 0 {
		flat = [][]float64{ff.Coords}
	}
	if len(flat) == 0 {
		return nil, fmt.Errorf("%s has no coordinates", ff.Kind)
	}
	out := make([][]maplabel.Point, len(flat))
	for i, p := range flat {
		if len(p) < 4 {
			return nil, fmt.Errorf("%s part %d needs at least 2 points", ff.Kind, i)
		}
		out[i] = geom.FromFlat(p)
	}
	return out, nil
}
