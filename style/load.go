package style

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format selects the encoding of a style sheet.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("style: unsupported style sheet extension %q", filepath.Ext(path))
	}
}

// Sheet is a set of named text styles.
type Sheet map[string]*Text

// Names returns the style names in sorted order.
func (s Sheet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Decode reads a style sheet. The document is a table of style names to
// TextOptions, for example in TOML:
//
//	[road]
//	text = "Main St"
//	font = "bold 14px sans-serif"
//	placement = "line"
//	maxAngle = inf
//	stroke = { color = "white", width = 3 }
//
// Omitted keys keep the defaults of DefaultTextOptions.
func Decode(r io.Reader, format Format) (Sheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("style: read sheet: %w", err)
	}
	return decode(data, format)
}

// LoadFile reads a style sheet from disk, choosing the format by extension.
func LoadFile(path string) (Sheet, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	// #nosec G304 -- style sheet path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("style: read %s: %w", path, err)
	}
	sheet, err := decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sheet, nil
}

func decode(data []byte, format Format) (Sheet, error) {
	var (
		doc map[string]TextOptions
		raw map[string]map[string]any // key presence, to keep defaults
	)
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("style: decode toml: %w", err)
		}
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("style: decode toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("style: decode yaml: %w", err)
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("style: decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("style: unknown format %d", format)
	}

	sheet := make(Sheet, len(doc))
	for name, opts := range doc {
		if _, ok := raw[name]["fill"]; !ok {
			opts.Fill = DefaultTextOptions().Fill
		}
		t, err := NewText(opts)
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", name, err)
		}
		sheet[name] = t
	}
	return sheet, nil
}
