package metrics

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/maplabel"
)

// Typeface is one parsed font file. The go-text font shapes text; the sfnt
// font supplies vertical metrics and glyph outlines.
type Typeface struct {
	shape   *gtfont.Font
	outline *opentype.Font
}

// ParseTypeface parses a TrueType or OpenType font file.
func ParseTypeface(data []byte) (*Typeface, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("metrics: failed to parse font: %w", err)
	}
	ot, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("metrics: failed to parse font: %w", err)
	}
	return &Typeface{shape: face.Font, outline: ot}, nil
}

// Outline returns the sfnt font for glyph outline extraction.
func (t *Typeface) Outline() *sfnt.Font { return t.outline }

// VMetrics returns ascent, descent and recommended line height at size
// pixels per em.
func (t *Typeface) VMetrics(size float64) (ascent, descent, height float64) {
	var buf sfnt.Buffer
	m, err := t.outline.Metrics(&buf, floatToFixed(size), font.HintingNone)
	if err != nil {
		return size * approxAscent, size * (approxHeight - approxAscent), size * approxHeight
	}
	return fixedToFloat(m.Ascent), fixedToFloat(m.Descent), fixedToFloat(m.Height)
}

type family struct {
	regular, bold, italic, boldItalic *Typeface
}

func (f *family) pick(bold, italic bool) *Typeface {
	switch {
	case bold && italic && f.boldItalic != nil:
		return f.boldItalic
	case bold && f.bold != nil:
		return f.bold
	case italic && f.italic != nil:
		return f.italic
	}
	return f.regular
}

// FaceProvider measures text by shaping it against registered font
// families. The Go fonts are registered as "sans-serif", "serif",
// "system-ui" and "go"; the Go Mono fonts as "monospace" and "go mono".
//
// FaceProvider is safe for concurrent use. Parsed fonts are shared; the
// HarfBuzz shapers, which hold mutable buffers, are pooled.
type FaceProvider struct {
	mu            sync.RWMutex
	families      map[string]*family
	defaultFamily string

	shapers sync.Pool
}

// NewFaceProvider creates a provider with the built-in families plus any
// registered through options.
func NewFaceProvider(opts ...Option) (*FaceProvider, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &FaceProvider{
		families: make(map[string]*family),
		shapers: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}
	if !cfg.noBuiltins {
		sans := FamilyData{
			Regular:    goregular.TTF,
			Bold:       gobold.TTF,
			Italic:     goitalic.TTF,
			BoldItalic: gobolditalic.TTF,
		}
		mono := FamilyData{
			Regular:    gomono.TTF,
			Bold:       gomonobold.TTF,
			Italic:     gomonoitalic.TTF,
			BoldItalic: gomonobolditalic.TTF,
		}
		if err := p.Register(sans, "sans-serif", "serif", "system-ui", "go"); err != nil {
			return nil, err
		}
		if err := p.Register(mono, "monospace", "go mono"); err != nil {
			return nil, err
		}
	}
	for name, data := range cfg.families {
		if err := p.Register(data, name); err != nil {
			return nil, fmt.Errorf("metrics: family %q: %w", name, err)
		}
	}
	if err := p.SetDefaultFamily(cfg.defaultFamily); err != nil {
		return nil, err
	}
	return p, nil
}

// Register parses data and makes it available under each of names.
func (p *FaceProvider) Register(data FamilyData, names ...string) error {
	if len(data.Regular) == 0 {
		return ErrEmptyFontData
	}
	fam := &family{}
	for _, v := range []struct {
		src []byte
		dst **Typeface
	}{
		{data.Regular, &fam.regular},
		{data.Bold, &fam.bold},
		{data.Italic, &fam.italic},
		{data.BoldItalic, &fam.boldItalic},
	} {
		if len(v.src) == 0 {
			continue
		}
		tf, err := ParseTypeface(v.src)
		if err != nil {
			return err
		}
		*v.dst = tf
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, name := range names {
		p.families[normalizeFamily(name)] = fam
	}
	return nil
}

// SetDefaultFamily selects the family used for unknown family names.
func (p *FaceProvider) SetDefaultFamily(name string) error {
	name = normalizeFamily(name)
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.families[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFamily, name)
	}
	p.defaultFamily = name
	return nil
}

// Typeface resolves a parsed font shorthand to a registered typeface. It
// returns nil when no family, not even the default one, is registered.
func (p *FaceProvider) Typeface(spec FontSpec) *Typeface {
	p.mu.RLock()
	defer p.mu.RUnlock()

	fam := p.families[p.defaultFamily]
	for _, name := range spec.Families {
		if f, ok := p.families[normalizeFamily(name)]; ok {
			fam = f
			break
		}
	}
	if fam == nil {
		return nil
	}
	return fam.pick(spec.Bold(), spec.Slanted())
}

// Measure implements Provider. Fonts that do not parse are measured by
// Approximate.
func (p *FaceProvider) Measure(fontStr, text string) Extent {
	spec, err := ParseFont(fontStr)
	if err != nil {
		maplabel.Logger().Debug("metrics: approximating unparsable font", "font", fontStr, "err", err)
		return Approximate{}.Measure(fontStr, text)
	}
	tf := p.Typeface(spec)
	if tf == nil {
		return approximate(spec.Size, spec.LineHeight, text)
	}

	ascent, descent, height := tf.VMetrics(spec.Size)
	if spec.LineHeight > 0 {
		// Half-leading goes above and below the content area.
		lh := spec.Size * spec.LineHeight
		ascent += (lh - ascent - descent) / 2
		height = lh
	}
	return Extent{
		Width:  p.advance(tf, spec.Size, norm.NFC.String(text)),
		Height: height,
		Ascent: ascent,
	}
}

// Glyph is one shaped glyph. Positions are in pixels relative to the pen
// position before the glyph, y down.
type Glyph struct {
	Index   sfnt.GlyphIndex
	X, Y    float64
	Advance float64
}

// Shaped is a line of text shaped against one typeface.
type Shaped struct {
	Typeface *Typeface
	Size     float64
	Glyphs   []Glyph
	Advance  float64
}

// Shape shapes one line of text. It reports false when the font does not
// parse or resolves to no registered family.
func (p *FaceProvider) Shape(fontStr, text string) (Shaped, bool) {
	spec, err := ParseFont(fontStr)
	if err != nil {
		return Shaped{}, false
	}
	tf := p.Typeface(spec)
	if tf == nil {
		return Shaped{}, false
	}
	if text == "" {
		return Shaped{Typeface: tf, Size: spec.Size}, true
	}
	out := p.shape(tf, spec.Size, norm.NFC.String(text))
	sh := Shaped{
		Typeface: tf,
		Size:     spec.Size,
		Glyphs:   make([]Glyph, len(out.Glyphs)),
		Advance:  fixedToFloat(out.Advance),
	}
	for i, g := range out.Glyphs {
		sh.Glyphs[i] = Glyph{
			Index:   sfnt.GlyphIndex(g.GlyphID),
			X:       fixedToFloat(g.XOffset),
			Y:       -fixedToFloat(g.YOffset),
			Advance: fixedToFloat(g.XAdvance),
		}
	}
	return sh, true
}

// advance returns the shaped advance width of text.
func (p *FaceProvider) advance(tf *Typeface, size float64, text string) float64 {
	if text == "" {
		return 0
	}
	return fixedToFloat(p.shape(tf, size, text).Advance)
}

func (p *FaceProvider) shape(tf *Typeface, size float64, text string) shaping.Output {
	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		// font.Face is not safe for concurrent use; each call gets its own.
		Face:     gtfont.NewFace(tf.shape),
		Size:     floatToFixed(size),
		Script:   detectScript(runes),
		Language: language.NewLanguage("en"),
	}

	hb := p.shapers.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	p.shapers.Put(hb)
	return out
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func normalizeFamily(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
