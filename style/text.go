// Package style holds the text style descriptor consumed by placement.
//
// A Text is immutable once built. Every With* method returns a new Text and
// leaves the receiver untouched, so a Text can be shared between features and
// goroutines without locking:
//
//	base := style.MustText(style.TextOptions{Font: "bold 14px sans-serif"})
//	top := base.WithText("Hello world").WithTextBaseline(style.BaselineTop)
package style

import (
	"fmt"
	"math"

	"github.com/jinzhu/copier"

	"github.com/gogpu/maplabel"
)

// DefaultFont is used when TextOptions.Font is empty.
const DefaultFont = "10px sans-serif"

// DefaultMaxAngle is used when TextOptions.MaxAngle is zero.
const DefaultMaxAngle = math.Pi / 4

// DefaultFillColor is the fill applied by DefaultTextOptions.
var DefaultFillColor = maplabel.MustParseColor("#333")

// Fill paints the inside of glyphs or of the background box.
type Fill struct {
	Color maplabel.RGBA `toml:"color" yaml:"color"`
}

// Stroke outlines glyphs (halo) or the background box.
type Stroke struct {
	Color maplabel.RGBA `toml:"color" yaml:"color"`
	// Width in CSS pixels. Zero means 1.
	Width float64 `toml:"width" yaml:"width"`
}

// LineWidth returns the stroke width with the default applied.
func (s *Stroke) LineWidth() float64 {
	if s.Width == 0 {
		return 1
	}
	return s.Width
}

// Padding expands the background box: top, right, bottom, left, in CSS pixels.
// The sides are independent.
type Padding [4]float64

// Top returns the top padding.
func (p Padding) Top() float64 { return p[0] }

// Right returns the right padding.
func (p Padding) Right() float64 { return p[1] }

// Bottom returns the bottom padding.
func (p Padding) Bottom() float64 { return p[2] }

// Left returns the left padding.
func (p Padding) Left() float64 { return p[3] }

// TextOptions lists every style parameter. It is the construction input for
// NewText and the decoding target for style files.
type TextOptions struct {
	// Text may contain "\n" line breaks.
	Text string `toml:"text" yaml:"text"`

	// Font is a CSS font shorthand such as "bold 14px sans-serif".
	// Empty means DefaultFont.
	Font string `toml:"font" yaml:"font"`

	// Scale multiplies measured sizes and stroke widths. ScaleX and ScaleY
	// override it per axis. Zero means 1.
	Scale  float64 `toml:"scale" yaml:"scale"`
	ScaleX float64 `toml:"scaleX" yaml:"scaleX"`
	ScaleY float64 `toml:"scaleY" yaml:"scaleY"`

	Fill             *Fill   `toml:"fill" yaml:"fill"`
	Stroke           *Stroke `toml:"stroke" yaml:"stroke"`
	BackgroundFill   *Fill   `toml:"backgroundFill" yaml:"backgroundFill"`
	BackgroundStroke *Stroke `toml:"backgroundStroke" yaml:"backgroundStroke"`

	Padding Padding `toml:"padding" yaml:"padding"`

	TextAlign    TextAlign    `toml:"textAlign" yaml:"textAlign"`
	TextBaseline TextBaseline `toml:"textBaseline" yaml:"textBaseline"`

	// OffsetX and OffsetY shift a point label, in CSS pixels.
	OffsetX float64 `toml:"offsetX" yaml:"offsetX"`
	OffsetY float64 `toml:"offsetY" yaml:"offsetY"`

	// Rotation in radians.
	Rotation       float64 `toml:"rotation" yaml:"rotation"`
	RotateWithView bool    `toml:"rotateWithView" yaml:"rotateWithView"`

	Placement Placement `toml:"placement" yaml:"placement"`

	// MaxAngle bounds the summed turning angle under a path label, in
	// radians. Zero means DefaultMaxAngle; +Inf disables the check. Use
	// WithMaxAngle(0) for a descriptor that rejects any turn.
	MaxAngle float64 `toml:"maxAngle" yaml:"maxAngle"`

	// Overflow draws path labels longer than their path instead of
	// omitting them.
	Overflow bool `toml:"overflow" yaml:"overflow"`
}

// DefaultTextOptions returns options with the default fill set.
func DefaultTextOptions() TextOptions {
	return TextOptions{
		Font:     DefaultFont,
		Fill:     &Fill{Color: DefaultFillColor},
		MaxAngle: DefaultMaxAngle,
	}
}

// Text is an immutable text style descriptor.
type Text struct {
	opts TextOptions
}

// NewText validates opts and returns a descriptor holding a deep copy of
// them. Later changes to opts or to the structs it points to do not affect
// the returned Text.
func NewText(opts TextOptions) (*Text, error) {
	if err := validate(&opts); err != nil {
		return nil, err
	}
	t := &Text{}
	if err := deepCopy(&t.opts, &opts); err != nil {
		return nil, err
	}
	if t.opts.Font == "" {
		t.opts.Font = DefaultFont
	}
	if t.opts.MaxAngle == 0 {
		t.opts.MaxAngle = DefaultMaxAngle
	}
	return t, nil
}

// MustText is like NewText but panics on invalid options.
func MustText(opts TextOptions) *Text {
	t, err := NewText(opts)
	if err != nil {
		panic(err)
	}
	return t
}

func validate(o *TextOptions) error {
	for _, s := range []struct {
		name string
		v    float64
	}{{"scale", o.Scale}, {"scaleX", o.ScaleX}, {"scaleY", o.ScaleY}} {
		if math.IsNaN(s.v) || math.IsInf(s.v, 0) {
			return &FieldError{Field: s.name, Value: s.v, Reason: "must be finite"}
		}
		if s.v < 0 {
			return &FieldError{Field: s.name, Value: s.v, Reason: "must be positive"}
		}
	}
	for i, p := range o.Padding {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return &FieldError{Field: fmt.Sprintf("padding[%d]", i), Value: p, Reason: "must be finite"}
		}
	}
	for _, s := range []struct {
		name string
		v    float64
	}{{"offsetX", o.OffsetX}, {"offsetY", o.OffsetY}, {"rotation", o.Rotation}} {
		if math.IsNaN(s.v) || math.IsInf(s.v, 0) {
			return &FieldError{Field: s.name, Value: s.v, Reason: "must be finite"}
		}
	}
	if math.IsNaN(o.MaxAngle) || o.MaxAngle < 0 {
		return &FieldError{Field: "maxAngle", Value: o.MaxAngle, Reason: "must be positive or +Inf"}
	}
	for _, s := range []struct {
		name string
		v    *Stroke
	}{{"stroke", o.Stroke}, {"backgroundStroke", o.BackgroundStroke}} {
		if s.v != nil && (s.v.Width < 0 || math.IsNaN(s.v.Width) || math.IsInf(s.v.Width, 0)) {
			return &FieldError{Field: s.name + ".width", Value: s.v.Width, Reason: "must be a finite positive number"}
		}
	}
	if o.TextAlign < AlignAuto || o.TextAlign > AlignCenter {
		return &FieldError{Field: "textAlign", Value: int(o.TextAlign), Reason: "out of range"}
	}
	if o.TextBaseline < BaselineAlphabetic || o.TextBaseline > BaselineBottom {
		return &FieldError{Field: "textBaseline", Value: int(o.TextBaseline), Reason: "out of range"}
	}
	if o.Placement < PlacementPoint || o.Placement > PlacementLine {
		return &FieldError{Field: "placement", Value: int(o.Placement), Reason: "out of range"}
	}
	return nil
}

func deepCopy(dst, src *TextOptions) error {
	if err := copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true}); err != nil {
		return fmt.Errorf("style: copy options: %w", err)
	}
	return nil
}

// Options returns a deep copy of the options the descriptor was built from,
// with defaults applied.
func (t *Text) Options() TextOptions {
	var o TextOptions
	// Copying between identical types cannot fail.
	_ = deepCopy(&o, &t.opts)
	return o
}

// Clone returns a deep, independent copy.
func (t *Text) Clone() *Text {
	return &Text{opts: t.Options()}
}

// with applies fn to a copy of the options. Setters validate like NewText;
// a setter given an invalid value panics, since the values come from code,
// not from user input.
func (t *Text) with(fn func(o *TextOptions)) *Text {
	o := t.Options()
	fn(&o)
	// o starts from resolved options, so a zero MaxAngle was set on purpose.
	maxAngle := o.MaxAngle
	n := MustText(o)
	n.opts.MaxAngle = maxAngle
	return n
}

// Text returns the label text.
func (t *Text) Text() string { return t.opts.Text }

// Font returns the CSS font shorthand.
func (t *Text) Font() string { return t.opts.Font }

// Scale returns the per-axis scale factors.
func (t *Text) Scale() (x, y float64) {
	u := t.opts.Scale
	if u == 0 {
		u = 1
	}
	x, y = t.opts.ScaleX, t.opts.ScaleY
	if x == 0 {
		x = u
	}
	if y == 0 {
		y = u
	}
	return x, y
}

// Fill returns a copy of the glyph fill, or nil.
func (t *Text) Fill() *Fill { return copyFill(t.opts.Fill) }

// Stroke returns a copy of the glyph stroke, or nil.
func (t *Text) Stroke() *Stroke { return copyStroke(t.opts.Stroke) }

// BackgroundFill returns a copy of the background fill, or nil.
func (t *Text) BackgroundFill() *Fill { return copyFill(t.opts.BackgroundFill) }

// BackgroundStroke returns a copy of the background stroke, or nil.
func (t *Text) BackgroundStroke() *Stroke { return copyStroke(t.opts.BackgroundStroke) }

// HasBackground reports whether a background fill or stroke is set.
func (t *Text) HasBackground() bool {
	return t.opts.BackgroundFill != nil || t.opts.BackgroundStroke != nil
}

// Padding returns the background padding.
func (t *Text) Padding() Padding { return t.opts.Padding }

// TextAlign returns the horizontal alignment.
func (t *Text) TextAlign() TextAlign { return t.opts.TextAlign }

// TextBaseline returns the vertical alignment.
func (t *Text) TextBaseline() TextBaseline { return t.opts.TextBaseline }

// Offset returns the point label offset in CSS pixels.
func (t *Text) Offset() (x, y float64) { return t.opts.OffsetX, t.opts.OffsetY }

// Rotation returns the explicit rotation in radians.
func (t *Text) Rotation() float64 { return t.opts.Rotation }

// RotateWithView reports whether the rotation is relative to the view.
func (t *Text) RotateWithView() bool { return t.opts.RotateWithView }

// Placement returns the placement mode.
func (t *Text) Placement() Placement { return t.opts.Placement }

// MaxAngle returns the turning angle limit for path labels.
func (t *Text) MaxAngle() float64 { return t.opts.MaxAngle }

// Overflow reports whether path labels may exceed their path.
func (t *Text) Overflow() bool { return t.opts.Overflow }

// WithText returns a copy with a different text.
func (t *Text) WithText(s string) *Text {
	return t.with(func(o *TextOptions) { o.Text = s })
}

// WithFont returns a copy with a different font. Metrics cached for the old
// font string stay valid for that string; they are simply not consulted
// for the new one.
func (t *Text) WithFont(font string) *Text {
	return t.with(func(o *TextOptions) { o.Font = font })
}

// WithScale returns a copy with a uniform scale.
func (t *Text) WithScale(s float64) *Text {
	return t.with(func(o *TextOptions) { o.Scale, o.ScaleX, o.ScaleY = s, 0, 0 })
}

// WithScaleXY returns a copy with per-axis scale factors.
func (t *Text) WithScaleXY(x, y float64) *Text {
	return t.with(func(o *TextOptions) { o.ScaleX, o.ScaleY = x, y })
}

// WithFill returns a copy with a different glyph fill; nil removes it.
func (t *Text) WithFill(f *Fill) *Text {
	return t.with(func(o *TextOptions) { o.Fill = copyFill(f) })
}

// WithStroke returns a copy with a different glyph stroke; nil removes it.
func (t *Text) WithStroke(s *Stroke) *Text {
	return t.with(func(o *TextOptions) { o.Stroke = copyStroke(s) })
}

// WithBackgroundFill returns a copy with a different background fill.
func (t *Text) WithBackgroundFill(f *Fill) *Text {
	return t.with(func(o *TextOptions) { o.BackgroundFill = copyFill(f) })
}

// WithBackgroundStroke returns a copy with a different background stroke.
func (t *Text) WithBackgroundStroke(s *Stroke) *Text {
	return t.with(func(o *TextOptions) { o.BackgroundStroke = copyStroke(s) })
}

// WithPadding returns a copy with different padding.
func (t *Text) WithPadding(p Padding) *Text {
	return t.with(func(o *TextOptions) { o.Padding = p })
}

// WithTextAlign returns a copy with a different alignment.
func (t *Text) WithTextAlign(a TextAlign) *Text {
	return t.with(func(o *TextOptions) { o.TextAlign = a })
}

// WithTextBaseline returns a copy with a different baseline.
func (t *Text) WithTextBaseline(b TextBaseline) *Text {
	return t.with(func(o *TextOptions) { o.TextBaseline = b })
}

// WithOffset returns a copy with a different offset.
func (t *Text) WithOffset(x, y float64) *Text {
	return t.with(func(o *TextOptions) { o.OffsetX, o.OffsetY = x, y })
}

// WithRotation returns a copy with a different rotation.
func (t *Text) WithRotation(r float64) *Text {
	return t.with(func(o *TextOptions) { o.Rotation = r })
}

// WithRotateWithView returns a copy with rotateWithView set.
func (t *Text) WithRotateWithView(v bool) *Text {
	return t.with(func(o *TextOptions) { o.RotateWithView = v })
}

// WithPlacement returns a copy with a different placement.
func (t *Text) WithPlacement(p Placement) *Text {
	return t.with(func(o *TextOptions) { o.Placement = p })
}

// WithMaxAngle returns a copy with a different maximum turning angle.
// Unlike in TextOptions, zero is kept: the label only fits straight spans.
func (t *Text) WithMaxAngle(a float64) *Text {
	return t.with(func(o *TextOptions) { o.MaxAngle = a })
}

// WithOverflow returns a copy with overflow set.
func (t *Text) WithOverflow(v bool) *Text {
	return t.with(func(o *TextOptions) { o.Overflow = v })
}

func copyFill(f *Fill) *Fill {
	if f == nil {
		return nil
	}
	c := *f
	return &c
}

func copyStroke(s *Stroke) *Stroke {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
