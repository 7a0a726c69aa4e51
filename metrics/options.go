package metrics

// Option configures a FaceProvider.
type Option func(*config)

// FamilyData holds the font files of one family. Regular is required; a
// missing variant falls back to Regular.
type FamilyData struct {
	Regular    []byte
	Bold       []byte
	Italic     []byte
	BoldItalic []byte
}

type config struct {
	families      map[string]FamilyData
	defaultFamily string
	noBuiltins    bool
}

func defaultConfig() config {
	return config{
		families:      make(map[string]FamilyData),
		defaultFamily: "sans-serif",
	}
}

// WithFamily registers font data under a family name. Names are matched
// case-insensitively against the families of a font shorthand.
func WithFamily(name string, data FamilyData) Option {
	return func(c *config) {
		c.families[normalizeFamily(name)] = data
	}
}

// WithDefaultFamily selects the family used when none of the requested
// families is registered. The default is "sans-serif".
func WithDefaultFamily(name string) Option {
	return func(c *config) {
		c.defaultFamily = normalizeFamily(name)
	}
}

// WithoutBuiltins skips registering the Go fonts.
func WithoutBuiltins() Option {
	return func(c *config) {
		c.noBuiltins = true
	}
}
