package metrics

import (
	"errors"
	"fmt"
)

// Sentinel errors for the metrics package.
var (
	// ErrEmptyFontData is returned when a family is registered without
	// font data.
	ErrEmptyFontData = errors.New("metrics: empty font data")

	// ErrUnknownFamily is returned by SetDefaultFamily for a family that
	// was never registered.
	ErrUnknownFamily = errors.New("metrics: unknown font family")
)

// FontError is returned by ParseFont for a malformed CSS font shorthand.
type FontError struct {
	Font   string
	Reason string
}

func (e *FontError) Error() string {
	return fmt.Sprintf("metrics: invalid font %q: %s", e.Font, e.Reason)
}
