package maplabel

import "errors"

// Sentinel errors for the maplabel package.
var (
	// ErrInvalidView is returned by View.Validate when resolution or pixel
	// ratio are not finite positive numbers.
	ErrInvalidView = errors.New("maplabel: invalid view")
)

// ColorError is returned when a color string cannot be parsed.
type ColorError struct {
	Value  string
	Reason string
}

func (e *ColorError) Error() string {
	return "maplabel: " + e.Reason + ": " + e.Value
}
