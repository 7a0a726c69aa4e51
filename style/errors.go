package style

import "fmt"

// FieldError reports an invalid style field.
type FieldError struct {
	Field  string
	Value  any
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("style: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}
