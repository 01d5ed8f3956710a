package schema

import (
	"errors"
	"fmt"
)

// ErrSchema is matched by every SchemaError via errors.Is.
var ErrSchema = errors.New("schema: invalid datamodel")

// SchemaError reports a datamodel that cannot be used for generation. It is
// never retried; the run stops.
type SchemaError struct {
	Definition string
	Reason     string
}

func (e *SchemaError) Error() string {
	if e.Definition == "" {
		return fmt.Sprintf("schema: %s", e.Reason)
	}
	return fmt.Sprintf("schema: %s: %s", e.Definition, e.Reason)
}

// Is reports whether target is ErrSchema.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

func newSchemaError(definition, format string, args ...any) *SchemaError {
	return &SchemaError{Definition: definition, Reason: fmt.Sprintf(format, args...)}
}

// IsSchemaError returns true if err is or wraps a SchemaError.
func IsSchemaError(err error) bool {
	var e *SchemaError
	return errors.As(err, &e)
}
