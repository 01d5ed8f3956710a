package seeder

import (
	"errors"
	"fmt"
)

var (
	// ErrUnnamedType is returned for a field whose type chain has no named type.
	ErrUnnamedType = errors.New("field has no named type")

	// ErrUnsupportedScalar is returned when a scalar kind has no synthesizer.
	ErrUnsupportedScalar = errors.New("unsupported scalar kind")

	// ErrUniqueExhausted is returned when no unused value could be produced
	// for a unique field within the retry budget.
	ErrUniqueExhausted = errors.New("unique-value exhaustion")
)

// GenerationError reports where generation failed. It unwraps to one of the
// sentinel errors above.
type GenerationError struct {
	Type  string
	Field string
	Err   error
}

func (e *GenerationError) Error() string {
	switch {
	case e.Type != "" && e.Field != "":
		return fmt.Sprintf("seeder: %s.%s: %v", e.Type, e.Field, e.Err)
	case e.Type != "":
		return fmt.Sprintf("seeder: %s: %v", e.Type, e.Err)
	default:
		return fmt.Sprintf("seeder: %v", e.Err)
	}
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// IsGenerationError returns true if err is or wraps a GenerationError.
func IsGenerationError(err error) bool {
	var e *GenerationError
	return errors.As(err, &e)
}

func fieldError(typeName, fieldName string, err error) error {
	var ge *GenerationError
	if errors.As(err, &ge) {
		if ge.Type == "" {
			ge.Type = typeName
		}
		if ge.Field == "" {
			ge.Field = fieldName
		}
		return ge
	}
	return &GenerationError{Type: typeName, Field: fieldName, Err: err}
}
