package solubility

import (
	"errors"
	"fmt"
)

// Domain errors for model evaluation.
var (
	// ErrUnknownSubstance indicates a substance key missing from the table.
	ErrUnknownSubstance = errors.New("solubility: unknown substance")

	// ErrInvalidInput indicates a non-numeric, non-finite or negative input.
	ErrInvalidInput = errors.New("solubility: invalid input")

	// ErrInvalidCurve indicates a curve that cannot be evaluated over the
	// temperature domain.
	ErrInvalidCurve = errors.New("solubility: invalid curve")
)

// InputError wraps an error with the id of the input that caused it.
type InputError struct {
	Field   string
	Value   string
	Wrapped error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s=%q: %v", e.Field, e.Value, e.Wrapped)
}

func (e *InputError) Unwrap() error {
	return e.Wrapped
}
