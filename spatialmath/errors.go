package spatialmath

import (
	"fmt"
)

// TypeValidationError is returned when a geometry cannot be built from the given values, either
// because there are too few or too many of them or because one of them is not a number.
type TypeValidationError struct {
	// Type is the geometry being built, e.g. "Cuboid".
	Type string
	// Want and Got are the expected and received number of values.
	Want, Got int
	// Field names the offending field when a value is not numeric. Empty for arity errors.
	Field string
	Value interface{}
	// Reason is set when the target type itself cannot be built.
	Reason string
}

func (e *TypeValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", e.Type, e.Reason)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: field %s must be an int or a float, got %T (%v)", e.Type, e.Field, e.Value, e.Value)
	}
	return fmt.Sprintf("%s: expected %d values but got %d", e.Type, e.Want, e.Got)
}

func newArityError(typ string, want, got int) error {
	return &TypeValidationError{Type: typ, Want: want, Got: got}
}

func newNonNumericError(typ string, want, index int, value interface{}) error {
	field := fmt.Sprintf("#%d", index)
	if names, ok := fieldNames[typ]; ok && index < len(names) {
		field = names[index]
	}
	return &TypeValidationError{Type: typ, Want: want, Got: want, Field: field, Value: value}
}

func newPointMismatchError(typ string, got interface{}) error {
	return &TypeValidationError{
		Type:  typ,
		Want:  2,
		Got:   2,
		Field: "points",
		Value: got,
	}
}

func newUnsupportedTargetError(typ string) error {
	return &TypeValidationError{Type: typ, Reason: "not a concrete geometry type"}
}
