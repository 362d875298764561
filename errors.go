package unionfind

import "errors"

var (
	// ErrUnknownElement is returned when an operation references an element
	// that was never passed to Add.
	ErrUnknownElement = errors.New("unknown element")

	// ErrDuplicateElement is returned by Add when the element is already
	// registered. The partition is left untouched.
	ErrDuplicateElement = errors.New("duplicate element")

	// ErrInvalidElement is returned by Add for values that are not equal to
	// themselves, such as a float NaN. Such a value can never be found again
	// as a map key.
	ErrInvalidElement = errors.New("invalid element")

	// ErrInvalidWeight is returned when an edge weight is NaN.
	ErrInvalidWeight = errors.New("invalid edge weight")
)
