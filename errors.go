package smootharray

import "errors"

// Index errors
var (
	// ErrIndexOutOfRange indicates that an index is outside [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrValueNotFound indicates that a value is not present in the array.
	ErrValueNotFound = errors.New("value not found")
)

// Capacity errors
var (
	// ErrCapacityOverflow indicates that the next buffer capacity cannot
	// be represented as an int. The array is unusable for further appends;
	// retrying recomputes the same overflow.
	ErrCapacityOverflow = errors.New("capacity overflow")
)
