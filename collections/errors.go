package collections

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by collections, lazy, interval and parallel
// operations. Compare with [errors.Is]; call sites wrap them with context.
var (
	// ErrInvalidArgument is returned when an operation is called with an
	// argument outside its domain (zero step, negative count, ...).
	ErrInvalidArgument = errors.New("collections: invalid argument")

	// ErrIndexOutOfRange is returned when an index is outside [0, Size()-1].
	ErrIndexOutOfRange = errors.New("collections: index out of range")

	// ErrIllegalState is returned when an operation is not defined for the
	// receiver's current shape (e.g. Factorial on a descending interval).
	ErrIllegalState = errors.New("collections: illegal state")

	// ErrEmptyCollection is returned when an operation requires at least one
	// element but the collection is empty.
	ErrEmptyCollection = errors.New("collections: operation on empty collection")

	// ErrInvalidChunkSize is returned when Chunk is called with size <= 0.
	// It matches ErrInvalidArgument under errors.Is.
	ErrInvalidChunkSize = fmt.Errorf("%w: chunk size must be greater than 0", ErrInvalidArgument)

	// ErrMismatchedLengths is returned by Combine when the key and value
	// slices have different lengths.
	ErrMismatchedLengths = errors.New("collections: keys and values must have the same length")
)

// IndexError reports an out-of-range index together with the valid size.
func IndexError(index, size int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, size)
}
