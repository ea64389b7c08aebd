package collections

import (
	"errors"
	"fmt"
)

// Sentinel errors for container operations.
var (
	// ErrInvalidArgument is the umbrella for caller-side mistakes.
	ErrInvalidArgument = errors.New("collections: invalid argument")

	// ErrInvalidCapacity indicates a non-positive initial capacity.
	ErrInvalidCapacity = fmt.Errorf("%w: capacity must be positive", ErrInvalidArgument)

	// ErrIndexOutOfRange indicates an index outside [0, size).
	ErrIndexOutOfRange = fmt.Errorf("%w: index out of range", ErrInvalidArgument)

	// ErrEmptyContainer is returned by Pop, Poll and Peek on an empty buffer.
	// Callers are expected to check IsEmpty first; seeing this error is a bug.
	ErrEmptyContainer = errors.New("collections: container is empty")
)

func indexError(i, size int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, size)
}

func capacityError(capacity int) error {
	return fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
}
