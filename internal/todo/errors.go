package todo

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfRange      = errors.New("index out of range")

	// ErrEmpty is returned by Submit when the pending entry is empty.
	// It matches ErrInvalidArgument as well.
	ErrEmpty = fmt.Errorf("empty entry: %w", ErrInvalidArgument)
)

type OutOfRangeError struct {
	Index int
	Len   int
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

func (e OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
