package cli

import (
	"errors"
	"fmt"

	"todo-cli/internal/todo"
)

type indexArgError struct {
	arg string
}

func (e indexArgError) Error() string {
	return fmt.Sprintf("invalid index: %q (want an integer)", e.arg)
}

type emptyLabelError struct {
	position int
}

func (e emptyLabelError) Error() string {
	return fmt.Sprintf("label %d is empty", e.position)
}

func (e emptyLabelError) Unwrap() error { return todo.ErrEmpty }

// describeErr turns core errors into user-facing messages. Unknown errors
// pass through unchanged.
func describeErr(err error) error {
	var oor todo.OutOfRangeError
	switch {
	case errors.As(err, &oor):
		if oor.Len == 0 {
			return fmt.Errorf("no task at index %d: the list is empty", oor.Index)
		}
		return fmt.Errorf("no task at index %d: valid indexes are 0..%d", oor.Index, oor.Len-1)
	default:
		return err
	}
}
