package todo

import (
	"errors"
	"testing"

	"todo-cli/internal/model"
)

func TestSubmit_EmptyEntryIsRejected(t *testing.T) {
	t.Parallel()

	s, _ := NewTaskListStore()
	var c SubmissionController
	c.SetPendingEntry("")

	if _, err := c.Submit(s); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty; got %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("expected store len 0; got %d", s.Len())
	}
	if c.PendingEntry() != "" {
		t.Fatalf("expected pending entry untouched")
	}
}

func TestSubmit_AppendsAndClears(t *testing.T) {
	t.Parallel()

	s, _ := NewTaskListStore()
	var c SubmissionController
	c.SetPendingEntry("Buy milk")

	got, err := c.Submit(s)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if got != (model.Task{Label: "Buy milk"}) {
		t.Fatalf("unexpected task %#v", got)
	}
	if s.Len() != 1 {
		t.Fatalf("expected store len 1; got %d", s.Len())
	}
	if c.PendingEntry() != "" {
		t.Fatalf("expected pending entry cleared; got %q", c.PendingEntry())
	}

	if _, err := s.Append("Second"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if got := labelsOf(s.List()); len(got) != 2 || got[0] != "Buy milk" || got[1] != "Second" {
		t.Fatalf("expected [Buy milk Second]; got %v", got)
	}
}

type failingAppender struct{ err error }

func (f failingAppender) Append(string) (model.Task, error) { return model.Task{}, f.err }

func TestSubmit_AppendFailureKeepsEntry(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	var c SubmissionController
	c.SetPendingEntry("keep me")

	if _, err := c.Submit(failingAppender{err: boom}); !errors.Is(err, boom) {
		t.Fatalf("expected boom; got %v", err)
	}
	if c.PendingEntry() != "keep me" {
		t.Fatalf("expected pending entry retained; got %q", c.PendingEntry())
	}
}

func TestSetPendingEntry_OverwritesAndNotifies(t *testing.T) {
	t.Parallel()

	var c SubmissionController
	var seen []string
	c.Subscribe(ObserverFunc(func(ev Event) { seen = append(seen, ev.Pending) }))

	c.SetPendingEntry("B")
	c.SetPendingEntry("Bu")
	c.SetPendingEntry("Bu")
	c.SetPendingEntry("")

	if c.PendingEntry() != "" {
		t.Fatalf("expected empty buffer; got %q", c.PendingEntry())
	}
	if len(seen) != 3 || seen[0] != "B" || seen[1] != "Bu" || seen[2] != "" {
		t.Fatalf("unexpected notifications %q", seen)
	}
}

func TestErrEmptyMatchesInvalidArgument(t *testing.T) {
	t.Parallel()

	if !errors.Is(ErrEmpty, ErrInvalidArgument) {
		t.Fatalf("expected ErrEmpty to match ErrInvalidArgument")
	}
	if errors.Is(ErrEmpty, ErrOutOfRange) {
		t.Fatalf("ErrEmpty must not match ErrOutOfRange")
	}
}
