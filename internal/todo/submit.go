package todo

import "todo-cli/internal/model"

// Appender is the part of TaskListStore that SubmissionController needs.
type Appender interface {
	Append(label string) (model.Task, error)
}

// SubmissionController holds the unsaved form entry and turns it into a task
// on submit.
type SubmissionController struct {
	pending string
	obs     observers
}

func (c *SubmissionController) PendingEntry() string { return c.pending }

// SetPendingEntry overwrites the buffer as the user types.
func (c *SubmissionController) SetPendingEntry(text string) {
	if text == c.pending {
		return
	}
	c.pending = text
	c.obs.notify(Event{Kind: EventPendingChanged, Pending: text})
}

// Submit appends the pending entry to store and clears it. An empty entry
// returns ErrEmpty and leaves both the buffer and the store untouched; an
// append failure leaves the buffer untouched.
func (c *SubmissionController) Submit(store Appender) (model.Task, error) {
	if c.pending == "" {
		return model.Task{}, ErrEmpty
	}
	t, err := store.Append(c.pending)
	if err != nil {
		return model.Task{}, err
	}
	c.SetPendingEntry("")
	return t, nil
}

func (c *SubmissionController) Subscribe(o Observer) (unsubscribe func()) {
	return c.obs.subscribe(o)
}
