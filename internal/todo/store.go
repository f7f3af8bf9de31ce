package todo

import (
	"fmt"

	"todo-cli/internal/model"
)

// DemoLabels are the placeholder rows the demo app ships with. Nothing uses
// them implicitly; pass them to NewTaskListStore to opt in.
var DemoLabels = []string{"Limpiar", "Cocinar", "Sacar la basura", "Estudiar"}

// TaskListStore owns an append-only, ordered list of tasks.
type TaskListStore struct {
	tasks []model.Task
	obs   observers
}

// NewTaskListStore builds a store holding labels in order. Every label must
// be non-empty.
func NewTaskListStore(labels ...string) (*TaskListStore, error) {
	s := &TaskListStore{tasks: make([]model.Task, 0, len(labels))}
	for i, l := range labels {
		if l == "" {
			return nil, fmt.Errorf("initial label %d: %w", i, ErrInvalidArgument)
		}
		s.tasks = append(s.tasks, model.Task{Label: l})
	}
	return s, nil
}

func (s *TaskListStore) Len() int { return len(s.tasks) }

// List returns a snapshot of the tasks in insertion order.
func (s *TaskListStore) List() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *TaskListStore) Append(label string) (model.Task, error) {
	if label == "" {
		return model.Task{}, fmt.Errorf("task label is empty: %w", ErrInvalidArgument)
	}
	t := model.Task{Label: label}
	s.tasks = append(s.tasks, t)
	s.obs.notify(Event{Kind: EventTaskAppended, Task: t, Index: len(s.tasks) - 1})
	return t, nil
}

func (s *TaskListStore) Get(index int) (model.Task, error) {
	if index < 0 || index >= len(s.tasks) {
		return model.Task{}, OutOfRangeError{Index: index, Len: len(s.tasks)}
	}
	return s.tasks[index], nil
}

func (s *TaskListStore) Subscribe(o Observer) (unsubscribe func()) {
	return s.obs.subscribe(o)
}
