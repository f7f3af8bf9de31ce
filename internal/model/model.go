package model

// Task is a single to-do entry. It has no stable id: identity is its position
// in the owning list.
type Task struct {
	Label string `json:"label"`
}

// IndexedTask pairs a task with its current position, for output payloads.
type IndexedTask struct {
	Index int    `json:"index"`
	Label string `json:"label"`
}

func WithIndex(index int, t Task) IndexedTask {
	return IndexedTask{Index: index, Label: t.Label}
}
