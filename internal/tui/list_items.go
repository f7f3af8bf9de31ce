package tui

import (
	"fmt"

	"todo-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
)

type taskItem struct {
	index int
	task  model.Task
}

func (i taskItem) FilterValue() string { return i.task.Label }
func (i taskItem) Title() string       { return fmt.Sprintf("TO DO List item: %d", i.index) }
func (i taskItem) Description() string { return i.task.Label }

func taskItems(ts []model.Task) []list.Item {
	items := make([]list.Item, 0, len(ts))
	for i, t := range ts {
		items = append(items, taskItem{index: i, task: t})
	}
	return items
}

// rowState is shared between the app model and the list delegate, so it
// survives Bubble Tea's value-copying of models.
type rowState struct {
	expanded map[int]bool
}

func newRowState() *rowState { return &rowState{expanded: map[int]bool{}} }

func (r *rowState) toggle(index int) bool {
	r.expanded[index] = !r.expanded[index]
	return r.expanded[index]
}

func newTaskList(items []list.Item, rows *rowState) list.Model {
	l := list.New(items, newTaskDelegate(rows), 0, 0)
	l.Title = "TO-DO List"
	// The app renders its own title bar and footer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("task", "tasks")
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.KeyMap.ShowFullHelp.SetEnabled(false)
	l.KeyMap.CloseFullHelp.SetEnabled(false)

	// Emacs-style navigation aliases.
	l.KeyMap.CursorUp.SetKeys(append(l.KeyMap.CursorUp.Keys(), "ctrl+p")...)
	l.KeyMap.CursorDown.SetKeys(append(l.KeyMap.CursorDown.Keys(), "ctrl+n")...)
	return l
}
