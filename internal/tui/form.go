package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/lipgloss"
)

const formMaxLines = 5

type formField int

const (
	fieldMessage formField = iota
	fieldSubmit
)

type formModel struct {
	input textarea.Model
	field formField
}

func newFormModel() formModel {
	ta := textarea.New()
	ta.Placeholder = "Write…"
	ta.CharLimit = 0
	ta.MaxHeight = formMaxLines
	ta.SetHeight(formMaxLines)
	ta.ShowLineNumbers = false
	return formModel{input: ta, field: fieldMessage}
}

// formHeight is the number of rows view() produces: label, input, button.
func formHeight() int { return 1 + formMaxLines + 1 }

func (f *formModel) setWidth(w int) {
	if w < 10 {
		w = 10
	}
	f.input.SetWidth(w)
}

func (f *formModel) focusMessage() {
	f.field = fieldMessage
	f.input.Focus()
}

func (f *formModel) focusSubmit() {
	f.field = fieldSubmit
	f.input.Blur()
}

func (f *formModel) blur() {
	f.field = fieldMessage
	f.input.Blur()
}

func (f formModel) focused() bool {
	return f.input.Focused() || f.field == fieldSubmit
}

func (f formModel) view(width int) string {
	label := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render("Message")
	btn := styleButton(f.field == fieldSubmit).Render("Submit")
	btnLine := lipgloss.PlaceHorizontal(width, lipgloss.Center, btn)
	return strings.Join([]string{label, f.input.View(), btnLine}, "\n")
}
