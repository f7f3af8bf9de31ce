package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// taskDelegate renders each task as a three-line card: heading, label and a
// bottom padding line that is filled in when the row is expanded.
type taskDelegate struct {
	rows *rowState
}

func newTaskDelegate(rows *rowState) taskDelegate { return taskDelegate{rows: rows} }

func (d taskDelegate) Height() int                             { return 3 }
func (d taskDelegate) Spacing() int                            { return 1 }
func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(taskItem)
	if !ok {
		return
	}
	contentW := m.Width()
	if contentW < 8 {
		fmt.Fprint(w, "")
		return
	}

	selected := index == m.Index()
	expanded := d.rows != nil && d.rows.expanded[it.index]

	card := lipgloss.NewStyle().Foreground(colorOnAccent).Background(colorAccent)
	if selected {
		card = card.Bold(true)
	}

	marker := "  "
	if selected {
		marker = glyphCursor() + " "
	}
	twisty := glyphCollapsed()
	if expanded {
		twisty = glyphExpanded()
	}

	lines := []string{
		marker + twisty + " " + it.Title(),
		"    " + it.Description(),
		"",
	}
	if !expanded {
		// Collapsed rows keep the padding line outside the card.
		fmt.Fprint(w, card.Render(fitLine(lines[0], contentW))+"\n"+
			card.Render(fitLine(lines[1], contentW))+"\n")
		return
	}
	out := make([]string, 0, len(lines))
	for _, ln := range lines {
		out = append(out, card.Render(fitLine(ln, contentW)))
	}
	fmt.Fprint(w, strings.Join(out, "\n"))
}

// fitLine pads or truncates s to exactly w cells.
func fitLine(s string, w int) string {
	sw := xansi.StringWidth(s)
	switch {
	case sw < w:
		return s + strings.Repeat(" ", w-sw)
	case sw > w:
		return xansi.Truncate(s, w, glyphEllipsis())
	}
	return s
}
