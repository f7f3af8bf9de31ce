package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const welcomeMarkdown = "# Welcome to the App To-Do List!"

func welcomeView(width, height int) string {
	w := width
	if w > 60 {
		w = 60
	}
	heading := renderMarkdown(welcomeMarkdown, w)
	btn := styleButton(true).Render("Continue")
	body := lipgloss.JoinVertical(lipgloss.Center, heading, "", "", btn)
	if width <= 0 || height <= 0 {
		return body
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// composeView is the prompt shown under the list until the user asks for the
// entry form.
func composeView(width int) string {
	fab := styleButton(true).Render(glyphPlus())
	hint := styleMuted().Render("add an entry")
	line := strings.Join([]string{fab, hint}, "  ")
	if width <= 0 {
		return line
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}
