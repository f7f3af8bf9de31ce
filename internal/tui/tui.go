package tui

import (
	"fmt"
	"io"
	"log"

	"todo-cli/internal/todo"

	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	// Profile is the appearance profile ("default", "contrast").
	Profile string
	// Glyphs is "unicode" or "ascii".
	Glyphs string
	// LogFile, when set, receives the TUI's debug log.
	LogFile string
}

func Run(sess *todo.Session, opts Options) error {
	if opts.LogFile != "" {
		f, err := tea.LogToFile(opts.LogFile, "todo")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	id, ok := parseProfile(opts.Profile)
	if !ok {
		return fmt.Errorf("unknown appearance profile: %s", opts.Profile)
	}
	setProfile(id)
	applyGlyphPreference(opts.Glyphs)
	applyColorProfilePreference()
	applyThemePreference()

	log.Printf("start: screen=%s tasks=%d", sess.Screen(), sess.Tasks.Len())
	_, err := tea.NewProgram(newAppModel(sess), tea.WithAltScreen()).Run()
	return err
}
