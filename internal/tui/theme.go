package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// The TUI must remain readable on both light and dark terminal backgrounds.
// We use lipgloss.AdaptiveColor everywhere and only apply "faint" styling
// on dark backgrounds (faint text on light terminals often becomes illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

type profileID string

const (
	profileDefault  profileID = "default"
	profileContrast profileID = "contrast"
)

var (
	colorMuted      lipgloss.TerminalColor
	colorAccent     lipgloss.TerminalColor // title bar, rows, buttons
	colorOnAccent   lipgloss.TerminalColor
	colorSelectedBg lipgloss.TerminalColor
	colorSelectedFg lipgloss.TerminalColor
	colorInputBg    lipgloss.TerminalColor
	colorError      lipgloss.TerminalColor
	colorOK         lipgloss.TerminalColor
)

func init() { setProfile(profileDefault) }

func parseProfile(s string) (profileID, bool) {
	switch profileID(strings.ToLower(strings.TrimSpace(s))) {
	case "", profileDefault:
		return profileDefault, true
	case profileContrast:
		return profileContrast, true
	}
	return profileDefault, false
}

func setProfile(id profileID) {
	switch id {
	case profileContrast:
		colorMuted = ac("235", "252")
		colorAccent = ac("18", "226")
		colorOnAccent = ac("231", "16")
		colorSelectedBg = ac("16", "231")
		colorSelectedFg = ac("231", "16")
		colorInputBg = ac("255", "233")
		colorError = ac("124", "203")
		colorOK = ac("22", "120")
	default:
		colorMuted = ac("240", "243")
		colorAccent = ac("62", "62") // Material-ish purple
		colorOnAccent = ac("255", "255")
		colorSelectedBg = ac("#e9e9e9", "#262626")
		colorSelectedFg = ac("235", "255")
		colorInputBg = ac("254", "234")
		colorError = ac("160", "203")
		colorOK = ac("28", "114")
	}
}

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleTitleBar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Bold(true).
		Foreground(colorOnAccent).
		Background(colorAccent)
}

func styleButton(focused bool) lipgloss.Style {
	st := lipgloss.NewStyle().Padding(0, 2).Bold(true)
	if focused {
		return st.Foreground(colorOnAccent).Background(colorAccent)
	}
	return st.Foreground(colorAccent).Border(lipgloss.NormalBorder(), false, true).BorderForeground(colorAccent)
}

// applyColorProfilePreference sets Lip Gloss's color profile for the interactive TUI.
//
// termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which can accidentally
// disable colors in a TUI. Only NO_COLOR is honored here.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") && profile != termenv.TrueColor {
		profile = termenv.ANSI256
	}
	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures Lip Gloss's background detection.
//
// Priority:
// 1) TODO_TUI_THEME=light|dark|auto
// 2) COLORFGBG heuristic ("fg;bg", last segment is the background)
func applyThemePreference() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("TODO_TUI_THEME"))) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}
