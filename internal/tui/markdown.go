package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

// Renderers are cached by wrap width + style. WithAutoStyle is avoided: it
// can block waiting on terminal background queries.
var mdRenderers = map[string]*glamour.TermRenderer{}

func markdownStyle() string {
	if currentGlyphs == glyphSetASCII {
		return "ascii"
	}
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

func markdownStyleConfig(name string) ansi.StyleConfig {
	var cfg ansi.StyleConfig
	switch name {
	case "ascii":
		cfg = styles.ASCIIStyleConfig
	case "light":
		cfg = styles.LightStyleConfig
	default:
		cfg = styles.DarkStyleConfig
	}
	// Screens place rendered blocks themselves.
	zero := uint(0)
	cfg.Document.Margin = &zero
	return cfg
}

// renderMarkdown renders md without document margins, wrapped at width.
// On any renderer error the source text is returned unchanged.
func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	name := markdownStyle()
	key := name + ":" + strconv.Itoa(width)
	r := mdRenderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStyles(markdownStyleConfig(name)),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRenderers[key] = rr
		r = rr
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
