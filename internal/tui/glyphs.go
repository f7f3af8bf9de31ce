package tui

import (
	"os"
	"strings"
)

// Terminal apps can't change the user's font. Instead we choose between
// Unicode and ASCII glyph sets for UI affordances.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var currentGlyphs = glyphSetUnicode

// applyGlyphPreference picks the glyph set from TODO_TUI_GLYPHS, falling back
// to the configured value. Unknown values are ignored.
func applyGlyphPreference(configured string) {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("TODO_TUI_GLYPHS")))
	if v == "" {
		v = strings.ToLower(strings.TrimSpace(configured))
	}
	switch v {
	case "", "unicode", "utf8":
		currentGlyphs = glyphSetUnicode
	case "ascii":
		currentGlyphs = glyphSetASCII
	}
}

func glyphCursor() string {
	if currentGlyphs == glyphSetASCII {
		return ">"
	}
	return "▸"
}

func glyphPlus() string {
	if currentGlyphs == glyphSetASCII {
		return "+"
	}
	return "＋"
}

func glyphEllipsis() string {
	if currentGlyphs == glyphSetASCII {
		return "..."
	}
	return "…"
}

func glyphExpanded() string {
	if currentGlyphs == glyphSetASCII {
		return "v"
	}
	return "▾"
}

func glyphCollapsed() string {
	if currentGlyphs == glyphSetASCII {
		return ">"
	}
	return "▸"
}
