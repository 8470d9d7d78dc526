package tui

import (
	"os"
	"strings"
	"sync"
)

// Some terminals/fonts render the Unicode arrows and dots poorly, so every
// affordance has an ASCII fallback.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

// applyGlyphPreference picks the glyph set from an explicit preference or,
// when empty, CALPICKER_TUI_GLYPHS. Unknown values are ignored.
func applyGlyphPreference(pref string) {
	if strings.TrimSpace(pref) == "" {
		pref = os.Getenv("CALPICKER_TUI_GLYPHS")
	}
	if gs, ok := parseGlyphSet(pref); ok {
		setGlyphs(gs)
	}
}

func parseGlyphSet(v string) (glyphSet, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "unicode", "utf8":
		return glyphSetUnicode, true
	case "ascii":
		return glyphSetASCII, true
	default:
		return glyphSetUnicode, false
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func glyphPrev() string {
	if glyphs() == glyphSetASCII {
		return "<"
	}
	return "‹"
}

func glyphNext() string {
	if glyphs() == glyphSetASCII {
		return ">"
	}
	return "›"
}

func glyphEvent() string {
	if glyphs() == glyphSetASCII {
		return "*"
	}
	return "•"
}

func glyphCalendar() string {
	if glyphs() == glyphSetASCII {
		return "#"
	}
	return "▦"
}
