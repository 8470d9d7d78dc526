package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// fitWidth forces s to exactly width columns (ANSI-aware), cutting with an
// ellipsis or padding on the right.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := xansi.StringWidth(s)
	if w > width {
		if width == 1 {
			return xansi.Cut(s, 0, 1)
		}
		s = xansi.Cut(s, 0, width-1) + "…"
		w = xansi.StringWidth(s)
	}
	if w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// padLeft right-aligns s in width columns, truncating without an ellipsis.
func padLeft(s string, width int) string {
	if xansi.StringWidth(s) > width {
		s = xansi.Truncate(s, width, "")
	}
	if w := xansi.StringWidth(s); w < width {
		s = strings.Repeat(" ", width-w) + s
	}
	return s
}

// center places s in the middle of width columns.
func center(s string, width int) string {
	w := xansi.StringWidth(s)
	if w >= width {
		return fitWidth(s, width)
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
