package tui

import (
	"strconv"
	"strings"

	"calpicker/internal/picker"

	"github.com/charmbracelet/lipgloss"
)

const (
	cellWidth = 4
	gridWidth = 7 * cellWidth
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	if m.state.Expanded() {
		b.WriteString("\n\n")
		b.WriteString(m.renderMonthBar())
		b.WriteString("\n")
		b.WriteString(m.renderWeekdays())
		b.WriteString("\n")
		b.WriteString(m.renderGrid())
		if status := m.renderStatus(); status != "" {
			b.WriteString("\n")
			b.WriteString(status)
		}
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderHeader is the collapsed control: a label plus the selected date.
func (m Model) renderHeader() string {
	btn := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg).
		Render(m.state.Calendar().FormatDate(m.state.SelectedDate()))
	btnW := lipgloss.Width(btn)

	label := glyphCalendar() + " " + styleMuted().Render("Select Date")
	width := max(gridWidth, lipgloss.Width(label)+1+btnW)
	return fitWidth(label, width-btnW) + btn
}

func (m Model) renderMonthBar() string {
	arrow := func(glyph string, disabled bool) string {
		st := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg)
		if disabled {
			st = lipgloss.NewStyle().Foreground(colorDisabled)
		}
		return st.Render(glyph)
	}
	title := lipgloss.NewStyle().Bold(true).Render(m.state.MonthTitle())
	return " " + arrow(glyphPrev(), !m.state.CanGoPrevious()) +
		center(title, gridWidth-4) +
		arrow(glyphNext(), !m.state.CanGoNext()) + " "
}

func (m Model) renderWeekdays() string {
	st := lipgloss.NewStyle().Bold(true).Foreground(colorChromeFg)
	var b strings.Builder
	for _, label := range m.state.WeekdayLabels() {
		b.WriteString(st.Render(padLeft(label, cellWidth-1)))
		b.WriteString(" ")
	}
	return b.String()
}

func (m Model) renderGrid() string {
	var (
		base     = lipgloss.NewStyle().Foreground(colorSurfaceFg)
		today    = lipgloss.NewStyle().Foreground(colorToday).Bold(true)
		selected = lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
		marker   = lipgloss.NewStyle().Foreground(colorEvent)
	)

	var rows []string
	var row strings.Builder
	col := 0
	flush := func() {
		rows = append(rows, row.String())
		row.Reset()
		col = 0
	}

	for i := 0; i < m.state.Leading(); i++ {
		row.WriteString(strings.Repeat(" ", cellWidth))
		col++
	}
	for _, d := range m.state.Dates() {
		num := padLeft(strconv.Itoa(d.Day), cellWidth-2)
		st := base
		switch {
		case m.state.IsSelected(d.Date):
			st = selected
		case m.state.IsToday(d.Date):
			st = today
		}
		if d.Day == m.cursor {
			if m.state.IsSelected(d.Date) {
				st = st.Underline(true)
			} else {
				st = st.Reverse(true)
			}
		}
		mark := " "
		if m.state.HasEvent(d.Date) {
			mark = marker.Render(glyphEvent())
		}
		row.WriteString(" ")
		row.WriteString(st.Render(num))
		row.WriteString(mark)
		col++
		if col == 7 {
			flush()
		}
	}
	if col > 0 {
		row.WriteString(strings.Repeat(" ", (7-col)*cellWidth))
		flush()
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderStatus() string {
	switch {
	case m.last != nil && m.last.seen && m.last.field == picker.FieldSelectedDate:
		return styleMuted().Render("Selected " + m.state.Calendar().FormatDate(m.state.SelectedDate()))
	case m.state.AtMinBound() && m.state.AtMaxBound():
		return styleMuted().Render("Only month available")
	case m.state.AtMinBound():
		return styleMuted().Render("Earliest month")
	case m.state.AtMaxBound():
		return styleMuted().Render("Latest month")
	}
	return ""
}
