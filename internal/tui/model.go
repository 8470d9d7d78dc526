package tui

import (
	"context"
	"time"

	"calpicker/internal/picker"

	"cloudeng.io/logging/ctxlog"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Options tune the presentation; zero values pick the defaults.
type Options struct {
	// Glyphs is "unicode" (default) or "ascii".
	Glyphs string
	// Theme is "light", "dark" or "auto".
	Theme string
	// Expanded opens the month grid immediately.
	Expanded bool
}

// lastChange is shared between copies of Model so the subscription installed
// in New keeps feeding the status line after bubbletea copies the model.
type lastChange struct {
	field picker.Field
	seen  bool
}

// Model renders a picker.State and maps key presses onto its methods.
type Model struct {
	ctx   context.Context
	state *picker.State
	keys  keyMap
	help  help.Model

	width int
	// cursor is the focused day of the displayed month (1-based).
	cursor int

	last        *lastChange
	unsubscribe func()

	done     bool
	canceled bool
}

func New(ctx context.Context, st *picker.State, opts Options) Model {
	if opts.Expanded {
		st.SetExpanded(true)
	}
	m := Model{
		ctx:   ctx,
		state: st,
		keys:  defaultKeyMap(),
		help:  help.New(),
		last:  &lastChange{},
	}
	last := m.last
	m.unsubscribe = st.Subscribe(func(c picker.Change) {
		last.field = c.Field
		last.seen = true
		ctxlog.Logger(ctx).Debug("picker state changed",
			"field", c.Field.String(),
			"selected", c.Snapshot.SelectedDate.Format(time.DateOnly),
			"displayed", c.Snapshot.DisplayedMonth.Format("2006-01"),
			"atMin", c.Snapshot.AtMinBound,
			"atMax", c.Snapshot.AtMaxBound,
			"expanded", c.Snapshot.Expanded,
		)
	})
	m.cursor = m.initialCursor()
	m.keys.syncNavigation(st.CanGoPrevious(), st.CanGoNext())
	return m
}

func (m Model) initialCursor() int {
	cal := m.state.Calendar()
	if cal.SameMonth(m.state.SelectedDate(), m.state.DisplayedMonth()) {
		return m.state.SelectedDate().In(m.state.DisplayedMonth().Location()).Day()
	}
	return 1
}

func (m Model) Init() tea.Cmd { return nil }

// State returns the underlying view-model.
func (m Model) State() *picker.State { return m.state }

// Result returns the picked date; ok is false when the user cancelled or has
// not confirmed yet.
func (m Model) Result() (time.Time, bool) {
	if !m.done || m.canceled {
		return time.Time{}, false
	}
	return m.state.SelectedDate(), true
}

func (m Model) Canceled() bool { return m.canceled }

// Cursor returns the focused date.
func (m Model) Cursor() time.Time {
	dates := m.state.Dates()
	c := m.cursor
	if c < 1 {
		c = 1
	}
	if c > len(dates) {
		c = len(dates)
	}
	return dates[c-1].Date
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.canceled = true
		m.finish()
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if !m.state.Expanded() {
		switch {
		case key.Matches(msg, m.keys.Toggle), key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.Select):
			m.state.SetExpanded(true)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-7)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(7)
	case key.Matches(msg, m.keys.PrevMonth):
		if m.state.CanGoPrevious() {
			m.state.PreviousMonth()
		}
	case key.Matches(msg, m.keys.NextMonth):
		if m.state.CanGoNext() {
			m.state.NextMonth()
		}
	case key.Matches(msg, m.keys.Today):
		m.jumpToToday()
	case key.Matches(msg, m.keys.Select):
		m.state.SelectDate(m.Cursor())
	case key.Matches(msg, m.keys.Confirm):
		m.state.SelectDate(m.Cursor())
		m.done = true
		m.finish()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.state.SetExpanded(false)
	}
	m.clampCursor()
	m.keys.syncNavigation(m.state.CanGoPrevious(), m.state.CanGoNext())
	return m, nil
}

// moveCursor moves the focus by delta days, following into the adjacent
// month unless that month is outside the bounds.
func (m *Model) moveCursor(delta int) {
	cal := m.state.Calendar()
	target, ok := cal.AddDays(m.Cursor(), delta)
	if !ok {
		return
	}
	if !cal.SameMonth(target, m.state.DisplayedMonth()) {
		if !m.state.InBounds(target) {
			return
		}
		m.state.ShowMonth(target)
	}
	m.cursor = target.Day()
}

func (m *Model) jumpToToday() {
	today := m.state.Calendar().Today()
	if !m.state.InBounds(today) {
		return
	}
	m.state.ShowMonth(today)
	m.cursor = today.Day()
}

func (m *Model) clampCursor() {
	n := len(m.state.Dates())
	if m.cursor > n {
		m.cursor = n
	}
	if m.cursor < 1 {
		m.cursor = 1
	}
}

func (m *Model) finish() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}
