package tui

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"calpicker/internal/picker"

	"cloudeng.io/logging/ctxlog"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func testCalendar() picker.Calendar {
	return picker.Calendar{
		Location:     time.UTC,
		FirstWeekday: time.Sunday,
		Now:          func() time.Time { return time.Date(2025, 6, 20, 8, 0, 0, 0, time.UTC) },
		Formatter:    picker.EnglishFormatter{},
	}
}

func utcDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func monthBound(y int, m time.Month) *time.Time {
	t := utcDay(y, m, 1)
	return &t
}

func newTestModel(t *testing.T, ctx context.Context, ui Options, opts ...picker.Option) Model {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)
	setGlyphs(glyphSetASCII)
	t.Cleanup(func() { setGlyphs(glyphSetUnicode) })
	st := picker.New(testCalendar(), opts...)
	return New(ctx, st, ui)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	mAny, cmd := m.Update(msg)
	out, ok := mAny.(Model)
	if !ok {
		t.Fatalf("expected Model, got %T", mAny)
	}
	return out, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCollapsed_EnterExpands(t *testing.T) {
	m := newTestModel(t, context.Background(), Options{}, picker.WithInitialDate(utcDay(2025, 6, 15)))
	if m.State().Expanded() {
		t.Fatalf("expected collapsed start")
	}
	if strings.Contains(m.View(), "June 2025") {
		t.Fatalf("expected grid hidden while collapsed")
	}
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatalf("expected enter on collapsed picker to expand, not quit")
	}
	if !m.State().Expanded() {
		t.Fatalf("expected expanded after enter")
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.State().Expanded() {
		t.Fatalf("expected tab to collapse")
	}
}

func TestArrowAndSpace_SelectsCursorDay(t *testing.T) {
	m := newTestModel(t, context.Background(), Options{Expanded: true}, picker.WithInitialDate(utcDay(2025, 6, 15)))
	if !m.Cursor().Equal(utcDay(2025, 6, 15)) {
		t.Fatalf("expected cursor on the selected day, got %v", m.Cursor())
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = press(t, m, runes("j"))
	if !m.Cursor().Equal(utcDay(2025, 6, 23)) {
		t.Fatalf("expected cursor 2025-06-23, got %v", m.Cursor())
	}
	if !m.State().SelectedDate().Equal(utcDay(2025, 6, 15)) {
		t.Fatalf("expected moving the cursor to leave the selection alone")
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !m.State().SelectedDate().Equal(utcDay(2025, 6, 23)) {
		t.Fatalf("expected space to select 2025-06-23, got %v", m.State().SelectedDate())
	}
	if !strings.Contains(m.View(), "Selected Jun 23, 2025") {
		t.Fatalf("expected status line for the new selection, got:\n%s", m.View())
	}
}

func TestMonthKeys_RespectBounds(t *testing.T) {
	m := newTestModel(t, context.Background(), Options{Expanded: true},
		picker.WithInitialDate(utcDay(2025, 6, 15)),
		picker.WithBounds(monthBound(2025, 5), monthBound(2025, 6)),
	)
	if !m.State().AtMaxBound() {
		t.Fatalf("expected to start on the max bound")
	}
	m, _ = press(t, m, runes("]"))
	if !m.State().Calendar().SameMonth(m.State().DisplayedMonth(), utcDay(2025, 6, 1)) {
		t.Fatalf("expected next-month key to be disabled at the max bound, got %v", m.State().DisplayedMonth())
	}
	m, _ = press(t, m, runes("["))
	if !m.State().AtMinBound() {
		t.Fatalf("expected May to be at the min bound")
	}
	if !strings.Contains(m.View(), "Earliest month") {
		t.Fatalf("expected earliest-month hint, got:\n%s", m.View())
	}
	m, _ = press(t, m, runes("["))
	if !m.State().Calendar().SameMonth(m.State().DisplayedMonth(), utcDay(2025, 5, 1)) {
		t.Fatalf("expected previous-month key disabled at the min bound, got %v", m.State().DisplayedMonth())
	}
	// Cursor day 15 survives the month change.
	if !m.Cursor().Equal(utcDay(2025, 5, 15)) {
		t.Fatalf("expected cursor 2025-05-15, got %v", m.Cursor())
	}
}

func TestMonthKeys_ClampCursor(t *testing.T) {
	m := newTestModel(t, context.Background(), Options{Expanded: true}, picker.WithInitialDate(utcDay(2024, 1, 31)))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	if !m.Cursor().Equal(utcDay(2024, 2, 29)) {
		t.Fatalf("expected cursor clamped to 2024-02-29, got %v", m.Cursor())
	}
}

func TestCursor_CrossesIntoAdjacentMonth(t *testing.T) {
	m := newTestModel(t, context.Background(), Options{Expanded: true}, picker.WithInitialDate(utcDay(2025, 6, 1)))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if !m.Cursor().Equal(utcDay(2025, 5, 31)) {
		t.Fatalf("expected cursor on 2025-05-31, got %v", m.Cursor())
	}
	if !m.State().Calendar().SameMonth(m.State().DisplayedMonth(), utcDay(2025, 5, 1)) {
		t.Fatalf("expected May displayed, got %v", m.State().DisplayedMonth())
	}

	m = newTestModel(t, context.Background(), Options{Expanded: true},
		picker.WithInitialDate(utcDay(2025, 6, 1)),
		picker.WithBounds(monthBound(2025, 6), nil),
	)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if !m.Cursor().Equal(utcDay(2025, 6, 1)) {
		t.Fatalf("expected cursor to stay inside the min bound, got %v", m.Cursor())
	}
}

func TestToday_JumpsWithinBounds(t *testing.T) {
	m := newTestModel(t, context.Background(), Options{Expanded: true}, picker.WithInitialDate(utcDay(2025, 3, 4)))
	m, _ = press(t, m, runes("t"))
	if !m.Cursor().Equal(utcDay(2025, 6, 20)) {
		t.Fatalf("expected cursor on today, got %v", m.Cursor())
	}

	m = newTestModel(t, context.Background(), Options{Expanded: true},
		picker.WithInitialDate(utcDay(2025, 3, 4)),
		picker.WithBounds(nil, monthBound(2025, 4)),
	)
	m, _ = press(t, m, runes("t"))
	if !m.State().Calendar().SameMonth(m.State().DisplayedMonth(), utcDay(2025, 3, 1)) {
		t.Fatalf("expected today outside bounds to be ignored, got %v", m.State().DisplayedMonth())
	}
}

func TestEnter_ConfirmsAndQuits(t *testing.T) {
	m := newTestModel(t, context.Background(), Options{Expanded: true}, picker.WithInitialDate(utcDay(2025, 6, 15)))
	m, _ = press(t, m, runes("l"))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	got, ok := m.Result()
	if !ok || !got.Equal(utcDay(2025, 6, 16)) {
		t.Fatalf("expected result 2025-06-16, got %v ok=%v", got, ok)
	}
}

func TestEsc_Cancels(t *testing.T) {
	m := newTestModel(t, context.Background(), Options{Expanded: true}, picker.WithInitialDate(utcDay(2025, 6, 15)))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || !m.Canceled() {
		t.Fatalf("expected esc to cancel and quit")
	}
	if _, ok := m.Result(); ok {
		t.Fatalf("expected no result after cancel")
	}
}

func TestStateChanges_AreLogged(t *testing.T) {
	var buf bytes.Buffer
	ctx := ctxlog.NewJSONLogger(context.Background(), &buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	m := newTestModel(t, ctx, Options{Expanded: true}, picker.WithInitialDate(utcDay(2025, 6, 15)))
	m, _ = press(t, m, runes("]"))
	_, _ = press(t, m, runes(" "))
	out := buf.String()
	if !strings.Contains(out, `"field":"displayedMonth"`) {
		t.Fatalf("expected displayedMonth change in log, got %s", out)
	}
	if !strings.Contains(out, `"field":"selectedDate"`) || !strings.Contains(out, `"selected":"2025-07-15"`) {
		t.Fatalf("expected selectedDate change in log, got %s", out)
	}
}

func TestMonthKeys_OutsideBoundsOnlyLeadBack(t *testing.T) {
	m := newTestModel(t, context.Background(), Options{Expanded: true},
		picker.WithInitialDate(utcDay(2026, 3, 10)),
		picker.WithBounds(nil, monthBound(2025, 12)),
	)
	m, _ = press(t, m, runes("]"))
	if !m.State().Calendar().SameMonth(m.State().DisplayedMonth(), utcDay(2026, 3, 1)) {
		t.Fatalf("expected next month to be refused past the max bound, got %v", m.State().DisplayedMonth())
	}
	if !strings.Contains(m.renderMonthBar(), "<") {
		t.Fatalf("expected the previous arrow to stay available")
	}
	m, _ = press(t, m, runes("["))
	if !m.State().Calendar().SameMonth(m.State().DisplayedMonth(), utcDay(2026, 2, 1)) {
		t.Fatalf("expected previous month to move back toward the bound, got %v", m.State().DisplayedMonth())
	}
}
