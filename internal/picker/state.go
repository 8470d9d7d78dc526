// Package picker holds the view-model of a calendar picker: the displayed
// month, the selected day, navigation bounds and event markers.
//
// A State is owned by a single widget and is not safe for concurrent
// mutation. Renderers read it through accessors or Snapshot and learn about
// changes through Subscribe.
package picker

import (
	"time"

	"cloudeng.io/datetime"
)

// CalendarDate is one cell of the month grid.
type CalendarDate struct {
	Day  int
	Date time.Time
}

// State is the picker view-model.
//
// Bounds are advisory: AtMinBound/AtMaxBound tell a renderer when to disable
// its navigation controls, but NextMonth and PreviousMonth never refuse to
// move past a bound.
type State struct {
	cal Calendar

	displayed time.Time
	selected  time.Time
	expanded  bool

	minBound *time.Time
	maxBound *time.Time
	atMin    bool
	atMax    bool

	events     []time.Time
	eventIndex map[datetime.CalendarDate]struct{}

	subs    []subscription
	nextSub int
}

type Option func(*options)

type options struct {
	initial    *time.Time
	minBound   *time.Time
	maxBound   *time.Time
	eventDates []time.Time
}

// WithInitialDate sets the initially selected and displayed date. The default
// is the calendar's current day, which is also used for the zero time.
func WithInitialDate(t time.Time) Option {
	return func(o *options) { o.initial = &t }
}

// WithBounds sets the navigable month bounds; nil means unbounded.
func WithBounds(minMonth, maxMonth *time.Time) Option {
	return func(o *options) {
		o.minBound = minMonth
		o.maxBound = maxMonth
	}
}

func WithEventDates(dates []time.Time) Option {
	return func(o *options) { o.eventDates = dates }
}

// New creates a State; it cannot fail.
func New(cal Calendar, opts ...Option) *State {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	initial := cal.Today()
	if o.initial != nil && !o.initial.IsZero() {
		initial = cal.StartOfDay(*o.initial)
	}
	s := &State{
		cal:       cal,
		displayed: initial,
		selected:  initial,
		minBound:  copyTime(o.minBound),
		maxBound:  copyTime(o.maxBound),
	}
	s.indexEvents(o.eventDates)
	s.updateBoundFlags()
	return s
}

func (s *State) Calendar() Calendar        { return s.cal }
func (s *State) DisplayedMonth() time.Time { return s.displayed }
func (s *State) SelectedDate() time.Time   { return s.selected }
func (s *State) Expanded() bool            { return s.expanded }
func (s *State) AtMinBound() bool          { return s.atMin }
func (s *State) AtMaxBound() bool          { return s.atMax }

// Bounds returns copies of the configured bounds.
func (s *State) Bounds() (minMonth, maxMonth *time.Time) {
	return copyTime(s.minBound), copyTime(s.maxBound)
}

// EventDates returns a copy of the injected event dates, in the order given.
func (s *State) EventDates() []time.Time {
	return append([]time.Time(nil), s.events...)
}

// SelectDate selects the day containing t. Selecting the day that is already
// selected changes nothing and notifies nobody, and so does the zero time.
// It reports whether the selection changed.
func (s *State) SelectDate(t time.Time) bool {
	if t.IsZero() || s.cal.SameDay(t, s.selected) {
		return false
	}
	s.selected = s.cal.StartOfDay(t)
	s.notify(FieldSelectedDate)
	return true
}

// NextMonth shows the following month. It reports false, leaving the state
// untouched, only when the month cannot be represented.
func (s *State) NextMonth() bool {
	return s.moveMonth(1)
}

// PreviousMonth shows the preceding month; see NextMonth.
func (s *State) PreviousMonth() bool {
	return s.moveMonth(-1)
}

func (s *State) moveMonth(n int) bool {
	next, ok := s.cal.AddMonths(s.displayed, n)
	if !ok {
		return false
	}
	s.displayed = next
	s.updateBoundFlags()
	s.notify(FieldDisplayedMonth)
	return true
}

// ShowMonth displays the month containing t without touching the selection.
func (s *State) ShowMonth(t time.Time) {
	if s.cal.SameMonth(t, s.displayed) {
		return
	}
	s.displayed = s.cal.StartOfDay(t)
	s.updateBoundFlags()
	s.notify(FieldDisplayedMonth)
}

// SetBounds replaces both bounds and recomputes the at-bound flags against
// the current displayed month.
func (s *State) SetBounds(minMonth, maxMonth *time.Time) {
	s.minBound = copyTime(minMonth)
	s.maxBound = copyTime(maxMonth)
	s.updateBoundFlags()
	s.notify(FieldBounds)
}

// InBounds reports whether the month containing t lies within the configured
// bounds. Renderers use it to decide whether a jump is allowed; the State
// itself does not enforce it.
func (s *State) InBounds(t time.Time) bool {
	m := s.cal.StartOfMonth(t)
	if s.minBound != nil && m.Before(s.cal.StartOfMonth(*s.minBound)) {
		return false
	}
	if s.maxBound != nil && m.After(s.cal.StartOfMonth(*s.maxBound)) {
		return false
	}
	return true
}

// CanGoNext reports whether a renderer should offer the next month: false
// once the displayed month is at or past the max bound.
func (s *State) CanGoNext() bool {
	if s.maxBound == nil {
		return true
	}
	return s.cal.StartOfMonth(s.displayed).Before(s.cal.StartOfMonth(*s.maxBound))
}

// CanGoPrevious is the min-bound counterpart of CanGoNext.
func (s *State) CanGoPrevious() bool {
	if s.minBound == nil {
		return true
	}
	return s.cal.StartOfMonth(s.displayed).After(s.cal.StartOfMonth(*s.minBound))
}

func (s *State) SetExpanded(expanded bool) {
	if s.expanded == expanded {
		return
	}
	s.expanded = expanded
	s.notify(FieldExpanded)
}

func (s *State) ToggleExpanded() {
	s.SetExpanded(!s.expanded)
}

// SetEventDates replaces the dates that carry an event marker.
func (s *State) SetEventDates(dates []time.Time) {
	s.indexEvents(dates)
	s.notify(FieldEventDates)
}

// HasEvent reports whether an event date falls on the same day as t.
func (s *State) HasEvent(t time.Time) bool {
	_, ok := s.eventIndex[s.cal.dayKey(t)]
	return ok
}

func (s *State) IsSelected(t time.Time) bool {
	return s.cal.SameDay(t, s.selected)
}

func (s *State) IsToday(t time.Time) bool {
	return s.cal.SameDay(t, s.cal.Today())
}

// Dates returns one CalendarDate per day of the displayed month, in order.
func (s *State) Dates() []CalendarDate {
	first := s.cal.StartOfMonth(s.displayed)
	y, m, _ := first.Date()
	n := s.cal.DaysInMonth(first)
	out := make([]CalendarDate, n)
	for i := range out {
		out[i] = CalendarDate{Day: i + 1, Date: time.Date(y, m, i+1, 0, 0, 0, 0, first.Location())}
	}
	return out
}

// Leading returns the number of empty grid cells before day 1 of the
// displayed month.
func (s *State) Leading() int {
	return s.cal.Weekday(s.cal.StartOfMonth(s.displayed))
}

// MonthTitle is the formatted month and year of the displayed month.
func (s *State) MonthTitle() string {
	return s.cal.FormatMonthYear(s.displayed)
}

func (s *State) WeekdayLabels() []string {
	return s.cal.WeekdayLabels()
}

func (s *State) updateBoundFlags() {
	s.atMin = s.minBound != nil && s.cal.SameMonth(s.displayed, *s.minBound)
	s.atMax = s.maxBound != nil && s.cal.SameMonth(s.displayed, *s.maxBound)
}

func (s *State) indexEvents(dates []time.Time) {
	s.events = append([]time.Time(nil), dates...)
	s.eventIndex = make(map[datetime.CalendarDate]struct{}, len(dates))
	for _, d := range dates {
		s.eventIndex[s.cal.dayKey(d)] = struct{}{}
	}
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
