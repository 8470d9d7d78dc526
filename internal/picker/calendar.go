package picker

import (
	"time"

	"cloudeng.io/datetime"
)

// Representable year range for calendar arithmetic. Results outside this
// range are rejected rather than produced.
const (
	MinYear = 1
	MaxYear = 9999
)

// Calendar is the host calendar facility the picker delegates to: it decides
// which location days are evaluated in, which weekday starts a week, what
// "today" is and how dates are turned into display strings.
//
// The zero value is usable: it evaluates dates in time.Local, starts weeks on
// Sunday, uses time.Now and formats in English.
type Calendar struct {
	Location     *time.Location
	FirstWeekday time.Weekday
	Now          func() time.Time
	Formatter    Formatter
}

// DefaultCalendar returns a Calendar for the local timezone.
func DefaultCalendar() Calendar {
	return Calendar{
		Location:     time.Local,
		FirstWeekday: time.Sunday,
		Now:          time.Now,
		Formatter:    EnglishFormatter{},
	}
}

func (c Calendar) loc() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

func (c Calendar) formatter() Formatter {
	if c.Formatter == nil {
		return EnglishFormatter{}
	}
	return c.Formatter
}

// Today returns the start of the current day.
func (c Calendar) Today() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return c.StartOfDay(now())
}

// SameDay reports whether a and b fall on the same calendar day.
func (c Calendar) SameDay(a, b time.Time) bool {
	ay, am, ad := a.In(c.loc()).Date()
	by, bm, bd := b.In(c.loc()).Date()
	return ay == by && am == bm && ad == bd
}

// SameMonth reports whether a and b fall in the same year and month.
func (c Calendar) SameMonth(a, b time.Time) bool {
	ay, am, _ := a.In(c.loc()).Date()
	by, bm, _ := b.In(c.loc()).Date()
	return ay == by && am == bm
}

func (c Calendar) StartOfDay(t time.Time) time.Time {
	y, m, d := t.In(c.loc()).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.loc())
}

func (c Calendar) StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.In(c.loc()).Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, c.loc())
}

// DaysInMonth returns the length of the month containing t.
func (c Calendar) DaysInMonth(t time.Time) int {
	y, m, _ := t.In(c.loc()).Date()
	return int(datetime.DaysInMonth(y, datetime.Month(m)))
}

// AddMonths moves t by n calendar months, keeping the time of day. A day of
// month that does not exist in the target month is clamped to its last day
// (Jan 31 + 1 month is Feb 28 or 29). ok is false if the result would fall
// outside [MinYear, MaxYear].
func (c Calendar) AddMonths(t time.Time, n int) (time.Time, bool) {
	t = t.In(c.loc())
	y, m, d := t.Date()
	if y < MinYear || y > MaxYear {
		return t, false
	}
	total := y*12 + int(m) - 1 + n
	if total < MinYear*12 || total > MaxYear*12+11 {
		return t, false
	}
	ny, nm := total/12, time.Month(total%12+1)
	if last := int(datetime.DaysInMonth(ny, datetime.Month(nm))); d > last {
		d = last
	}
	return time.Date(ny, nm, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), c.loc()), true
}

// AddDays moves t by n calendar days. ok is false if the result would fall
// outside [MinYear, MaxYear].
func (c Calendar) AddDays(t time.Time, n int) (time.Time, bool) {
	t = t.In(c.loc())
	next := t.AddDate(0, 0, n)
	if y := next.Year(); y < MinYear || y > MaxYear {
		return t, false
	}
	return next, true
}

// WeekdayLabels returns short weekday names starting at FirstWeekday.
func (c Calendar) WeekdayLabels() []string {
	f := c.formatter()
	out := make([]string, 7)
	for i := range out {
		out[i] = f.WeekdayShort(time.Weekday((int(c.FirstWeekday) + i) % 7))
	}
	return out
}

// Weekday returns the column of t's weekday in a grid that starts on
// FirstWeekday.
func (c Calendar) Weekday(t time.Time) int {
	return (int(t.In(c.loc()).Weekday()) - int(c.FirstWeekday) + 7) % 7
}

func (c Calendar) FormatMonthYear(t time.Time) string {
	return c.formatter().MonthYear(t.In(c.loc()))
}

func (c Calendar) FormatDate(t time.Time) string {
	return c.formatter().Date(t.In(c.loc()))
}

func (c Calendar) dayKey(t time.Time) datetime.CalendarDate {
	y, m, d := t.In(c.loc()).Date()
	return datetime.NewCalendarDate(y, datetime.Month(m), d)
}
