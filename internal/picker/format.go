package picker

import "time"

// Formatter turns dates into display strings. Implementations may localize;
// the picker itself never interprets the returned text.
type Formatter interface {
	MonthYear(t time.Time) string
	Date(t time.Time) string
	WeekdayShort(d time.Weekday) string
}

// EnglishFormatter formats with Go reference layouts: "March 2025",
// "Mar 5, 2025" and "Mon".
type EnglishFormatter struct{}

func (EnglishFormatter) MonthYear(t time.Time) string { return t.Format("January 2006") }

func (EnglishFormatter) Date(t time.Time) string { return t.Format("Jan 2, 2006") }

func (EnglishFormatter) WeekdayShort(d time.Weekday) string { return d.String()[:3] }

// LayoutFormatter formats with caller supplied layouts and weekday names.
// Empty fields fall back to EnglishFormatter.
type LayoutFormatter struct {
	MonthYearLayout string
	DateLayout      string
	// Weekdays is indexed by time.Weekday (Sunday first).
	Weekdays []string
}

func (f LayoutFormatter) MonthYear(t time.Time) string {
	if f.MonthYearLayout == "" {
		return EnglishFormatter{}.MonthYear(t)
	}
	return t.Format(f.MonthYearLayout)
}

func (f LayoutFormatter) Date(t time.Time) string {
	if f.DateLayout == "" {
		return EnglishFormatter{}.Date(t)
	}
	return t.Format(f.DateLayout)
}

func (f LayoutFormatter) WeekdayShort(d time.Weekday) string {
	if len(f.Weekdays) == 7 {
		return f.Weekdays[d]
	}
	return EnglishFormatter{}.WeekdayShort(d)
}
