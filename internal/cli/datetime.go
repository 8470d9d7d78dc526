package cli

import (
	"strconv"
	"strings"
	"time"
)

// parseDate parses YYYY-MM-DD as midnight in loc.
func parseDate(field, s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.ParseInLocation(time.DateOnly, s, loc)
	if err != nil {
		return time.Time{}, errDateParse(field, s, "YYYY-MM-DD", err)
	}
	return t, nil
}

// parseMonth parses YYYY-MM (or a full YYYY-MM-DD, whose day is dropped) as
// the first of that month in loc. Empty input means "no bound".
func parseMonth(field, s string, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	layout := "2006-01"
	if len(s) == len(time.DateOnly) {
		layout = time.DateOnly
	}
	t, err := time.ParseInLocation(layout, s, loc)
	if err != nil {
		return nil, errDateParse(field, s, "YYYY-MM", err)
	}
	t = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	return &t, nil
}

func parseLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	switch strings.ToLower(name) {
	case "", "local":
		return time.Local, nil
	case "utc":
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errDateParse("time zone", name, "an IANA zone such as Europe/Oslo", err)
	}
	return loc, nil
}

// parseWeekday accepts a weekday name, its three-letter prefix, or 0-6 with
// 0 = Sunday. Empty input means Sunday.
func parseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return time.Sunday, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 0 && n <= 6 {
			return time.Weekday(n), nil
		}
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, nil
		}
	}
	return time.Sunday, errDateParse("first weekday", s, "sunday..saturday or 0-6", nil)
}
