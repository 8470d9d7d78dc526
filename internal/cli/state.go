package cli

import (
	"context"
	"fmt"
	"time"

	"calpicker/internal/events"
	"calpicker/internal/picker"

	"cloudeng.io/logging/ctxlog"
)

// calendar merges flags over the config file.
func (app *App) calendar() (picker.Calendar, error) {
	tz := app.Timezone
	if tz == "" {
		tz = app.cfg.Timezone
	}
	loc, err := parseLocation(tz)
	if err != nil {
		return picker.Calendar{}, err
	}

	wd := app.FirstWeekday
	if wd == "" {
		wd = app.cfg.FirstWeekday
	}
	first, err := parseWeekday(wd)
	if err != nil {
		return picker.Calendar{}, err
	}

	var f picker.Formatter = picker.EnglishFormatter{}
	if fc := app.cfg.Formats; fc != nil {
		if n := len(fc.Weekdays); n != 0 && n != 7 {
			return picker.Calendar{}, fmt.Errorf("config formats.weekdays: expected 7 names, got %d", n)
		}
		f = picker.LayoutFormatter{
			MonthYearLayout: fc.MonthYear,
			DateLayout:      fc.Date,
			Weekdays:        fc.Weekdays,
		}
	}

	return picker.Calendar{
		Location:     loc,
		FirstWeekday: first,
		Now:          nowFunc,
		Formatter:    f,
	}, nil
}

// newState builds the picker state from flags and config: the initial date,
// navigation bounds, and the marked days from --mark and --events.
func (app *App) newState(ctx context.Context) (*picker.State, error) {
	cal, err := app.calendar()
	if err != nil {
		return nil, err
	}
	loc := cal.Location

	var opts []picker.Option
	if app.Date != "" {
		d, err := parseDate("date", app.Date, loc)
		if err != nil {
			return nil, err
		}
		opts = append(opts, picker.WithInitialDate(d))
	}

	minS, maxS := app.Min, app.Max
	if minS == "" {
		minS = app.cfg.MinMonth
	}
	if maxS == "" {
		maxS = app.cfg.MaxMonth
	}
	minB, err := parseMonth("min month", minS, loc)
	if err != nil {
		return nil, err
	}
	maxB, err := parseMonth("max month", maxS, loc)
	if err != nil {
		return nil, err
	}
	opts = append(opts, picker.WithBounds(minB, maxB))

	var marked []time.Time
	for _, s := range append(append([]string{}, app.cfg.Marks...), app.Marks...) {
		d, err := parseDate("mark", s, loc)
		if err != nil {
			return nil, err
		}
		marked = append(marked, d)
	}
	icsPath := app.Events
	if icsPath == "" {
		icsPath = app.cfg.Events
	}
	if icsPath != "" {
		days, err := events.LoadICS(expandHome(icsPath), loc)
		if err != nil {
			return nil, fmt.Errorf("load events: %w", err)
		}
		marked = append(marked, days...)
	}
	opts = append(opts, picker.WithEventDates(marked))

	st := picker.New(cal, opts...)
	ctxlog.Logger(ctx).Debug("picker state ready",
		"selected", st.SelectedDate().Format(time.DateOnly),
		"location", loc.String(),
		"firstWeekday", cal.FirstWeekday.String(),
		"marked", len(marked),
		"hasMin", minB != nil,
		"hasMax", maxB != nil,
	)
	return st, nil
}
