// Package events reads event dates from iCalendar files so the host can mark
// them in the picker.
package events

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/emersion/go-ical"
)

// ReadICS returns the start day of every VEVENT in r, as midnight in loc,
// sorted and without duplicates. All-day (VALUE=DATE) starts keep their
// calendar day; timed starts are converted to loc first.
func ReadICS(r io.Reader, loc *time.Location) ([]time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	dec := ical.NewDecoder(r)
	seen := map[time.Time]struct{}{}
	var out []time.Time
	for {
		cal, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode ics: %w", err)
		}
		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}
			prop := comp.Props.Get(ical.PropDateTimeStart)
			if prop == nil {
				continue
			}
			t, err := prop.DateTime(loc)
			if err != nil {
				return nil, fmt.Errorf("event start %q: %w", prop.Value, err)
			}
			if prop.Params.Get(ical.ParamValue) != string(ical.ValueDate) {
				t = t.In(loc)
			}
			day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
			if _, ok := seen[day]; ok {
				continue
			}
			seen[day] = struct{}{}
			out = append(out, day)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out, nil
}

func LoadICS(path string, loc *time.Location) ([]time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dates, err := ReadICS(f, loc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return dates, nil
}
