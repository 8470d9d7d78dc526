package cli

import (
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	loc := time.FixedZone("X", 3600)
	tests := []struct {
		in   string
		want time.Time
		isNil bool
	}{
		{in: "", isNil: true},
		{in: "2025-03", want: time.Date(2025, 3, 1, 0, 0, 0, 0, loc)},
		{in: " 2025-03-17 ", want: time.Date(2025, 3, 1, 0, 0, 0, 0, loc)},
	}
	for _, tc := range tests {
		got, err := parseMonth("min month", tc.in, loc)
		if err != nil {
			t.Fatalf("parseMonth(%q): %v", tc.in, err)
		}
		if tc.isNil {
			if got != nil {
				t.Fatalf("parseMonth(%q) = %v, want nil", tc.in, got)
			}
			continue
		}
		if got == nil || !got.Equal(tc.want) {
			t.Fatalf("parseMonth(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := parseMonth("min month", "2025/03", loc); err == nil {
		t.Fatalf("expected error for 2025/03")
	}
}

func TestParseWeekday(t *testing.T) {
	tests := map[string]time.Weekday{
		"":        time.Sunday,
		"monday":  time.Monday,
		"Sat":     time.Saturday,
		"3":       time.Wednesday,
		" FRIDAY": time.Friday,
	}
	for in, want := range tests {
		got, err := parseWeekday(in)
		if err != nil || got != want {
			t.Fatalf("parseWeekday(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	for _, bad := range []string{"7", "-1", "mo", "funday"} {
		if _, err := parseWeekday(bad); err == nil {
			t.Fatalf("parseWeekday(%q): expected error", bad)
		}
	}
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("date", "2024-02-29", time.UTC)
	if err != nil || !got.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("parseDate = %v, %v", got, err)
	}
	if _, err := parseDate("date", "2023-02-29", time.UTC); err == nil {
		t.Fatalf("expected error for 2023-02-29")
	}
}

func TestParseLocation(t *testing.T) {
	if loc, err := parseLocation(""); err != nil || loc != time.Local {
		t.Fatalf("expected local zone, got %v %v", loc, err)
	}
	if loc, err := parseLocation("UTC"); err != nil || loc != time.UTC {
		t.Fatalf("expected UTC, got %v %v", loc, err)
	}
}
