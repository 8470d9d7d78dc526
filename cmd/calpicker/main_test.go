package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectDateArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"calpicker"},
			want: []string{"calpicker"},
		},
		{
			name: "date first token",
			in:   []string{"calpicker", "2025-06-15"},
			want: []string{"calpicker", "pick", "--date", "2025-06-15"},
		},
		{
			name: "date after value flag",
			in:   []string{"calpicker", "--tz", "UTC", "2025-06-15", "--format", "text"},
			want: []string{"calpicker", "--tz", "UTC", "pick", "--date", "2025-06-15", "--format", "text"},
		},
		{
			name: "date after equals flag",
			in:   []string{"calpicker", "--min=2025-01", "2025-06-15"},
			want: []string{"calpicker", "--min=2025-01", "pick", "--date", "2025-06-15"},
		},
		{
			name: "date after bool flag",
			in:   []string{"calpicker", "--pretty", "2025-06-15"},
			want: []string{"calpicker", "--pretty", "pick", "--date", "2025-06-15"},
		},
		{
			name: "value of --date is not rewritten",
			in:   []string{"calpicker", "--date", "2025-06-15", "month"},
			want: []string{"calpicker", "--date", "2025-06-15", "month"},
		},
		{
			name: "subcommand first",
			in:   []string{"calpicker", "docs", "keys"},
			want: []string{"calpicker", "docs", "keys"},
		},
		{
			name: "after double dash",
			in:   []string{"calpicker", "--", "2025-06-15"},
			want: []string{"calpicker", "--", "2025-06-15"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectDateArgs(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("rewriteDirectDateArgs(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
