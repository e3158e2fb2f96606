// utils/dates_test.go
package utils

import (
	"testing"
	"time"
)

func TestBeginningOfDay(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	in := time.Date(2026, 5, 4, 18, 45, 12, 999, loc)

	got := BeginningOfDay(in)

	want := time.Date(2026, 5, 4, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("BeginningOfDay = %v, want %v", got, want)
	}
	if got.Location() != loc {
		t.Errorf("location = %v, want %v", got.Location(), loc)
	}
}

func TestEndOfDay(t *testing.T) {
	in := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)

	got := EndOfDay(in)

	if got.Hour() != 23 || got.Minute() != 59 || got.Second() != 59 {
		t.Errorf("EndOfDay = %v", got)
	}
	if !got.Before(time.Date(2026, 5, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("EndOfDay %v spills into the next day", got)
	}
	if got.Day() != 4 {
		t.Errorf("day = %d, want 4", got.Day())
	}
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			"same day",
			time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC),
			time.Date(2026, 5, 4, 23, 0, 0, 0, time.UTC),
			0,
		},
		{
			"adjacent days ignore clock time",
			time.Date(2026, 5, 4, 23, 59, 0, 0, time.UTC),
			time.Date(2026, 5, 5, 0, 1, 0, 0, time.UTC),
			1,
		},
		{
			"across a month boundary",
			time.Date(2026, 1, 30, 12, 0, 0, 0, time.UTC),
			time.Date(2026, 2, 2, 12, 0, 0, 0, time.UTC),
			3,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DaysBetween(tc.start, tc.end); got != tc.want {
				t.Errorf("DaysBetween = %d, want %d", got, tc.want)
			}
		})
	}
}
