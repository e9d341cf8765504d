package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestDateForIdentity(t *testing.T) {
	d := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	got := DateFor(d, 0, 0)
	if !got.Equal(d) {
		t.Fatalf("DateFor(d,0,0) = %v, want %v", got, d)
	}
}

func TestDateForOffsets(t *testing.T) {
	d := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	if got := DateFor(d, 3, 6).Sub(DateFor(d, 3, 0)); got != 6*24*time.Hour {
		t.Fatalf("row span = %v, want 144h", got)
	}
	if got := DateFor(d, 4, 0).Sub(DateFor(d, 3, 0)); got != 7*24*time.Hour {
		t.Fatalf("column span = %v, want 168h", got)
	}
}

func TestDefaultWeekZero(t *testing.T) {
	cases := []struct {
		now  time.Time
		want time.Time
	}{
		// Wednesday: walk back to Sunday 2024-06-09, minus 52 weeks.
		{time.Date(2024, 6, 12, 15, 4, 5, 0, time.UTC), time.Date(2023, 6, 11, 0, 0, 0, 0, time.UTC)},
		// Sunday counts as its own week start.
		{time.Date(2024, 6, 9, 8, 0, 0, 0, time.UTC), time.Date(2023, 6, 11, 0, 0, 0, 0, time.UTC)},
		// Saturday still belongs to the week begun the previous Sunday.
		{time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC), time.Date(2023, 6, 11, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got := DefaultWeekZero(c.now)
		if !got.Equal(c.want) {
			t.Fatalf("DefaultWeekZero(%v) = %v, want %v", c.now, got, c.want)
		}
		if got.Weekday() != WeekStart {
			t.Fatalf("DefaultWeekZero(%v) falls on %s", c.now, got.Weekday())
		}
	}
}

func TestParseWeekZeroSunday(t *testing.T) {
	got, err := ParseWeekZero("2024-06-09")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Date(2024, 6, 9, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("parse = %v, want %v", got, want)
	}
}

func TestParseWeekZeroRejectsNonSunday(t *testing.T) {
	_, err := ParseWeekZero("2024-06-12")
	if err == nil {
		t.Fatalf("expected error for Wednesday start date")
	}
	if !errors.Is(err, ErrNotWeekStart) {
		t.Fatalf("expected ErrNotWeekStart, got %v", err)
	}
}

func TestParseWeekZeroRejectsMalformed(t *testing.T) {
	for _, s := range []string{"12-06-2024", "2024/06/09", "junk"} {
		_, err := ParseWeekZero(s)
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate for %q, got %v", s, err)
		}
	}
}
