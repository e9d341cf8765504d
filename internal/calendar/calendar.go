// Package calendar translates grid coordinates into commit dates.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// WeekStart is the weekday contribution columns begin on. The same
// convention applies to the default window and to explicit start dates.
const WeekStart = time.Sunday

// ErrInvalidDate reports a start date that does not parse as YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date")

// ErrNotWeekStart reports a start date that is not a Sunday.
var ErrNotWeekStart = errors.New("start date is not a Sunday")

// DateFor returns the calendar day of grid cell (col, row) relative to
// weekZero: one week per column, one day per row.
func DateFor(weekZero time.Time, col, row int) time.Time {
	return weekZero.AddDate(0, 0, col*7+row)
}

// DefaultWeekZero anchors column 0 so a placed word lands inside the
// rolling window a contribution calendar displays: the most recent
// Sunday on or before now, minus 52 whole weeks.
func DefaultWeekZero(now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	sunday := midnight.AddDate(0, 0, -int(midnight.Weekday()))
	return sunday.AddDate(0, 0, -52*7)
}

// ParseWeekZero parses an explicit YYYY-MM-DD start date and verifies
// it falls on the week-start day.
func ParseWeekZero(s string) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q must be formatted YYYY-MM-DD", ErrInvalidDate, s)
	}
	if err := Validate(d); err != nil {
		return time.Time{}, err
	}
	return d, nil
}

// Validate checks that d falls on the week-start day.
func Validate(d time.Time) error {
	if d.Weekday() != WeekStart {
		return fmt.Errorf("%w: %s falls on a %s; columns align on Sundays",
			ErrNotWeekStart, d.Format("2006-01-02"), d.Weekday())
	}
	return nil
}
