// Package time contains date helpers shared by filters and repositories
package time

import (
	"strings"
	"time"
)

// DateLayout is the calendar date format used on the wire
const DateLayout = "2006-01-02"

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// ParseDate parses a YYYY-MM-DD string as midnight UTC
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
}

// DayBounds returns the half open UTC range covering the inclusive dates from and to
// a zero bound means unbounded on that side
func DayBounds(from, to time.Time) (start, end time.Time) {
	if !from.IsZero() {
		start = from.UTC().Truncate(24 * time.Hour)
	}
	if !to.IsZero() {
		end = to.UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)
	}
	return start, end
}
