package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// ClockLayout is the wire format of reminder times.
const ClockLayout = "15:04"

// DateOf returns the calendar date of t (in t's own location) as midnight UTC.
// All persisted and compared dates use this representation.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dateTimeLayouts are the ISO 8601 timestamp forms accepted by ParseDate.
// Fractional seconds are accepted after any seconds field.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseDate parses a YYYY-MM-DD date, or an ISO 8601 timestamp truncated to
// its calendar date (in its own offset when it has one). Failures wrap
// ErrMalformedDate.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrMalformedDate)
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// AddDays moves a calendar date by n days.
func AddDays(date time.Time, n int) time.Time {
	return DateOf(date).AddDate(0, 0, n)
}

// AddMonthsClamped moves a calendar date by n months, keeping the day of
// month. When the target month is shorter, the result is its last day
// (2024-01-31 + 1 month = 2024-02-29).
func AddMonthsClamped(date time.Time, n int) time.Time {
	date = DateOf(date)
	y, m, d := date.Date()

	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}

// ClockOf renders the wall-clock minute of t as zero-padded HH:MM.
func ClockOf(t time.Time) string {
	return t.Format(ClockLayout)
}

// IsValidClock reports whether s is a zero-padded 24-hour HH:MM string.
func IsValidClock(s string) bool {
	if len(s) != len(ClockLayout) {
		return false
	}
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}
