package dateutil

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the canonical date format
	DateLayout = "2006-01-02"
	// DateTimeLayout is the canonical date and time format
	DateTimeLayout = "2006-01-02 15:04"
	// MonthDayLayout is the format of recurring holiday dates
	MonthDayLayout = "01-02"
)

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// ParseDate parses date string in various formats
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		DateLayout,
		"02.01.2006",
		"2006/01/02",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date: %q", dateStr)
}

// ParseDateTime parses a date with an optional time of day.
// A bare date yields midnight.
func ParseDateTime(value string) (time.Time, error) {
	formats := []string{
		DateTimeLayout,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04",
		"2006-01-02T15:04:05",
		"02.01.2006 15:04",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, value); err == nil {
			return t, nil
		}
	}

	return ParseDate(value)
}

// ParseMonthDay parses a recurring "MM-DD" date. The returned time carries year 2000
// so that 02-29 is accepted.
func ParseMonthDay(value string) (time.Time, error) {
	t, err := time.Parse("2006-"+MonthDayLayout, "2000-"+value)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized month-day %q: expected MM-DD", value)
	}
	return t, nil
}

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS" into a time on 0000-01-01
func ParseTimeOfDay(value string) (time.Time, error) {
	for _, format := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(format, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time of day %q: expected HH:MM", value)
}
