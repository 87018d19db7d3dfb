package calendar

import (
	"context"
	"time"
)

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
	DayTypeHoliday
	DayTypeRecurringHoliday
)

func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeWeekend:
		return "weekend"
	case DayTypeHoliday:
		return "holiday"
	case DayTypeRecurringHoliday:
		return "recurring holiday"
	default:
		return "unknown"
	}
}

// DayInfo represents information about a specific day
type DayInfo struct {
	Date      time.Time
	Type      DayType
	IsWorkday bool
	Note      string
}

// Holiday is a single holiday entry. For recurring holidays only the
// month and day of Date are meaningful.
type Holiday struct {
	Date      time.Time
	Name      string
	Recurring bool
}

// Source supplies holidays for a given year
type Source interface {
	// Holidays returns the holidays known for the year
	Holidays(ctx context.Context, year int) ([]Holiday, error)
}
