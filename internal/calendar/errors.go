package calendar

import "errors"

var (
	// ErrInvalidWindow is returned when the work window start equals its stop
	ErrInvalidWindow = errors.New("workday start time cannot be the same as stop time")

	// ErrWindowNotConfigured is returned when an increment is requested before SetWorkWindow
	ErrWindowNotConfigured = errors.New("work window must be set before computing increments")

	// ErrInvalidIncrement is returned for NaN, infinite or out of range increments
	ErrInvalidIncrement = errors.New("increment must be a finite number of workdays")

	// ErrNoWorkday is returned when no workday is found within maxWorkdaySearchDays
	ErrNoWorkday = errors.New("no workday found within search limit")
)
