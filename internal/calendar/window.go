package calendar

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall clock time without a date
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// TimeOfDayFrom extracts the clock components of t
func TimeOfDayFrom(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return TimeOfDay{Hour: h, Minute: m, Second: s}
}

// Duration returns the offset of the time of day from midnight
func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t.Hour)*time.Hour +
		time.Duration(t.Minute)*time.Minute +
		time.Duration(t.Second)*time.Second
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// WorkWindow is the daily span during which work occurs.
// Stop is assumed to be later in the day than Start.
type WorkWindow struct {
	Start TimeOfDay
	Stop  TimeOfDay
}

// Length returns the duration of one workday
func (w WorkWindow) Length() time.Duration {
	return w.Stop.Duration() - w.Start.Duration()
}

// Contains reports whether the clock time of t lies within the window, both ends inclusive
func (w WorkWindow) Contains(t time.Time) bool {
	tod := clockOffset(t)
	return w.Start.Duration() <= tod && tod <= w.Stop.Duration()
}

// Before reports whether the clock time of t is earlier than the window start
func (w WorkWindow) Before(t time.Time) bool {
	return clockOffset(t) < w.Start.Duration()
}

// After reports whether the clock time of t is later than the window stop
func (w WorkWindow) After(t time.Time) bool {
	return w.Stop.Duration() < clockOffset(t)
}

// FractionElapsed returns the share of the window already elapsed at the clock time of t.
// Only meaningful when Contains(t) holds.
func (w WorkWindow) FractionElapsed(t time.Time) float64 {
	elapsed := clockOffset(t) - w.Start.Duration()
	return elapsed.Seconds() / w.Length().Seconds()
}

// StartOn returns the window start on the calendar date of t
func (w WorkWindow) StartOn(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(),
		w.Start.Hour, w.Start.Minute, w.Start.Second, 0, t.Location())
}

func (w WorkWindow) String() string {
	return w.Start.String() + "-" + w.Stop.String()
}

// clockOffset returns the time elapsed since midnight of t's date
func clockOffset(t time.Time) time.Duration {
	return TimeOfDayFrom(t).Duration() + time.Duration(t.Nanosecond())
}
