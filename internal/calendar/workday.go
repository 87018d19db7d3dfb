package calendar

import (
	"fmt"
	"math"
	"time"

	"github.com/username/workday-calendar/pkg/dateutil"
	"go.uber.org/zap"
)

// maxWorkdaySearchDays bounds the day-by-day search for the previous or next workday
const maxWorkdaySearchDays = 3650

// MaxIncrement is the largest increment magnitude, in workdays, that GetWorkdayIncrement accepts
const MaxIncrement = 1_000_000

// WorkdayCalendar computes date-times a fractional number of workdays away
// from a starting instant, honoring a daily work window, weekends, individual
// holidays and recurring holidays.
//
// A WorkdayCalendar is not safe for concurrent use: callers sharing one must
// serialize configuration changes against increment queries.
type WorkdayCalendar struct {
	window     WorkWindow
	configured bool
	holidays   *HolidaySet
	logger     *zap.Logger
}

// New creates an empty calendar. The work window must be set with
// SetWorkWindow before GetWorkdayIncrement is called.
func New(logger *zap.Logger) *WorkdayCalendar {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &WorkdayCalendar{
		holidays: NewHolidaySet(),
		logger:   logger,
	}
}

// SetWorkWindow sets workday start and stop from the clock components of start and stop.
// Only hour and minute take part in the equality check.
func (c *WorkdayCalendar) SetWorkWindow(start, stop time.Time) error {
	if start.Hour() == stop.Hour() && start.Minute() == stop.Minute() {
		return fmt.Errorf("%w: %s", ErrInvalidWindow, start.Format("15:04"))
	}

	c.window = WorkWindow{
		Start: TimeOfDayFrom(start),
		Stop:  TimeOfDayFrom(stop),
	}
	c.configured = true

	c.logger.Debug("Work window set", zap.Stringer("window", c.window))

	return nil
}

// Window returns the configured work window and whether it has been set
func (c *WorkdayCalendar) Window() (WorkWindow, bool) {
	return c.window, c.configured
}

// AddHoliday sets a holiday at a specific date.
// Dates that are not currently workdays are ignored.
func (c *WorkdayCalendar) AddHoliday(date time.Time) {
	c.addHoliday(Holiday{Date: date})
}

// AddRecurringHoliday sets a holiday recurring at the same month and day every year.
// Already registered month/day pairs are ignored.
func (c *WorkdayCalendar) AddRecurringHoliday(date time.Time) {
	c.addHoliday(Holiday{Date: date, Recurring: true})
}

// AddHolidays registers a batch of holidays. Recurring entries are registered
// before individual ones so an individual date on a recurring date is dropped
// regardless of batch order.
func (c *WorkdayCalendar) AddHolidays(holidays ...Holiday) {
	for _, h := range holidays {
		if h.Recurring {
			c.addHoliday(h)
		}
	}
	for _, h := range holidays {
		if !h.Recurring {
			c.addHoliday(h)
		}
	}
}

func (c *WorkdayCalendar) addHoliday(h Holiday) {
	if h.Recurring {
		if c.holidays.IsRecurring(h.Date) {
			c.logger.Debug("Recurring holiday already registered",
				zap.String("date", h.Date.Format("01-02")))
			return
		}
		c.holidays.addRecurring(h.Date, h.Name)
		return
	}

	if !c.IsWorkday(h.Date) {
		c.logger.Debug("Holiday ignored, date is not a workday",
			zap.String("date", h.Date.Format("2006-01-02")))
		return
	}
	c.holidays.addIndividual(h.Date, h.Name)
}

// IsWorkday checks if the given date is a working day
func (c *WorkdayCalendar) IsWorkday(date time.Time) bool {
	return c.DayInfo(date).IsWorkday
}

// DayInfo returns the classification of the given date
func (c *WorkdayCalendar) DayInfo(date time.Time) DayInfo {
	info := DayInfo{Date: dateutil.StartOfDay(date)}

	switch {
	case dateutil.IsWeekend(date):
		info.Type = DayTypeWeekend
	case c.holidays.IsRecurring(date):
		info.Type = DayTypeRecurringHoliday
		info.Note = c.holidays.name(date)
	case c.holidays.IsIndividual(date):
		info.Type = DayTypeHoliday
		info.Note = c.holidays.name(date)
	default:
		info.Type = DayTypeWorkday
		info.IsWorkday = true
	}

	return info
}

// Holidays returns all registered holidays
func (c *WorkdayCalendar) Holidays() []Holiday {
	return c.holidays.List()
}

// GetWorkdayIncrement returns the date and time lying increment workdays away from start.
// Negative increments move backwards in time.
func (c *WorkdayCalendar) GetWorkdayIncrement(start time.Time, increment float64) (time.Time, error) {
	if !c.configured {
		return time.Time{}, ErrWindowNotConfigured
	}
	if err := ValidateIncrement(increment); err != nil {
		return time.Time{}, err
	}

	anchor, adjusted, err := c.anchor(start, increment)
	if err != nil {
		return time.Time{}, err
	}

	day, remainder, err := c.walk(anchor, adjusted)
	if err != nil {
		return time.Time{}, err
	}

	result := day.Add(c.offset(remainder))

	c.logger.Debug("Workday increment computed",
		zap.Time("start", start),
		zap.Float64("increment", increment),
		zap.Time("anchor", anchor),
		zap.Float64("remainder", remainder),
		zap.Time("result", result))

	return result, nil
}

// ValidateIncrement rejects increments that cannot be walked day by day
func ValidateIncrement(increment float64) error {
	switch {
	case math.IsNaN(increment), math.IsInf(increment, 0):
		return fmt.Errorf("%w: got %v", ErrInvalidIncrement, increment)
	case math.Abs(increment) > MaxIncrement:
		return fmt.Errorf("%w: |%v| exceeds %d", ErrInvalidIncrement, increment, MaxIncrement)
	}
	return nil
}

// anchor moves start onto a workday window start and folds the
// distance travelled into the returned increment
func (c *WorkdayCalendar) anchor(start time.Time, increment float64) (time.Time, float64, error) {
	if !c.IsWorkday(start) {
		if increment >= 0 {
			next, err := c.nextWorkdayStart(start)
			return next, increment, err
		}
		previous, err := c.previousWorkdayStart(start)
		return previous, increment + 1, err
	}

	switch {
	case c.window.Contains(start):
		return c.window.StartOn(start), increment + c.window.FractionElapsed(start), nil

	case c.window.Before(start) && increment < 0:
		previous, err := c.previousWorkdayStart(start)
		return previous, increment + 1, err

	case c.window.Before(start):
		return c.window.StartOn(start), increment, nil

	case increment < 0:
		// after window stop: count from the end of today
		return c.window.StartOn(start), increment + 1, nil

	default:
		next, err := c.nextWorkdayStart(start)
		return next, increment, err
	}
}

// walk moves anchor by whole workdays until the increment is in [0, 1)
func (c *WorkdayCalendar) walk(anchor time.Time, increment float64) (time.Time, float64, error) {
	var err error
	day := anchor

	if increment >= 0 {
		for !isPositiveFraction(increment) {
			if day, err = c.nextWorkdayStart(day); err != nil {
				return time.Time{}, 0, err
			}
			increment--
		}
		return day, increment, nil
	}

	for !isPositiveFraction(increment) {
		if day, err = c.previousWorkdayStart(day); err != nil {
			return time.Time{}, 0, err
		}
		increment++
	}
	return day, increment, nil
}

// offset converts a fraction of a workday into a duration rounded to the millisecond
func (c *WorkdayCalendar) offset(fraction float64) time.Duration {
	ms := c.window.Length().Seconds() * fraction * 1000
	return time.Duration(math.Round(ms)) * time.Millisecond
}

func (c *WorkdayCalendar) nextWorkdayStart(date time.Time) (time.Time, error) {
	return c.findWorkdayStart(date, 1)
}

func (c *WorkdayCalendar) previousWorkdayStart(date time.Time) (time.Time, error) {
	return c.findWorkdayStart(date, -1)
}

// findWorkdayStart steps one calendar day at a time in direction step
// until a workday is found and returns its window start
func (c *WorkdayCalendar) findWorkdayStart(date time.Time, step int) (time.Time, error) {
	day := date
	for i := 0; i < maxWorkdaySearchDays; i++ {
		day = day.AddDate(0, 0, step)
		if c.IsWorkday(day) {
			return c.window.StartOn(day), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: searched %d days from %s",
		ErrNoWorkday, maxWorkdaySearchDays, date.Format("2006-01-02"))
}

func isPositiveFraction(value float64) bool {
	return 0 <= value && value < 1
}
