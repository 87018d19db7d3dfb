package calendar

import (
	"sort"
	"time"
)

// date is a comparable key for individual holiday lookups
type date struct {
	year  int
	month time.Month
	day   int
}

func dateFromTime(t time.Time) date {
	y, m, d := t.Date()
	return date{year: y, month: m, day: d}
}

func (d date) toTime() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// monthDay is a comparable key for recurring holiday lookups
type monthDay struct {
	month time.Month
	day   int
}

func monthDayFromTime(t time.Time) monthDay {
	_, m, d := t.Date()
	return monthDay{month: m, day: d}
}

// HolidaySet stores individual (full date) and recurring (month/day) holidays.
// The zero value is not usable; create one with NewHolidaySet.
type HolidaySet struct {
	individual map[date]string
	recurring  map[monthDay]string
}

// NewHolidaySet creates an empty HolidaySet
func NewHolidaySet() *HolidaySet {
	return &HolidaySet{
		individual: make(map[date]string),
		recurring:  make(map[monthDay]string),
	}
}

// IsIndividual reports whether the calendar date of t is an individual holiday
func (s *HolidaySet) IsIndividual(t time.Time) bool {
	_, ok := s.individual[dateFromTime(t)]
	return ok
}

// IsRecurring reports whether the month and day of t is a recurring holiday
func (s *HolidaySet) IsRecurring(t time.Time) bool {
	_, ok := s.recurring[monthDayFromTime(t)]
	return ok
}

func (s *HolidaySet) addIndividual(t time.Time, name string) {
	s.individual[dateFromTime(t)] = name
}

func (s *HolidaySet) addRecurring(t time.Time, name string) {
	s.recurring[monthDayFromTime(t)] = name
}

// name returns the note stored for t, preferring the recurring entry
func (s *HolidaySet) name(t time.Time) string {
	if n, ok := s.recurring[monthDayFromTime(t)]; ok {
		return n
	}
	return s.individual[dateFromTime(t)]
}

// List returns all holidays, recurring ones first, each group sorted by date.
// Recurring entries carry year 1 in Date.
func (s *HolidaySet) List() []Holiday {
	result := make([]Holiday, 0, len(s.individual)+len(s.recurring))

	recurring := make([]Holiday, 0, len(s.recurring))
	for md, n := range s.recurring {
		recurring = append(recurring, Holiday{
			Date:      time.Date(1, md.month, md.day, 0, 0, 0, 0, time.UTC),
			Name:      n,
			Recurring: true,
		})
	}
	sortHolidays(recurring)

	individual := make([]Holiday, 0, len(s.individual))
	for d, n := range s.individual {
		individual = append(individual, Holiday{Date: d.toTime(), Name: n})
	}
	sortHolidays(individual)

	result = append(result, recurring...)
	return append(result, individual...)
}

func sortHolidays(h []Holiday) {
	sort.Slice(h, func(i, j int) bool {
		return h[i].Date.Before(h[j].Date)
	})
}
