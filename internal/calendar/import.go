package calendar

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Collect fetches the holidays of every given year from src
func Collect(ctx context.Context, src Source, logger *zap.Logger, years ...int) ([]Holiday, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var all []Holiday
	for _, year := range years {
		holidays, err := src.Holidays(ctx, year)
		if err != nil {
			return nil, fmt.Errorf("failed to get holidays for %d: %w", year, err)
		}

		logger.Info("Holidays fetched",
			zap.Int("year", year),
			zap.Int("count", len(holidays)))
		all = append(all, holidays...)
	}
	return all, nil
}

// Import registers holidays from src for each of the given years into cal
func Import(ctx context.Context, cal *WorkdayCalendar, src Source, years ...int) error {
	holidays, err := Collect(ctx, src, cal.logger, years...)
	if err != nil {
		return err
	}

	cal.AddHolidays(holidays...)
	return nil
}

// ImportAll registers every holiday of a loaded FileSource into cal
func ImportAll(cal *WorkdayCalendar, fs *FileSource) {
	cal.AddHolidays(fs.All()...)
}
