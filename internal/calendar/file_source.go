package calendar

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/username/workday-calendar/pkg/dateutil"
	"go.uber.org/zap"
)

// FileSource implements Source using a local text file
type FileSource struct {
	filePath   string
	logger     *zap.Logger
	individual map[int][]Holiday // key: year
	recurring  []Holiday
}

// NewFileSource creates a new FileSource instance
func NewFileSource(filePath string, logger *zap.Logger) *FileSource {
	return &FileSource{
		filePath:   filePath,
		logger:     logger,
		individual: make(map[int][]Holiday),
	}
}

// Load loads holiday data from file
func (fs *FileSource) Load() error {
	file, err := os.Open(fs.filePath)
	if err != nil {
		return fmt.Errorf("failed to open holiday file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	individual := make(map[int][]Holiday)
	var recurring []Holiday
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Format: YYYY-MM-DD holiday [note]
		//         MM-DD recurring [note]
		// Example: 2004-05-27 holiday Company anniversary
		parts := strings.Fields(line)
		if len(parts) < 2 {
			fs.logger.Warn("Invalid line format", zap.Int("line", lineNo), zap.String("text", line))
			continue
		}

		dateStr, typeStr := parts[0], parts[1]
		note := strings.Join(parts[2:], " ")

		switch typeStr {
		case "holiday":
			date, err := dateutil.ParseDate(dateStr)
			if err != nil {
				fs.logger.Warn("Failed to parse date", zap.Int("line", lineNo), zap.Error(err))
				continue
			}
			individual[date.Year()] = append(individual[date.Year()], Holiday{Date: date, Name: note})

		case "recurring":
			date, err := dateutil.ParseMonthDay(dateStr)
			if err != nil {
				fs.logger.Warn("Failed to parse month-day", zap.Int("line", lineNo), zap.Error(err))
				continue
			}
			recurring = append(recurring, Holiday{Date: date, Name: note, Recurring: true})

		default:
			fs.logger.Warn("Unknown holiday type", zap.Int("line", lineNo), zap.String("type", typeStr))
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading holiday file: %w", err)
	}

	fs.individual = individual
	fs.recurring = recurring

	fs.logger.Info("Holiday file loaded",
		zap.String("file", fs.filePath),
		zap.Int("years", len(individual)),
		zap.Int("recurring", len(recurring)))

	return nil
}

// Holidays returns recurring holidays plus the individual holidays of the year
func (fs *FileSource) Holidays(_ context.Context, year int) ([]Holiday, error) {
	result := make([]Holiday, 0, len(fs.recurring)+len(fs.individual[year]))
	result = append(result, fs.recurring...)
	return append(result, fs.individual[year]...), nil
}

// All returns every holiday in the file regardless of year
func (fs *FileSource) All() []Holiday {
	result := append([]Holiday{}, fs.recurring...)
	for _, holidays := range fs.individual {
		result = append(result, holidays...)
	}
	return result
}
