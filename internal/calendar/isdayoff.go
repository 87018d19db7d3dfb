package calendar

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/username/workday-calendar/pkg/dateutil"
	"go.uber.org/zap"
)

const (
	isdayoffBaseURL    = "https://isdayoff.ru"
	defaultHTTPTimeout = 10 * time.Second
	defaultCacheTTL    = 24 * time.Hour
)

// IsDayOffSource implements Source using the isdayoff.ru production calendar API.
// Weekdays the API marks as non-working are reported as holidays.
type IsDayOffSource struct {
	baseURL    string
	country    string
	httpClient *http.Client
	logger     *zap.Logger
	cache      map[string]*cachedMonth
	cacheMu    sync.RWMutex
	cacheTTL   time.Duration
}

type cachedMonth struct {
	holidays  []Holiday
	fetchedAt time.Time
}

// NewIsDayOffSource creates a new IsDayOffSource instance.
// An empty baseURL selects the public isdayoff.ru endpoint.
func NewIsDayOffSource(baseURL, country string, cacheTTL time.Duration, logger *zap.Logger) *IsDayOffSource {
	if baseURL == "" {
		baseURL = isdayoffBaseURL
	}
	if cacheTTL == 0 {
		cacheTTL = defaultCacheTTL
	}

	return &IsDayOffSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		country: country,
		httpClient: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
		logger:   logger,
		cache:    make(map[string]*cachedMonth),
		cacheTTL: cacheTTL,
	}
}

// Holidays returns the non-working weekdays of the year
func (c *IsDayOffSource) Holidays(ctx context.Context, year int) ([]Holiday, error) {
	var result []Holiday
	for month := time.January; month <= time.December; month++ {
		holidays, err := c.monthHolidays(ctx, year, month)
		if err != nil {
			return nil, err
		}
		result = append(result, holidays...)
	}
	return result, nil
}

func (c *IsDayOffSource) monthHolidays(ctx context.Context, year int, month time.Month) ([]Holiday, error) {
	cacheKey := fmt.Sprintf("%d-%02d", year, month)

	c.cacheMu.RLock()
	if cached, ok := c.cache[cacheKey]; ok {
		if time.Since(cached.fetchedAt) < c.cacheTTL {
			c.cacheMu.RUnlock()
			c.logger.Debug("Using cached month", zap.String("month", cacheKey))
			return cached.holidays, nil
		}
	}
	c.cacheMu.RUnlock()

	holidays, err := c.fetchMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	c.cacheMu.Lock()
	c.cache[cacheKey] = &cachedMonth{
		holidays:  holidays,
		fetchedAt: time.Now(),
	}
	c.cacheMu.Unlock()

	return holidays, nil
}

// fetchMonth fetches entire month from isdayoff.ru bulk API
func (c *IsDayOffSource) fetchMonth(ctx context.Context, year int, month time.Month) ([]Holiday, error) {
	// Build URL: https://isdayoff.ru/api/getdata?year=2025&month=11&pre=1&cc=ru
	url := fmt.Sprintf("%s/api/getdata?year=%d&month=%d&pre=1", c.baseURL, year, int(month))
	if c.country != "" {
		url += "&cc=" + c.country
	}

	c.logger.Debug("Fetching month from isdayoff",
		zap.String("url", url),
		zap.Int("year", year),
		zap.Int("month", int(month)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch calendar data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	holidays, err := parseBulkResponse(year, month, strings.TrimSpace(string(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse bulk response: %w", err)
	}

	c.logger.Info("Month fetched from isdayoff",
		zap.Int("year", year),
		zap.Int("month", int(month)),
		zap.Int("holidays", len(holidays)))

	return holidays, nil
}

// parseBulkResponse parses isdayoff.ru bulk response string
// Format: "211100011000001100000110000011" where:
// 0 = working day
// 1 = non-working day (holiday/weekend)
// 2 = shortened day, still a workday
// 4 = non-working day by decree
func parseBulkResponse(year int, month time.Month, data string) ([]Holiday, error) {
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	if len(data) != daysInMonth {
		return nil, fmt.Errorf("bulk data length mismatch: expected %d, got %d (%q)", daysInMonth, len(data), data)
	}

	var holidays []Holiday
	for i, code := range data {
		date := time.Date(year, month, i+1, 0, 0, 0, 0, time.UTC)

		switch code {
		case '0', '2':
		case '1', '4':
			if !dateutil.IsWeekend(date) {
				holidays = append(holidays, Holiday{Date: date, Name: "non-working day"})
			}
		default:
			return nil, fmt.Errorf("unknown code '%c' at position %d", code, i)
		}
	}

	return holidays, nil
}

// ClearCache clears the cache
func (c *IsDayOffSource) ClearCache() {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	c.cache = make(map[string]*cachedMonth)
	c.logger.Info("Calendar cache cleared")
}
