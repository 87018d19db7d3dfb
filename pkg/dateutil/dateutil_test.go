package dateutil

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 123456789, time.UTC)
	expected := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	result := StartOfDay(input)

	if !result.Equal(expected) {
		t.Errorf("StartOfDay(%v) = %v, want %v", input, result, expected)
	}
}

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  bool
	}{
		{"Saturday is weekend", time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC), true},
		{"Sunday is weekend", time.Date(2025, 1, 19, 0, 0, 0, 0, time.UTC), true},
		{"Monday is not weekend", time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), false},
		{"Friday is not weekend", time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsWeekend(tt.input)

			if result != tt.want {
				t.Errorf("IsWeekend(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"), result, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			"ISO format YYYY-MM-DD",
			"2025-01-15",
			time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			false,
		},
		{
			"Dotted format DD.MM.YYYY",
			"15.01.2025",
			time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			false,
		},
		{
			"Slashed format",
			"2025/01/15",
			time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			false,
		},
		{
			"Garbage",
			"yesterday",
			time.Time{},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if !tt.wantErr && !result.Equal(tt.want) {
				t.Errorf("ParseDate(%v) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"Date and minutes", "2004-05-24 18:05", time.Date(2004, 5, 24, 18, 5, 0, 0, time.UTC), false},
		{"Date and seconds", "2004-05-24 18:05:30", time.Date(2004, 5, 24, 18, 5, 30, 0, time.UTC), false},
		{"ISO with T", "2004-05-24T19:03", time.Date(2004, 5, 24, 19, 3, 0, 0, time.UTC), false},
		{"Bare date is midnight", "2022-02-09", time.Date(2022, 2, 9, 0, 0, 0, 0, time.UTC), false},
		{"Invalid hour", "2022-02-09 25:00", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDateTime(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDateTime(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if !tt.wantErr && !result.Equal(tt.want) {
				t.Errorf("ParseDateTime(%v) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}

func TestParseMonthDay(t *testing.T) {
	result, err := ParseMonthDay("05-17")
	if err != nil {
		t.Fatalf("ParseMonthDay() error = %v", err)
	}
	if result.Month() != time.May || result.Day() != 17 {
		t.Errorf("ParseMonthDay(05-17) = %v", result)
	}

	if _, err := ParseMonthDay("02-29"); err != nil {
		t.Errorf("ParseMonthDay(02-29) error = %v, leap day must be accepted", err)
	}

	if _, err := ParseMonthDay("13-01"); err == nil {
		t.Error("ParseMonthDay(13-01) expected error")
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input      string
		wantHour   int
		wantMinute int
		wantSecond int
		wantErr    bool
	}{
		{"08:00", 8, 0, 0, false},
		{"16:30:15", 16, 30, 15, false},
		{"00:10", 0, 10, 0, false},
		{"8am", 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseTimeOfDay(tt.input)

			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimeOfDay(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			h, m, s := result.Clock()
			if h != tt.wantHour || m != tt.wantMinute || s != tt.wantSecond {
				t.Errorf("ParseTimeOfDay(%v) = %02d:%02d:%02d", tt.input, h, m, s)
			}
		})
	}
}
