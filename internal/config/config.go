package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/username/workday-calendar/pkg/dateutil"
)

// Config represents application configuration
type Config struct {
	Workday  WorkdayConfig  `mapstructure:"workday"`
	Holidays HolidaysConfig `mapstructure:"holidays"`
	Log      LogConfig      `mapstructure:"log"`
}

// WorkdayConfig represents the daily work window
type WorkdayConfig struct {
	Start string `mapstructure:"start"` // HH:MM
	Stop  string `mapstructure:"stop"`  // HH:MM
}

// HolidaysConfig represents holiday registration
type HolidaysConfig struct {
	Individual []string `mapstructure:"individual"` // YYYY-MM-DD
	Recurring  []string `mapstructure:"recurring"`  // MM-DD
	File       string   `mapstructure:"file"`

	// Source-backed holidays; FallbackFile is used when the source fails
	Source       string `mapstructure:"source"` // "", "isdayoff" or a region code
	Years        []int  `mapstructure:"years"`
	FallbackFile string `mapstructure:"fallback_file"`
	IsDayOffURL  string `mapstructure:"isdayoff_url"`
	Country      string `mapstructure:"country"`
	CacheTTL     string `mapstructure:"cache_ttl"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.workday-calendar")
		v.AddConfigPath("/etc/workday-calendar")
	}

	v.SetDefault("workday.start", "08:00")
	v.SetDefault("workday.stop", "16:00")
	v.SetDefault("log.level", "info")

	// Read environment variables
	v.SetEnvPrefix("WORKDAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	start, err := c.Workday.GetStart()
	if err != nil {
		return fmt.Errorf("workday.start: %w", err)
	}
	stop, err := c.Workday.GetStop()
	if err != nil {
		return fmt.Errorf("workday.stop: %w", err)
	}
	if !stop.After(start) {
		return fmt.Errorf("workday.stop (%s) must be later than workday.start (%s)", c.Workday.Stop, c.Workday.Start)
	}

	for _, d := range c.Holidays.Individual {
		if _, err := dateutil.ParseDate(d); err != nil {
			return fmt.Errorf("holidays.individual: %w", err)
		}
	}
	for _, d := range c.Holidays.Recurring {
		if _, err := dateutil.ParseMonthDay(d); err != nil {
			return fmt.Errorf("holidays.recurring: %w", err)
		}
	}

	if c.Holidays.Source != "" && len(c.Holidays.Years) == 0 {
		return fmt.Errorf("holidays.years is required when holidays.source is set")
	}
	if c.Holidays.FallbackFile != "" && c.Holidays.Source == "" {
		return fmt.Errorf("holidays.fallback_file requires holidays.source")
	}

	return nil
}

// GetStart returns the parsed work window start
func (c *WorkdayConfig) GetStart() (time.Time, error) {
	return dateutil.ParseTimeOfDay(c.Start)
}

// GetStop returns the parsed work window stop
func (c *WorkdayConfig) GetStop() (time.Time, error) {
	return dateutil.ParseTimeOfDay(c.Stop)
}

// GetCacheTTL returns cache TTL duration
func (c *HolidaysConfig) GetCacheTTL() time.Duration {
	if c.CacheTTL == "" {
		return 24 * time.Hour
	}
	duration, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return 24 * time.Hour
	}
	return duration
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Holidays.File = os.ExpandEnv(c.Holidays.File)
	c.Holidays.FallbackFile = os.ExpandEnv(c.Holidays.FallbackFile)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
