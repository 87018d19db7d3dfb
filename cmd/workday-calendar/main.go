package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/workday-calendar/internal/calendar"
	"github.com/username/workday-calendar/internal/config"
	"github.com/username/workday-calendar/pkg/dateutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"gopkg.in/yaml.v3"
)

var (
	configPath string
	appConfig  *config.Config
	configErr  error
	logger     = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "workday-calendar",
		Short:         "Workday calendar",
		Long:          "Compute date-times a fractional number of workdays away, honoring work hours, weekends and holidays",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config once, commands reuse it through loadCalendar
			appConfig, configErr = config.Load(configPath)
			if configErr == nil {
				appConfig.ExpandEnvVars()
			}

			if configErr == nil && appConfig.Log.File != "" {
				logger = initFileLogger(appConfig.Log.File, appConfig.Log.Level)
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Config file path")

	rootCmd.AddCommand(incrementCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(holidaysCmd())

	return rootCmd
}

func incrementCmd() *cobra.Command {
	var from string
	var days float64

	cmd := &cobra.Command{
		Use:   "increment",
		Short: "Move a date-time by a fractional number of workdays",
		Example: `  workday-calendar increment --from "2004-05-24 18:05" --days -5.5
  workday-calendar increment --from 2022-02-09T07:00 --days 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := dateutil.ParseDateTime(from)
			if err != nil {
				return fmt.Errorf("invalid --from: %w", err)
			}
			if err := calendar.ValidateIncrement(days); err != nil {
				return fmt.Errorf("invalid --days: %w", err)
			}

			cal, err := loadCalendar(cmd.Context())
			if err != nil {
				return err
			}

			result, err := cal.GetWorkdayIncrement(start, days)
			if err != nil {
				return fmt.Errorf("failed to compute increment: %w", err)
			}

			logger.Info("Increment computed",
				zap.Time("start", start),
				zap.Float64("days", days),
				zap.Time("result", result))

			fmt.Fprintln(cmd.OutOrStdout(), result.Format(dateutil.DateTimeLayout))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Start date-time (YYYY-MM-DD HH:MM)")
	cmd.Flags().Float64Var(&days, "days", 0, "Workdays to add, negative to go back")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func checkCmd() *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Show whether a date is a workday",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := dateutil.ParseDate(dateStr)
			if err != nil {
				return fmt.Errorf("invalid --date: %w", err)
			}

			cal, err := loadCalendar(cmd.Context())
			if err != nil {
				return err
			}

			info := cal.DayInfo(date)
			line := fmt.Sprintf("%s %s: %s", info.Date.Format(dateutil.DateLayout), info.Date.Format("Mon"), info.Type)
			if info.Note != "" {
				line += " (" + info.Note + ")"
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Date to check (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

// holidayEntry is the printable form of a registered holiday
type holidayEntry struct {
	Date      string `yaml:"date"`
	Recurring bool   `yaml:"recurring"`
	Name      string `yaml:"name,omitempty"`
}

func holidaysCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "List registered holidays",
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := loadCalendar(cmd.Context())
			if err != nil {
				return err
			}

			holidays := cal.Holidays()
			entries := make([]holidayEntry, 0, len(holidays))
			for _, h := range holidays {
				layout := dateutil.DateLayout
				if h.Recurring {
					layout = dateutil.MonthDayLayout
				}
				entries = append(entries, holidayEntry{
					Date:      h.Date.Format(layout),
					Recurring: h.Recurring,
					Name:      h.Name,
				})
			}

			out := cmd.OutOrStdout()
			switch format {
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(entries); err != nil {
					return fmt.Errorf("failed to encode holidays: %w", err)
				}
				return enc.Close()
			case "text":
				for _, e := range entries {
					kind := "holiday"
					if e.Recurring {
						kind = "recurring"
					}
					fmt.Fprintf(out, "%-10s %-9s %s\n", e.Date, kind, e.Name)
				}
				return nil
			default:
				return fmt.Errorf("unknown format %q, expected text or yaml", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or yaml")

	return cmd
}

func loadCalendar(ctx context.Context) (*calendar.WorkdayCalendar, error) {
	if configErr != nil {
		return nil, fmt.Errorf("failed to load config: %w", configErr)
	}
	if appConfig == nil {
		return nil, fmt.Errorf("config not loaded")
	}

	return buildCalendar(ctx, appConfig)
}

func buildCalendar(ctx context.Context, cfg *config.Config) (*calendar.WorkdayCalendar, error) {
	cal := calendar.New(logger)

	start, err := cfg.Workday.GetStart()
	if err != nil {
		return nil, err
	}
	stop, err := cfg.Workday.GetStop()
	if err != nil {
		return nil, err
	}
	if err := cal.SetWorkWindow(start, stop); err != nil {
		return nil, err
	}

	// Everything is registered in one batch so recurring holidays from any
	// origin win over individual holidays on the same date
	var holidays []calendar.Holiday
	for _, d := range cfg.Holidays.Recurring {
		date, err := dateutil.ParseMonthDay(d)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, calendar.Holiday{Date: date, Recurring: true})
	}
	for _, d := range cfg.Holidays.Individual {
		date, err := dateutil.ParseDate(d)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, calendar.Holiday{Date: date})
	}

	if cfg.Holidays.File != "" {
		fileSource := calendar.NewFileSource(cfg.Holidays.File, logger)
		if err := fileSource.Load(); err != nil {
			return nil, err
		}
		holidays = append(holidays, fileSource.All()...)
	}

	src, err := holidaySource(cfg)
	if err != nil {
		return nil, err
	}
	if src != nil {
		fetched, err := calendar.Collect(ctx, src, logger, cfg.Holidays.Years...)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, fetched...)
	}

	cal.AddHolidays(holidays...)

	return cal, nil
}

// holidaySource builds the configured holiday source, or nil when none is set
func holidaySource(cfg *config.Config) (calendar.Source, error) {
	var src calendar.Source

	switch cfg.Holidays.Source {
	case "":
		return nil, nil
	case "isdayoff":
		logger.Info("Using isdayoff.ru holiday source")
		src = calendar.NewIsDayOffSource(
			cfg.Holidays.IsDayOffURL,
			cfg.Holidays.Country,
			cfg.Holidays.GetCacheTTL(),
			logger,
		)
	default:
		regionSource, err := calendar.NewRegionSource(cfg.Holidays.Source)
		if err != nil {
			return nil, err
		}
		logger.Info("Using region holiday rules", zap.String("region", cfg.Holidays.Source))
		src = regionSource
	}

	if cfg.Holidays.FallbackFile == "" {
		return src, nil
	}

	fallback := calendar.NewFileSource(cfg.Holidays.FallbackFile, logger)
	composite := calendar.NewCompositeSource(src, fallback, logger)

	// Load fallback holidays
	if err := composite.LoadFallback(); err != nil {
		logger.Warn("Failed to load fallback holidays, continuing with source only",
			zap.Error(err))
	}

	return composite, nil
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) *zap.Logger {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Parse log level
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core)
}
