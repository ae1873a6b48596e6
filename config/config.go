package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Storage    StorageConfig

	// Calendar rendering
	Calendar CalendarConfig
	TimeGrid TimeGridConfig

	// Optional mirror of timed schedules
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type StorageConfig struct {
	// Path of the JSON schedule store.
	Path string
}

// CalendarConfig controls the month/week grid pages.
type CalendarConfig struct {
	// FirstWeekday starts grid rows: 0 = Monday .. 6 = Sunday.
	FirstWeekday int
	// Timezone is the single calendar timezone, used to resolve "today".
	Timezone string
	// WeekdayNames are Monday-first display names; the grid rotates them.
	WeekdayNames []string
	// MonthNames are January-first display names.
	MonthNames []string
}

// TimeGridConfig controls the per-day time axis.
type TimeGridConfig struct {
	// HoursStart is the first displayed hour; the axis shows 24 hours
	// wrapping past midnight, e.g. 6 → 06:00 .. 05:00.
	HoursStart     int
	StepMinutes    int
	MinuteHeightPx int
	ActiveColor    string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/schedcal/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/schedcal/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Storage.Path = viper.GetString("storage.path")

	cfg.Calendar.FirstWeekday = viper.GetInt("calendar.first_weekday")
	cfg.Calendar.Timezone = viper.GetString("calendar.timezone")
	cfg.Calendar.WeekdayNames = viper.GetStringSlice("calendar.weekday_names")
	cfg.Calendar.MonthNames = viper.GetStringSlice("calendar.month_names")

	cfg.TimeGrid.HoursStart = viper.GetInt("timegrid.hours_start")
	cfg.TimeGrid.StepMinutes = viper.GetInt("timegrid.step_minutes")
	cfg.TimeGrid.MinuteHeightPx = viper.GetInt("timegrid.minute_height_px")
	cfg.TimeGrid.ActiveColor = viper.GetString("timegrid.active_color")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Calendar.FirstWeekday < 0 || cfg.Calendar.FirstWeekday > 6 {
		return fmt.Errorf("calendar.first_weekday must be in 0..6, got %d", cfg.Calendar.FirstWeekday)
	}
	if len(cfg.Calendar.WeekdayNames) != 7 {
		return fmt.Errorf("calendar.weekday_names must list 7 names, got %d", len(cfg.Calendar.WeekdayNames))
	}
	if len(cfg.Calendar.MonthNames) != 12 {
		return fmt.Errorf("calendar.month_names must list 12 names, got %d", len(cfg.Calendar.MonthNames))
	}
	if cfg.TimeGrid.HoursStart < 0 || cfg.TimeGrid.HoursStart > 23 {
		return fmt.Errorf("timegrid.hours_start must be in 0..23, got %d", cfg.TimeGrid.HoursStart)
	}
	if cfg.TimeGrid.StepMinutes < 1 || cfg.TimeGrid.StepMinutes > 60 {
		return fmt.Errorf("timegrid.step_minutes must be in 1..60, got %d", cfg.TimeGrid.StepMinutes)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 60)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("storage.path", "schedules.json")

	viper.SetDefault("calendar.first_weekday", 0)
	viper.SetDefault("calendar.timezone", "Asia/Tokyo")
	viper.SetDefault("calendar.weekday_names", []string{
		"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun",
	})
	viper.SetDefault("calendar.month_names", []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	})

	viper.SetDefault("timegrid.hours_start", 6)
	viper.SetDefault("timegrid.step_minutes", 10)
	viper.SetDefault("timegrid.minute_height_px", 1)
	viper.SetDefault("timegrid.active_color", "bg-info")
}
