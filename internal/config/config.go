package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Output   OutputConfig   `mapstructure:"output"`
	Log      LogConfig      `mapstructure:"log"`
}

// CalendarConfig bounds the supported date range. The limits track the
// year span covered by the embedded legal-holiday table, not anything
// structural in this program, so they live in config where they are
// easy to bump when the data source is updated.
type CalendarConfig struct {
	MinYear int `mapstructure:"min_year"`
	MaxYear int `mapstructure:"max_year"`
}

// OutputConfig represents CSV output configuration
type OutputConfig struct {
	Dir               string `mapstructure:"dir"`
	FestivalSeparator string `mapstructure:"festival_separator"`
	BOM               bool   `mapstructure:"bom"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file. A missing config file is not an
// error: defaults cover the full behavior of the tool.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// The defaults track the year span of the bundled holiday table
	// (2004 through 2026 as of lunar-go v1.4.6); bump max_year together
	// with the dependency.
	v.SetDefault("calendar.min_year", 2004)
	v.SetDefault("calendar.max_year", 2026)
	v.SetDefault("output.dir", "output")
	v.SetDefault("output.festival_separator", ", ")
	v.SetDefault("output.bom", true)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.chinese-calendar-tocsv")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Calendar.MinYear <= 0 {
		return fmt.Errorf("calendar.min_year must be positive")
	}
	if c.Calendar.MaxYear < c.Calendar.MinYear {
		return fmt.Errorf("calendar.max_year must not be below calendar.min_year")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}
	return nil
}
