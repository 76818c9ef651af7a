// Package config loads and persists the Dayflow client configuration
// stored at ~/.dayflow/config.yaml, with .env and environment variable
// overrides on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	dferrors "github.com/dayflowhq/dayflow/internal/errors"
)

// DefaultAPIURL is the backend used when nothing else is configured.
const DefaultAPIURL = "http://localhost:5000/api"

// Environment variables that override the config file.
const (
	EnvAPIURL   = "DAYFLOW_API_URL"
	EnvLogLevel = "DAYFLOW_LOG_LEVEL"
)

// Config is the Dayflow client configuration.
type Config struct {
	API     APIConfig     `yaml:"api,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Leave   LeaveConfig   `yaml:"leave,omitempty"`
}

// APIConfig selects the backend.
type APIConfig struct {
	URL string `yaml:"url,omitempty"`
}

// LoggingConfig controls log verbosity and format.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format,omitempty"` // "text", "json"
}

// LeaveConfig tunes the derived leave and attendance views.
type LeaveConfig struct {
	Allowance   int      `yaml:"allowance,omitempty"`    // annual leave allowance
	WeekendDays []string `yaml:"weekend_days,omitempty"` // e.g. ["Saturday", "Sunday"]
}

// Default returns the out-of-the-box configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			URL: DefaultAPIURL,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
		Leave: LeaveConfig{
			Allowance:   12,
			WeekendDays: []string{"Saturday", "Sunday"},
		},
	}
}

// Dir returns the Dayflow configuration directory, creating it if
// needed.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", dferrors.Wrap(dferrors.ErrCodeFileReadFailed, "failed to resolve home directory", err)
	}
	dir := filepath.Join(home, ".dayflow")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", dferrors.Wrap(dferrors.ErrCodeFileWriteFailed, "failed to create config directory", err)
	}
	return dir, nil
}

// Path returns the path to the config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// SessionDir returns the directory session material is persisted under.
func SessionDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "session"), nil
}

// Load reads the config file, writing the defaults first when none
// exists, then applies a .env file from the working directory and
// DAYFLOW_* environment overrides.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	// A .env in the working directory is a convenience for development
	// setups; a missing file is not an error.
	_ = godotenv.Load()
	cfg.applyEnv()
	return cfg, nil
}

// LoadFile reads the config at path, creating it with defaults when
// missing. Environment overrides are not applied.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		if err := cfg.SaveTo(path); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, dferrors.Wrap(dferrors.ErrCodeFileReadFailed, "failed to read config file", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, dferrors.NewFileUnmarshalError(path, "yaml", err)
	}
	return cfg, nil
}

// Save writes the config to the default path.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to path.
func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return dferrors.Wrap(dferrors.ErrCodeFileMarshal, "failed to encode config", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return dferrors.Wrap(dferrors.ErrCodeFileWriteFailed, "failed to write config file", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.API.URL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
}

// WeekendDays parses the configured weekend day names. Unknown names
// are ignored; an empty or fully invalid list falls back to Saturday
// and Sunday.
func (c *Config) WeekendDays() []time.Weekday {
	var days []time.Weekday
	for _, name := range c.Leave.WeekendDays {
		if d, ok := parseWeekday(name); ok {
			days = append(days, d)
		}
	}
	if len(days) == 0 {
		return []time.Weekday{time.Saturday, time.Sunday}
	}
	return days
}

func parseWeekday(name string) (time.Weekday, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sunday":
		return time.Sunday, true
	case "monday":
		return time.Monday, true
	case "tuesday":
		return time.Tuesday, true
	case "wednesday":
		return time.Wednesday, true
	case "thursday":
		return time.Thursday, true
	case "friday":
		return time.Friday, true
	case "saturday":
		return time.Saturday, true
	default:
		return 0, false
	}
}

// Get retrieves a configuration value by dot-notation key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "api.url":
		return c.API.URL, nil
	case "logging.level":
		return c.Logging.Level, nil
	case "logging.format":
		return c.Logging.Format, nil
	case "leave.allowance":
		return strconv.Itoa(c.Leave.Allowance), nil
	case "leave.weekend_days":
		return strings.Join(c.Leave.WeekendDays, ","), nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// Set assigns a configuration value by dot-notation key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "api.url":
		c.API.URL = value
	case "logging.level":
		c.Logging.Level = value
	case "logging.format":
		c.Logging.Format = value
	case "leave.allowance":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("leave.allowance must be an integer: %w", err)
		}
		c.Leave.Allowance = n
	case "leave.weekend_days":
		var names []string
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if _, ok := parseWeekday(part); !ok {
				return fmt.Errorf("unknown weekday: %s", part)
			}
			names = append(names, part)
		}
		c.Leave.WeekendDays = names
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}
