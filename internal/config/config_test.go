package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIURL, cfg.API.URL)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 12, cfg.Leave.Allowance)

	// The defaults were written to disk.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestLoadFileRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := Default()
	cfg.API.URL = "https://hr.example.com/api"
	cfg.Leave.Allowance = 20
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://hr.example.com/api", loaded.API.URL)
	assert.Equal(t, 20, loaded.Leave.Allowance)
}

func TestLoadFilePartialConfigKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  url: https://hr.example.com/api\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "https://hr.example.com/api", cfg.API.URL)
	assert.Equal(t, 12, cfg.Leave.Allowance)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadFileRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api: [unclosed"), 0o600))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvAPIURL, "https://override.example.com/api")
	t.Setenv(EnvLogLevel, "debug")

	cfg := Default()
	cfg.applyEnv()

	assert.Equal(t, "https://override.example.com/api", cfg.API.URL)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestWeekendDays(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  []time.Weekday
	}{
		{"default", []string{"Saturday", "Sunday"}, []time.Weekday{time.Saturday, time.Sunday}},
		{"friday only", []string{"Friday"}, []time.Weekday{time.Friday}},
		{"case insensitive", []string{"friday", "SATURDAY"}, []time.Weekday{time.Friday, time.Saturday}},
		{"empty falls back", nil, []time.Weekday{time.Saturday, time.Sunday}},
		{"garbage falls back", []string{"Caturday"}, []time.Weekday{time.Saturday, time.Sunday}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Leave.WeekendDays = tt.names
			assert.Equal(t, tt.want, cfg.WeekendDays())
		})
	}
}

func TestGetSet(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Set("api.url", "https://hr.example.com/api"))
	got, err := cfg.Get("api.url")
	require.NoError(t, err)
	assert.Equal(t, "https://hr.example.com/api", got)

	require.NoError(t, cfg.Set("leave.allowance", "18"))
	assert.Equal(t, 18, cfg.Leave.Allowance)

	require.NoError(t, cfg.Set("leave.weekend_days", "Friday, Saturday"))
	assert.Equal(t, []string{"Friday", "Saturday"}, cfg.Leave.WeekendDays)

	assert.Error(t, cfg.Set("leave.allowance", "plenty"))
	assert.Error(t, cfg.Set("leave.weekend_days", "Caturday"))
	assert.Error(t, cfg.Set("nope", "x"))

	_, err = cfg.Get("nope")
	assert.Error(t, err)
}
