package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayflowhq/dayflow/internal/errors"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.input), "input %q", tt.input)
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("text"))
	assert.Equal(t, FormatText, ParseFormat("anything else"))
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatJSON, Output: &buf})

	logger.Info("checked in", "employee", "EMP-001")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "checked in", record["msg"])
	assert.Equal(t, "EMP-001", record["employee"])
	assert.Equal(t, "INFO", record["level"])
}

func TestNewTextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatText, Output: &buf})

	logger.Warn("slow response", "ms", 1200)

	out := buf.String()
	assert.Contains(t, out, "slow response")
	assert.Contains(t, out, "ms=1200")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelWarn, Format: FormatText, Output: &buf})

	logger.Debug("too quiet")
	logger.Info("still too quiet")
	assert.Empty(t, buf.String())

	logger.Warn("loud enough")
	assert.Contains(t, buf.String(), "loud enough")
}

func TestWithErrorCoded(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatJSON, Output: &buf})

	err := errors.New(errors.ErrCodeAuthNotLoggedIn, "not logged in").
		WithSuggestion("Run 'dayflow auth login'")
	logger.WithError(err).Error("request rejected")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, string(errors.ErrCodeAuthNotLoggedIn), record["error_code"])
	assert.Equal(t, "not logged in", record["error"])
	assert.Contains(t, record["suggestions"], "Run 'dayflow auth login'")
}

func TestWithErrorPlain(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatText, Output: &buf})

	logger.WithError(assertableErr("boom")).Error("request failed")

	out := buf.String()
	assert.Contains(t, out, "error=boom")
	assert.False(t, strings.Contains(out, "error_code"))
}

func TestWithErrorNil(t *testing.T) {
	logger := New(DefaultConfig())
	assert.Same(t, logger, logger.WithError(nil))
}

func TestDefaultLogger(t *testing.T) {
	t.Cleanup(func() { SetDefaultLogger(nil) })

	SetDefaultLogger(nil)
	first := DefaultLogger()
	require.NotNil(t, first)
	assert.Same(t, first, DefaultLogger())

	var buf bytes.Buffer
	custom := New(Config{Level: slog.LevelDebug, Format: FormatText, Output: &buf})
	SetDefaultLogger(custom)
	assert.Same(t, custom, DefaultLogger())
}

type assertableErr string

func (e assertableErr) Error() string { return string(e) }
