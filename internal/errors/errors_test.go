package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeAuthNotLoggedIn, "test error message")

	if err.Code != ErrCodeAuthNotLoggedIn {
		t.Errorf("expected code %s, got %s", ErrCodeAuthNotLoggedIn, err.Code)
	}

	if err.Message != "test error message" {
		t.Errorf("expected message 'test error message', got '%s'", err.Message)
	}

	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("underlying error")
	err := Wrap(ErrCodeFileReadFailed, "failed to read file", cause)

	if err.Code != ErrCodeFileReadFailed {
		t.Errorf("expected code %s, got %s", ErrCodeFileReadFailed, err.Code)
	}

	if err.Cause != cause {
		t.Errorf("expected cause to be set")
	}

	// Test unwrapping
	if !errors.Is(err, cause) {
		t.Errorf("Wrap should support errors.Is")
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *DayflowError
		wantCode string
		wantMsg  string
	}{
		{
			name:     "simple error",
			err:      New(ErrCodeAPIServer, "invalid email or password"),
			wantCode: "API-003",
			wantMsg:  "invalid email or password",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeFileReadFailed, "read failed", fmt.Errorf("permission denied")),
			wantCode: "IO-002",
			wantMsg:  "read failed",
		},
		{
			name:     "error with suggestions",
			err:      New(ErrCodeAuthTokenExpired, "session expired").WithSuggestion("log in again"),
			wantCode: "AUTH-003",
			wantMsg:  "session expired",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()

			if !strings.Contains(got, tt.wantCode) {
				t.Errorf("error string %q should contain code %q", got, tt.wantCode)
			}

			if !strings.Contains(got, tt.wantMsg) {
				t.Errorf("error string %q should contain message %q", got, tt.wantMsg)
			}
		})
	}
}

func TestSuggestionsInOutput(t *testing.T) {
	err := NewNotLoggedInError()

	got := err.Error()
	if !strings.Contains(got, "Suggestions:") {
		t.Errorf("expected suggestions section in %q", got)
	}
	if !strings.Contains(got, "dayflow auth login") {
		t.Errorf("expected login suggestion in %q", got)
	}
}

func TestServerErrorFallbackMessage(t *testing.T) {
	err := NewServerError(502, "")

	if !strings.Contains(err.Message, "502") {
		t.Errorf("fallback message should mention status, got %q", err.Message)
	}
}

func TestErrorsAs(t *testing.T) {
	var target *DayflowError
	err := fmt.Errorf("wrapped: %w", NewTokenExpiredError())

	if !errors.As(err, &target) {
		t.Fatal("errors.As should find DayflowError")
	}
	if target.Code != ErrCodeAuthTokenExpired {
		t.Errorf("expected code %s, got %s", ErrCodeAuthTokenExpired, target.Code)
	}
}
