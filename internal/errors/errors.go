package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Authentication errors (AUTH-001 to AUTH-099)
	ErrCodeAuthInvalidCredentials ErrorCode = "AUTH-001"
	ErrCodeAuthNotLoggedIn        ErrorCode = "AUTH-002"
	ErrCodeAuthTokenExpired       ErrorCode = "AUTH-003"
	ErrCodeAuthOTPInvalid         ErrorCode = "AUTH-004"
	ErrCodeAuthSignupInvalid      ErrorCode = "AUTH-005"

	// Session errors (SESSION-001 to SESSION-099)
	ErrCodeSessionIncomplete ErrorCode = "SESSION-001"
	ErrCodeSessionStorage    ErrorCode = "SESSION-002"

	// Authorization errors (ROLE-001 to ROLE-099)
	ErrCodeRoleUnknown ErrorCode = "ROLE-001"
	ErrCodeRoleDenied  ErrorCode = "ROLE-002"

	// API errors (API-001 to API-099)
	ErrCodeAPIRequest     ErrorCode = "API-001"
	ErrCodeAPIResponse    ErrorCode = "API-002"
	ErrCodeAPIServer      ErrorCode = "API-003"
	ErrCodeAPIUnreachable ErrorCode = "API-004"
	ErrCodeAPIUpload      ErrorCode = "API-005"

	// Input validation errors (INPUT-001 to INPUT-099)
	ErrCodeInputRequired ErrorCode = "INPUT-001"
	ErrCodeInputInvalid  ErrorCode = "INPUT-002"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileNotFound    ErrorCode = "IO-001"
	ErrCodeFileReadFailed  ErrorCode = "IO-002"
	ErrCodeFileWriteFailed ErrorCode = "IO-003"
	ErrCodeFileUnmarshal   ErrorCode = "IO-004"
	ErrCodeFileMarshal     ErrorCode = "IO-005"
)

// DayflowError represents an enhanced error with code, suggestions, and documentation
type DayflowError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *DayflowError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *DayflowError) Unwrap() error {
	return e.Cause
}

// New creates a new DayflowError
func New(code ErrorCode, message string) *DayflowError {
	return &DayflowError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new DayflowError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *DayflowError {
	return &DayflowError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *DayflowError) WithSuggestion(suggestion string) *DayflowError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *DayflowError) WithSuggestions(suggestions ...string) *DayflowError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *DayflowError) WithDocs(url string) *DayflowError {
	e.DocsURL = url
	return e
}

// Common error constructors for frequently used errors

// NewNotLoggedInError creates a not-logged-in error
func NewNotLoggedInError() *DayflowError {
	return New(ErrCodeAuthNotLoggedIn, "you are not logged in").
		WithSuggestion("Run 'dayflow auth login' to authenticate").
		WithSuggestion("Run 'dayflow auth signup' to create an account")
}

// NewTokenExpiredError creates a session-expiry error.
// The persisted session has already been cleared by the time callers see this.
func NewTokenExpiredError() *DayflowError {
	return New(ErrCodeAuthTokenExpired, "your session has expired").
		WithSuggestion("Run 'dayflow auth login' to re-authenticate")
}

// NewInvalidCredentialsError creates a bad-credentials error carrying the server message
func NewInvalidCredentialsError(serverMessage string) *DayflowError {
	return New(ErrCodeAuthInvalidCredentials, serverMessage).
		WithSuggestion("Check your email and password").
		WithSuggestion("Managers must log in with 'dayflow auth login --role manager'")
}

// NewServerError creates an error carrying the backend's message for a failed call
func NewServerError(status int, serverMessage string) *DayflowError {
	if serverMessage == "" {
		serverMessage = fmt.Sprintf("request failed with status %d", status)
	}
	return New(ErrCodeAPIServer, serverMessage)
}

// NewUnreachableError creates a transport-failure error
func NewUnreachableError(cause error) *DayflowError {
	return Wrap(ErrCodeAPIUnreachable, "could not reach the Dayflow backend", cause).
		WithSuggestion("Check your network connection").
		WithSuggestion("Verify the API URL with 'dayflow config get api_url'").
		WithSuggestion("Run 'dayflow doctor' to check backend health")
}

// NewInputRequiredError creates a missing-input error
func NewInputRequiredError(field string) *DayflowError {
	return New(ErrCodeInputRequired, fmt.Sprintf("%s is required", field)).
		WithSuggestion(fmt.Sprintf("Provide a value for --%s", field))
}

// NewFileUnmarshalError creates an unmarshal error
func NewFileUnmarshalError(path string, format string, cause error) *DayflowError {
	return Wrap(ErrCodeFileUnmarshal, fmt.Sprintf("failed to parse %s file: %s", format, path), cause).
		WithSuggestion("Check the file syntax and format").
		WithSuggestion(fmt.Sprintf("Ensure the file is valid %s", format))
}
