package exitcode

import (
	"errors"
	"os"

	dferrors "github.com/dayflowhq/dayflow/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates an authentication or session failure
	AuthError = 3

	// AccessDenied indicates the session role does not satisfy the command's required role
	AccessDenied = 4

	// NetworkError indicates the backend could not be reached
	NetworkError = 5

	// ServerError indicates the backend rejected the request
	ServerError = 6

	// Interrupted indicates the operation was cancelled by the user
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}

	code := DetermineExitCode(err)
	Exit(code)
}

// DetermineExitCode analyzes an error and returns the appropriate exit code.
// Coded errors map by category; anything else is a general error.
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	var dfErr *dferrors.DayflowError
	if !errors.As(err, &dfErr) {
		return GeneralError
	}

	switch dfErr.Code {
	case dferrors.ErrCodeAuthInvalidCredentials,
		dferrors.ErrCodeAuthNotLoggedIn,
		dferrors.ErrCodeAuthTokenExpired,
		dferrors.ErrCodeAuthOTPInvalid,
		dferrors.ErrCodeAuthSignupInvalid,
		dferrors.ErrCodeSessionIncomplete:
		return AuthError

	case dferrors.ErrCodeRoleUnknown,
		dferrors.ErrCodeRoleDenied:
		return AccessDenied

	case dferrors.ErrCodeAPIUnreachable:
		return NetworkError

	case dferrors.ErrCodeAPIServer,
		dferrors.ErrCodeAPIResponse,
		dferrors.ErrCodeAPIUpload:
		return ServerError

	case dferrors.ErrCodeInputRequired,
		dferrors.ErrCodeInputInvalid:
		return UsageError
	}

	return GeneralError
}

// GetExitCodeDescription returns a human-readable description of an exit code
func GetExitCodeDescription(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case UsageError:
		return "Usage error (invalid flags or arguments)"
	case AuthError:
		return "Authentication error"
	case AccessDenied:
		return "Access denied for current role"
	case NetworkError:
		return "Network error"
	case ServerError:
		return "Backend rejected the request"
	case Interrupted:
		return "Interrupted"
	default:
		return "Unknown error"
	}
}
