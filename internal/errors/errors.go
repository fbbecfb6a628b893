// Package errors provides centralized error handling for teams-notify.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrInvalidStatus indicates the configured job status is not one of
	// the supported values (success, failure, cancelled, warning).
	ErrInvalidStatus = errors.New("invalid job status")

	// ErrGitOperation indicates that a git command (log, diff, diff-tree)
	// failed during execution.
	ErrGitOperation = errors.New("git operation failed")

	// ErrDeliveryFailed indicates the webhook endpoint returned a
	// non-success HTTP status.
	ErrDeliveryFailed = errors.New("notification delivery failed")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalid indicates a configuration value failed validation.
	ErrConfigInvalid = errors.New("invalid configuration")

	// ErrMissingInput indicates a required input (webhook URL, status,
	// repository context) was not supplied.
	ErrMissingInput = errors.New("required input missing")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
// Exit code 2 signals invalid user input (bad flags, unknown status values)
// as opposed to pipeline failures, which use exit code 1.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error for errors.Is/As traversal.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
