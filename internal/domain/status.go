// Package domain provides shared domain types for the teams-notify pipeline.
package domain

import (
	"fmt"
	"strings"

	"github.com/opsnotify/teams-notify/internal/errors"
)

// Status represents the outcome of the deployment job being reported.
// Status values use lowercase for input compatibility with CI variables.
type Status string

// Job status constants define the valid states a deployment can finish in.
const (
	// StatusSuccess indicates the deployment completed successfully.
	StatusSuccess Status = "success"

	// StatusFailure indicates the deployment encountered errors.
	StatusFailure Status = "failure"

	// StatusCancelled indicates the deployment was cancelled before completion.
	StatusCancelled Status = "cancelled"

	// StatusWarning indicates the deployment completed with warnings.
	StatusWarning Status = "warning"
)

// String returns the string representation of the Status.
// This implements fmt.Stringer for convenient logging and debugging.
func (s Status) String() string {
	return string(s)
}

// IsValid reports whether s is one of the supported status values.
func (s Status) IsValid() bool {
	switch s {
	case StatusSuccess, StatusFailure, StatusCancelled, StatusWarning:
		return true
	}
	return false
}

// InvalidStatusError reports an unsupported status input. The message format
// is part of the CLI contract and must not gain extra context.
type InvalidStatusError struct {
	// Value is the rejected raw input.
	Value string
}

// Error implements the error interface.
func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("Invalid job status: %s", e.Value)
}

// Is reports a match against the ErrInvalidStatus sentinel so callers can
// use errors.Is without losing the exact message.
func (e *InvalidStatusError) Is(target error) bool {
	return target == errors.ErrInvalidStatus
}

// ParseStatus converts a raw status input to a Status.
// Matching is case-insensitive and surrounding whitespace is ignored.
// Any other value is a configuration error, detected before any I/O.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", &InvalidStatusError{Value: raw}
	}
	return s, nil
}
