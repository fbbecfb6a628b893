// Package testutil provides testing utilities for teams-notify.
//
// This package contains mock errors shared across test files. It should only
// be imported by test files (*_test.go).
package testutil

import "errors"

// Mock errors for simulating failure scenarios in tests.
var (
	// ErrMockGitFailed simulates a failing git subprocess.
	ErrMockGitFailed = errors.New("git command failed")

	// ErrMockNetwork simulates a transport-level delivery failure.
	ErrMockNetwork = errors.New("network error")

	// ErrMockDeliveryRejected simulates a webhook rejecting the card.
	ErrMockDeliveryRejected = errors.New("delivery rejected")
)
