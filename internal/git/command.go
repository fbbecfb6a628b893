// Package git provides the revision inspection operations for teams-notify.
// This file provides shared git command execution utilities.
package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/opsnotify/teams-notify/internal/ctxutil"
	notifyerrors "github.com/opsnotify/teams-notify/internal/errors"
)

// RunCommand executes a git command in the specified directory and returns
// its trimmed stdout. All errors are wrapped with ErrGitOperation and include
// stderr for debugging.
func RunCommand(ctx context.Context, workDir string, args ...string) (string, error) {
	out, _, err := runCommand(ctx, workDir, args...)
	return out, err
}

// RunCommandStrict is like RunCommand but also treats any diagnostic text on
// stderr as a failure, even when git exits zero. The diagnostic text is
// surfaced verbatim. Used for the two-revision diff, where warnings about a
// bad baseline revision must fail the pipeline instead of producing a
// misleading card.
func RunCommandStrict(ctx context.Context, workDir string, args ...string) (string, error) {
	out, diag, err := runCommand(ctx, workDir, args...)
	if err != nil {
		return "", err
	}
	return failOnDiagnostic(out, diag)
}

// failOnDiagnostic converts non-empty stderr output from a successful git
// invocation into a pipeline failure carrying the diagnostic text verbatim.
func failOnDiagnostic(out, diag string) (string, error) {
	if diag != "" {
		return "", fmt.Errorf("%s: %w", diag, notifyerrors.ErrGitOperation)
	}
	return out, nil
}

// runCommand executes git and returns trimmed stdout and stderr separately.
func runCommand(ctx context.Context, workDir string, args ...string) (string, string, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return "", "", err
	}

	cmd := exec.CommandContext(ctx, "git", args...) //#nosec G204 -- args are constructed internally, not user input
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		// Check for context cancellation
		if ctx.Err() != nil {
			return "", "", ctx.Err()
		}
		// Include stderr in error for debugging, wrap with ErrGitOperation
		if stderr.Len() > 0 {
			return "", "", fmt.Errorf("git %s failed: %s: %w", args[0], strings.TrimSpace(stderr.String()), notifyerrors.ErrGitOperation)
		}
		return "", "", fmt.Errorf("git %s failed: %w", args[0], notifyerrors.ErrGitOperation)
	}

	return strings.TrimSpace(stdout.String()), strings.TrimSpace(stderr.String()), nil
}

// splitLines splits command output into non-empty lines, preserving order.
func splitLines(output string) []string {
	if output == "" {
		return []string{}
	}
	raw := strings.Split(output, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
