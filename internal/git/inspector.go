// Package git provides the revision inspection operations for teams-notify.
// This file implements the Inspector for commit message and change set lookup.
package git

import (
	"context"

	"github.com/opsnotify/teams-notify/internal/constants"
	"github.com/opsnotify/teams-notify/internal/domain"
)

// Inspector defines the revision data lookups the notification pipeline
// needs. It is deliberately narrow so the pipeline can be tested with a fake
// that never touches a live repository.
type Inspector interface {
	// CommitMessage returns the latest commit's full message text,
	// trimmed of leading and trailing whitespace.
	CommitMessage(ctx context.Context) (string, error)

	// ChangedFiles returns the set of file paths changed by the
	// deployment. With a baseline it diffs baseline..head and caps the
	// result; without one it returns the single-commit change set,
	// uncapped.
	ChangedFiles(ctx context.Context, baseline Baseline) (domain.ChangeSet, error)
}

// CLIInspector implements Inspector by shelling out to the git CLI.
type CLIInspector struct {
	workDir string
	head    string
}

// NewCLIInspector creates an inspector for the repository at workDir.
// If head is empty, HEAD is used as the current revision.
func NewCLIInspector(workDir, head string) *CLIInspector {
	if head == "" {
		head = "HEAD"
	}
	return &CLIInspector{workDir: workDir, head: head}
}

// CommitMessage returns the latest commit's message via git log.
func (i *CLIInspector) CommitMessage(ctx context.Context) (string, error) {
	// RunCommand trims surrounding whitespace from the output.
	return RunCommand(ctx, i.workDir, "log", "-1", "--pretty=%B", i.head)
}

// ChangedFiles computes the changed-file set for the notification.
//
// Two-revision mode diffs baseline..head and truncates to the first
// MaxDiffFiles entries in tool-reported order; any diagnostic text the diff
// writes to stderr fails the lookup. Single-commit mode lists the files
// introduced by head alone, without truncation.
func (i *CLIInspector) ChangedFiles(ctx context.Context, baseline Baseline) (domain.ChangeSet, error) {
	if sha, ok := baseline.SHA(); ok {
		return i.diffAgainst(ctx, sha)
	}
	return i.singleCommitChanges(ctx)
}

// diffAgainst lists paths changed between the baseline revision and head.
func (i *CLIInspector) diffAgainst(ctx context.Context, baseline string) (domain.ChangeSet, error) {
	out, err := RunCommandStrict(ctx, i.workDir, "diff", "--name-only", baseline, i.head)
	if err != nil {
		return domain.ChangeSet{}, err
	}

	files := splitLines(out)
	if len(files) > constants.MaxDiffFiles {
		return domain.ChangeSet{Files: files[:constants.MaxDiffFiles], Truncated: true}, nil
	}
	return domain.ChangeSet{Files: files}, nil
}

// singleCommitChanges lists the paths touched by the head commit alone.
func (i *CLIInspector) singleCommitChanges(ctx context.Context) (domain.ChangeSet, error) {
	out, err := RunCommand(ctx, i.workDir, "diff-tree", "--no-commit-id", "--name-only", "-r", i.head)
	if err != nil {
		return domain.ChangeSet{}, err
	}
	return domain.ChangeSet{Files: splitLines(out)}, nil
}
