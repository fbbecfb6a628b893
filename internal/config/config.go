// Package config provides configuration management for teams-notify with
// layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (passed via LoadWithOverrides)
//  2. GitHub Actions inputs (INPUT_* environment variables)
//  3. Application environment overrides (TEAMS_NOTIFY_* prefix)
//  4. Project config (.teams-notify.yaml in the working directory)
//  5. Built-in defaults
//
// The GitHub Actions run context (GITHUB_REPOSITORY, GITHUB_REF_NAME, ...)
// is read once per invocation and is never sourced from the config file.
//
// IMPORTANT: This package may import internal/constants, internal/domain and
// internal/errors, but MUST NOT import other internal packages.
package config

import (
	"strings"
	"time"

	"github.com/opsnotify/teams-notify/internal/constants"
	"github.com/opsnotify/teams-notify/internal/domain"
)

// Config is the root configuration structure for teams-notify.
type Config struct {
	// Status is the raw deployment job status input
	// (success|failure|cancelled|warning, case-insensitive).
	Status string `yaml:"status" mapstructure:"status"`

	// WebhookURL is the Teams incoming-webhook destination for the POST.
	WebhookURL string `yaml:"webhook_url" mapstructure:"webhook_url"`

	// LastSHA is the optional baseline revision. When present, the
	// changed-file set is computed between LastSHA and the current
	// commit and capped; when absent, the single-commit change set is
	// used.
	LastSHA string `yaml:"last_sha" mapstructure:"last_sha"`

	// DryRun builds and prints the card without delivering it.
	DryRun bool `yaml:"dry_run" mapstructure:"dry_run"`

	// Git contains settings for the repository inspection.
	Git GitConfig `yaml:"git" mapstructure:"git"`

	// HTTP contains settings for the webhook delivery.
	HTTP HTTPConfig `yaml:"http" mapstructure:"http"`

	// Run is the CI run context, collected once from the environment.
	Run RunContext `yaml:"-" mapstructure:"run"`
}

// GitConfig contains settings for repository inspection.
type GitConfig struct {
	// WorkDir is the repository directory the git commands run in.
	// Default: "."
	WorkDir string `yaml:"work_dir" mapstructure:"work_dir"`
}

// HTTPConfig contains settings for webhook delivery.
type HTTPConfig struct {
	// Timeout is the deadline for the single POST attempt.
	// Default: 15s
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// RunContext holds the read-only values the CI platform supplies about the
// current workflow run.
type RunContext struct {
	// Repository is the "owner/name" pair from GITHUB_REPOSITORY.
	Repository string `mapstructure:"repository"`

	// RefName is the short branch name from GITHUB_REF_NAME.
	RefName string `mapstructure:"ref_name"`

	// Ref is the fully qualified ref from GITHUB_REF, used as a
	// fallback when RefName is not set.
	Ref string `mapstructure:"ref"`

	// Actor is the username that triggered the run.
	Actor string `mapstructure:"actor"`

	// SHA is the commit the run was triggered for.
	SHA string `mapstructure:"sha"`

	// RunID is the workflow run identifier.
	RunID string `mapstructure:"run_id"`

	// ServerURL is the base URL of the GitHub instance.
	ServerURL string `mapstructure:"server_url"`
}

// Branch returns the short branch name, deriving it from the fully
// qualified ref when GITHUB_REF_NAME is not available.
func (r RunContext) Branch() string {
	if r.RefName != "" {
		return r.RefName
	}
	ref := r.Ref
	ref = strings.TrimPrefix(ref, "refs/heads/")
	ref = strings.TrimPrefix(ref, "refs/tags/")
	return ref
}

// OwnerAndRepo splits the "owner/name" repository pair.
// The second return is false when the pair is malformed.
func (r RunContext) OwnerAndRepo() (string, string, bool) {
	owner, repo, found := strings.Cut(r.Repository, "/")
	if !found || owner == "" || repo == "" {
		return "", "", false
	}
	return owner, repo, true
}

// RevisionContext assembles the immutable revision context for the card
// builder from the collected run values.
func (c *Config) RevisionContext() domain.RevisionContext {
	owner, repo, _ := c.Run.OwnerAndRepo()
	server := c.Run.ServerURL
	if server == "" {
		server = constants.DefaultServerURL
	}
	return domain.RevisionContext{
		ServerURL: strings.TrimSuffix(server, "/"),
		Owner:     owner,
		Repo:      repo,
		Branch:    c.Run.Branch(),
		Actor:     c.Run.Actor,
		CommitSHA: c.Run.SHA,
		RunID:     c.Run.RunID,
	}
}
