// Package constants provides centralized constant values used throughout teams-notify.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// AppName is the canonical binary and config-directory name.
const AppName = "teams-notify"

// EnvPrefix is the prefix for application environment variable overrides
// (e.g., TEAMS_NOTIFY_VERBOSE).
const EnvPrefix = "TEAMS_NOTIFY"

// ConfigFileName is the optional project-level configuration file.
const ConfigFileName = ".teams-notify.yaml"

// HomeDirName is the hidden directory name where teams-notify stores its data.
// This directory is created in the user's home directory.
const HomeDirName = ".teams-notify"

// MaxDiffFiles caps the changed-file list when diffing between two supplied
// revisions. The single-commit change set is intentionally uncapped.
const MaxDiffFiles = 10

// DefaultHTTPTimeout is the deadline for the single webhook POST attempt.
const DefaultHTTPTimeout = 15 * time.Second

// GitHub Actions action inputs. The Actions runner exposes each declared
// input as INPUT_<NAME> in the step environment.
const (
	// EnvInputStatus carries the job status input.
	EnvInputStatus = "INPUT_STATUS"

	// EnvInputWebhook carries the incoming-webhook URL input.
	EnvInputWebhook = "INPUT_TEAMS_WEBHOOK"

	// EnvInputLastSHA carries the optional baseline revision input.
	EnvInputLastSHA = "INPUT_LAST_SHA"
)

// GitHub Actions run context variables supplied by the runner.
const (
	// EnvRepository holds "owner/name".
	EnvRepository = "GITHUB_REPOSITORY"

	// EnvRefName holds the short branch or tag name.
	EnvRefName = "GITHUB_REF_NAME"

	// EnvRef holds the fully qualified ref (refs/heads/...).
	EnvRef = "GITHUB_REF"

	// EnvActor holds the username that triggered the run.
	EnvActor = "GITHUB_ACTOR"

	// EnvSHA holds the commit SHA the run was triggered for.
	EnvSHA = "GITHUB_SHA"

	// EnvRunID holds the unique workflow run identifier.
	EnvRunID = "GITHUB_RUN_ID"

	// EnvServerURL holds the base URL of the GitHub instance.
	EnvServerURL = "GITHUB_SERVER_URL"
)

// DefaultServerURL is used when GITHUB_SERVER_URL is not set
// (e.g., local invocations outside the Actions runner).
const DefaultServerURL = "https://github.com"

// Log file settings for the rotating CLI log.
const (
	// LogsDir is the log directory name under HomeDirName.
	LogsDir = "logs"

	// CLILogFileName is the rotating CLI log file name.
	CLILogFileName = "teams-notify.log"

	// LogMaxSizeMB is the maximum size of a log file before rotation.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated files to retain.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age in days of retained rotated files.
	LogMaxAgeDays = 30

	// LogCompress enables gzip compression of rotated files.
	LogCompress = true
)
