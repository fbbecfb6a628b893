package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsnotify/teams-notify/internal/config"
	notifyerrors "github.com/opsnotify/teams-notify/internal/errors"
)

// setRunContextEnv sets the GitHub Actions run context variables.
func setRunContextEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GITHUB_REPOSITORY", "acme/widgets")
	t.Setenv("GITHUB_REF_NAME", "main")
	t.Setenv("GITHUB_ACTOR", "octocat")
	t.Setenv("GITHUB_SHA", "abc123")
	t.Setenv("GITHUB_RUN_ID", "424242")
}

// chdirTemp switches to an empty temp dir so a developer's real
// .teams-notify.yaml never leaks into the test.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })
	return dir
}

func TestLoad_FromActionInputs(t *testing.T) {
	chdirTemp(t)
	setRunContextEnv(t)
	t.Setenv("INPUT_STATUS", "success")
	t.Setenv("INPUT_TEAMS_WEBHOOK", "https://example.webhook.office.com/webhookb2/abc")
	t.Setenv("INPUT_LAST_SHA", "def456")

	cfg, err := config.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "success", cfg.Status)
	assert.Equal(t, "https://example.webhook.office.com/webhookb2/abc", cfg.WebhookURL)
	assert.Equal(t, "def456", cfg.LastSHA)
	assert.Equal(t, "acme/widgets", cfg.Run.Repository)
	assert.Equal(t, "main", cfg.Run.RefName)
	assert.Equal(t, "octocat", cfg.Run.Actor)
	assert.Equal(t, "abc123", cfg.Run.SHA)
	assert.Equal(t, "424242", cfg.Run.RunID)
}

func TestLoad_LastSHAOptional(t *testing.T) {
	chdirTemp(t)
	setRunContextEnv(t)
	t.Setenv("INPUT_STATUS", "failure")
	t.Setenv("INPUT_TEAMS_WEBHOOK", "https://example.webhook.office.com/webhookb2/abc")

	cfg, err := config.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, cfg.LastSHA)
}

func TestLoad_InvalidStatusFailsFast(t *testing.T) {
	chdirTemp(t)
	setRunContextEnv(t)
	t.Setenv("INPUT_STATUS", "invalid-value")
	t.Setenv("INPUT_TEAMS_WEBHOOK", "https://example.webhook.office.com/webhookb2/abc")

	_, err := config.Load(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, notifyerrors.ErrInvalidStatus)
	assert.Contains(t, err.Error(), "Invalid job status: invalid-value")
}

func TestLoad_MissingWebhook(t *testing.T) {
	chdirTemp(t)
	setRunContextEnv(t)
	t.Setenv("INPUT_STATUS", "success")

	_, err := config.Load(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, notifyerrors.ErrMissingInput)
}

func TestLoad_ProjectConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	setRunContextEnv(t)
	t.Setenv("INPUT_STATUS", "success")
	t.Setenv("INPUT_TEAMS_WEBHOOK", "https://example.webhook.office.com/webhookb2/abc")

	yaml := "http:\n  timeout: 30s\ngit:\n  work_dir: ./repo\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".teams-notify.yaml"), []byte(yaml), 0o600))

	cfg, err := config.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "./repo", cfg.Git.WorkDir)
}

func TestLoad_EnvOverridesConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	setRunContextEnv(t)
	t.Setenv("INPUT_STATUS", "success")
	t.Setenv("INPUT_TEAMS_WEBHOOK", "https://example.webhook.office.com/webhookb2/abc")
	t.Setenv("TEAMS_NOTIFY_HTTP_TIMEOUT", "5s")

	yaml := "http:\n  timeout: 30s\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".teams-notify.yaml"), []byte(yaml), 0o600))

	cfg, err := config.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout)
}

func TestLoadWithOverrides_FlagsWin(t *testing.T) {
	chdirTemp(t)
	setRunContextEnv(t)
	t.Setenv("INPUT_STATUS", "failure")
	t.Setenv("INPUT_TEAMS_WEBHOOK", "https://example.webhook.office.com/webhookb2/env")

	cfg, err := config.LoadWithOverrides(context.Background(), config.Overrides{
		Status:     "success",
		WebhookURL: "https://example.webhook.office.com/webhookb2/flag",
		LastSHA:    "flagsha",
		DryRun:     true,
	})

	require.NoError(t, err)
	assert.Equal(t, "success", cfg.Status)
	assert.Equal(t, "https://example.webhook.office.com/webhookb2/flag", cfg.WebhookURL)
	assert.Equal(t, "flagsha", cfg.LastSHA)
	assert.True(t, cfg.DryRun)
}

func TestLoad_MalformedConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	setRunContextEnv(t)
	t.Setenv("INPUT_STATUS", "success")
	t.Setenv("INPUT_TEAMS_WEBHOOK", "https://example.webhook.office.com/webhookb2/abc")

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".teams-notify.yaml"), []byte("{{not yaml"), 0o600))

	_, err := config.Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read project config file")
}
