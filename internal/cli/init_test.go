package cli

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsnotify/teams-notify/internal/constants"
	notifyerrors "github.com/opsnotify/teams-notify/internal/errors"
)

// chdirTemp switches to an empty temp dir for the duration of the test.
func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })
}

// runInitCmd executes the init command in an isolated temp directory.
func runInitCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("TEAMS_NOTIFY_HOME", t.TempDir())
	t.Cleanup(CloseLogFile)

	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"init"}, args...))

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestInitCmd_WritesConfigFile(t *testing.T) {
	chdirTemp(t)

	out, err := runInitCmd(t)

	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+constants.ConfigFileName)

	data, err := os.ReadFile(constants.ConfigFileName)
	require.NoError(t, err)
	assert.Contains(t, string(data), "git:")
	assert.Contains(t, string(data), "timeout: 15s")
	assert.NotContains(t, string(data), "webhook")
}

func TestInitCmd_RefusesToOverwrite(t *testing.T) {
	chdirTemp(t)

	require.NoError(t, os.WriteFile(constants.ConfigFileName, []byte("git:\n  work_dir: /custom\n"), 0o600))

	_, err := runInitCmd(t)

	require.Error(t, err)
	assert.ErrorIs(t, err, notifyerrors.ErrConfigInvalid)
	assert.Contains(t, err.Error(), "already exists")

	// Existing file is untouched.
	data, readErr := os.ReadFile(constants.ConfigFileName)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "/custom")
}

func TestInitCmd_ForceOverwrites(t *testing.T) {
	chdirTemp(t)

	require.NoError(t, os.WriteFile(constants.ConfigFileName, []byte("git:\n  work_dir: /custom\n"), 0o600))

	out, err := runInitCmd(t, "--force")

	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+constants.ConfigFileName)

	data, readErr := os.ReadFile(constants.ConfigFileName)
	require.NoError(t, readErr)
	assert.NotContains(t, string(data), "/custom")
}
