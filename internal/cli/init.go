// Package cli provides the command-line interface for teams-notify.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/opsnotify/teams-notify/internal/config"
	"github.com/opsnotify/teams-notify/internal/constants"
	notifyerrors "github.com/opsnotify/teams-notify/internal/errors"
)

// InitFlags holds flags specific to the init command.
type InitFlags struct {
	// Force overwrites an existing config file.
	Force bool
}

// AddInitCommand adds the init command to the root command.
func AddInitCommand(root *cobra.Command) {
	root.AddCommand(newInitCmd())
}

func newInitCmd() *cobra.Command {
	flags := &InitFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default " + constants.ConfigFileName + " to the current directory",
		Long: `Write a default configuration file to the current directory.

The file holds the optional settings (HTTP timeout, git working directory);
the required inputs (status, webhook URL) always come from the action
environment or flags and are never stored in the file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.Force, "force", false, "overwrite an existing config file")

	return cmd
}

// initFileConfig is the subset of configuration written by init.
// Secrets and per-run inputs are deliberately excluded. The timeout is
// written in duration notation ("15s"), which the loader's decode hook
// parses back.
type initFileConfig struct {
	Git  config.GitConfig `yaml:"git"`
	HTTP initHTTPConfig   `yaml:"http"`
}

type initHTTPConfig struct {
	Timeout string `yaml:"timeout"`
}

// runInit writes the default config file, refusing to clobber an existing
// one unless --force is given.
func runInit(cmd *cobra.Command, flags *InitFlags) error {
	if _, err := os.Stat(constants.ConfigFileName); err == nil && !flags.Force {
		return notifyerrors.Wrapf(notifyerrors.ErrConfigInvalid,
			"%s already exists (use --force to overwrite)", constants.ConfigFileName)
	}

	defaults := config.DefaultConfig()
	data, err := yaml.Marshal(initFileConfig{
		Git:  defaults.Git,
		HTTP: initHTTPConfig{Timeout: defaults.HTTP.Timeout.String()},
	})
	if err != nil {
		return notifyerrors.Wrap(err, "failed to marshal default config")
	}

	if err := os.WriteFile(constants.ConfigFileName, data, 0o600); err != nil {
		return notifyerrors.Wrap(err, "failed to write config file")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", constants.ConfigFileName)
	return nil
}
