// Package cli provides the command-line interface for teams-notify.
package cli

import (
	"context"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/opsnotify/teams-notify/internal/config"
	"github.com/opsnotify/teams-notify/internal/git"
	"github.com/opsnotify/teams-notify/internal/notify"
	"github.com/opsnotify/teams-notify/internal/teams"
)

// SendFlags holds flags specific to the send command. Each flag overrides
// the corresponding action input / environment value.
type SendFlags struct {
	// Status overrides the INPUT_STATUS value.
	Status string
	// WebhookURL overrides the INPUT_TEAMS_WEBHOOK value.
	WebhookURL string
	// LastSHA overrides the INPUT_LAST_SHA value.
	LastSHA string
	// WorkDir overrides the repository directory git runs in.
	WorkDir string
	// DryRun prints the card instead of delivering it.
	DryRun bool
}

// AddSendCommand adds the send command to the root command.
func AddSendCommand(root *cobra.Command) {
	root.AddCommand(newSendCmd())
}

func newSendCmd() *cobra.Command {
	flags := &SendFlags{}

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Build the deployment status card and post it to the webhook",
		Long: `Build the deployment status card and post it to the Teams webhook.

Inputs are read from the GitHub Actions environment (INPUT_STATUS,
INPUT_TEAMS_WEBHOOK, INPUT_LAST_SHA plus the GITHUB_* run context) and can
be overridden with flags for local runs.

When last-sha is set, the changed-file list is the diff between that
revision and the current commit, capped at 10 entries. Without it, the
files touched by the current commit alone are listed.

Examples:
  teams-notify send
  teams-notify send --status success --webhook-url https://... --verbose
  teams-notify send --status failure --last-sha 3f9c2ab --dry-run`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSend(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.Status, "status", "", "deployment job status (success|failure|cancelled|warning)")
	cmd.Flags().StringVar(&flags.WebhookURL, "webhook-url", "", "Teams incoming-webhook URL")
	cmd.Flags().StringVar(&flags.LastSHA, "last-sha", "", "baseline revision for the changed-files diff")
	cmd.Flags().StringVar(&flags.WorkDir, "work-dir", "", "repository directory (default \".\")")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "print the card JSON instead of posting it")

	return cmd
}

// runSend loads configuration, wires the pipeline, and runs it once.
// The error is logged here, at the single top-level catch point, and then
// returned so main can map it to the process exit code.
func runSend(ctx context.Context, flags *SendFlags) error {
	logger := GetLogger()
	ctx = logger.WithContext(ctx)

	cfg, err := config.LoadWithOverrides(ctx, config.Overrides{
		Status:     flags.Status,
		WebhookURL: flags.WebhookURL,
		LastSHA:    flags.LastSHA,
		WorkDir:    flags.WorkDir,
		DryRun:     flags.DryRun,
	})
	if err != nil {
		logger.Error().Msg(err.Error())
		return err
	}

	inspector := git.NewCLIInspector(cfg.Git.WorkDir, cfg.Run.SHA)
	sender := teams.NewClient(cfg.WebhookURL,
		teams.WithDoer(&http.Client{Timeout: cfg.HTTP.Timeout}))

	pipeline := notify.New(cfg, inspector, sender)
	if err := pipeline.Run(ctx); err != nil {
		logger.Error().Msg(err.Error())
		return err
	}

	return nil
}
