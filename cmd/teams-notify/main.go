// Package main provides the entry point for the teams-notify CLI.
package main

import (
	"context"
	"os"

	"github.com/opsnotify/teams-notify/internal/cli"
	"github.com/opsnotify/teams-notify/internal/signal"
)

// Build information set via ldflags at release time.
var (
	version = "" //nolint:gochecknoglobals // Set by ldflags
	commit  = "" //nolint:gochecknoglobals // Set by ldflags
	date    = "" //nolint:gochecknoglobals // Set by ldflags
)

func main() {
	handler := signal.NewHandler(context.Background())

	err := cli.Execute(handler.Context(), cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})
	handler.Stop()
	cli.CloseLogFile()
	os.Exit(cli.ExitCodeForError(err))
}
