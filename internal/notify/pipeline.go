// Package notify wires the notification pipeline: collect context, inspect
// the revision, build the card, deliver it. Strictly sequential; the first
// error aborts the run and no partial card is ever sent.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/opsnotify/teams-notify/internal/card"
	"github.com/opsnotify/teams-notify/internal/config"
	"github.com/opsnotify/teams-notify/internal/ctxutil"
	"github.com/opsnotify/teams-notify/internal/domain"
	notifyerrors "github.com/opsnotify/teams-notify/internal/errors"
	"github.com/opsnotify/teams-notify/internal/git"
)

// Sender delivers a finished card. Satisfied by *teams.Client and by test
// fakes.
type Sender interface {
	Send(ctx context.Context, msg *card.MessageCard) error
}

// Pipeline runs one notification end to end.
type Pipeline struct {
	cfg       *config.Config
	inspector git.Inspector
	sender    Sender
	out       io.Writer
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithOutput redirects dry-run card output. Intended for tests.
func WithOutput(w io.Writer) Option {
	return func(p *Pipeline) {
		p.out = w
	}
}

// New creates a pipeline from its collaborators.
func New(cfg *config.Config, inspector git.Inspector, sender Sender, opts ...Option) *Pipeline {
	p := &Pipeline{
		cfg:       cfg,
		inspector: inspector,
		sender:    sender,
		out:       os.Stdout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes the pipeline: parse status, fetch the commit message, compute
// the change set, build the card, and deliver it (or print it in dry-run
// mode). Every step is blocking and every error aborts immediately.
func (p *Pipeline) Run(ctx context.Context) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	logger := zerolog.Ctx(ctx)

	// Status parsing fails before any process or network I/O is attempted.
	status, err := domain.ParseStatus(p.cfg.Status)
	if err != nil {
		return err
	}

	message, err := p.inspector.CommitMessage(ctx)
	if err != nil {
		return err
	}

	baseline := git.BaselineAt(p.cfg.LastSHA)
	changes, err := p.inspector.ChangedFiles(ctx, baseline)
	if err != nil {
		return err
	}
	logger.Debug().
		Str("status", status.String()).
		Bool("baseline_set", baseline.IsSet()).
		Int("changed_files", len(changes.Files)).
		Bool("truncated", changes.Truncated).
		Msg("revision data collected")

	msg, err := card.Build(card.Input{
		Status:        status,
		Context:       p.cfg.RevisionContext(),
		CommitMessage: message,
		Changes:       &changes,
	})
	if err != nil {
		return err
	}

	if p.cfg.DryRun {
		return p.printCard(msg)
	}

	return p.sender.Send(ctx, msg)
}

// printCard writes the serialized card to the pipeline output without
// delivering it.
func (p *Pipeline) printCard(msg *card.MessageCard) error {
	data, err := json.MarshalIndent(msg, "", "  ")
	if err != nil {
		return notifyerrors.Wrap(err, "failed to serialize card")
	}
	_, err = fmt.Fprintln(p.out, string(data))
	return err
}
