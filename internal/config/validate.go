package config

import (
	"net/url"

	"github.com/opsnotify/teams-notify/internal/domain"
	"github.com/opsnotify/teams-notify/internal/errors"
)

// Validate checks the configuration for invalid or missing values.
// It returns an error describing the first validation failure found.
// All checks run before any process or network I/O, preserving the
// fail-fast-on-bad-config contract.
//
// Validation rules:
//   - status must parse to a supported value
//   - webhook URL must be present and a valid http(s) URL
//   - repository context must be a well-formed "owner/name" pair
//   - commit SHA and run ID must be present
//   - HTTP timeout must be positive
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if _, err := domain.ParseStatus(cfg.Status); err != nil {
		return err
	}

	if err := validateWebhookURL(cfg.WebhookURL); err != nil {
		return err
	}

	if err := validateRunContext(&cfg.Run); err != nil {
		return err
	}

	if cfg.HTTP.Timeout <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalid,
			"http.timeout must be positive, got %s", cfg.HTTP.Timeout)
	}

	return nil
}

// validateWebhookURL checks the webhook destination is present and usable.
func validateWebhookURL(raw string) error {
	if raw == "" {
		return errors.Wrap(errors.ErrMissingInput, "teams_webhook input is required")
	}

	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.Wrapf(errors.ErrConfigInvalid,
			"webhook URL %q is not a valid http(s) URL", raw)
	}
	return nil
}

// validateRunContext checks the CI-supplied run values the card links need.
func validateRunContext(run *RunContext) error {
	if _, _, ok := run.OwnerAndRepo(); !ok {
		return errors.Wrapf(errors.ErrMissingInput,
			"GITHUB_REPOSITORY must be an owner/name pair, got %q", run.Repository)
	}
	if run.SHA == "" {
		return errors.Wrap(errors.ErrMissingInput, "GITHUB_SHA is required")
	}
	if run.RunID == "" {
		return errors.Wrap(errors.ErrMissingInput, "GITHUB_RUN_ID is required")
	}
	return nil
}
