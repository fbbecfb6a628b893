package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsnotify/teams-notify/internal/config"
	notifyerrors "github.com/opsnotify/teams-notify/internal/errors"
)

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, config.Validate(validConfig()))
}

func TestValidate_NilConfig(t *testing.T) {
	err := config.Validate(nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, notifyerrors.ErrConfigNil)
}

func TestValidate_InvalidStatus(t *testing.T) {
	cfg := validConfig()
	cfg.Status = "done"

	err := config.Validate(cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, notifyerrors.ErrInvalidStatus)
	assert.Contains(t, err.Error(), "Invalid job status: done")
}

func TestValidate_StatusCaseInsensitive(t *testing.T) {
	cfg := validConfig()
	cfg.Status = "CANCELLED"

	assert.NoError(t, config.Validate(cfg))
}

func TestValidate_WebhookURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		sentinel error
	}{
		{"missing", "", notifyerrors.ErrMissingInput},
		{"no scheme", "example.webhook.office.com/abc", notifyerrors.ErrConfigInvalid},
		{"bad scheme", "ftp://example.com/abc", notifyerrors.ErrConfigInvalid},
		{"no host", "https://", notifyerrors.ErrConfigInvalid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.WebhookURL = tc.url

			err := config.Validate(cfg)

			require.Error(t, err)
			assert.ErrorIs(t, err, tc.sentinel)
		})
	}
}

func TestValidate_RunContext(t *testing.T) {
	t.Run("malformed repository", func(t *testing.T) {
		cfg := validConfig()
		cfg.Run.Repository = "just-a-name"

		err := config.Validate(cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, notifyerrors.ErrMissingInput)
	})

	t.Run("missing sha", func(t *testing.T) {
		cfg := validConfig()
		cfg.Run.SHA = ""

		err := config.Validate(cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, notifyerrors.ErrMissingInput)
	})

	t.Run("missing run id", func(t *testing.T) {
		cfg := validConfig()
		cfg.Run.RunID = ""

		err := config.Validate(cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, notifyerrors.ErrMissingInput)
	})
}

func TestValidate_HTTPTimeout(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Timeout = 0

	err := config.Validate(cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, notifyerrors.ErrConfigInvalid)
	assert.Contains(t, err.Error(), "http.timeout must be positive")
}
