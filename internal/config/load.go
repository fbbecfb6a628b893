package config

import (
	"context"
	stderrors "errors"
	"io/fs"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/opsnotify/teams-notify/internal/constants"
	"github.com/opsnotify/teams-notify/internal/errors"
)

// Overrides carries CLI flag values that take precedence over every other
// configuration source. Empty string / zero values mean "not set".
type Overrides struct {
	Status     string
	WebhookURL string
	LastSHA    string
	WorkDir    string
	DryRun     bool
}

// newViperInstance creates a new Viper instance with standard teams-notify
// configuration: defaults, environment bindings, and key replacer.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindActionInputs(v)
	bindRunContext(v)
	return v
}

// bindActionInputs binds the GitHub Actions action inputs. The runner
// exposes each declared input as INPUT_<NAME>; the TEAMS_NOTIFY_* form works
// for local invocations outside the runner.
func bindActionInputs(v *viper.Viper) {
	// BindEnv with explicit keys never errors; ignore returns.
	_ = v.BindEnv("status", constants.EnvInputStatus, constants.EnvPrefix+"_STATUS")
	_ = v.BindEnv("webhook_url", constants.EnvInputWebhook, constants.EnvPrefix+"_WEBHOOK_URL")
	_ = v.BindEnv("last_sha", constants.EnvInputLastSHA, constants.EnvPrefix+"_LAST_SHA")
}

// bindRunContext binds the read-only run context the Actions runner supplies.
func bindRunContext(v *viper.Viper) {
	_ = v.BindEnv("run.repository", constants.EnvRepository)
	_ = v.BindEnv("run.ref_name", constants.EnvRefName)
	_ = v.BindEnv("run.ref", constants.EnvRef)
	_ = v.BindEnv("run.actor", constants.EnvActor)
	_ = v.BindEnv("run.sha", constants.EnvSHA)
	_ = v.BindEnv("run.run_id", constants.EnvRunID)
	_ = v.BindEnv("run.server_url", constants.EnvServerURL)
}

// viperDecoderOption returns the decoder configuration for unmarshaling.
// The duration hook lets http.timeout be written as "15s" in YAML or env.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
	))
}

// isConfigNotFoundError returns true if the error is a viper config file not
// found error. Missing config files are expected in most CI invocations.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// Load reads configuration from all available sources with proper precedence
// and validates the result. Missing config files are not an error; invalid
// values are.
func Load(ctx context.Context) (*Config, error) {
	return LoadWithOverrides(ctx, Overrides{})
}

// LoadWithOverrides is Load with CLI flag values applied at the highest
// precedence level.
func LoadWithOverrides(ctx context.Context, overrides Overrides) (*Config, error) {
	v := newViperInstance()

	if err := loadProjectConfig(v); err != nil {
		return nil, err
	}

	applyOverrides(v, overrides)

	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("status", cfg.Status).
		Bool("baseline_set", cfg.LastSHA != "").
		Bool("dry_run", cfg.DryRun).
		Str("repository", cfg.Run.Repository).
		Msg("configuration loaded and unmarshaled")

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadProjectConfig attempts to read the optional project config file
// (.teams-notify.yaml) from the working directory.
func loadProjectConfig(v *viper.Viper) error {
	v.SetConfigFile(constants.ConfigFileName)
	if err := v.ReadInConfig(); err != nil {
		if isConfigNotFoundError(err) || isFileMissing(err) {
			return nil
		}
		return errors.Wrap(err, "failed to read project config file")
	}
	return nil
}

// isFileMissing reports whether the error is a plain not-exist error.
// Viper returns those (not ConfigFileNotFoundError) when SetConfigFile is
// used with an explicit path.
func isFileMissing(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist)
}

// applyOverrides sets CLI flag values on the viper instance.
// viper.Set has the highest precedence of all sources.
func applyOverrides(v *viper.Viper, o Overrides) {
	if o.Status != "" {
		v.Set("status", o.Status)
	}
	if o.WebhookURL != "" {
		v.Set("webhook_url", o.WebhookURL)
	}
	if o.LastSHA != "" {
		v.Set("last_sha", o.LastSHA)
	}
	if o.WorkDir != "" {
		v.Set("git.work_dir", o.WorkDir)
	}
	if o.DryRun {
		v.Set("dry_run", true)
	}
}
