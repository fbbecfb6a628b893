package config

import (
	"github.com/spf13/viper"

	"github.com/opsnotify/teams-notify/internal/constants"
)

// DefaultConfig returns the built-in configuration defaults.
func DefaultConfig() *Config {
	return &Config{
		Git: GitConfig{
			WorkDir: ".",
		},
		HTTP: HTTPConfig{
			Timeout: constants.DefaultHTTPTimeout,
		},
	}
}

// setDefaults registers the built-in defaults on a viper instance.
// These form the lowest-precedence configuration layer.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("git.work_dir", defaults.Git.WorkDir)
	v.SetDefault("http.timeout", defaults.HTTP.Timeout)
	v.SetDefault("dry_run", false)
	v.SetDefault("run.server_url", "")
}
