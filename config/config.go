// Package config loads the suurballe CLI's settings through Viper,
// allowing a config file, environment variables (SUURBALLE_ prefix),
// and command-line flags to override the same keys.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the CLI's default settings. The graph file is a
// positional argument; the --k, --verbose and --log-level flags
// override DefaultK, Verbose and LogLevel for one invocation.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`

	// Verbose enables the algorithm's per-augmentation trace log.
	Verbose bool `mapstructure:"verbose"`

	// DefaultK is used when the CLI's --k flag is not set.
	DefaultK int `mapstructure:"default_k"`
}

// Load reads configuration from name (searched under the given paths,
// any Viper-supported extension) if it exists, then from SUURBALLE_-
// prefixed environment variables, falling back to built-in defaults
// for anything neither source sets.
func Load(name string, paths ...string) (Config, error) {
	v := viper.New()
	v.SetConfigName(name)
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetDefault("log_level", "info")
	v.SetDefault("verbose", false)
	v.SetDefault("default_k", 2)

	v.SetEnvPrefix("suurballe")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}
