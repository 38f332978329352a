// Package config loads application settings from an optional YAML file
// and PROJEKTOR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level application configuration.
type Config struct {
	// DBPath is the SQLite database location.
	DBPath string `mapstructure:"db_path" yaml:"db_path"`

	// UserEmail identifies the acting user for commands. Overridable
	// per invocation with the --as flag.
	UserEmail string `mapstructure:"user_email" yaml:"user_email"`

	// Color controls terminal styling: "auto", "always" or "never".
	Color string `mapstructure:"color" yaml:"color"`

	// LogUseCases writes a structured log line per use-case invocation
	// to stderr.
	LogUseCases bool `mapstructure:"log_use_cases" yaml:"log_use_cases"`
}

// DefaultConfigPath returns ~/.projektor/config.yaml, falling back to
// the working directory when the home directory cannot be resolved.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".projektor", "config.yaml")
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "projektor.db"
	}
	return filepath.Join(home, ".projektor", "projektor.db")
}

// Load reads the configuration from path. A missing file is not an
// error; defaults and environment variables still apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("db_path", defaultDBPath())
	v.SetDefault("user_email", "")
	v.SetDefault("color", "auto")
	v.SetDefault("log_use_cases", false)

	v.SetEnvPrefix("projektor")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return nil, fmt.Errorf("invalid color mode %q (want auto, always or never)", cfg.Color)
	}
	return cfg, nil
}
