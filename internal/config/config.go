// Package config loads themekit settings from defaults, an optional
// config file and THEMEKIT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Defaults.
const (
	DefaultThemesDir = "assets/themes"
	DefaultPrefix    = "catppuccin"
	DefaultLogLevel  = "info"
)

// Config holds the resolved settings for one invocation.
type Config struct {
	// ThemesDir is the directory theme files are written to and read
	// back from.
	ThemesDir string `mapstructure:"themes_dir"`

	// Prefix is the theme id prefix and output file name prefix.
	Prefix string `mapstructure:"prefix"`

	// LogLevel is the zerolog level name (trace..error).
	LogLevel string `mapstructure:"log_level"`
}

// Load resolves configuration: defaults, then themekit.yaml from the
// working directory if present, then THEMEKIT_* env overrides.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("themes_dir", DefaultThemesDir)
	v.SetDefault("prefix", DefaultPrefix)
	v.SetDefault("log_level", DefaultLogLevel)

	v.SetConfigName("themekit")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("THEMEKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the resolved settings.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ThemesDir) == "" {
		return fmt.Errorf("themes_dir is required")
	}
	if strings.TrimSpace(c.Prefix) == "" {
		return fmt.Errorf("prefix is required")
	}
	return nil
}
