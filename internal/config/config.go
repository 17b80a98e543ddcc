package config

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Defaults.
const (
	DefaultLogLevel  = "warn"
	DefaultGitBinary = "git"
)

// Config is the gonebranch configuration.
type Config struct {
	Log   LogConfig   `mapstructure:"log"`
	Git   GitConfig   `mapstructure:"git"`
	Parse ParseConfig `mapstructure:"parse"`
	Prune PruneConfig `mapstructure:"prune"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type GitConfig struct {
	Binary string `mapstructure:"binary"`
	// Dir is the working copy git runs in. Empty means the current directory.
	Dir string `mapstructure:"dir"`
}

type ParseConfig struct {
	// Prefix is a literal stripped from the start of each line, such as the
	// "[info]" tag build tools put in front of forwarded git output.
	Prefix string `mapstructure:"prefix"`
}

type PruneConfig struct {
	Force bool `mapstructure:"force"`
}

// Validate checks values that viper cannot check on its own.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Git.Binary == "" {
		return fmt.Errorf("git.binary must not be empty")
	}
	return nil
}
