package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configName = ".gonebranch"
	configType = "yaml"
	envPrefix  = "GONEBRANCH"
)

// flagKeys maps command-line flag names onto config keys.
var flagKeys = map[string]string{
	"log-level": "log.level",
	"git":       "git.binary",
	"repo":      "git.dir",
	"prefix":    "parse.prefix",
	"force":     "prune.force",
}

// Load reads configuration from defaults, the config file, GONEBRANCH_*
// environment variables and, last, any flags in flags that were set.
// A missing config file is not an error. flags may be nil.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("git.binary", DefaultGitBinary)
	v.SetDefault("git.dir", "")
	v.SetDefault("parse.prefix", "")
	v.SetDefault("prune.force", false)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
