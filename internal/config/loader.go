package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader handles configuration loading from file and environment.
type Loader struct {
	configPath string
	envPrefix  string
}

// NewLoader creates a config loader. An empty configPath searches the
// default locations.
func NewLoader(configPath string) *Loader {
	return &Loader{
		configPath: configPath,
		envPrefix:  "TUBEDECK",
	}
}

// Load reads configuration from file and environment on top of defaults.
// A missing config file is not an error; a malformed one is.
func (l *Loader) Load() (*Config, error) {
	v := viper.New()

	cfg := DefaultConfig()
	v.SetDefault("storage.data_dir", cfg.Storage.DataDir)
	v.SetDefault("storage.backend", cfg.Storage.Backend)
	v.SetDefault("mock.latency", cfg.Mock.Latency)
	v.SetDefault("mock.seed", cfg.Mock.Seed)
	v.SetDefault("mock.max_results", cfg.Mock.MaxResults)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("log.color", cfg.Log.Color)

	if l.configPath != "" {
		v.SetConfigFile(l.configPath)
	} else {
		v.SetConfigName("tubedeck")
		v.AddConfigPath(".")
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".config", "tubedeck"))
			v.AddConfigPath(filepath.Join(homeDir, ".tubedeck"))
		}
	}

	v.SetEnvPrefix(l.envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			if l.configPath == "" || !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
