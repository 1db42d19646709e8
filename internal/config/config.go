// Package config loads the ladder CLI configuration from
// ~/.ladder/config.yaml using Viper. A missing config file is not an
// error; every key has a default.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyDBPath   = "db_path"
	cfgKeyColor    = "color"
	cfgKeyFallback = "fallback"
)

// Config holds the resolved ladder settings.
type Config struct {
	// DBPath is the SQLite database location. Empty means the default
	// under the config directory.
	DBPath string
	// Color toggles ANSI color in output.
	Color bool
	// Fallback toggles serving the embedded demo matrix when the store
	// is unreadable.
	Fallback bool
}

// DefaultDir returns the ladder configuration directory.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".ladder"), nil
}

// Load reads config.yaml from the given directory.
func Load(configDir string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LADDER")
	v.AutomaticEnv()
	v.SetDefault(cfgKeyDBPath, "")
	v.SetDefault(cfgKeyColor, true)
	v.SetDefault(cfgKeyFallback, true)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return &Config{
		DBPath:   v.GetString(cfgKeyDBPath),
		Color:    v.GetBool(cfgKeyColor),
		Fallback: v.GetBool(cfgKeyFallback),
	}, nil
}
