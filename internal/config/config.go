// Package config resolves defaults for the drills CLI from a YAML config
// file and DRILLS_* environment variables. Command-line flags override
// both; that precedence is applied by the cli package.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of recognised environment variables.
const EnvPrefix = "DRILLS"

// Config holds resolved settings.
type Config struct {
	// Database is the SQLite history path. Empty disables recording.
	Database string

	// Format is the output format, "text" or "json".
	Format string

	// File is the config file that was read, empty if none.
	File string
}

// Load reads the config file at path, or $HOME/.drills/config.yaml when
// path is empty. A missing default file is not an error; a missing
// explicit file is.
func Load(path string) (*Config, error) {
	dir := ""
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".drills")
	}
	return load(path, dir)
}

func load(path, searchDir string) (*Config, error) {
	v := viper.New()
	v.SetDefault("db", "")
	v.SetDefault("format", "text")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		if searchDir != "" {
			v.AddConfigPath(searchDir)
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &Config{
		Database: v.GetString("db"),
		Format:   v.GetString("format"),
		File:     v.ConfigFileUsed(),
	}, nil
}
