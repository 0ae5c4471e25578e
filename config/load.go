package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/imuzolev/playnashville/errors"
)

// ConfigFileName is the project config file searched for upwards from the
// working directory.
const ConfigFileName = "nashville.toml"

// Load reads configuration from defaults, an optional nashville.toml found
// by walking up from the working directory, and NASHVILLE_* environment
// variables (highest precedence).
func Load() (*Config, error) {
	v := newViper()

	if path := findProjectConfig(); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path. Used by the
// --config flag and the config watcher.
func LoadFromFile(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}
	return &config, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("NASHVILLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// ProjectConfigPath returns the path of the nashville.toml that Load would
// use, or empty string if none exists. The server command watches this file
// for live reloads.
func ProjectConfigPath() string {
	return findProjectConfig()
}

// findProjectConfig searches for nashville.toml by walking up the directory
// tree. Returns the first config file found, or empty string if none.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
