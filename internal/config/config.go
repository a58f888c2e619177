package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"atoms-mcp/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/atoms-mcp"
	configFileName = "config.yaml"

	// DefaultAPIURL is the Atoms main-backend base URL used when neither the
	// environment nor the config file provides one.
	DefaultAPIURL = "https://atoms-api.smallest.ai/api/v1"

	// EnvAPIKey is the environment variable holding the Atoms API key.
	EnvAPIKey = "ATOMS_API_KEY"

	// EnvAPIURL is the environment variable overriding the backend base URL.
	EnvAPIURL = "ATOMS_API_URL"
)

// Config holds the settings the server needs to talk to the Atoms backend.
//
// APIKey may be empty after loading: its absence is deliberately not a load
// error. The gateway reports it as a fatal configuration error on the first
// network call instead, so commands that never touch the backend (tools,
// version) work without credentials.
type Config struct {
	APIKey string `yaml:"apiKey"`
	APIURL string `yaml:"apiUrl"`
}

// DefaultConfigPath returns the user-level config file path.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user home directory: %w", err)
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

// Load builds the effective configuration: defaults, overridden by the
// optional user config file, overridden by environment variables.
func Load() (Config, error) {
	cfg := Config{APIURL: DefaultAPIURL}

	path, err := DefaultConfigPath()
	if err == nil {
		fileCfg, err := loadFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg.merge(fileCfg)
	}

	cfg.merge(Config{
		APIKey: os.Getenv(EnvAPIKey),
		APIURL: os.Getenv(EnvAPIURL),
	})

	return cfg, nil
}

// loadFile reads a config file, returning a zero Config if it does not exist.
func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("Config", "No config file at %s, using defaults", path)
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("error reading config from %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	logging.Info("Config", "Loaded configuration from %s", path)
	return cfg, nil
}

// merge overlays non-empty fields from other onto c.
func (c *Config) merge(other Config) {
	if other.APIKey != "" {
		c.APIKey = other.APIKey
	}
	if other.APIURL != "" {
		c.APIURL = other.APIURL
	}
}
