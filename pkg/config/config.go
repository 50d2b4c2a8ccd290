package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"quicktext/pkg/errors"

	"gopkg.in/yaml.v3"
)

const (
	StoreDriverSQLite = "sqlite"
	StoreDriverMemory = "memory"
)

// Config holds the complete configuration
type Config struct {
	Store     StoreConfig     `yaml:"store"`
	Document  DocumentConfig  `yaml:"document"`
	Clipboard ClipboardConfig `yaml:"clipboard"`
}

// StoreConfig selects where the clipboard slot is persisted.
type StoreConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

type DocumentConfig struct {
	Path string `yaml:"path"`
}

type ClipboardConfig struct {
	MirrorSystem bool `yaml:"mirror_system"`
}

// Load loads the configuration from the default path
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, errors.NewWithError(errors.ExitCodeConfig, "failed to get config path", err)
	}
	return loadFromPath(configPath)
}

// GetConfigDir returns the quicktext directory under the user config dir
func GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "quicktext"), nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DefaultStorePath returns the default settings database location
func DefaultStorePath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.db"), nil
}

// Save saves the configuration to file
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}
	return saveToPath(configPath, cfg)
}

func saveToPath(configPath string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to create config directory", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to marshal config", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to write config file", err)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func loadFromPath(configPath string) (*Config, error) {
	cfg := &Config{}

	if err := loadConfigFile(configPath, cfg); err != nil {
		return nil, err
	}

	applyEnvironmentOverrides(cfg)

	if cfg.Store.Path == "" && cfg.Store.Driver == StoreDriverSQLite {
		cfg.Store.Path = filepath.Join(filepath.Dir(configPath), "settings.db")
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadConfigFile reads and parses the config file from the given path
func loadConfigFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		// File doesn't exist, that's okay - we'll use env vars and defaults
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to read config file", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to parse config file", err)
	}

	return nil
}

// applyEnvironmentOverrides fills unset fields from the environment
func applyEnvironmentOverrides(cfg *Config) {
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = getEnv("QUICKTEXT_STORE_DRIVER", StoreDriverSQLite)
	}
	if cfg.Store.Path == "" {
		cfg.Store.Path = getEnv("QUICKTEXT_STORE_PATH", "")
	}
	if cfg.Document.Path == "" {
		cfg.Document.Path = getEnv("QUICKTEXT_DOCUMENT", "")
	}
	if !cfg.Clipboard.MirrorSystem {
		cfg.Clipboard.MirrorSystem = getEnvBool("QUICKTEXT_MIRROR_CLIPBOARD", false)
	}
}

// validateConfig rejects values the commands cannot act on
func validateConfig(cfg *Config) error {
	switch cfg.Store.Driver {
	case StoreDriverSQLite, StoreDriverMemory:
	default:
		return errors.ConfigError(fmt.Sprintf("unknown store driver '%s' (expected %s or %s)",
			cfg.Store.Driver, StoreDriverSQLite, StoreDriverMemory))
	}
	return nil
}
