package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	appName      = "signin"
	configFile   = "config.yaml"
	accountsFile = "accounts.yaml"
	logFile      = "signin.log"
)

var validate = validator.New()

// GetConfigDir returns the OS-appropriate configuration directory.
func GetConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return filepath.Join(dir, appName), nil
		}
		profile := os.Getenv("USERPROFILE")
		if profile == "" {
			return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
		}
		return filepath.Join(profile, "AppData", "Local", appName), nil

	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(home, ".config", appName), nil

	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(home, ".config", appName), nil
	}
}

// DefaultPath returns the full path of the configuration file.
func DefaultPath() (string, error) {
	return inConfigDir(configFile)
}

// DefaultAccountsPath returns where local mode looks for accounts when the
// config does not name a file.
func DefaultAccountsPath() (string, error) {
	return inConfigDir(accountsFile)
}

// DefaultLogPath returns the log file used by interactive runs.
func DefaultLogPath() (string, error) {
	return inConfigDir(logFile)
}

func inConfigDir(name string) (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// Load reads and validates the config at path. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported config version: %d (expected %d)", cfg.Version, CurrentVersion)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every section of the config.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Auth.Mode == AuthModeHTTP && c.Auth.Endpoint == "" {
		return fmt.Errorf("invalid config: auth.endpoint is required when auth.mode is %q", AuthModeHTTP)
	}
	return nil
}

// Save writes the config to path atomically, creating the directory when
// needed.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# Sign-in configuration file
#
# Passwords are never stored here. Local mode reads bcrypt hashes from the
# accounts file (see 'signin add-account').

`)
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

// AccountsPath returns the configured accounts file or the default one.
func (c *Config) AccountsPath() (string, error) {
	if c.Auth.AccountsFile != "" {
		return c.Auth.AccountsFile, nil
	}
	return DefaultAccountsPath()
}
