// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	API      APIConfig      `toml:"api"`
	Training TrainingConfig `toml:"training"`
}

// APIConfig maps evaluator endpoint settings.
type APIConfig struct {
	Model          *string `toml:"model"`
	BaseURL        *string `toml:"base-url"`
	TimeoutSeconds *int    `toml:"timeout-seconds"`
}

// TrainingConfig maps training-related settings.
type TrainingConfig struct {
	Lengths *[]int `toml:"lengths"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

type credentials struct {
	APIKey string `toml:"api-key"`
}

// DefaultCredentialsPath returns the path of the stored API key file.
func DefaultCredentialsPath() string {
	return filepath.Join(XDGConfigHome(), "sumitore", "credentials.toml")
}

// LoadAPIKey reads the stored API key. Missing file returns an empty key.
func LoadAPIKey(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to stat credentials: %w", err)
	}
	var creds credentials
	if _, err := toml.DecodeFile(path, &creds); err != nil {
		return "", fmt.Errorf("failed to decode credentials: %w", err)
	}
	return strings.TrimSpace(creds.APIKey), nil
}

// SaveAPIKey writes the API key with owner-only permissions.
func SaveAPIKey(path, key string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create credentials dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open credentials: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close; encode errors are reported below.
			_ = cerr
		}
	}()
	if err := toml.NewEncoder(file).Encode(credentials{APIKey: key}); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}
	return nil
}
