package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/dvcrn/clientes-client/internal/env"
)

// Environment keys consulted for the API base URL, in order of precedence.
const (
	BaseURLEnv       = "API_BASE_URL"
	LegacyBaseURLEnv = "VITE_API_BASE_URL"
)

// Config is resolved once at startup and handed to every client by value.
type Config struct {
	BaseURL  string
	LogLevel string
}

// FileConfig is the on-disk TOML shape.
type FileConfig struct {
	BaseURL  string `toml:"base_url"`
	LogLevel string `toml:"log_level"`
}

// Load builds a Config from the TOML file at path (skipped when path is empty
// or missing) and then the environment, which wins over the file.
func Load(path string) (Config, error) {
	var cfg Config

	if path != "" {
		fc, err := LoadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		default:
			cfg.BaseURL = fc.BaseURL
			cfg.LogLevel = fc.LogLevel
		}
	}

	if v, ok := env.First(BaseURLEnv, LegacyBaseURLEnv); ok {
		cfg.BaseURL = v
	}
	if v, ok := env.Get("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}

	cfg.BaseURL = NormalizeBaseURL(cfg.BaseURL)
	return cfg, nil
}

// LoadFile reads and parses a TOML config file.
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultPath returns ~/.clientes/config.toml, or "" without a home directory.
func DefaultPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".clientes", "config.toml")
	}
	return ""
}

// NormalizeBaseURL strips every trailing slash.
func NormalizeBaseURL(raw string) string {
	return strings.TrimRight(raw, "/")
}
