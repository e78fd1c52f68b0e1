package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(BaseURLEnv, "")
	t.Setenv(LegacyBaseURLEnv, "")
	t.Setenv("LOG_LEVEL", "")
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "no slash", input: "http://api.test", expected: "http://api.test"},
		{name: "one slash", input: "http://api.test/", expected: "http://api.test"},
		{name: "many slashes", input: "http://api.test/v1///", expected: "http://api.test/v1"},
		{name: "only slashes", input: "///", expected: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeBaseURL(tc.input))
		})
	}
}

func TestLoadWithoutAnything(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestLoadMissingFileIsIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv(BaseURLEnv, "http://env.test//")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, "http://env.test", cfg.BaseURL)
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "base_url = \"http://file.test/\"\nlog_level = \"debug\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://file.test", cfg.BaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)

	t.Setenv(LegacyBaseURLEnv, "http://legacy.test/")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://legacy.test", cfg.BaseURL)

	t.Setenv(BaseURLEnv, "http://env.test")
	t.Setenv("LOG_LEVEL", "warn")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env.test", cfg.BaseURL)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadInvalidFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "base_url = [unterminated")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}
