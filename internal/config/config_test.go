package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{envServerURL, envDataDir, envLogFile, envDebug} {
		// t.Setenv registers restoration; Unsetenv then makes the key absent.
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv(envDataDir, t.TempDir())

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err, "an explicit path that does not exist is an error")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, defaultServerURL, cfg.ServerURL)
	assert.Equal(t, DefaultCountryCodes, cfg.CountryCodes)
	assert.Equal(t, filepath.Join(cfg.DataDir, logFileName), cfg.LogFile)
	assert.False(t, cfg.Debug)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	dataDir := t.TempDir()
	path := writeConfig(t, `
server_url: https://contacts.example.com
data_dir: `+dataDir+`
debug: true
country_codes: ["+351", "+34"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://contacts.example.com", cfg.ServerURL)
	assert.Equal(t, dataDir, cfg.DataDir)
	assert.True(t, cfg.Debug)
	assert.Equal(t, []string{"+351", "+34"}, cfg.CountryCodes)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "server_url: https://file.example.com\n")

	t.Setenv(envServerURL, "http://env.example.com:8080")
	t.Setenv(envDebug, "true")
	t.Setenv(envLogFile, "/tmp/contactup-test.log")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env.example.com:8080", cfg.ServerURL)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/contactup-test.log", cfg.LogFile)
}

func TestEnvValidation(t *testing.T) {
	t.Run("empty server url", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(envServerURL, "")
		_, err := Load(writeConfig(t, ""))
		assert.Error(t, err)
	})

	t.Run("bad bool", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(envDebug, "sometimes")
		_, err := Load(writeConfig(t, ""))
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	base := Config{ServerURL: "http://localhost:3000", CountryCodes: []string{"+1"}}
	require.NoError(t, base.Validate())

	tests := []struct {
		name string
		mut  func(*Config)
	}{
		{name: "relative url", mut: func(c *Config) { c.ServerURL = "/contacts" }},
		{name: "ftp url", mut: func(c *Config) { c.ServerURL = "ftp://example.com" }},
		{name: "no codes", mut: func(c *Config) { c.CountryCodes = nil }},
		{name: "code without plus", mut: func(c *Config) { c.CountryCodes = []string{"44"} }},
		{name: "code not numeric", mut: func(c *Config) { c.CountryCodes = []string{"+4a"} }},
		{name: "bare plus", mut: func(c *Config) { c.CountryCodes = []string{"+"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			cfg.CountryCodes = append([]string(nil), base.CountryCodes...)
			tt.mut(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	bad := base
	bad.ServerURL = "nope"
	assert.ErrorIs(t, bad.Validate(), ErrInvalidServerURL)
}

func TestMalformedYAML(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeConfig(t, "server_url: [unterminated\n"))
	assert.Error(t, err)
}

func TestReadLeavesValidationToCaller(t *testing.T) {
	clearEnv(t)
	t.Setenv(envServerURL, "not a url")

	cfg, err := Read(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, "not a url", cfg.ServerURL)
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidServerURL)

	_, err = Load(writeConfig(t, ""))
	assert.ErrorIs(t, err, ErrInvalidServerURL)
}
