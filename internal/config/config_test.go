package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesavant42/rickdex/internal/api"
)

// chdirTemp runs the test from an empty directory so no stray rickdex.yaml or .env is picked up
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, api.DefaultBaseURL, cfg.BaseURL)
	assert.False(t, cfg.Lenient)
	assert.Zero(t, cfg.Timeout)
	assert.Empty(t, cfg.Save)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadPrecedence(t *testing.T) {
	dir := chdirTemp(t)

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: http://file.local/api\ntimeout: 5s\nlogging:\n  level: info\n"), 0644))

	t.Setenv("RICKDEX_TIMEOUT", "7s")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("base-url", "", "")
	flags.Bool("lenient", false, "")
	require.NoError(t, flags.Parse([]string{"--base-url", "http://flag.local/api", "--lenient"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "http://flag.local/api", cfg.BaseURL)
	assert.True(t, cfg.Lenient)
	assert.Equal(t, 7*time.Second, cfg.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	dir := chdirTemp(t)
	_, err := Load(filepath.Join(dir, "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{BaseURL: api.DefaultBaseURL, Logging: LoggingConfig{Level: "info"}}, false},
		{"uppercase level", Config{BaseURL: api.DefaultBaseURL, Logging: LoggingConfig{Level: "DEBUG"}}, false},
		{"bad scheme", Config{BaseURL: "ftp://example.com", Logging: LoggingConfig{Level: "info"}}, true},
		{"negative timeout", Config{BaseURL: api.DefaultBaseURL, Timeout: -time.Second, Logging: LoggingConfig{Level: "info"}}, true},
		{"bad level", Config{BaseURL: api.DefaultBaseURL, Logging: LoggingConfig{Level: "chatty"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
