package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envVars = []string{
	"TEXBODY_LOG_LEVEL",
	"TEXBODY_LOG_FORMAT",
	"TEXBODY_INPUT_ENCODING",
	"TEXBODY_STRICT",
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, name := range envVars {
		if v, ok := os.LookupEnv(name); ok {
			t.Cleanup(func() { os.Setenv(name, v) })
		} else {
			t.Cleanup(func() { os.Unsetenv(name) })
		}
		os.Unsetenv(name)
	}
}

func TestNewAppConfig_Defaults(t *testing.T) {
	cfg := NewAppConfig()
	assert.Equal(t, "INFO", cfg.LogLevel())
	assert.Equal(t, LogFormatPretty, cfg.LogFormat())
	assert.Equal(t, "utf-8", cfg.InputEncoding())
	assert.False(t, cfg.Strict())
}

func TestNewAppConfigWithOptions(t *testing.T) {
	cfg := NewAppConfigWithOptions(
		WithLogLevel("debug"),
		WithLogFormat(LogFormatJSON),
		WithInputEncoding("latin1"),
		WithStrict(true),
	)
	assert.Equal(t, "DEBUG", cfg.LogLevel())
	assert.Equal(t, LogFormatJSON, cfg.LogFormat())
	assert.Equal(t, "latin1", cfg.InputEncoding())
	assert.True(t, cfg.Strict())

	base := NewAppConfig()
	_ = base.Apply(WithStrict(true))
	assert.False(t, base.Strict(), "Apply returns a copy")
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, "pretty", cfg.LogFormat)
	assert.Equal(t, "utf-8", cfg.InputEncoding)
	assert.False(t, cfg.Strict)

	app := cfg.ToAppConfig()
	assert.Equal(t, NewAppConfig(), app)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("TEXBODY_LOG_LEVEL", "warn")
	t.Setenv("TEXBODY_LOG_FORMAT", "JSON")
	t.Setenv("TEXBODY_INPUT_ENCODING", "windows-1252")
	t.Setenv("TEXBODY_STRICT", "true")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	app := cfg.ToAppConfig()
	assert.Equal(t, "WARN", app.LogLevel())
	assert.Equal(t, LogFormatJSON, app.LogFormat())
	assert.Equal(t, "windows-1252", app.InputEncoding())
	assert.True(t, app.Strict())
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("TEXBODY_STRICT", "perhaps")
	_, err := LoadFromEnv()
	assert.Error(t, err)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	clearEnvVars(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TEXBODY_INPUT_ENCODING=latin1\nTEXBODY_STRICT=true\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "latin1", cfg.InputEncoding())
	assert.True(t, cfg.Strict())
}

func TestLoadDotEnv_Missing(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}
