package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every lookup at an empty temporary home.
func isolate(t *testing.T) string {
	t.Helper()
	home := filepath.Join(t.TempDir(), "home")
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_DATA_HOME", "")
	for _, name := range []string{
		"NOTEPAD_CONFIG", "NOTEPAD_ADAPTER", "NOTEPAD_PATH", "NOTEPAD_KEY",
		"NOTEPAD_CODEC", "NOTEPAD_AUTOSAVE", "NOTEPAD_LOG_LEVEL", "NOTEPAD_SEED",
	} {
		t.Setenv(name, "")
	}
	return home
}

func writeConfig(t *testing.T, home, name, content string) {
	t.Helper()
	dir := filepath.Join(home, ".config", "notepad")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(CLIFlags{})
	require.NoError(t, err)

	assert.Equal(t, "fs", cfg.Adapter)
	assert.Equal(t, "json", cfg.Codec)
	assert.Equal(t, 30*time.Second, cfg.Autosave)
	assert.True(t, cfg.Seed)
	assert.Empty(t, cfg.Path)
	assert.Empty(t, cfg.Source)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoad_YAMLFile(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, "config.yaml", "adapter: sqlite\npath: ~/notes\nautosave: 1m\nseed: false\nlog_level: debug\n")

	cfg, err := Load(CLIFlags{})
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Adapter)
	assert.Equal(t, filepath.Join(home, "notes"), cfg.Path)
	assert.Equal(t, time.Minute, cfg.Autosave)
	assert.False(t, cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, filepath.Join(home, ".config", "notepad", "config.yaml"), cfg.Source)
}

func TestLoad_TOMLFile(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, "config.toml", "adapter = \"bolt\"\ncodec = \"yaml\"\nkey = \"work\"\n")

	cfg, err := Load(CLIFlags{})
	require.NoError(t, err)

	assert.Equal(t, "bolt", cfg.Adapter)
	assert.Equal(t, "yaml", cfg.Codec)
	assert.Equal(t, "work", cfg.Key)
}

func TestLoad_Priority(t *testing.T) {
	home := isolate(t)
	writeConfig(t, home, "config.yaml", "adapter: sqlite\ncodec: yaml\nkey: file\n")
	t.Setenv("NOTEPAD_ADAPTER", "bolt")
	t.Setenv("NOTEPAD_KEY", "env")
	t.Setenv("NOTEPAD_SEED", "false")

	cfg, err := Load(CLIFlags{Adapter: "memory"})
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Adapter, "flag beats env")
	assert.Equal(t, "env", cfg.Key, "env beats file")
	assert.Equal(t, "yaml", cfg.Codec, "file beats default")
	assert.False(t, cfg.Seed)
}

func TestLoad_ExplicitFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("key: custom\n"), 0o600))

	cfg, err := Load(CLIFlags{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, "custom", cfg.Key)

	_, err = Load(CLIFlags{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("Bad duration", func(t *testing.T) {
		home := isolate(t)
		writeConfig(t, home, "config.yaml", "autosave: soon\n")
		_, err := Load(CLIFlags{})
		assert.Error(t, err)
	})

	t.Run("Bad env bool", func(t *testing.T) {
		isolate(t)
		t.Setenv("NOTEPAD_SEED", "maybe")
		_, err := Load(CLIFlags{})
		assert.Error(t, err)
	})

	t.Run("Bad log level", func(t *testing.T) {
		isolate(t)
		_, err := Load(CLIFlags{LogLevel: "loud"})
		assert.Error(t, err)
	})

	t.Run("Non-positive autosave", func(t *testing.T) {
		isolate(t)
		_, err := Load(CLIFlags{Autosave: -time.Second})
		assert.Error(t, err)
	})

	t.Run("Broken YAML", func(t *testing.T) {
		home := isolate(t)
		writeConfig(t, home, "config.yaml", "adapter: [unclosed\n")
		_, err := Load(CLIFlags{})
		assert.Error(t, err)
	})
}

func TestDefaultDataDir(t *testing.T) {
	home := isolate(t)

	dir, err := DefaultDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local", "share", "notepad"), dir)

	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	dir, err = DefaultDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg/data", "notepad"), dir)
}
