// Package config resolves the CLI settings from a config file, NOTEPAD_*
// environment variables and command-line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	appName                 = "notepad"
	defaultAdapter          = "fs"
	defaultCodec            = "json"
	defaultAutosaveInterval = 30 * time.Second
)

// configFiles are tried in order inside Dir.
var configFiles = []string{"config.yaml", "config.yml", "config.toml"}

// Config holds the resolved CLI configuration.
type Config struct {
	Adapter  string
	Path     string // empty means "not configured"; the CLI picks a default
	Key      string
	Codec    string
	Autosave time.Duration
	LogLevel string
	Seed     bool
	Source   string // config file that was read, if any
}

// Settings represents the config file structure.
type Settings struct {
	Adapter  string `yaml:"adapter,omitempty" toml:"adapter,omitempty"`
	Path     string `yaml:"path,omitempty" toml:"path,omitempty"`
	Key      string `yaml:"key,omitempty" toml:"key,omitempty"`
	Codec    string `yaml:"codec,omitempty" toml:"codec,omitempty"`
	Autosave string `yaml:"autosave,omitempty" toml:"autosave,omitempty"`
	LogLevel string `yaml:"log_level,omitempty" toml:"log_level,omitempty"`
	Seed     *bool  `yaml:"seed,omitempty" toml:"seed,omitempty"`
}

// CLIFlags holds parsed CLI flags. Zero values mean "not set".
type CLIFlags struct {
	ConfigFile string
	Adapter    string
	Path       string
	Key        string
	Codec      string
	Autosave   time.Duration
	LogLevel   string
	NoSeed     bool
}

// Load loads configuration with priority: CLI flags > env vars > config file > default.
func Load(flags CLIFlags) (*Config, error) {
	cfg := &Config{
		Adapter:  defaultAdapter,
		Codec:    defaultCodec,
		Autosave: defaultAutosaveInterval,
		LogLevel: "info",
		Seed:     true,
	}

	// Priority 3: config file
	path := flags.ConfigFile
	if path == "" {
		path = os.Getenv("NOTEPAD_CONFIG")
	}
	settings, source, err := findSettings(path)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		if err := cfg.apply(*settings); err != nil {
			return nil, fmt.Errorf("config %s: %w", source, err)
		}
		cfg.Source = source
	}

	// Priority 2: environment variables
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	// Priority 1: CLI flags
	if flags.Adapter != "" {
		cfg.Adapter = flags.Adapter
	}
	if flags.Path != "" {
		cfg.Path = expandPath(flags.Path)
	}
	if flags.Key != "" {
		cfg.Key = flags.Key
	}
	if flags.Codec != "" {
		cfg.Codec = flags.Codec
	}
	if flags.Autosave != 0 {
		cfg.Autosave = flags.Autosave
	}
	if flags.LogLevel != "" {
		cfg.LogLevel = flags.LogLevel
	}
	if flags.NoSeed {
		cfg.Seed = false
	}

	if cfg.Autosave <= 0 {
		return nil, fmt.Errorf("autosave interval must be positive, got %s", cfg.Autosave)
	}
	if _, err := cfg.SlogLevel(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) apply(s Settings) error {
	if s.Adapter != "" {
		c.Adapter = s.Adapter
	}
	if s.Path != "" {
		c.Path = expandPath(s.Path)
	}
	if s.Key != "" {
		c.Key = s.Key
	}
	if s.Codec != "" {
		c.Codec = s.Codec
	}
	if s.Autosave != "" {
		d, err := time.ParseDuration(s.Autosave)
		if err != nil {
			return fmt.Errorf("autosave: %w", err)
		}
		c.Autosave = d
	}
	if s.LogLevel != "" {
		c.LogLevel = s.LogLevel
	}
	if s.Seed != nil {
		c.Seed = *s.Seed
	}
	return nil
}

func (c *Config) applyEnv() error {
	env := Settings{
		Adapter:  os.Getenv("NOTEPAD_ADAPTER"),
		Path:     os.Getenv("NOTEPAD_PATH"),
		Key:      os.Getenv("NOTEPAD_KEY"),
		Codec:    os.Getenv("NOTEPAD_CODEC"),
		Autosave: os.Getenv("NOTEPAD_AUTOSAVE"),
		LogLevel: os.Getenv("NOTEPAD_LOG_LEVEL"),
	}
	if raw := os.Getenv("NOTEPAD_SEED"); raw != "" {
		seed, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("NOTEPAD_SEED: %w", err)
		}
		env.Seed = &seed
	}
	if err := c.apply(env); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	return nil
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Dir returns the directory holding the config file.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", appName), nil
}

// DefaultDataDir returns where notes live when no path is configured.
func DefaultDataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".local", "share", appName), nil
}

// findSettings reads the explicit file, or the first existing default file.
// A missing default file is not an error.
func findSettings(explicit string) (*Settings, string, error) {
	if explicit != "" {
		path := expandPath(explicit)
		s, err := loadConfigFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("config %s: %w", path, err)
		}
		return s, path, nil
	}

	dir, err := Dir()
	if err != nil {
		return nil, "", nil
	}
	for _, name := range configFiles {
		path := filepath.Join(dir, name)
		s, err := loadConfigFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, "", fmt.Errorf("config %s: %w", path, err)
		}
		return s, path, nil
	}
	return nil, "", nil
}

// loadConfigFile decodes YAML or TOML based on the extension.
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if len(strings.TrimSpace(string(data))) == 0 {
		return &settings, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &settings)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &settings)
	default:
		return nil, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
