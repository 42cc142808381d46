// Package config resolves larder settings from defaults, an optional YAML
// file and LARDER_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

// Config holds every tunable the command line reads at startup.
type Config struct {
	DBPath            string `yaml:"db_path"`
	SelectionCapacity int    `yaml:"selection_capacity"`
	LogLevel          string `yaml:"log_level"`
	ShareTarget       string `yaml:"share_target"`
}

// Dir is the per-user directory holding the database and config file.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".larder"), nil
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig(dir string) Config {
	return Config{
		DBPath:            filepath.Join(dir, "larder.db"),
		SelectionCapacity: 3,
		LogLevel:          "warn",
		ShareTarget:       "clipboard",
	}
}

// LoadConfig layers the config file and environment over the defaults.
// A missing file is fine; an unreadable or malformed one is an error.
func LoadConfig() (Config, error) {
	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}
	cfg := DefaultConfig(dir)

	path := os.Getenv("LARDER_CONFIG")
	if path == "" {
		path = filepath.Join(dir, "config.yaml")
	}
	if err := cfg.mergeFile(path); err != nil {
		return Config{}, err
	}

	if err := cfg.mergeEnv(); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if file.DBPath != "" {
		c.DBPath = file.DBPath
	}
	if file.SelectionCapacity != 0 {
		c.SelectionCapacity = file.SelectionCapacity
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
	}
	if file.ShareTarget != "" {
		c.ShareTarget = file.ShareTarget
	}
	return nil
}

func (c *Config) mergeEnv() error {
	if v := os.Getenv("LARDER_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("LARDER_SELECTION_CAPACITY"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("parsing LARDER_SELECTION_CAPACITY %q: %w", v, err)
		}
		c.SelectionCapacity = n
	}
	if v := os.Getenv("LARDER_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("LARDER_SHARE"); v != "" {
		c.ShareTarget = v
	}
	return nil
}

// Validate rejects settings the rest of the program cannot honour.
func (c Config) Validate() error {
	if c.SelectionCapacity < 1 {
		return fmt.Errorf("selection_capacity must be at least 1, got %d", c.SelectionCapacity)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.ShareTarget {
	case "clipboard", "stdout":
	default:
		return fmt.Errorf("share_target must be clipboard or stdout, got %q", c.ShareTarget)
	}
	return nil
}

// SlogLevel converts LogLevel, defaulting to warn for unknown values.
func (c Config) SlogLevel() slog.Level {
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(s)))); err != nil {
		return slog.LevelWarn, fmt.Errorf("log_level %q: %w", s, err)
	}
	return lvl, nil
}
