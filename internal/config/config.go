package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config is the resolved quill configuration.
type Config struct {
	DataDir     string `toml:"data_dir" validate:"required"`
	Backend     string `toml:"backend" validate:"oneof=sqlite markdown"`
	LogFile     string `toml:"log_file"`
	LogLevel    string `toml:"log_level" validate:"oneof=debug info warn error"`
	DPPerColumn int    `toml:"dp_per_column" validate:"min=1,max=64"`
	PollSeconds int    `toml:"poll_seconds" validate:"min=0,max=3600"`
	Locale      string `toml:"locale"`
}

const (
	defaultConfigPath  = "~/.config/quill/config.toml"
	defaultDataDir     = "~/.local/share/quill"
	defaultBackend     = "sqlite"
	defaultLogLevel    = "info"
	defaultDPPerColumn = 8
	defaultPollSeconds = 5
	logFileName        = "quill.log"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	dataDir := mustExpand(defaultDataDir)
	return Config{
		DataDir:     dataDir,
		Backend:     defaultBackend,
		LogFile:     filepath.Join(dataDir, logFileName),
		LogLevel:    defaultLogLevel,
		DPPerColumn: defaultDPPerColumn,
		PollSeconds: defaultPollSeconds,
	}
}

// DefaultPath returns the config file location used when none is given.
func DefaultPath() string {
	return defaultConfigPath
}

// Load reads the config at path (or the default location), filling blanks
// with defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DataDir     string `toml:"data_dir"`
		Backend     string `toml:"backend"`
		LogFile     string `toml:"log_file"`
		LogLevel    string `toml:"log_level"`
		DPPerColumn *int   `toml:"dp_per_column"`
		PollSeconds *int   `toml:"poll_seconds"`
		Locale      string `toml:"locale"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if v := strings.TrimSpace(raw.DataDir); v != "" {
		cfg.DataDir = mustExpand(v)
		cfg.LogFile = filepath.Join(cfg.DataDir, logFileName)
	}
	if v := strings.TrimSpace(raw.Backend); v != "" {
		cfg.Backend = strings.ToLower(v)
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if raw.DPPerColumn != nil {
		cfg.DPPerColumn = *raw.DPPerColumn
	}
	if raw.PollSeconds != nil {
		cfg.PollSeconds = *raw.PollSeconds
	}
	cfg.Locale = strings.TrimSpace(raw.Locale)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// PollInterval converts PollSeconds. Zero disables polling.
func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollSeconds) * time.Second
}

// WidthDP converts a terminal width in columns to density-independent units.
func (c Config) WidthDP(columns int) int {
	factor := c.DPPerColumn
	if factor <= 0 {
		factor = defaultDPPerColumn
	}
	return columns * factor
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and makes path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
