package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	wantDataDir, err := expandPath(defaultDataDir)
	if err != nil {
		t.Fatalf("expandPath(defaultDataDir) returned error: %v", err)
	}
	if cfg.DataDir != wantDataDir {
		t.Fatalf("DataDir = %q, want %q", cfg.DataDir, wantDataDir)
	}
	if cfg.Backend != "sqlite" {
		t.Fatalf("Backend = %q, want sqlite", cfg.Backend)
	}
	if cfg.LogFile != filepath.Join(wantDataDir, "quill.log") {
		t.Fatalf("LogFile = %q", cfg.LogFile)
	}
	if cfg.DPPerColumn != 8 || cfg.PollInterval() != 5*time.Second {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
data_dir = "  ~/notes  "
backend = " Markdown "
log_level = "DEBUG"
dp_per_column = 10
poll_seconds = 0
locale = " de_DE "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DataDir != filepath.Join(home, "notes") {
		t.Fatalf("DataDir = %q, want it under HOME %q", cfg.DataDir, home)
	}
	if cfg.LogFile != filepath.Join(home, "notes", "quill.log") {
		t.Fatalf("LogFile = %q", cfg.LogFile)
	}
	if cfg.Backend != "markdown" || cfg.LogLevel != "debug" || cfg.Locale != "de_DE" {
		t.Fatalf("unexpected values %+v", cfg)
	}
	if cfg.DPPerColumn != 10 {
		t.Fatalf("DPPerColumn = %d, want 10", cfg.DPPerColumn)
	}
	if cfg.PollInterval() != 0 {
		t.Fatalf("poll_seconds = 0 should disable polling, got %v", cfg.PollInterval())
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
data_dir = "   "
backend = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`backend = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_ValidationErrorsNameTOMLKeys(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
backend = "postgres"
dp_per_column = 0
log_level = "loud"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want validation error")
	}
	msg := err.Error()
	for _, want := range []string{
		"backend must be one of: sqlite markdown",
		"dp_per_column must be at least 1",
		"log_level must be one of",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("error %q missing %q", msg, want)
		}
	}
}

func TestWidthDP(t *testing.T) {
	cfg := Config{DPPerColumn: 8}
	if got := cfg.WidthDP(75); got != 600 {
		t.Fatalf("WidthDP(75) = %d, want 600", got)
	}
	if got := (Config{}).WidthDP(10); got != 80 {
		t.Fatalf("zero factor should fall back to default, got %d", got)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
