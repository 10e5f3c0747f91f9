package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CATALOG_NAME", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	cfg := Load()

	if cfg.CatalogName != "My Library" {
		t.Fatalf("expected default catalog name, got %q", cfg.CatalogName)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level, got %q", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Fatalf("expected default log format, got %q", cfg.LogFormat)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CATALOG_NAME", "Branch Library")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.CatalogName != "Branch Library" {
		t.Fatalf("expected CATALOG_NAME override, got %q", cfg.CatalogName)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected LOG_LEVEL override, got %q", cfg.LogLevel)
	}
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, ".env"), []byte("LOG_FORMAT=json\n"), 0644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Chdir(tmp)
	t.Setenv("LOG_FORMAT", "")
	// godotenv only fills variables that are absent.
	_ = os.Unsetenv("LOG_FORMAT")

	cfg := Load()

	if cfg.LogFormat != "json" {
		t.Fatalf("expected LOG_FORMAT from .env, got %q", cfg.LogFormat)
	}
}

func TestLoadEnvFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, ".env"), []byte("CATALOG_NAME=from_file\n"), 0644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Chdir(tmp)
	t.Setenv("CATALOG_NAME", "from_env")

	loadEnvFiles()

	if got := os.Getenv("CATALOG_NAME"); got != "from_env" {
		t.Fatalf("expected existing env to win, got %q", got)
	}
}
