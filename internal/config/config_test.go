package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := []byte(`
database:
  path: /tmp/custom/trk.db
backup:
  max_backups: 9
log:
  debug: true
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Database.Path != "/tmp/custom/trk.db" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	if cfg.Backup.MaxBackups != 9 {
		t.Errorf("Backup.MaxBackups = %d, want 9", cfg.Backup.MaxBackups)
	}
	if !cfg.Log.Debug {
		t.Error("Log.Debug = false, want true")
	}
	if cfg.ConfigDir() != "/tmp/custom" {
		t.Errorf("ConfigDir() = %q, want /tmp/custom", cfg.ConfigDir())
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadFromFile() on missing file should fail")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TRK_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("TRK_DB_PATH", "")
	t.Setenv("TRK_DEBUG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database.Path == "" {
		t.Error("default Database.Path should not be empty")
	}
	if cfg.Backup.MaxBackups != 5 {
		t.Errorf("default MaxBackups = %d, want 5", cfg.Backup.MaxBackups)
	}
	if cfg.Log.Debug {
		t.Error("default Debug should be false")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TRK_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("TRK_DB_PATH", "/tmp/env/trk.db")
	t.Setenv("TRK_MAX_BACKUPS", "2")
	t.Setenv("TRK_DEBUG", "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database.Path != "/tmp/env/trk.db" {
		t.Errorf("Database.Path = %q, want env override", cfg.Database.Path)
	}
	if cfg.Backup.MaxBackups != 2 {
		t.Errorf("MaxBackups = %d, want 2", cfg.Backup.MaxBackups)
	}
	if !cfg.Log.Debug {
		t.Error("Debug should be enabled via TRK_DEBUG=1")
	}
}
