package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure. It is read-only after Load()
// returns.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Backup   BackupConfig   `yaml:"backup"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig contains storage settings.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// BackupConfig contains backup rotation settings.
type BackupConfig struct {
	MaxBackups int `yaml:"max_backups"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Debug bool `yaml:"debug"`
}

// ConfigDir returns the directory holding the database, logs and backups.
func (c *Config) ConfigDir() string {
	return filepath.Dir(c.Database.Path)
}

// DefaultDir returns the default config directory (~/.config/trk).
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "trk"), nil
}

// Load loads configuration with precedence: defaults → YAML file → env vars.
// A missing config file is not an error; defaults apply.
func Load() (*Config, error) {
	cfg, err := newDefaults()
	if err != nil {
		return nil, err
	}

	configPath := os.Getenv("TRK_CONFIG_PATH")
	if configPath == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		configPath = filepath.Join(dir, "config.yaml")
	}

	if err := loadYAMLFile(cfg, configPath); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile loads configuration from a specific path. The file must exist.
func LoadFromFile(path string) (*Config, error) {
	cfg, err := newDefaults()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func newDefaults() (*Config, error) {
	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	return &Config{
		Database: DatabaseConfig{
			Path: filepath.Join(dir, "trk.db"),
		},
		Backup: BackupConfig{
			MaxBackups: 5,
		},
	}, nil
}

func loadYAMLFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Only non-empty env vars override config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TRK_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("TRK_MAX_BACKUPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Backup.MaxBackups = n
		}
	}
	if v := os.Getenv("TRK_DEBUG"); v != "" {
		cfg.Log.Debug = v == "true" || v == "1"
	}
}
