// ABOUTME: Tracker configuration management with backend selection.
// ABOUTME: Reads a JSON config file, applies .env/environment overrides, opens storage.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/harperreed/ftracker/internal/storage"
	"github.com/joho/godotenv"
)

// Environment variables that override the config file.
const (
	EnvBackend     = "FTRACKER_BACKEND"
	EnvDataDir     = "FTRACKER_DATA_DIR"
	EnvPostgresDSN = "FTRACKER_POSTGRES_DSN"
	EnvLogLevel    = "FTRACKER_LOG_LEVEL"
)

// Config stores tracker configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default) or "postgres".
	Backend string `json:"backend,omitempty"`

	// DataDir is where the SQLite database lives.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/ftracker.
	DataDir string `json:"data_dir,omitempty"`

	// PostgresDSN is the pgx connection string used by the postgres backend.
	PostgresDSN string `json:"postgres_dsn,omitempty"`

	// LogLevel is one of debug, info, warn, error. Defaults to warn.
	LogLevel string `json:"log_level,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "sqlite"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetLogLevel returns the configured log level, defaulting to "warn".
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return "warn"
	}
	return c.LogLevel
}

// DBPath is the SQLite database file inside the data directory.
func (c *Config) DBPath() string {
	return filepath.Join(c.GetDataDir(), "ftracker.db")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage creates a Repository implementation based on the configured backend.
func (c *Config) OpenStorage() (storage.Repository, error) {
	switch backend := c.GetBackend(); backend {
	case "sqlite":
		return storage.Open(c.DBPath())
	case "postgres":
		if c.PostgresDSN == "" {
			return nil, fmt.Errorf("postgres backend requires postgres_dsn or %s", EnvPostgresDSN)
		}
		return storage.OpenPostgres(c.PostgresDSN)
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		configDir = xdg.ConfigHome
	}
	return filepath.Join(configDir, "ftracker", "config.json")
}

// Load reads config from disk, then applies a .env file in the working
// directory (if any) and FTRACKER_* environment variables on top.
func Load() (*Config, error) {
	cfg, err := loadFile(GetConfigPath())
	if err != nil {
		return nil, err
	}

	// A missing .env is the normal case.
	_ = godotenv.Load()
	cfg.applyEnv()
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvBackend); v != "" {
		c.Backend = v
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvPostgresDSN); v != "" {
		c.PostgresDSN = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
