// ABOUTME: Tests for tracker configuration management.
// ABOUTME: Covers load, save, defaults, env overrides, backend selection, and path expansion.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// isolateEnv points config lookups at a temp dir and clears overrides.
func isolateEnv(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	for _, key := range []string{EnvBackend, EnvDataDir, EnvPostgresDSN, EnvLogLevel} {
		t.Setenv(key, "")
	}
	return tmpDir
}

func TestGetBackendDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetBackend(); got != "sqlite" {
		t.Errorf("GetBackend() = %q, want %q", got, "sqlite")
	}
}

func TestGetBackendExplicit(t *testing.T) {
	cfg := &Config{Backend: "postgres"}
	if got := cfg.GetBackend(); got != "postgres" {
		t.Errorf("GetBackend() = %q, want %q", got, "postgres")
	}
}

func TestGetLogLevelDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetLogLevel(); got != "warn" {
		t.Errorf("GetLogLevel() = %q, want %q", got, "warn")
	}
}

func TestGetDataDirDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetDataDir(); got == "" {
		t.Error("GetDataDir() returned empty string")
	}
}

func TestGetDataDirExpandsTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	cfg := &Config{DataDir: "~/fitness-data"}
	want := filepath.Join(home, "fitness-data")
	if got := cfg.GetDataDir(); got != want {
		t.Errorf("GetDataDir() = %q, want %q", got, want)
	}
	if got := cfg.DBPath(); got != filepath.Join(want, "ftracker.db") {
		t.Errorf("DBPath() = %q", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/tmp/foo", "/tmp/foo"},
		{"~", home},
		{"~/data/ftracker", filepath.Join(home, "data/ftracker")},
		{"data/ftracker", "data/ftracker"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	isolateEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg.Backend != "" || cfg.DataDir != "" {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	isolateEnv(t)

	cfg := &Config{Backend: "postgres", PostgresDSN: "postgres://u:p@localhost/fit", DataDir: "/tmp/fitness-data"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.Backend != "postgres" || loaded.DataDir != "/tmp/fitness-data" || loaded.PostgresDSN != cfg.PostgresDSN {
		t.Errorf("loaded %+v, want %+v", loaded, cfg)
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	isolateEnv(t)

	if err := (&Config{Backend: "postgres", LogLevel: "info"}).Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	t.Setenv(EnvBackend, "sqlite")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Backend != "sqlite" {
		t.Errorf("Backend = %q, want env override sqlite", cfg.Backend)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want env override debug", cfg.LogLevel)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tmpDir := isolateEnv(t)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "nonexistent"))

	if err := (&Config{Backend: "sqlite"}).Save(); err != nil {
		t.Fatalf("Save() should create directory: %v", err)
	}

	configDir := filepath.Join(tmpDir, "nonexistent", "ftracker")
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		t.Error("Expected config directory to be created")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := isolateEnv(t)

	configDir := filepath.Join(tmpDir, "ftracker")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.json"), []byte("invalid json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid JSON config")
	}
}

func TestGetConfigPath(t *testing.T) {
	tmpDir := isolateEnv(t)

	want := filepath.Join(tmpDir, "ftracker", "config.json")
	if got := GetConfigPath(); got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
}

func TestOpenStorageSQLite(t *testing.T) {
	tmpDir := t.TempDir()

	repo, err := (&Config{DataDir: tmpDir}).OpenStorage()
	if err != nil {
		t.Fatalf("OpenStorage() for sqlite failed: %v", err)
	}
	defer repo.Close()

	if _, err := os.Stat(filepath.Join(tmpDir, "ftracker.db")); os.IsNotExist(err) {
		t.Error("Expected ftracker.db to be created")
	}
}

func TestOpenStoragePostgresRequiresDSN(t *testing.T) {
	if _, err := (&Config{Backend: "postgres"}).OpenStorage(); err == nil {
		t.Error("Expected error for postgres backend without DSN")
	}
}

func TestOpenStorageInvalidBackend(t *testing.T) {
	if _, err := (&Config{Backend: "invalid", DataDir: "/tmp"}).OpenStorage(); err == nil {
		t.Error("Expected error for invalid backend")
	}
}

func TestConfigJSONOmitsEmpty(t *testing.T) {
	data, err := json.Marshal(&Config{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("Expected empty JSON object, got %s", string(data))
	}
}
