package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseVersionedConfig_Unversioned(t *testing.T) {
	// Hand-written config without version field
	legacyYAML := `
storage:
  data_dir: /legacy/sessions
log:
  level: warn
`

	cfg, err := ParseVersionedConfig([]byte(legacyYAML))
	if err != nil {
		t.Fatalf("Failed to parse unversioned config: %v", err)
	}

	if cfg.Version != CurrentVersion {
		t.Errorf("Expected version %d, got %d", CurrentVersion, cfg.Version)
	}

	if cfg.Storage.DataDir != "/legacy/sessions" {
		t.Errorf("Expected DataDir '/legacy/sessions', got '%s'", cfg.Storage.DataDir)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("Expected level 'warn', got '%s'", cfg.Log.Level)
	}
}

func TestParseVersionedConfig_Version1(t *testing.T) {
	v1YAML := `
version: 1
ui:
  theme: light
exercises:
  - category: Arpeggio
    name: Dominant
    target_minutes: 8
    chord_symbol: G7
`

	cfg, err := ParseVersionedConfig([]byte(v1YAML))
	if err != nil {
		t.Fatalf("Failed to parse v1 config: %v", err)
	}

	if cfg.UI.Theme != "light" {
		t.Errorf("Expected theme 'light', got '%s'", cfg.UI.Theme)
	}

	if len(cfg.Exercises) != 1 || cfg.Exercises[0].ChordSymbol != "G7" {
		t.Errorf("Expected one G7 exercise, got %+v", cfg.Exercises)
	}
}

func TestParseVersionedJSONConfig(t *testing.T) {
	cfg, err := ParseVersionedJSONConfig([]byte(`{"version": 1, "storage": {"dataDir": "/json"}}`))
	if err != nil {
		t.Fatalf("Failed to parse JSON config: %v", err)
	}
	if cfg.Storage.DataDir != "/json" {
		t.Errorf("Expected DataDir '/json', got '%s'", cfg.Storage.DataDir)
	}

	legacy, err := ParseVersionedJSONConfig([]byte(`{"log": {"level": "debug"}}`))
	if err != nil {
		t.Fatalf("Failed to parse unversioned JSON config: %v", err)
	}
	if legacy.Version != CurrentVersion {
		t.Errorf("Expected version %d, got %d", CurrentVersion, legacy.Version)
	}
}

func TestParseVersionedConfig_FutureVersion(t *testing.T) {
	// Config with future version should fail
	_, err := ParseVersionedConfig([]byte("version: 999\n"))
	if err == nil {
		t.Fatal("Expected error for future version, got nil")
	}

	if !strings.Contains(err.Error(), "newer than supported") {
		t.Errorf("Expected 'newer than supported' error, got: %v", err)
	}
}

func TestParseVersionedConfig_BadVersion(t *testing.T) {
	tests := []string{
		"version: one\n",
		"version: 0\n",
		`{"version": 1.5}`,
	}

	for _, data := range tests {
		if _, err := ParseVersionedConfig([]byte(data)); err == nil {
			t.Errorf("Expected error for %q", data)
		}
	}
}

func TestParseVersionedConfig_Empty(t *testing.T) {
	cfg, err := ParseVersionedConfig([]byte(""))
	if err != nil {
		t.Fatalf("Failed to parse empty config: %v", err)
	}
	if cfg.Version != CurrentVersion {
		t.Errorf("Expected version %d, got %d", CurrentVersion, cfg.Version)
	}
}

func TestSaveConfigWritesVersion(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, YAMLFileName)

	cfg := DefaultConfig()
	cfg.Version = 0
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}

	if !strings.HasPrefix(string(data), "version: 1\n") {
		t.Errorf("Expected config to start with version, got:\n%s", data)
	}

	if cfg.Version != 0 {
		t.Error("SaveConfig should not modify the caller's config")
	}
}
