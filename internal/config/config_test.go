package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tygara/practicetracker/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "sessions", filepath.Base(cfg.Storage.DataDir))
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NotEmpty(t, cfg.Log.File)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.True(t, cfg.UI.DeleteNeedsConfirm())
	require.Len(t, cfg.Exercises, 3)

	exercises, err := cfg.BuildExercises()
	require.NoError(t, err)
	assert.Equal(t, "Scale", exercises[0].Category())
	assert.Equal(t, 15, exercises[0].TargetMinutesPerDay())
	assert.Equal(t, "Arpeggio", exercises[1].Category())
	assert.Equal(t, "Song", exercises[2].Category())
}

func TestLoadConfigFromYAML(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := `
storage:
  data_dir: /tmp/practice
log:
  level: debug
ui:
  theme: light
  confirm_on_delete: false
exercises:
  - category: scale
    name: G Major
    target_minutes: 12
    scale_name: Major
    key: G
    tempo_bpm: 96
  - category: song
    name: Etude
    target_minutes: 30
    song_title: Lagrima
    artist: Tarrega
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, YAMLFileName), []byte(configContent), 0644))

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/practice", cfg.Storage.DataDir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.False(t, cfg.UI.DeleteNeedsConfirm())

	// Defaults are filled in
	assert.NotEmpty(t, cfg.Log.File)

	exercises, err := cfg.BuildExercises()
	require.NoError(t, err)
	require.Len(t, exercises, 2)
	assert.Equal(t, "G", exercises[0].Key())
	assert.Equal(t, 96, exercises[0].TargetTempoBpm())
	assert.Equal(t, "Tarrega", exercises[1].Artist())
}

func TestLoadConfigFromJSON(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := `{
  "storage": {"dataDir": "/srv/practice"},
  "exercises": [
    {"category": "Arpeggio", "name": "Dominant", "targetMinutes": 8, "chordSymbol": "G7", "tempoBpm": 100}
  ]
}`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, JSONFileName), []byte(configContent), 0644))

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "/srv/practice", cfg.Storage.DataDir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "dark", cfg.UI.Theme)
	require.Len(t, cfg.Exercises, 1)
	assert.Equal(t, "G7", cfg.Exercises[0].ChordSymbol)
}

func TestLoadConfigPriority(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, YAMLFileName), []byte("storage:\n  data_dir: /from/yaml\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, JSONFileName), []byte(`{"storage": {"dataDir": "/from/json"}}`), 0644))

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "/from/yaml", cfg.Storage.DataDir)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, YAMLFileName), []byte("storage:\n  data_dir: /from/yaml\nlog:\n  level: info\n"), 0644))

	t.Setenv("PRACTICETRACKER_DATA_DIR", "/from/env")
	t.Setenv("PRACTICETRACKER_LOG_LEVEL", "warn")
	t.Setenv("PRACTICETRACKER_THEME", "light")

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.Storage.DataDir)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "light", cfg.UI.Theme)
}

func TestLoadConfigNoFiles(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	defaults := DefaultConfig()
	assert.Equal(t, defaults.Storage.DataDir, cfg.Storage.DataDir)
	assert.Equal(t, defaults.Log.Level, cfg.Log.Level)
	assert.Equal(t, defaults.Exercises, cfg.Exercises)
}

func TestLoadConfigInvalidFiles(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"invalid yaml", YAMLFileName, "storage: [unterminated", "failed to parse .practicetracker.yaml"},
		{"invalid json", JSONFileName, `{"storage": {`, "failed to parse .practicetracker.json"},
		{"bad log level", YAMLFileName, "log:\n  level: loud\n", "log.level"},
		{"bad theme", YAMLFileName, "ui:\n  theme: neon\n", "ui.theme"},
		{"bad exercise", YAMLFileName, "exercises:\n  - category: scale\n    name: ''\n    target_minutes: 5\n", "exercise 0"},
		{"unknown category", YAMLFileName, "exercises:\n  - category: drill\n    name: x\n    target_minutes: 5\n", "unknown category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(tmpDir, tt.file), []byte(tt.content), 0644))

			_, err := LoadConfig(tmpDir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfigUnreadableFile(t *testing.T) {
	for _, name := range []string{YAMLFileName, JSONFileName} {
		t.Run(name, func(t *testing.T) {
			tmpDir := t.TempDir()
			// A directory in place of the file exists but cannot be read
			require.NoError(t, os.Mkdir(filepath.Join(tmpDir, name), 0755))

			_, err := LoadConfig(tmpDir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to read "+name)
		})
	}
}

func TestBuildExercisesWrapsInvalidArgument(t *testing.T) {
	cfg := &Config{Exercises: []ExerciseConfig{
		{Category: "Song", Name: "Song", TargetMinutes: 10, SongTitle: "Title"},
	}}

	_, err := cfg.BuildExercises()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "artist")
}

func TestSaveConfig(t *testing.T) {
	for _, name := range []string{YAMLFileName, JSONFileName} {
		t.Run(name, func(t *testing.T) {
			tmpDir := t.TempDir()

			cfg := DefaultConfig()
			cfg.Storage.DataDir = "/custom/sessions"
			cfg.Log.Level = "error"
			cfg.Exercises = cfg.Exercises[:1]

			require.NoError(t, SaveConfig(cfg, filepath.Join(tmpDir, name)))

			reloaded, err := LoadConfig(tmpDir)
			require.NoError(t, err)
			assert.Equal(t, "/custom/sessions", reloaded.Storage.DataDir)
			assert.Equal(t, "error", reloaded.Log.Level)
			assert.Equal(t, cfg.Exercises, reloaded.Exercises)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	partial := &Config{
		Log: LogConfig{Level: "debug"},
	}

	merged := MergeWithDefaults(partial)
	defaults := DefaultConfig()

	assert.Equal(t, "debug", merged.Log.Level)
	assert.Equal(t, defaults.Log.File, merged.Log.File)
	assert.Equal(t, defaults.Storage.DataDir, merged.Storage.DataDir)
	assert.Equal(t, "dark", merged.UI.Theme)
	assert.Equal(t, defaults.Exercises, merged.Exercises)
}

func TestMergeWithDefaultsKeepsEmptyCatalog(t *testing.T) {
	merged := MergeWithDefaults(&Config{Exercises: []ExerciseConfig{}})
	assert.Empty(t, merged.Exercises)
	assert.NotNil(t, merged.Exercises)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "practice"), expandHome("~/practice"))
	assert.Equal(t, "/abs/path", expandHome("/abs/path"))
	assert.Equal(t, "relative", expandHome("relative"))
}

func TestSlogLevelFallback(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, LogConfig{Level: "nonsense"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, LogConfig{Level: "WARN"}.SlogLevel())
}
