package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tygara/practicetracker/internal/domain"
	"gopkg.in/yaml.v3"
)

// Config file names, checked in this order
const (
	YAMLFileName    = ".practicetracker.yaml"
	YMLFileName     = ".practicetracker.yml"
	JSONFileName    = ".practicetracker.json"
	envDataDir      = "PRACTICETRACKER_DATA_DIR"
	envLogLevel     = "PRACTICETRACKER_LOG_LEVEL"
	envTheme        = "PRACTICETRACKER_THEME"
	defaultLogLevel = "info"
)

// Config represents the full practicetracker configuration
type Config struct {
	Version   int              `json:"version" yaml:"version"`
	Storage   StorageConfig    `json:"storage" yaml:"storage"`
	Log       LogConfig        `json:"log" yaml:"log"`
	UI        UIConfig         `json:"ui" yaml:"ui"`
	Exercises []ExerciseConfig `json:"exercises" yaml:"exercises"`
}

// StorageConfig contains session file settings
type StorageConfig struct {
	DataDir string `json:"dataDir" yaml:"data_dir"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `json:"level" yaml:"level"`
	File  string `json:"file" yaml:"file"`
}

// UIConfig contains TUI settings
type UIConfig struct {
	Theme           string `json:"theme" yaml:"theme"`
	ConfirmOnDelete *bool  `json:"confirmOnDelete,omitempty" yaml:"confirm_on_delete,omitempty"`
}

// ExerciseConfig describes one exercise of the practice catalog.
// Which fields apply depends on Category.
type ExerciseConfig struct {
	Category      string `json:"category" yaml:"category"`
	Name          string `json:"name" yaml:"name"`
	TargetMinutes int    `json:"targetMinutes" yaml:"target_minutes"`
	ScaleName     string `json:"scaleName,omitempty" yaml:"scale_name,omitempty"`
	Key           string `json:"key,omitempty" yaml:"key,omitempty"`
	ChordSymbol   string `json:"chordSymbol,omitempty" yaml:"chord_symbol,omitempty"`
	TempoBpm      int    `json:"tempoBpm,omitempty" yaml:"tempo_bpm,omitempty"`
	SongTitle     string `json:"songTitle,omitempty" yaml:"song_title,omitempty"`
	Artist        string `json:"artist,omitempty" yaml:"artist,omitempty"`
}

// Build converts the config entry into a validated exercise
func (e ExerciseConfig) Build() (domain.Exercise, error) {
	kind, err := domain.ParseKind(e.Category)
	if err != nil {
		return domain.Exercise{}, err
	}

	switch kind {
	case domain.KindScale:
		return domain.NewScale(e.Name, e.TargetMinutes, e.ScaleName, e.Key, e.TempoBpm)
	case domain.KindArpeggio:
		return domain.NewArpeggio(e.Name, e.TargetMinutes, e.ChordSymbol, e.TempoBpm)
	default:
		return domain.NewSong(e.Name, e.TargetMinutes, e.SongTitle, e.Artist)
	}
}

// BuildExercises converts the configured catalog into exercises, in order
func (c *Config) BuildExercises() ([]domain.Exercise, error) {
	exercises := make([]domain.Exercise, 0, len(c.Exercises))
	for i, ec := range c.Exercises {
		ex, err := ec.Build()
		if err != nil {
			return nil, fmt.Errorf("exercise %d (%q): %w", i, ec.Name, err)
		}
		exercises = append(exercises, ex)
	}
	return exercises, nil
}

// SlogLevel returns the configured log level, defaulting to info
func (l LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// DeleteNeedsConfirm reports whether deleting a session asks first
func (u UIConfig) DeleteNeedsConfirm() bool {
	return u.ConfirmOnDelete == nil || *u.ConfirmOnDelete
}

// DefaultExercises returns the built-in practice catalog
func DefaultExercises() []ExerciseConfig {
	return []ExerciseConfig{
		{Category: "Scale", Name: "C Major Scale", TargetMinutes: 15, ScaleName: "Major", Key: "C", TempoBpm: 80},
		{Category: "Arpeggio", Name: "Cmaj7 Arpeggio", TargetMinutes: 10, ChordSymbol: "Cmaj7", TempoBpm: 70},
		{Category: "Song", Name: "Repertoire", TargetMinutes: 20, SongTitle: "Blackbird", Artist: "The Beatles"},
	}
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	baseDir := filepath.Join(homeDir, ".practicetracker")

	return &Config{
		Version: CurrentVersion,
		Storage: StorageConfig{
			DataDir: filepath.Join(baseDir, "sessions"),
		},
		Log: LogConfig{
			Level: defaultLogLevel,
			File:  filepath.Join(baseDir, "practicetracker.log"),
		},
		UI: UIConfig{
			Theme: "dark",
		},
		Exercises: DefaultExercises(),
	}
}

// LoadConfig loads configuration from dir with priority:
// 1. PRACTICETRACKER_* environment variables
// 2. .practicetracker.yaml / .practicetracker.yml in dir
// 3. .practicetracker.json in dir
// 4. Defaults
func LoadConfig(dir string) (*Config, error) {
	cfg, err := readConfigFile(dir)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	cfg = MergeWithDefaults(cfg)
	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// readConfigFile returns nil, nil when no config file exists in dir
func readConfigFile(dir string) (*Config, error) {
	for _, name := range []string{YAMLFileName, YMLFileName} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		cfg, err := ParseVersionedConfig(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(filepath.Join(dir, JSONFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", JSONFileName, err)
	}
	cfg, err := ParseVersionedJSONConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", JSONFileName, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to path. The format follows the extension:
// .yaml/.yml produce YAML, anything else JSON. The file is stamped with
// CurrentVersion.
func SaveConfig(cfg *Config, path string) error {
	out := *cfg
	out.Version = CurrentVersion

	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(&out)
	default:
		data, err = json.MarshalIndent(&out, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = defaults.Storage.DataDir
	}
	cfg.Storage.DataDir = expandHome(cfg.Storage.DataDir)

	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	if cfg.Log.File == "" {
		cfg.Log.File = defaults.Log.File
	}
	cfg.Log.File = expandHome(cfg.Log.File)

	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}

	if cfg.Exercises == nil {
		cfg.Exercises = defaults.Exercises
	}

	return cfg
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(envDataDir); v != "" {
		cfg.Storage.DataDir = expandHome(v)
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(envTheme); v != "" {
		cfg.UI.Theme = v
	}
}

func (c *Config) validate() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	if c.UI.Theme != "dark" && c.UI.Theme != "light" {
		return fmt.Errorf("ui.theme %q must be dark or light", c.UI.Theme)
	}
	if _, err := c.BuildExercises(); err != nil {
		return err
	}
	return nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
