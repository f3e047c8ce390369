package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the config schema version this build reads and writes.
// Files without a version are treated as CurrentVersion; newer files are
// rejected rather than half-read.
const CurrentVersion = 1

// ParseVersionedConfig parses YAML config data, checking its version
func ParseVersionedConfig(data []byte) (*Config, error) {
	return parseVersioned(data, yaml.Unmarshal)
}

// ParseVersionedJSONConfig parses JSON config data, checking its version
func ParseVersionedJSONConfig(data []byte) (*Config, error) {
	return parseVersioned(data, json.Unmarshal)
}

func parseVersioned(data []byte, unmarshal func([]byte, any) error) (*Config, error) {
	var raw map[string]any
	if err := unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		// Empty document
		raw = map[string]any{}
	}

	version, err := detectVersion(raw)
	if err != nil {
		return nil, err
	}

	if version > CurrentVersion {
		return nil, fmt.Errorf("config version %d is newer than supported version %d", version, CurrentVersion)
	}

	var cfg Config
	if err := unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Version = version
	return &cfg, nil
}

// detectVersion reads the version key; a missing key is CurrentVersion
func detectVersion(raw map[string]any) (int, error) {
	switch v := raw["version"].(type) {
	case nil:
		return CurrentVersion, nil
	case int:
		if v < 1 {
			return 0, fmt.Errorf("config version %d is not supported", v)
		}
		return v, nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("config version %v is not a whole number", v)
		}
		if v < 1 {
			return 0, fmt.Errorf("config version %v is not supported", v)
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("config version %v is not a number", v)
	}
}
