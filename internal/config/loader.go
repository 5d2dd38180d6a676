package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// configDirName is the per-user directory under $HOME.
const configDirName = ".platformer"

// LoadPlatformer loads the platformer configuration.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml ->
// ./configs/platformer.yaml -> embedded default.
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. The result is validated.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	cfg, err := loadPlatformer(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadPlatformer(customPath string) (PlatformerConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultPlatformerConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("platformer.yaml"); userCfgPath != "" {
		if cfg, ok := tryDecode(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryDecode(filepath.Join("configs", "platformer.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(defaultPlatformerYAML, &cfg); err != nil {
		return DefaultPlatformerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryDecode reads an optional config file. Missing or malformed files are
// skipped so the next location in the search order is used.
func tryDecode(p string) (PlatformerConfig, bool) {
	cfg := DefaultPlatformerConfig()
	data, err := os.ReadFile(p)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDirName, "configs", filename)
}

// Marshal encodes cfg as YAML.
func Marshal(cfg PlatformerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// LevelIDs returns the IDs of all embedded levels, sorted.
func LevelIDs() []string {
	entries, err := fs.ReadDir(levelFS, "levels")
	if err != nil {
		return nil
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".yaml" {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(ids)
	return ids
}

// LoadLevel loads and validates an embedded level by ID.
func LoadLevel(id string) (LevelConfig, error) {
	data, err := levelFS.ReadFile(path.Join("levels", id+".yaml"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return LevelConfig{}, fmt.Errorf("config: %w %q", ErrUnknownLevel, id)
		}
		return LevelConfig{}, fmt.Errorf("config: read level %q: %w", id, err)
	}
	lvl, err := parseLevel(data, id)
	if err != nil {
		return lvl, fmt.Errorf("config: level %q: %w", id, err)
	}
	return lvl, nil
}

// LoadLevelFile loads and validates a level from disk. A file without an id
// takes its base name as the ID.
func LoadLevelFile(p string) (LevelConfig, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return LevelConfig{}, fmt.Errorf("failed to read level %s: %w", p, err)
	}
	id := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
	lvl, err := parseLevel(data, id)
	if err != nil {
		return lvl, fmt.Errorf("config: level file %s: %w", p, err)
	}
	return lvl, nil
}

func parseLevel(data []byte, fallbackID string) (LevelConfig, error) {
	var lvl LevelConfig
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return lvl, fmt.Errorf("parse: %w", err)
	}
	if lvl.ID == "" {
		lvl.ID = fallbackID
	}
	if lvl.Name == "" {
		lvl.Name = lvl.ID
	}
	if err := lvl.Validate(); err != nil {
		return lvl, err
	}
	return lvl, nil
}
