package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg PlatformerConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultPlatformerConfig() {
		t.Errorf("embedded default differs from DefaultPlatformerConfig:\n%+v\n%+v", cfg, DefaultPlatformerConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoadPlatformerCustomPath(t *testing.T) {
	p := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("player:\n  jump_power: 22\ncamera:\n  smoothness: 0\n")
	if err := os.WriteFile(p, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlatformer(p)
	if err != nil {
		t.Fatalf("LoadPlatformer: %v", err)
	}
	if cfg.Player.JumpPower != 22 || cfg.Camera.Smoothness != 0 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Keys absent from the file keep their defaults
	if cfg.Player.Width != 30 || cfg.View.UnitsPerCellY != 20 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadPlatformerErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPlatformer(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("player: [1, 2"), 0o600)
	if _, err := LoadPlatformer(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("player:\n  resistance: 1.5\n"), 0o600)
	if _, err := LoadPlatformer(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("out of range resistance should be ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PlatformerConfig)
	}{
		{"negative width", func(c *PlatformerConfig) { c.Player.Width = -1 }},
		{"resistance above 1", func(c *PlatformerConfig) { c.Player.Resistance = 1.01 }},
		{"negative resistance", func(c *PlatformerConfig) { c.Player.Resistance = -0.1 }},
		{"negative smoothness", func(c *PlatformerConfig) { c.Camera.Smoothness = -1 }},
		{"anchor outside view", func(c *PlatformerConfig) { c.Camera.AnchorY = 2 }},
		{"zero cell size", func(c *PlatformerConfig) { c.View.UnitsPerCellX = 0 }},
		{"zero hold", func(c *PlatformerConfig) { c.Input.HoldTicks = 0 }},
		{"initial hold shorter than repeat", func(c *PlatformerConfig) { c.Input.InitialHoldTicks = 2 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPlatformerConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}

	// Zero-size players are allowed; they fall through everything
	cfg := DefaultPlatformerConfig()
	cfg.Player.Width, cfg.Player.Height = 0, 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("zero-size player rejected: %v", err)
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultPlatformerConfig()

	cfg := base
	if err := ApplyPreset(&cfg, ""); err != nil || cfg != base {
		t.Errorf("empty preset should not change config: %v", err)
	}
	if err := ApplyPreset(&cfg, PresetNormal); err != nil || cfg != base {
		t.Errorf("normal preset should not change config: %v", err)
	}

	floaty := base
	ApplyPreset(&floaty, PresetFloaty)
	heavy := base
	ApplyPreset(&heavy, PresetHeavy)
	if !(floaty.Player.GravityMultiplier < base.Player.GravityMultiplier &&
		base.Player.GravityMultiplier < heavy.Player.GravityMultiplier) {
		t.Errorf("gravity multipliers out of order: %v %v %v",
			floaty.Player.GravityMultiplier, base.Player.GravityMultiplier, heavy.Player.GravityMultiplier)
	}
	for _, c := range []PlatformerConfig{floaty, heavy} {
		if err := c.Validate(); err != nil {
			t.Errorf("preset produced invalid config: %v", err)
		}
	}

	if err := ApplyPreset(&cfg, "moon"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
	if got := Presets(); !slices.Equal(got, []Preset{PresetFloaty, PresetHeavy, PresetNormal}) {
		t.Errorf("Presets() = %v", got)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultPlatformerConfig())
	if err != nil {
		t.Fatal(err)
	}
	var back PlatformerConfig
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != DefaultPlatformerConfig() {
		t.Errorf("dump does not reload to the same config:\n%s", data)
	}
}
