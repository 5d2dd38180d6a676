package config

import (
	"fmt"
	"sort"
)

// Preset is a named movement feel applied on top of the loaded config.
type Preset string

const (
	PresetFloaty Preset = "floaty"
	PresetNormal Preset = "normal"
	PresetHeavy  Preset = "heavy"
)

// presetScale holds the multipliers a preset applies.
type presetScale struct {
	gravity    float64 // scales player.gravity_multiplier
	jump       float64 // scales player.jump_power
	resistance float64 // replaces player.resistance when non-zero
}

var presets = map[Preset]presetScale{
	PresetFloaty: {gravity: 0.5, jump: 0.75, resistance: 0.85},
	PresetNormal: {gravity: 1, jump: 1},
	PresetHeavy:  {gravity: 1.5, jump: 1.2, resistance: 0.7},
}

// Presets returns the known preset names, sorted.
func Presets() []Preset {
	names := make([]Preset, 0, len(presets))
	for p := range presets {
		names = append(names, p)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// ParsePreset resolves a preset name. An empty name is valid and means no
// preset.
func ParsePreset(name string) (Preset, error) {
	p := Preset(name)
	if _, ok := presets[p]; !ok && p != "" {
		return "", fmt.Errorf("config: %w %q (want one of %v)", ErrUnknownPreset, name, Presets())
	}
	return p, nil
}

// ApplyPreset modifies the player section for a movement preset.
// An empty preset leaves the config unchanged.
func ApplyPreset(cfg *PlatformerConfig, preset Preset) error {
	if preset == "" {
		return nil
	}
	if _, err := ParsePreset(string(preset)); err != nil {
		return err
	}
	s := presets[preset]

	cfg.Player.GravityMultiplier *= s.gravity
	cfg.Player.JumpPower *= s.jump
	if s.resistance != 0 {
		cfg.Player.Resistance = s.resistance
	}
	return nil
}
