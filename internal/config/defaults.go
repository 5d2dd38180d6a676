package config

import "embed"

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

//go:embed levels/*.yaml
var levelFS embed.FS

// DefaultPlatformerConfig returns the built-in configuration.
// It matches defaults/platformer.yaml and is used when the embedded file
// cannot be parsed.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PhysicsConfig{
			Gravity: -1,
		},
		Player: PlayerConfig{
			Width:             30,
			Height:            40,
			MoveSpeed:         1,
			GravityMultiplier: 1,
			Resistance:        0.8,
			WallResistance:    0,
			JumpPower:         16,
		},
		Camera: CameraConfig{
			Smoothness: 5,
			AnchorX:    0.5,
			AnchorY:    0.35,
		},
		View: ViewConfig{
			UnitsPerCellX:  10,
			UnitsPerCellY:  20,
			DecorationSeed: 1,
		},
		Input: InputConfig{
			InitialHoldTicks: 30,
			HoldTicks:        6,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPlatformerYAML
}
