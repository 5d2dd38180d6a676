// Package config provides YAML-based configuration loading for the
// platformer: movement tuning, camera and view settings, input handling, and
// the embedded level files.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
	"github.com/vovakirdan/tui-platformer/internal/render"
)

var (
	// ErrInvalidConfig is wrapped by every validation failure.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrUnknownLevel is returned when a level ID has no embedded file.
	ErrUnknownLevel = errors.New("unknown level")
	// ErrUnknownPreset is returned for movement presets that do not exist.
	ErrUnknownPreset = errors.New("unknown preset")
)

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Camera  CameraConfig  `yaml:"camera"`
	View    ViewConfig    `yaml:"view"`
	Input   InputConfig   `yaml:"input"`
}

// PhysicsConfig defines world-wide physics parameters.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"` // units per tick squared, negative is down
}

// PlayerConfig defines the player's movement attributes.
type PlayerConfig struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	MoveSpeed         float64 `yaml:"move_speed"`
	GravityMultiplier float64 `yaml:"gravity_multiplier"`
	Resistance        float64 `yaml:"resistance"`
	WallResistance    float64 `yaml:"wall_resistance"`
	JumpPower         float64 `yaml:"jump_power"`
}

// CameraConfig defines the follow camera.
type CameraConfig struct {
	Smoothness float64 `yaml:"smoothness"`
	AnchorX    float64 `yaml:"anchor_x"` // fraction of the view width, 0 = left edge
	AnchorY    float64 `yaml:"anchor_y"` // fraction of the view height, 0 = bottom edge
}

// ViewConfig defines the world-to-terminal scale and decoration.
type ViewConfig struct {
	UnitsPerCellX  float64 `yaml:"units_per_cell_x"`
	UnitsPerCellY  float64 `yaml:"units_per_cell_y"`
	DecorationSeed int64   `yaml:"decoration_seed"`
}

// InputConfig defines how key presses become held flags. Terminals do not
// report key releases, so a movement flag stays held for a number of ticks
// after the last press.
type InputConfig struct {
	InitialHoldTicks int `yaml:"initial_hold_ticks"` // after the first press, bridges the auto-repeat delay
	HoldTicks        int `yaml:"hold_ticks"`         // after each auto-repeat
}

// Attribute converts the player section into physics attributes.
func (p PlayerConfig) Attribute() physics.EntityAttribute {
	return physics.EntityAttribute{
		Size:              core.Vec2(p.Width, p.Height),
		MoveSpeed:         p.MoveSpeed,
		GravityMultiplier: p.GravityMultiplier,
		Resistance:        p.Resistance,
		WallResistance:    p.WallResistance,
		JumpPower:         p.JumpPower,
	}
}

// Viewport converts the view section into a render viewport.
func (v ViewConfig) Viewport() render.Viewport {
	return render.Viewport{UnitsPerCellX: v.UnitsPerCellX, UnitsPerCellY: v.UnitsPerCellY}
}

// Validate checks value ranges. All problems are reported together, each
// wrapping ErrInvalidConfig.
func (c PlatformerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("config: "+format+": %w", append(args, ErrInvalidConfig)...))
		}
	}

	check(c.Player.Width >= 0 && c.Player.Height >= 0,
		"player size %vx%v must not be negative", c.Player.Width, c.Player.Height)
	check(c.Player.Resistance >= 0 && c.Player.Resistance <= 1,
		"player.resistance %v outside [0, 1]", c.Player.Resistance)
	check(c.Player.WallResistance >= 0 && c.Player.WallResistance <= 1,
		"player.wall_resistance %v outside [0, 1]", c.Player.WallResistance)
	check(c.Player.MoveSpeed >= 0, "player.move_speed %v must not be negative", c.Player.MoveSpeed)
	check(c.Player.JumpPower >= 0, "player.jump_power %v must not be negative", c.Player.JumpPower)
	check(c.Camera.Smoothness >= 0, "camera.smoothness %v must not be negative", c.Camera.Smoothness)
	check(c.Camera.AnchorX >= 0 && c.Camera.AnchorX <= 1, "camera.anchor_x %v outside [0, 1]", c.Camera.AnchorX)
	check(c.Camera.AnchorY >= 0 && c.Camera.AnchorY <= 1, "camera.anchor_y %v outside [0, 1]", c.Camera.AnchorY)
	check(c.View.UnitsPerCellX > 0 && c.View.UnitsPerCellY > 0,
		"view units per cell %vx%v must be positive", c.View.UnitsPerCellX, c.View.UnitsPerCellY)
	check(c.Input.HoldTicks >= 1, "input.hold_ticks %d must be at least 1", c.Input.HoldTicks)
	check(c.Input.InitialHoldTicks >= c.Input.HoldTicks,
		"input.initial_hold_ticks %d must be at least hold_ticks", c.Input.InitialHoldTicks)

	return errors.Join(errs...)
}
