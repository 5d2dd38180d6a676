package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/terrain"
)

// LevelConfig is one level file.
type LevelConfig struct {
	ID           string        `yaml:"id"`
	Name         string        `yaml:"name"`
	Spawn        [2]float64    `yaml:"spawn,flow"`         // feet-center anchor
	RespawnBelow float64       `yaml:"respawn_below"`      // falling below this y respawns the player
	Goal         *RectConfig   `yaml:"goal,omitempty,flow"` // nil means the level never ends
	Blocks       []BlockConfig `yaml:"blocks"`
}

// RectConfig is [left, bottom, width, height] in world units.
type RectConfig [4]float64

// Rect converts to a terrain rectangle.
func (r RectConfig) Rect() terrain.Rect {
	return terrain.R(r[0], r[1], r[2], r[3])
}

// BlockConfig is one terrain block.
type BlockConfig struct {
	Rect      RectConfig       `yaml:"rect,flow"`
	Material  string           `yaml:"material,omitempty"`
	Animation *AnimationConfig `yaml:"animation,omitempty"`
}

// AnimationConfig names a cosmetic block animation.
type AnimationConfig struct {
	Kind      string  `yaml:"kind"`
	Amplitude float64 `yaml:"amplitude"`
	Period    int     `yaml:"period"` // ticks
}

// SpawnPoint returns the spawn anchor as a vector.
func (l LevelConfig) SpawnPoint() core.Vector2 {
	return core.Vec2(l.Spawn[0], l.Spawn[1])
}

// Terrain builds the level geometry. Every block is checked, and all problems
// are reported together.
func (l LevelConfig) Terrain() (*terrain.Terrain, error) {
	blocks := make([]terrain.Block, 0, len(l.Blocks))
	var errs []error

	for i, bc := range l.Blocks {
		b, err := bc.block()
		if err != nil {
			errs = append(errs, fmt.Errorf("config: level %q block %d: %w", l.ID, i, err))
			continue
		}
		blocks = append(blocks, b)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return terrain.New(blocks...), nil
}

func (bc BlockConfig) block() (terrain.Block, error) {
	var b terrain.Block

	r := bc.Rect.Rect()
	if r.Width < 0 || r.Height < 0 {
		return b, fmt.Errorf("negative size %vx%v: %w", r.Width, r.Height, ErrInvalidConfig)
	}
	m, err := terrain.ParseMaterial(bc.Material)
	if err != nil {
		return b, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	b.Rect = r
	b.Material = m

	if bc.Animation != nil {
		anim, err := terrain.NewAnimation(bc.Animation.Kind, bc.Animation.Amplitude, bc.Animation.Period)
		if err != nil {
			return b, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		b.Animation = anim
	}
	return b, nil
}

// Validate checks the level's fields and geometry.
func (l LevelConfig) Validate() error {
	var errs []error
	if l.ID == "" {
		errs = append(errs, fmt.Errorf("config: level without id: %w", ErrInvalidConfig))
	}
	if l.RespawnBelow >= l.Spawn[1] {
		errs = append(errs, fmt.Errorf("config: level %q: respawn_below %v must be below spawn y %v: %w",
			l.ID, l.RespawnBelow, l.Spawn[1], ErrInvalidConfig))
	}
	if l.Goal != nil && (l.Goal[2] <= 0 || l.Goal[3] <= 0) {
		errs = append(errs, fmt.Errorf("config: level %q: goal must have area: %w", l.ID, ErrInvalidConfig))
	}
	if _, err := l.Terrain(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
