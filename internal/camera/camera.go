// Package camera implements a smoothed follow camera that maps world
// coordinates into a view anchored at a fixed point.
package camera

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

// DefaultSmoothness is the follow lag used when none is configured.
const DefaultSmoothness = 5.0

// Camera tracks a focused player. Pos is derived state recomputed every frame
// by SmoothFocus; Offset is the view-space point the focus is drawn at.
type Camera struct {
	Pos        core.Vector2
	Focus      *physics.Player
	Offset     core.Vector2
	Smoothness float64 // 0 snaps to the focus; larger values lag more
}

// New creates a camera centered on focus.
func New(focus *physics.Player, smoothness float64) *Camera {
	c := &Camera{
		Focus:      focus,
		Smoothness: smoothness,
	}
	c.Snap()
	return c
}

// SmoothFocus moves Pos one step toward the focus as an exponential moving
// average: Pos = (Focus.Pos + Pos*Smoothness) / (Smoothness + 1).
// It is called once per frame after physics. There is no world clamping.
func (c *Camera) SmoothFocus() {
	if c.Focus == nil {
		return
	}
	target := c.Focus.Pos.Clone()
	c.Pos = *target.Add(core.Scale(c.Pos, c.Smoothness)).Scale(1 / (c.Smoothness + 1))
}

// Snap places the camera exactly on the focus, skipping the lag.
func (c *Camera) Snap() {
	if c.Focus == nil {
		return
	}
	c.Pos = c.Focus.Pos.Clone()
}

// Transform maps a world point into view space:
// world - Pos + Offset. anim is the optional animation offset of the drawn
// object and may be zero.
func (c *Camera) Transform(world, anim core.Vector2) core.Vector2 {
	v := world.Clone()
	return *v.Sub(c.Pos).Add(c.Offset).Add(anim)
}
