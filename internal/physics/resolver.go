package physics

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/terrain"
)

// Gravity is the default downward acceleration in units per tick squared.
const Gravity = -1.0

// StopThreshold is the horizontal speed below which motion snaps to zero.
const StopThreshold = 0.1

// Controls is the input snapshot the resolver reads at the start of a tick.
type Controls struct {
	Left  bool
	Right bool
	Up    bool // jump, honoured only while OnGround
	Down  bool // fast-fall
}

// Resolution describes what the resolver did during one tick.
type Resolution struct {
	Jumped   bool // a jump impulse was applied
	BlockedX bool // the full horizontal step collided
	BlockedY bool // the full vertical step collided
	Landed   bool // BlockedY while moving downward
	Bumped   bool // BlockedY while moving upward
}

// World is the static environment entities move through.
type World struct {
	Terrain *terrain.Terrain
	Gravity float64
}

// NewWorld creates a world over t with default gravity.
func NewWorld(t *terrain.Terrain) *World {
	return &World{Terrain: t, Gravity: Gravity}
}

// Step advances p by one tick: input acceleration, damping and gravity,
// swept resolution on X then Y, then contact probing.
//
// Jumping is level-triggered: holding Up re-jumps on every tick that starts
// with ground contact.
func (w *World) Step(p *Player, in Controls) Resolution {
	var res Resolution
	attr := p.Attribute

	if in.Right {
		p.Motion.X += attr.MoveSpeed
	}
	if in.Left {
		p.Motion.X -= attr.MoveSpeed
	}
	if in.Up && p.OnGround {
		p.Motion.Y += attr.JumpPower
		res.Jumped = true
	}
	if in.Down {
		p.Motion.Y -= attr.MoveSpeed
	}

	p.Motion.X *= attr.Resistance
	p.Motion.Y += w.Gravity * attr.GravityMultiplier
	if math.Abs(p.Motion.X) < StopThreshold {
		p.Motion.X = 0
	}

	res.BlockedX = w.sweep(p, axisX)
	movingDown := p.Motion.Y < 0
	res.BlockedY = w.sweep(p, axisY)
	res.Landed = res.BlockedY && movingDown
	res.Bumped = res.BlockedY && !movingDown

	w.ProbeContacts(p)
	return res
}

type axis int

const (
	axisX axis = iota
	axisY
)

// sweep resolves p's motion along one axis and reports whether the full step
// was blocked. A blocked step falls back to a unit-step search: the player
// advances to one unit short of the first colliding unit offset, and the
// axis velocity is zeroed even if no colliding offset is found in range.
//
// This is conservative advancement, not a time-of-impact solve. Geometry
// thinner than one unit can be skipped by the search, and corners are not
// corrected between the two axes.
func (w *World) sweep(p *Player, ax axis) bool {
	m := p.Motion.X
	if ax == axisY {
		m = p.Motion.Y
	}
	if m == 0 {
		return false
	}

	collidesAt := func(d float64) bool {
		if ax == axisX {
			return w.IsColliding(p, p.Pos.X+d, p.Pos.Y)
		}
		return w.IsColliding(p, p.Pos.X, p.Pos.Y+d)
	}
	advance := func(d float64) {
		if ax == axisX {
			p.Pos.X += d
		} else {
			p.Pos.Y += d
		}
	}

	if !collidesAt(m) {
		advance(m)
		return false
	}

	dir := math.Copysign(1, m)
	steps := int(math.Floor(math.Abs(m))) + 1
	for i := 1; i <= steps; i++ {
		if collidesAt(dir * float64(i)) {
			advance(dir * float64(i-1))
			break
		}
	}

	if ax == axisX {
		p.Motion.X = 0
	} else {
		p.Motion.Y = 0
	}
	return true
}

// ProbeContacts sets the four contact flags from 1-unit probes around the
// player's current position. These probes are the only source of contact
// state; OnGround therefore also gates the next tick's jump.
func (w *World) ProbeContacts(p *Player) {
	x, y := p.Pos.X, p.Pos.Y
	p.TouchingLeftWall = w.IsColliding(p, x-1, y)
	p.TouchingRightWall = w.IsColliding(p, x+1, y)
	p.TouchingCeiling = w.IsColliding(p, x, y+1)
	p.OnGround = w.IsColliding(p, x, y-1)
}
