package physics

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/terrain"
)

// floorWorld has a floor spanning x in [0, 200], y in [0, 50].
func floorWorld(extra ...terrain.Block) *World {
	blocks := append([]terrain.Block{
		{Rect: terrain.R(0, 0, 200, 50), Material: terrain.Grass},
	}, extra...)
	return NewWorld(terrain.New(blocks...))
}

func specAttribute() EntityAttribute {
	return EntityAttribute{
		Size:              core.Vec2(10, 10),
		MoveSpeed:         1,
		GravityMultiplier: 1,
		Resistance:        0.9,
		JumpPower:         20,
	}
}

func TestStepFallsOntoFloor(t *testing.T) {
	w := floorWorld()
	p := NewPlayer(core.Vec2(100, 100), specAttribute())

	landed := false
	for tick := 0; tick < 60; tick++ {
		res := w.Step(p, Controls{})
		if p.Pos.Y <= 50 {
			t.Fatalf("tick %d: bottom edge %v penetrated the floor top", tick, p.Pos.Y)
		}
		if res.Landed {
			landed = true
			break
		}
		if p.OnGround {
			t.Fatalf("tick %d: on ground before landing at y=%v", tick, p.Pos.Y)
		}
	}

	if !landed {
		t.Fatal("player never landed")
	}
	// Falls 1+2+...+9 = 45 to y=55, then the 10-unit step collides and the
	// unit search stops one unit short of the touching position.
	if p.Pos.Y != 51 {
		t.Errorf("landed at y=%v, expected 51", p.Pos.Y)
	}
	if !p.OnGround || p.Motion.Y != 0 {
		t.Errorf("after landing OnGround=%v Motion.Y=%v", p.OnGround, p.Motion.Y)
	}
}

func TestStepSingleTickLanding(t *testing.T) {
	w := floorWorld()
	p := NewPlayer(core.Vec2(100, 50.5), specAttribute())

	res := w.Step(p, Controls{})

	if !res.Landed || !res.BlockedY {
		t.Errorf("expected a landing, got %+v", res)
	}
	if p.Pos.Y != 50.5 {
		t.Errorf("y = %v, expected 50.5 (first unit step already collides)", p.Pos.Y)
	}
	if !p.OnGround {
		t.Error("OnGround should be true")
	}
	if p.TouchingLeftWall || p.TouchingRightWall {
		t.Error("floor below should not register as a wall")
	}
}

func TestStepRestIsIdempotent(t *testing.T) {
	tests := []struct {
		name string
		y    float64
	}{
		{"one unit gap", 51},
		{"fractional gap", 50.25},
		{"exact touch", 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := floorWorld()
			p := NewPlayer(core.Vec2(100, tc.y), specAttribute())
			for tick := 0; tick < 10; tick++ {
				w.Step(p, Controls{})
				if p.Pos.Y != tc.y {
					t.Fatalf("tick %d: y drifted to %v", tick, p.Pos.Y)
				}
				if !p.OnGround {
					t.Fatalf("tick %d: OnGround = false", tick)
				}
				if p.Motion.Y != 0 {
					t.Fatalf("tick %d: Motion.Y = %v", tick, p.Motion.Y)
				}
			}
		})
	}
}

func TestStepRightAccelerationBounded(t *testing.T) {
	w := NewWorld(terrain.New())
	attr := specAttribute()
	p := NewPlayer(core.Vec2(0, 1000), attr)
	limit := attr.MoveSpeed / (1 - attr.Resistance)

	prevX := p.Pos.X
	prevStep := 0.0
	for tick := 0; tick < 30; tick++ {
		w.Step(p, Controls{Right: true})
		step := p.Pos.X - prevX
		if step <= 0 {
			t.Fatalf("tick %d: x did not increase (step %v)", tick, step)
		}
		if step <= prevStep {
			t.Fatalf("tick %d: step %v not larger than %v while accelerating", tick, step, prevStep)
		}
		if p.Motion.X >= limit {
			t.Fatalf("tick %d: velocity %v reached steady-state bound %v", tick, p.Motion.X, limit)
		}
		prevX, prevStep = p.Pos.X, step
	}

	// After release the increments shrink until damping snaps motion to zero.
	for tick := 0; tick < 100; tick++ {
		w.Step(p, Controls{})
		step := p.Pos.X - prevX
		if step > prevStep {
			t.Fatalf("release tick %d: step grew from %v to %v", tick, prevStep, step)
		}
		if step > 0 && step >= prevStep {
			t.Fatalf("release tick %d: step %v not strictly decreasing", tick, step)
		}
		prevX, prevStep = p.Pos.X, step
	}
	if p.Motion.X != 0 {
		t.Errorf("motion should snap to 0 after damping, got %v", p.Motion.X)
	}
}

func TestStepStopsAtWall(t *testing.T) {
	tests := []struct {
		name      string
		direction float64
	}{
		{"right", 1},
		{"left", -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Player box spans x in [95, 105]; the wall face is 5 units away.
			wallLeft := 110.0
			if tc.direction < 0 {
				wallLeft = 60 // wall spans [60, 90]
			}
			w := floorWorld(terrain.Block{Rect: terrain.R(wallLeft, 51, 30, 100), Material: terrain.Stone})
			p := NewPlayer(core.Vec2(100, 60), specAttribute())
			p.Motion.X = 12 * tc.direction

			res := w.Step(p, Controls{})

			if !res.BlockedX {
				t.Fatalf("expected X to be blocked, got %+v", res)
			}
			if p.Motion.X != 0 {
				t.Errorf("Motion.X = %v, expected 0", p.Motion.X)
			}
			box := p.Box()
			if tc.direction > 0 {
				if box.Right != wallLeft-1 {
					t.Errorf("right edge = %v, expected %v", box.Right, wallLeft-1)
				}
				if !p.TouchingRightWall || p.TouchingLeftWall {
					t.Errorf("right=%v left=%v", p.TouchingRightWall, p.TouchingLeftWall)
				}
			} else {
				if box.Left != wallLeft+30+1 {
					t.Errorf("left edge = %v, expected %v", box.Left, wallLeft+31)
				}
				if !p.TouchingLeftWall || p.TouchingRightWall {
					t.Errorf("left=%v right=%v", p.TouchingLeftWall, p.TouchingRightWall)
				}
			}
			if w.IsColliding(p, p.Pos.X, p.Pos.Y) {
				t.Error("player overlaps geometry after resolution")
			}
		})
	}
}

func TestStepHighSpeedIntoThickWall(t *testing.T) {
	w := NewWorld(terrain.New(terrain.Block{Rect: terrain.R(145, 0, 300, 500)}))
	attr := specAttribute()
	attr.Resistance = 1
	attr.GravityMultiplier = 0
	p := NewPlayer(core.Vec2(100, 100), attr)
	p.Motion.X = 200

	w.Step(p, Controls{})

	if right := p.Box().Right; right != 144 {
		t.Errorf("right edge = %v, expected 144", right)
	}
	if !p.TouchingRightWall {
		t.Error("expected right wall contact")
	}
}

// Only the destination of a full step is tested, so a wall thinner than the
// step is skipped when the destination is clear.
func TestStepSkipsThinGeometry(t *testing.T) {
	w := NewWorld(terrain.New(terrain.Block{Rect: terrain.R(145, 0, 2, 500)}))
	attr := specAttribute()
	attr.Resistance = 1
	attr.GravityMultiplier = 0
	p := NewPlayer(core.Vec2(100, 100), attr)
	p.Motion.X = 200

	res := w.Step(p, Controls{})

	if res.BlockedX || p.Pos.X != 300 {
		t.Errorf("expected the step to pass the wall, got x=%v %+v", p.Pos.X, res)
	}
}

func TestStepJump(t *testing.T) {
	w := floorWorld()
	p := NewPlayer(core.Vec2(100, 51), specAttribute())
	w.ProbeContacts(p)

	res := w.Step(p, Controls{Up: true})
	if !res.Jumped {
		t.Fatal("grounded player should jump")
	}
	// 20 jump power, then gravity -1 in the same tick
	if p.Motion.Y != 19 || p.Pos.Y != 70 {
		t.Errorf("after jump Motion.Y=%v Pos.Y=%v, expected 19 and 70", p.Motion.Y, p.Pos.Y)
	}
	if p.OnGround {
		t.Error("player should leave the ground")
	}

	// Airborne: holding Up adds nothing
	res = w.Step(p, Controls{Up: true})
	if res.Jumped || p.Motion.Y != 18 {
		t.Errorf("mid-air jump applied: %+v Motion.Y=%v", res, p.Motion.Y)
	}
}

func TestStepHeldJumpRepeats(t *testing.T) {
	w := floorWorld()
	p := NewPlayer(core.Vec2(100, 51), specAttribute())
	w.ProbeContacts(p)

	jumps := 0
	for tick := 0; tick < 200; tick++ {
		if w.Step(p, Controls{Up: true}).Jumped {
			jumps++
		}
	}
	if jumps < 3 {
		t.Errorf("holding jump should re-trigger on each landing, got %d jumps", jumps)
	}
}

func TestStepCeilingBump(t *testing.T) {
	// Ceiling 10 units above the player's head.
	w := floorWorld(terrain.Block{Rect: terrain.R(0, 71, 200, 20)})
	p := NewPlayer(core.Vec2(100, 51), specAttribute())
	w.ProbeContacts(p)

	res := w.Step(p, Controls{Up: true})
	if !res.Bumped || res.Landed {
		t.Fatalf("expected ceiling bump, got %+v", res)
	}
	if p.Motion.Y != 0 {
		t.Errorf("Motion.Y = %v after bump, expected 0", p.Motion.Y)
	}
	if top := p.Box().Top; top != 70 {
		t.Errorf("head at %v, expected 70", top)
	}
	if !p.TouchingCeiling {
		t.Error("TouchingCeiling should be set")
	}
}

func TestStepFastFall(t *testing.T) {
	w := NewWorld(terrain.New())
	p := NewPlayer(core.Vec2(0, 1000), specAttribute())

	w.Step(p, Controls{Down: true})
	if p.Motion.Y != -2 {
		t.Errorf("Motion.Y = %v, expected -2 (fast-fall plus gravity)", p.Motion.Y)
	}
}

func TestStepFreeFallUnbounded(t *testing.T) {
	w := NewWorld(nil)
	p := NewPlayer(core.Zero(), specAttribute())

	for tick := 1; tick <= 500; tick++ {
		w.Step(p, Controls{})
		if p.Motion.Y != -float64(tick) {
			t.Fatalf("tick %d: Motion.Y = %v, no terminal velocity expected", tick, p.Motion.Y)
		}
	}
	if p.OnGround || p.TouchingLeftWall || p.TouchingRightWall || p.TouchingCeiling {
		t.Error("empty world should produce no contacts")
	}
}

func TestStepSlidesAlongFloor(t *testing.T) {
	w := floorWorld()
	p := NewPlayer(core.Vec2(20, 51), specAttribute())
	w.ProbeContacts(p)

	for tick := 0; tick < 20; tick++ {
		w.Step(p, Controls{Right: true})
		if p.Pos.Y != 51 {
			t.Fatalf("tick %d: walking changed height to %v", tick, p.Pos.Y)
		}
		if !p.OnGround {
			t.Fatalf("tick %d: lost ground contact while walking", tick)
		}
	}
	if p.Pos.X <= 20 {
		t.Errorf("player did not move: x=%v", p.Pos.X)
	}
}

func TestStepDeterministic(t *testing.T) {
	run := func() *Player {
		w := floorWorld(
			terrain.Block{Rect: terrain.R(150, 51, 20, 40)},
			terrain.Block{Rect: terrain.R(60, 120, 50, 10)},
		)
		p := NewPlayer(core.Vec2(30, 120), specAttribute())
		for tick := 0; tick < 300; tick++ {
			in := Controls{
				Right: tick%50 < 30,
				Left:  tick%50 >= 40,
				Up:    tick%17 == 0,
			}
			w.Step(p, in)
		}
		return p
	}

	a, b := run(), run()
	if *a != *b {
		t.Errorf("runs diverged:\n%+v\n%+v", *a, *b)
	}
	if math.IsNaN(a.Pos.X) || math.IsNaN(a.Pos.Y) {
		t.Error("position became NaN")
	}
}
