package physics

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestNewPlayerCopiesPosition(t *testing.T) {
	spawn := core.Vec2(10, 20)
	p := NewPlayer(spawn, DefaultAttribute())
	p.Pos.Add(core.One())

	if spawn != core.Vec2(10, 20) {
		t.Error("moving the player must not modify the spawn vector")
	}
	if p.Motion != core.Zero() || p.OnGround {
		t.Errorf("new player should be at rest and airborne: %+v", p)
	}
}

func TestPlayerRespawn(t *testing.T) {
	p := NewPlayer(core.Zero(), DefaultAttribute())
	p.Pos = core.Vec2(500, -300)
	p.Motion = core.Vec2(4, -50)
	p.OnGround = true
	p.TouchingLeftWall = true
	p.TouchingCeiling = true

	p.Respawn(core.Vec2(1, 2))

	if p.Pos != core.Vec2(1, 2) || p.Motion != core.Zero() {
		t.Errorf("Respawn: pos=%+v motion=%+v", p.Pos, p.Motion)
	}
	if p.OnGround || p.TouchingLeftWall || p.TouchingRightWall || p.TouchingCeiling {
		t.Error("Respawn should clear contact flags")
	}
	if p.Attribute != DefaultAttribute() {
		t.Error("Respawn must keep attributes")
	}
}
