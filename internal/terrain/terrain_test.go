package terrain

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestRectEdges(t *testing.T) {
	r := R(300, 400, 100, 50)
	if r.Right() != 400 || r.Top() != 450 {
		t.Errorf("Right/Top = %v/%v, expected 400/450", r.Right(), r.Top())
	}

	moved := r.Translate(core.Vec2(-10, 5))
	if moved.Left != 290 || moved.Bottom != 405 || moved.Width != 100 {
		t.Errorf("Translate = %+v", moved)
	}
	if r.Left != 300 {
		t.Error("Translate must not modify the receiver")
	}
}

func TestParseMaterial(t *testing.T) {
	tests := []struct {
		name    string
		want    Material
		wantErr bool
	}{
		{"grass", Grass, false},
		{"dirt", Dirt, false},
		{"stone", Stone, false},
		{"", Dirt, false},
		{"lava", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseMaterial(tc.name)
			if tc.wantErr {
				if !errors.Is(err, ErrUnknownMaterial) {
					t.Errorf("expected ErrUnknownMaterial, got %v", err)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Errorf("ParseMaterial(%q) = %v, %v", tc.name, got, err)
			}
		})
	}

	for _, m := range Materials() {
		back, err := ParseMaterial(m.String())
		if err != nil || back != m {
			t.Errorf("material %v does not round-trip through its name", m)
		}
	}
}

func TestNewAnimation(t *testing.T) {
	none, err := NewAnimation(AnimNone, 5, 60)
	if err != nil || none != nil {
		t.Errorf("empty kind should give nil animation, got %v, %v", none, err)
	}

	if _, err := NewAnimation("spin", 5, 60); !errors.Is(err, ErrUnknownAnimation) {
		t.Errorf("expected ErrUnknownAnimation, got %v", err)
	}
	if _, err := NewAnimation(AnimBob, 5, 0); err == nil {
		t.Error("zero period should be rejected")
	}

	bob, err := NewAnimation(AnimBob, 8, 40)
	if err != nil {
		t.Fatalf("NewAnimation(bob) failed: %v", err)
	}
	quarter := bob(10)
	if quarter.X != 0 || math.Abs(quarter.Y-8) > 1e-9 {
		t.Errorf("bob at quarter period = %+v, expected (0, 8)", quarter)
	}

	sway, _ := NewAnimation(AnimSway, 3, 40)
	if off := sway(10); math.Abs(off.X-3) > 1e-9 || off.Y != 0 {
		t.Errorf("sway at quarter period = %+v, expected (3, 0)", off)
	}

	orbit, _ := NewAnimation(AnimOrbit, 2, 40)
	if off := orbit(0); math.Abs(off.X-2) > 1e-9 || math.Abs(off.Y) > 1e-9 {
		t.Errorf("orbit at 0 = %+v, expected (2, 0)", off)
	}
}

func TestAnimationIsPure(t *testing.T) {
	anim, _ := NewAnimation(AnimOrbit, 6, 90)
	for tick := 0; tick < 200; tick++ {
		if anim(tick) != anim(tick) {
			t.Fatalf("animation not deterministic at tick %d", tick)
		}
		if anim(tick) != anim(tick+90) {
			t.Fatalf("animation not periodic at tick %d", tick)
		}
	}
}

func TestBlockOffset(t *testing.T) {
	static := Block{Rect: R(0, 0, 10, 10)}
	if static.Offset(123) != core.Zero() {
		t.Error("static block should have zero offset")
	}

	anim, _ := NewAnimation(AnimBob, 4, 8)
	moving := Block{Rect: R(0, 0, 10, 10), Animation: anim}
	if moving.Offset(2) == core.Zero() {
		t.Error("animated block should move")
	}
	if moving.Rect != R(0, 0, 10, 10) {
		t.Error("evaluating an animation must not change geometry")
	}
}

func TestTerrainCollection(t *testing.T) {
	blocks := []Block{
		{Rect: R(0, 0, 100, 50), Material: Grass},
		{Rect: R(-20, 80, 10, 10), Material: Stone},
	}
	ter := New(blocks...)

	// Mutating the caller's slice must not leak into the terrain
	blocks[0].Rect.Width = 1

	if ter.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", ter.Len())
	}
	if ter.Block(0).Rect.Width != 100 {
		t.Error("New should copy the block slice")
	}

	b, ok := ter.Bounds()
	if !ok || b != R(-20, 0, 120, 90) {
		t.Errorf("Bounds() = %+v, %v", b, ok)
	}

	var empty *Terrain
	if empty.Len() != 0 {
		t.Error("nil terrain should be empty")
	}
	if _, ok := New().Bounds(); ok {
		t.Error("empty terrain should have no bounds")
	}
}
