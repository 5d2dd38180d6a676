package physics

import "github.com/vovakirdan/tui-platformer/internal/core"

// EntityAttribute holds the static movement parameters of an entity.
// It is copied into each entity at construction and never changes afterwards.
type EntityAttribute struct {
	Size              core.Vector2 // bounding box width and height
	MoveSpeed         float64      // horizontal acceleration per held tick
	GravityMultiplier float64      // scales Gravity for this entity
	Resistance        float64      // per-tick horizontal damping factor, 0..1
	WallResistance    float64      // reserved for wall sliding, unused by the resolver
	JumpPower         float64      // vertical impulse applied on jump
}

// DefaultAttribute returns the baseline attribute set.
func DefaultAttribute() EntityAttribute {
	return EntityAttribute{
		Size:              core.Vec2(10, 10),
		MoveSpeed:         1,
		GravityMultiplier: 1,
		Resistance:        0.9,
		JumpPower:         20,
	}
}

// Player is a movable entity. Pos is the feet-center anchor: X is the
// horizontal center and Y is the bottom edge of the bounding box.
type Player struct {
	Pos       core.Vector2
	Motion    core.Vector2 // velocity in units per tick
	Attribute EntityAttribute

	OnGround          bool
	TouchingLeftWall  bool
	TouchingRightWall bool
	TouchingCeiling   bool
}

// NewPlayer creates a player at rest at pos.
func NewPlayer(pos core.Vector2, attr EntityAttribute) *Player {
	return &Player{
		Pos:       pos.Clone(),
		Attribute: attr,
	}
}

// Respawn moves the player to pos with zero motion and cleared contacts.
func (p *Player) Respawn(pos core.Vector2) {
	p.Pos = pos.Clone()
	p.Motion = core.Zero()
	p.OnGround = false
	p.TouchingLeftWall = false
	p.TouchingRightWall = false
	p.TouchingCeiling = false
}

// BoxAt returns the player's bounding box if its anchor were at (x, y).
func (p *Player) BoxAt(x, y float64) Box {
	half := p.Attribute.Size.X / 2
	return Box{
		Left:   x - half,
		Top:    y + p.Attribute.Size.Y,
		Right:  x + half,
		Bottom: y,
	}
}

// Box returns the player's current bounding box.
func (p *Player) Box() Box {
	return p.BoxAt(p.Pos.X, p.Pos.Y)
}
