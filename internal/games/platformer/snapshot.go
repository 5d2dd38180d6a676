package platformer

// Snapshot contains the observable game state after a tick.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick     int     `yaml:"tick"`
	PosX     float64 `yaml:"pos_x"`
	PosY     float64 `yaml:"pos_y"`
	VelX     float64 `yaml:"vel_x"`
	VelY     float64 `yaml:"vel_y"`
	CameraX  float64 `yaml:"camera_x"`
	CameraY  float64 `yaml:"camera_y"`
	Falls    int     `yaml:"falls"`
	Score    int     `yaml:"score"`
	Finished bool    `yaml:"finished"`
	Paused   bool    `yaml:"paused"`

	OnGround          bool `yaml:"on_ground"`
	TouchingLeftWall  bool `yaml:"touching_left_wall"`
	TouchingRightWall bool `yaml:"touching_right_wall"`
	TouchingCeiling   bool `yaml:"touching_ceiling"`

	// Resolver outcome of the last tick
	Jumped   bool `yaml:"jumped"`
	BlockedX bool `yaml:"blocked_x"`
	BlockedY bool `yaml:"blocked_y"`
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	p := g.player
	return Snapshot{
		Tick:     g.tickCount,
		PosX:     p.Pos.X,
		PosY:     p.Pos.Y,
		VelX:     p.Motion.X,
		VelY:     p.Motion.Y,
		CameraX:  g.camera.Pos.X,
		CameraY:  g.camera.Pos.Y,
		Falls:    g.falls,
		Score:    g.score,
		Finished: g.finished,
		Paused:   g.paused,

		OnGround:          p.OnGround,
		TouchingLeftWall:  p.TouchingLeftWall,
		TouchingRightWall: p.TouchingRightWall,
		TouchingCeiling:   p.TouchingCeiling,

		Jumped:   g.last.Jumped,
		BlockedX: g.last.BlockedX,
		BlockedY: g.last.BlockedY,
	}
}

// Contacts formats the contact flags of s as [G][L][R][C].
func (s Snapshot) Contacts() string {
	return contactFlags(s.OnGround, s.TouchingLeftWall, s.TouchingRightWall, s.TouchingCeiling)
}
