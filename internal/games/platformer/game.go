// Package platformer implements the side-scrolling platformer game.
// The player runs and jumps across a level of static blocks toward a goal;
// falling off the level respawns the player at the start.
package platformer

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/camera"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/render"
	"github.com/vovakirdan/tui-platformer/internal/terrain"
)

// Scoring
const (
	MaxScore        = 1000
	PointsPerSecond = 10 // lost per elapsed second
	PointsPerFall   = 50 // lost per respawn
)

const defaultTickRate = 60

// Game implements one platformer level.
type Game struct {
	level    config.LevelConfig
	cfg      config.PlatformerConfig
	runtime  core.RuntimeConfig
	world    *physics.World
	player   *physics.Player
	camera   *camera.Camera
	renderer *render.Renderer
	goal     *terrain.Rect
	log      *log.Logger

	tickCount int
	falls     int
	score     int
	finished  bool // goal reached
	paused    bool
	debug     bool // detailed HUD
	last      physics.Resolution
}

// configPath stores the custom config path set via CLI
var configPath string
var movementPreset config.Preset
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetPreset sets the movement preset applied on Reset.
func SetPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	movementPreset = p
	return nil
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	logger = l
}

// New creates a game for level. The level is expected to be validated.
func New(level config.LevelConfig) *Game {
	return &Game{level: level, log: logger}
}

// ID returns the level ID.
func (g *Game) ID() string {
	return g.level.ID
}

// Title returns the level name.
func (g *Game) Title() string {
	return g.level.Name
}

// Reset loads configuration and starts the level from its spawn point.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if rt.TickRate <= 0 {
		rt.TickRate = defaultTickRate
	}
	g.runtime = rt
	g.log = logger.With("level", g.level.ID)

	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		g.log.Warn("using default config", "error", err)
		cfg = config.DefaultPlatformerConfig()
	}
	if err := config.ApplyPreset(&cfg, movementPreset); err != nil {
		g.log.Warn("ignoring preset", "error", err)
	}
	g.cfg = cfg

	ter, err := g.level.Terrain()
	if err != nil {
		g.log.Error("invalid level geometry", "error", err)
		ter = terrain.New()
	}
	g.world = physics.NewWorld(ter)
	g.world.Gravity = cfg.Physics.Gravity

	g.goal = nil
	if g.level.Goal != nil {
		r := g.level.Goal.Rect()
		g.goal = &r
	}

	g.player = physics.NewPlayer(g.level.SpawnPoint(), cfg.Player.Attribute())
	g.world.ProbeContacts(g.player)
	g.camera = camera.New(g.player, cfg.Camera.Smoothness)

	seed := cfg.View.DecorationSeed
	if rt.Seed != 0 {
		seed = rt.Seed
	}
	g.renderer = render.New(cfg.View.Viewport(), seed)
	g.Resize(rt.ScreenW, rt.ScreenH)

	g.tickCount = 0
	g.falls = 0
	g.finished = false
	g.paused = false
	g.last = physics.Resolution{}
	g.score = g.currentScore()

	g.log.Debug("level started", "blocks", ter.Len(), "spawn", g.level.Spawn, "preset", movementPreset)
}

// Resize adapts the view to a new screen size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	if g.camera == nil {
		return
	}
	size := g.renderer.View.Size(w, h)
	g.camera.Offset = core.Vec2(size.X*g.cfg.Camera.AnchorX, size.Y*g.cfg.Camera.AnchorY)
}

// Step advances the game by one tick. A restart consumes the tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionDebug) {
		g.debug = !g.debug
	}

	if g.finished {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	wasGrounded := g.player.OnGround
	g.last = g.world.Step(g.player, physics.Controls{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
	})
	g.logContacts(wasGrounded)

	if g.player.Pos.Y < g.level.RespawnBelow {
		g.falls++
		g.log.Info("fell off the level", "falls", g.falls, "x", g.player.Pos.X)
		g.player.Respawn(g.level.SpawnPoint())
		g.world.ProbeContacts(g.player)
		g.camera.Snap()
	}

	g.camera.SmoothFocus()
	g.score = g.currentScore()

	if g.goal != nil && physics.IntersectRect(g.player.Box(), physics.BoxFromRect(*g.goal)) {
		g.finished = true
		g.log.Info("goal reached", "ticks", g.tickCount, "falls", g.falls, "score", g.score)
	}

	return core.StepResult{State: g.State()}
}

// restart returns to the spawn point and clears the run counters.
func (g *Game) restart() {
	g.player.Respawn(g.level.SpawnPoint())
	g.world.ProbeContacts(g.player)
	g.camera.Snap()
	g.tickCount = 0
	g.falls = 0
	g.finished = false
	g.paused = false
	g.last = physics.Resolution{}
	g.score = g.currentScore()
	g.log.Debug("run restarted")
}

func (g *Game) logContacts(wasGrounded bool) {
	p := g.player
	switch {
	case g.last.Landed:
		g.log.Debug("landed", "x", p.Pos.X, "y", p.Pos.Y)
	case wasGrounded && !p.OnGround:
		g.log.Debug("left ground", "jumped", g.last.Jumped, "vy", p.Motion.Y)
	}
	if g.last.BlockedX {
		g.log.Debug("hit wall", "left", p.TouchingLeftWall, "right", p.TouchingRightWall)
	}
	if g.last.Bumped {
		g.log.Debug("hit ceiling", "y", p.Pos.Y)
	}
}

// Elapsed returns the run time in seconds.
func (g *Game) Elapsed() float64 {
	return float64(g.tickCount) / float64(g.runtime.TickRate)
}

// currentScore returns the score the run would get if it ended now.
func (g *Game) currentScore() int {
	return Score(g.Elapsed(), g.falls)
}

// Score computes a run score: MaxScore minus time and fall penalties,
// never below zero.
func Score(seconds float64, falls int) int {
	s := max(0, MaxScore-int(seconds*PointsPerSecond)) - falls*PointsPerFall
	return max(s, 0)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.renderer.Render(dst, render.Frame{
		Camera:  g.camera,
		Terrain: g.world.Terrain,
		Player:  g.player,
		Goal:    g.goal,
		Tick:    g.tickCount,
	})
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.finished {
		g.drawCenteredMessage(dst, "GOAL!", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.finished,
		Paused:   g.paused,
	}
}

// Register every embedded level with the registry
func init() {
	for _, id := range config.LevelIDs() {
		lvl, err := config.LoadLevel(id)
		if err != nil {
			panic(fmt.Sprintf("platformer: embedded level %q: %v", id, err))
		}
		registry.Register(id, func() registry.Game {
			return New(lvl)
		})
	}
}
