// Package tcellrun drives a game directly on a tcell screen.
// It is an alternative to the Bubble Tea front end with its own ticker loop
// and no help footer, useful on terminals where Bubble Tea redraws flicker.
package tcellrun

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// eventBuffer is the capacity of the channel between PollEvent and the loop.
const eventBuffer = 100

// Options configures the runner.
type Options struct {
	InitialHoldTicks int
	HoldTicks        int
	Logger           *log.Logger
}

// palette maps core colors to 256-color palette entries matching the Bubble Tea styles.
var palette = map[core.Color]int{
	core.ColorRed:           1,
	core.ColorGreen:         2,
	core.ColorYellow:        3,
	core.ColorBlue:          4,
	core.ColorMagenta:       5,
	core.ColorCyan:          6,
	core.ColorWhite:         7,
	core.ColorBrightRed:     9,
	core.ColorBrightGreen:   10,
	core.ColorBrightYellow:  11,
	core.ColorBrightBlue:    12,
	core.ColorBrightMagenta: 13,
	core.ColorBrightCyan:    14,
	core.ColorBrightWhite:   15,
	core.ColorOrange:        208,
	core.ColorGray:          245,
	core.ColorBrown:         94,
	core.ColorDarkGreen:     28,
	core.ColorSky:           117,
	core.ColorSlate:         67,
}

// Style returns the tcell style used for a core color.
func Style(c core.Color) tcell.Style {
	n, ok := palette[c]
	if !ok {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(n))
}

// Runner owns a tcell screen and steps a game on a fixed ticker.
type Runner struct {
	screen tcell.Screen
	game   registry.Game
	cfg    core.RuntimeConfig
	input  *core.HeldInput
	buf    *core.Screen
	log    *log.Logger
	state  core.GameState
}

// New creates a runner on an initialized screen and resets the game to its size.
func New(screen tcell.Screen, game registry.Game, cfg core.RuntimeConfig, opts Options) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg.ScreenW, cfg.ScreenH = screen.Size()
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	r := &Runner{
		screen: screen,
		game:   game,
		cfg:    cfg,
		input:  core.NewHeldInput(opts.InitialHoldTicks, opts.HoldTicks),
		buf:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		log:    logger.With("level", game.ID(), "backend", "tcell"),
	}
	game.Reset(cfg)
	r.state = game.State()
	return r
}

// Run opens the terminal, plays the game until quit and restores the terminal.
func Run(ctx context.Context, game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	screen.HideCursor()
	return New(screen, game, cfg, opts).Loop(ctx)
}

// Loop runs until a quit key, a closed screen, or ctx cancellation.
func (r *Runner) Loop(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(r.cfg.TickRate))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, eventBuffer)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	r.log.Info("level started", "width", r.cfg.ScreenW, "height", r.cfg.ScreenH, "tick_rate", r.cfg.TickRate)
	r.Draw()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if r.HandleEvent(ev) {
				r.log.Info("quit", "score", r.state.Score)
				return nil
			}

		case <-ticker.C:
			r.Tick()
			r.Draw()
		}
	}
}

// HandleEvent applies a terminal event and reports whether it asks to quit.
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action := MapKey(ev)
		if action == core.ActionQuit {
			return true
		}
		r.input.Press(action)

	case *tcell.EventResize:
		r.screen.Sync()
		r.resize()
	}
	return false
}

func (r *Runner) resize() {
	w, h := r.screen.Size()
	if w == r.cfg.ScreenW && h == r.cfg.ScreenH {
		return
	}
	r.cfg.ScreenW, r.cfg.ScreenH = w, h
	r.buf.Resize(w, h)

	if rs, ok := r.game.(registry.Resizer); ok {
		rs.Resize(w, h)
	} else {
		r.game.Reset(r.cfg)
		r.input.Reset()
	}
	r.log.Debug("resized", "width", w, "height", h)
}

// Tick advances the game by one step with the held input.
func (r *Runner) Tick() {
	result := r.game.Step(r.input.Frame())
	if result.State.GameOver && !r.state.GameOver {
		r.log.Info("goal reached", "score", result.State.Score)
	}
	r.state = result.State
}

// Draw renders the game into the screen and shows it.
func (r *Runner) Draw() {
	r.game.Render(r.buf)

	for y := range r.buf.Height() {
		for x := range r.buf.Width() {
			c := r.buf.GetCell(x, y)
			r.screen.SetContent(x, y, c.Rune, nil, Style(c.Color))
		}
	}
	r.screen.Show()
}

// State returns the last game state seen by the runner.
func (r *Runner) State() core.GameState {
	return r.state
}

// MapKey translates a tcell key event to a game action.
func MapKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyEnter:
		return core.ActionAction
	case tcell.KeyEscape:
		return core.ActionPause
	case tcell.KeyTab:
		return core.ActionDebug
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		return mapRune(ev.Rune())
	}
	return core.ActionNone
}

func mapRune(r rune) core.Action {
	switch r {
	case 'a', 'h':
		return core.ActionLeft
	case 'd', 'l':
		return core.ActionRight
	case 'w', 'k', ' ':
		return core.ActionUp
	case 's', 'j':
		return core.ActionDown
	case 'x':
		return core.ActionAction
	case 'p':
		return core.ActionPause
	case 'r':
		return core.ActionRestart
	case 'q':
		return core.ActionQuit
	}
	return core.ActionNone
}
