package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// helpHeight is the number of terminal rows reserved for the key help footer.
const helpHeight = 1

// Options configures input handling and side outputs of a play session.
type Options struct {
	// InitialHoldTicks keeps a movement key active after its first press.
	InitialHoldTicks int
	// HoldTicks keeps a movement key active after each auto-repeat.
	HoldTicks int
	// ScreenshotDir receives ctrl+s captures. Empty uses ~/.platformer/screenshots.
	ScreenshotDir string
	// ShowHelp renders the key help footer under the game.
	ShowHelp bool
	// Logger receives session events. Nil discards them.
	Logger *log.Logger
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		InitialHoldTicks: 30,
		HoldTicks:        6,
		ShowHelp:         true,
	}
}

// Model is the Bubble Tea model for running a level.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	opts      Options
	input     *core.HeldInput
	keys      *KeyMapper
	help      help.Model
	log       *log.Logger
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:   game,
		config: cfg,
		opts:   opts,
		input:  core.NewHeldInput(opts.InitialHoldTicks, opts.HoldTicks),
		keys:   NewKeyMapper(),
		help:   help.New(),
		log:    logger.With("level", game.ID()),
	}
	m.config.ScreenH = m.gameHeight(cfg.ScreenH)
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = cfg.ScreenW
	return m
}

// gameHeight returns the rows left for the game below the footer.
func (m Model) gameHeight(termH int) int {
	if !m.opts.ShowHelp {
		return termH
	}
	return max(termH-helpHeight, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.log.Info("level started", "width", m.config.ScreenW, "height", m.config.ScreenH, "tick_rate", m.config.TickRate)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.log.Warn("screenshot failed", "error", err)
		} else {
			m.log.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.log.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	}

	m.input.Press(action)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = m.gameHeight(msg.Height)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	// Games that can follow the new size keep their run; others restart.
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else {
		m.game.Reset(m.config)
		m.input.Reset()
	}
	m.log.Debug("resized", "width", m.config.ScreenW, "height", m.config.ScreenH)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input.Frame())

	if result.State.GameOver && !m.gameState.GameOver {
		m.log.Info("goal reached", "score", result.State.Score)
	}
	m.gameState = result.State

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text and returns its path.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".platformer", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)

	if m.opts.ShowHelp {
		out += "\n" + m.help.ShortHelpView(m.keys.Keys().ShortHelp())
	}
	return out
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
