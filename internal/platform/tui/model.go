package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/planet-defense/internal/config"
	"github.com/vovakirdan/planet-defense/internal/core"
	"github.com/vovakirdan/planet-defense/internal/games/defense"
	"github.com/vovakirdan/planet-defense/internal/logging"
	"github.com/vovakirdan/planet-defense/internal/registry"
	"github.com/vovakirdan/planet-defense/internal/storage"
)

// Options are the collaborators attached to a game before it starts.
type Options struct {
	Store     *storage.Store
	Logger    *log.Logger
	Audio     defense.AudioSink
	Ship      config.ShipClass
	HoldTicks int // key latch window; 0 selects DefaultHoldTicks
}

// statsSource is implemented by games that report HUD values.
type statsSource interface {
	Stats() defense.Stats
}

// resizer is implemented by games that can follow a terminal resize without
// restarting.
type resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model for running a game session.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	log       *log.Logger
	ship      config.ShipClass
	config    core.RuntimeConfig
	fixedSeed bool
	keys      *KeyMapper
	latch     *KeyLatch
	gameState core.GameState
	quitting  bool
	back      bool
	runSaved  bool // whether the current run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game. A zero seed
// is replaced with a time-based one on every start.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}

	if g, ok := game.(*defense.Game); ok {
		g.SetLogger(opts.Logger)
		g.SetShipClass(opts.Ship)
		if opts.Audio != nil {
			g.SetAudio(opts.Audio)
		}
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     opts.Store,
		log:       opts.Logger,
		ship:      opts.Ship,
		config:    cfg,
		fixedSeed: fixed,
		keys:      NewKeyMapper(),
		latch:     NewKeyLatch(opts.HoldTicks),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
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
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		m.recordRun()
		return m, tea.Quit
	case action == core.ActionBack:
		m.back = true
		m.recordRun()
		return m, tea.Quit
	}
	m.latch.Press(action)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.Over() {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.latch.Frame()

	if frame.Has(core.ActionRestart) && m.gameState.Over() {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.latch.Release()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(frame)
	m.gameState = result.State
	if m.gameState.Over() {
		m.recordRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun saves the current run to the store once. Runs that scored
// nothing are not recorded.
func (m *Model) recordRun() {
	if m.runSaved || m.store == nil {
		return
	}
	state := m.game.State()
	if state.Score <= 0 && !state.Over() {
		return
	}
	m.runSaved = true

	run := storage.Run{
		Mode:      m.game.ID(),
		ShipClass: m.ship.String(),
		Score:     state.Score,
		Won:       state.Won,
	}
	if s, ok := m.game.(statsSource); ok {
		stats := s.Stats()
		run.Level = stats.Level
		run.Defeated = stats.Defeated
		run.Planet = stats.Planet
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.log.Warn("run not recorded", "error", err)
		return
	}
	m.log.Info("run recorded", "mode", run.Mode, "score", run.Score, "won", run.Won)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".planetdefense", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "error", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// WantsMenu reports whether the player left the session with Back.
func (m Model) WantsMenu() bool {
	return m.back
}

// Run starts the Bubble Tea program with the given game. It reports whether
// the player asked to return to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (bool, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(Model); ok {
		return m.WantsMenu(), nil
	}
	return false, nil
}
