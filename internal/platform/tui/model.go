package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/games/invasion"
	"github.com/vovakirdan/alien-invasion/internal/registry"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

// EventHandler receives the events of every tick, e.g. to play sounds.
type EventHandler interface {
	Handle(events []core.Event)
}

// session is what the frontend needs from a game beyond registry.Game.
type session interface {
	Field() (w, h int)
	Stats() invasion.Stats
	Phase() invasion.Phase
}

// Options are the optional collaborators of a terminal session.
type Options struct {
	Store  *storage.Store // Session score board; nil disables score keeping
	Logger *log.Logger    // nil discards
	Sound  EventHandler   // nil is silent
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keys       *KeyMapper
	hold       *holdTracker
	gameState  core.GameState
	tick       int
	quitting   bool
	back       bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMapper(),
		hold:       newHoldTracker(cfg.TickRate),
	}
	m.resetGame()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.back = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		if m.hold.Press(action, m.tick, &m.inputFrame) {
			m.inputFrame.Set(action)
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse turns a left click into a click in field coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	m.inputFrame.Click(msg.X, msg.Y-m.fieldTop())
	return m, nil
}

// fieldTop returns the screen row the field starts on.
func (m Model) fieldTop() int {
	if s, ok := m.game.(session); ok {
		_, h := s.Field()
		return m.screen.Height() - h
	}
	return 0
}

// handleResize adopts the new terminal size. The field of a game in progress
// stays as it is; a game that has not started is rebuilt for the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}

	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if s, ok := m.game.(session); ok && s.Phase() == invasion.PhasePreStart {
		m.resetGame()
	}
	return m, nil
}

// resetGame builds a fresh session seeded with the best score on the board.
func (m *Model) resetGame() {
	if m.opts.Store != nil {
		high, err := m.opts.Store.HighScore(m.game.ID())
		if err != nil {
			m.opts.Logger.Warn("could not read high score", "error", err)
		}
		m.config.HighScore = max(m.config.HighScore, high)
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.hold.Reset()
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.tick++
	m.hold.Expire(m.tick, &m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.opts.Sound != nil && len(result.Events) > 0 {
		m.opts.Sound.Handle(result.Events)
	}
	if result.Has(core.EventGameOver) {
		m.recordScore()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordScore puts a finished game on the session board.
func (m *Model) recordScore() {
	level := 0
	if s, ok := m.game.(session); ok {
		level = s.Stats().Level
	}
	m.opts.Logger.Info("game over", "mode", m.game.ID(), "score", m.gameState.Score, "level", level)

	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.opts.Store.SaveScore(m.game.ID(), m.gameState.Score, level); err != nil {
		m.opts.Logger.Warn("could not save score", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Result describes how a session ended.
type Result struct {
	State core.GameState
	Back  bool // Player asked for the menu rather than to quit
}

// Run plays one session until the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (Result, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Play button clicks
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return Result{}, nil
	}
	return Result{State: m.gameState, Back: m.back}, nil
}
