package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-surf/internal/core"
	"github.com/vovakirdan/tui-surf/internal/registry"
	"github.com/vovakirdan/tui-surf/internal/storage"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	fixedSeed  bool // Seed came from the user; restarts replay it
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	board      *ScoreboardModel // Non-nil while the scoreboard is open
	logger     *log.Logger
	quitting   bool
	backToMenu bool
	embedded   bool // Part of a session; going back must not quit the program
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger sets the logger used for run bookkeeping.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

func embedded() ModelOption {
	return func(m *Model) { m.embedded = true }
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	fixed := cfg.Seed != 0
	// Use time-based seed if not specified
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		fixedSeed:  fixed,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.board != nil {
			return m.updateBoard(msg)
		}
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
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "tab":
		board := NewScoreboardModel(m.store, m.game.ID(), m.game.Title(), m.config.ScreenW, m.config.ScreenH)
		board.embedded = true
		m.board = &board
		return m, nil
	case "b":
		if m.gameState.Paused {
			m.endRun()
			m.backToMenu = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit
		}
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.endRun()
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// updateBoard routes input to the open scoreboard. The game does not tick
// while it is open.
func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	board, ok := next.(ScoreboardModel)
	if !ok {
		m.board = nil
		return m, cmd
	}

	switch {
	case board.IsQuitting():
		m.board = nil
		m.endRun()
		m.quitting = true
		return m, tea.Quit
	case board.Closed():
		m.board = nil
	default:
		m.board = &board
	}
	return m, cmd
}

// handleResize processes window resize events.
// The world is scaled onto the screen, so the run carries on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.board != nil {
		return m.updateBoard(msg)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.board != nil || m.backToMenu || m.quitting {
		m.inputFrame.Clear()
		if m.backToMenu || m.quitting {
			return m, nil
		}
		return m, tickCmd(m.config.TickRate)
	}

	if m.inputFrame.Has(core.ActionRestart) {
		m.endRun()
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// endRun records the finished run. Runs that never scored are not kept.
func (m *Model) endRun() {
	st := m.gameState
	if !st.Started || st.Score <= 0 {
		return
	}
	if m.store == nil {
		return
	}

	run := storage.Run{
		GameID:     m.game.ID(),
		Score:      st.Score,
		Tricks:     st.Stats.TricksLanded,
		GrindTicks: st.Stats.GrindTicks,
		Ticks:      st.Stats.Ticks,
		Seed:       m.config.Seed,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Error("could not save run", "err", err)
		return
	}
	m.logger.Info("run saved", "score", run.Score, "tricks", run.Tricks, "grind_ticks", run.GrindTicks)

	// Prevent a second save of the same run on quit.
	m.gameState.Score = 0
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	_, err := RunModel(game, store, cfg, opts...)
	return err
}

// RunModel runs a game and returns the final model so callers can tell a
// quit from a request to go back to the menu.
func RunModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) (Model, error) {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		return m, err
	}
	return model, err
}
