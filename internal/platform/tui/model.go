package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paddle-arcade/internal/config"
	"github.com/vovakirdan/paddle-arcade/internal/core"
	"github.com/vovakirdan/paddle-arcade/internal/registry"
	"github.com/vovakirdan/paddle-arcade/internal/storage"
)

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	latch     *InputLatch
	logger    *log.Logger
	sessionID string // SSH session, empty for local play
	started   time.Time
	gameState core.GameState

	quitting    bool
	backToMenu  bool
	resultSaved bool // Whether the current session has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards game events.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		latch:     NewInputLatch(DefaultHoldTicks),
		logger:    logger.With("game", game.ID()),
		started:   time.Now(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "difficulty", m.difficulty())

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world has fixed logical units, so a resize only rescales the view.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

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

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.saveResult()
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.saveResult()
		m.backToMenu = true
		return m, tea.Quit
	}

	m.latch.Press(action)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.latch.Frame()

	if in.Has(core.ActionRestart) {
		m.saveResult()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.started = time.Now()
		m.resultSaved = false
		m.latch.Reset()
		m.logger.Debug("game restarted")
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(in, m.config.TickSeconds())
	if result.State.Paused != m.gameState.Paused {
		m.logger.Debug("pause toggled", "paused", result.State.Paused)
	}
	m.gameState = result.State

	for _, ev := range result.Events {
		m.logger.Debug(ev.Kind(), "event", ev)
	}

	return m, tickCmd(m.config.TickRate)
}

// saveResult records the session once.
func (m *Model) saveResult() {
	if m.resultSaved || m.store == nil {
		return
	}
	m.resultSaved = true

	match, err := m.store.RecordSession(storage.Session{
		GameID:     m.game.ID(),
		SessionID:  m.sessionID,
		Difficulty: m.difficulty(),
		State:      m.gameState,
		Played:     time.Since(m.started),
	})
	if err != nil {
		m.logger.Warn("could not save session", "error", err)
		return
	}
	if match != nil {
		m.logger.Info("match saved", "match", match.MatchID, "outcome", match.Outcome(),
			"player", match.PlayerScore, "opponent", match.OpponentScore)
	}
}

// difficulty returns the canonical preset name for this session.
func (m Model) difficulty() string {
	preset, err := config.ParseDifficulty(m.config.Difficulty)
	if err != nil {
		return string(config.DifficultyNormal)
	}
	return string(preset)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
// Returns true if the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
