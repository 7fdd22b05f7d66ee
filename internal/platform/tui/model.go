package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-boulder/internal/core"
	"github.com/vovakirdan/tui-boulder/internal/storage"
)

// Game is what the terminal loop drives.
type Game interface {
	ID() string
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// helpRows is the screen space reserved below the board for the help line.
const helpRows = 1

// GameModel is the Bubble Tea model for playing one level.
type GameModel struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	user       string
	keys       GameKeyMap
	help       help.Model
	gen        uint64
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	exitOnBack bool // No picker to return to
}

// NewGameModel creates a model for the given game.
// store may be nil, in which case sessions are not recorded.
func NewGameModel(game Game, store *storage.Store, cfg core.RuntimeConfig, user string) GameModel {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultConfig().TickInterval
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		user:       user,
		keys:       DefaultGameKeyMap(),
		help:       h,
		gen:        nextGen(),
		inputFrame: core.NewInputFrame(),
	}
}

func boardHeight(screenH int) int {
	return core.Max(screenH-helpRows, 0)
}

// gameConfig is the runtime config as seen by the game (help line excluded).
func (m GameModel) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = boardHeight(cfg.ScreenH)
	return cfg
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tickCmd(m.gen, m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen || m.quitting || m.backToMenu {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
// Movement keys are queued and applied on the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveSession()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.saveSession()
		m.backToMenu = true
		if m.exitOnBack {
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.saveSession()
		m.game.Reset(m.gameConfig())
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		return m, nil
	}

	m.inputFrame.Push(m.keys.ActionFor(msg))
	return m, nil
}

// handleResize keeps the world intact and only re-lays out the screen.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, boardHeight(msg.Height))
	m.game.Resize(msg.Width, boardHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.gen, m.config.TickInterval)
}

// saveSession records the session if anything was moved.
// Storage failures are logged and never interrupt play.
func (m *GameModel) saveSession() {
	if m.store == nil || m.gameState.Moves == 0 {
		return
	}
	_, err := m.store.SaveSession(storage.Session{
		LevelID:     m.game.ID(),
		User:        m.user,
		Moves:       m.gameState.Moves,
		Pushes:      m.gameState.Pushes,
		LocksOpened: m.gameState.LocksOpened,
		Ticks:       m.gameState.Tick,
	})
	if err != nil {
		log.Warn("could not save session", "level", m.game.ID(), "error", err)
		return
	}
	log.Debug("session saved", "level", m.game.ID(), "user", m.user, "moves", m.gameState.Moves)
	// Prevent a second save of the same run
	m.gameState = core.GameState{}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || (m.backToMenu && m.exitOnBack) {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the last state reported by the game.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the level picker.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game until the user quits or backs out.
// Returns the final game state.
func Run(game Game, store *storage.Store, cfg core.RuntimeConfig, user string) (core.GameState, error) {
	model := NewGameModel(game, store, cfg, user)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, err
	}
	if gm, ok := final.(GameModel); ok {
		return gm.game.State(), nil
	}
	return core.GameState{}, nil
}
