package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-boulder/internal/core"
	"github.com/vovakirdan/tui-boulder/internal/games/boulder"
	"github.com/vovakirdan/tui-boulder/internal/games/boulder/levels"
	"github.com/vovakirdan/tui-boulder/internal/storage"
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewHistory
)

// SessionModel manages the full session flow: level picker -> game -> picker.
// This is the top-level model for SSH sessions and local play without a level argument.
type SessionModel struct {
	levels    []levels.Level
	opts      boulder.Options
	store     *storage.Store
	config    core.RuntimeConfig
	username  string
	view      sessionView
	menu      MenuModel
	gameModel GameModel
	history   HistoryModel
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(lvls []levels.Level, opts boulder.Options, store *storage.Store, cfg core.RuntimeConfig, username string) SessionModel {
	return SessionModel{
		levels:   lvls,
		opts:     opts,
		store:    store,
		config:   cfg,
		username: username,
		menu:     NewMenuModel(lvls, opts.Palette, opts.CellWidth, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track size globally so the next screen starts at the right dimensions
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewHistory:
		return m.updateHistory(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsHistory() {
		ids := make([]string, len(m.levels))
		for i, lvl := range m.levels {
			ids[i] = lvl.ID
		}
		m.history = NewHistoryModel(m.store, ids, m.config.ScreenW, m.config.ScreenH)
		m.view = viewHistory
		return m, m.history.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		game := boulder.New(*selected, m.opts)
		m.gameModel = NewGameModel(game, m.store, m.config, m.username)
		m.view = viewGame
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		return m.backToMenu()
	}

	return m, cmd
}

// updateHistory handles updates when showing the history screen.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.history.Update(msg)
	if historyModel, ok := newModel.(HistoryModel); ok {
		m.history = historyModel
	}

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.history.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

// backToMenu shows a fresh level picker, keeping the cursor position.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	cursor := m.menu.cursor
	m.menu = NewMenuModel(m.levels, m.opts.Palette, m.opts.CellWidth, m.config)
	m.menu.cursor = cursor
	m.view = viewMenu
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.gameModel.View()
	case viewHistory:
		return m.history.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the level picker flow in the local terminal.
func RunSession(lvls []levels.Level, opts boulder.Options, store *storage.Store, cfg core.RuntimeConfig, username string) error {
	model := NewSessionModel(lvls, opts, store, cfg, username)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
