package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-boulder/internal/core"
	boulder "github.com/vovakirdan/tui-boulder/internal/games/boulder/core"
	"github.com/vovakirdan/tui-boulder/internal/games/boulder/levels"
)

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffcc00"))
	menuItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080"))
	menuSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))
	menuHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	levels      []levels.Level
	palette     boulder.Palette
	cellWidth   int
	cursor      int
	width       int
	height      int
	config      core.RuntimeConfig
	keys        MenuKeyMap
	help        help.Model
	quitting    bool
	selected    *levels.Level // Set when user picks a level
	openHistory bool          // True if user pressed Tab for history
}

// NewMenuModel creates a level picker over the given levels.
func NewMenuModel(lvls []levels.Level, palette boulder.Palette, cellWidth int, cfg core.RuntimeConfig) MenuModel {
	h := help.New()
	h.Width = cfg.ScreenW
	return MenuModel{
		levels:    lvls,
		palette:   palette,
		cellWidth: core.Max(cellWidth, 1),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keys:      DefaultMenuKeyMap(),
		help:      h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.levels)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.levels) > 0 {
			selected := m.levels[m.cursor]
			m.selected = &selected
		}

	case key.Matches(msg, m.keys.History):
		m.openHistory = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("B O U L D E R"), m.width))
	b.WriteString("\n\n")

	if len(m.levels) == 0 {
		b.WriteString(centerText(menuItemStyle.Render("No levels found"), m.width))
		b.WriteString("\n")
	}

	items := make([]string, len(m.levels))
	for i, lvl := range m.levels {
		line := fmt.Sprintf(" %-20s %2dx%-2d ", lvl.Name, lvl.Grid.W, lvl.Grid.H)
		if i == m.cursor {
			items[i] = menuSelectedStyle.Render(line)
		} else {
			items[i] = menuItemStyle.Render(line)
		}
	}
	list := strings.Join(items, "\n")

	if preview := m.preview(); preview != "" {
		list = lipgloss.JoinHorizontal(lipgloss.Top, list, "   ", preview)
	}
	for _, line := range strings.Split(list, "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHelpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// preview draws the highlighted level's starting layout.
func (m MenuModel) preview() string {
	if len(m.levels) == 0 {
		return ""
	}
	lvl := m.levels[m.cursor]
	scr := core.NewScreen(lvl.Grid.W*m.cellWidth, lvl.Grid.H)
	boulder.Draw(scr, lvl.NewWorld(), m.palette, m.cellWidth, 1)
	return RenderScreen(scr)
}

// Selected returns the selected level, or nil if none selected.
func (m MenuModel) Selected() *levels.Level {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested the history screen.
func (m MenuModel) WantsHistory() bool {
	return m.openHistory
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring printable cells only.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
