package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-boulder/internal/storage"
)

// maxHistory is how many sessions are loaded per level.
const maxHistory = 100

// HistoryModel is the Bubble Tea model for the session history screen.
type HistoryModel struct {
	levelIDs    []string
	levelCursor int
	store       *storage.Store
	sessions    []storage.Session
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	exitOnBack  bool // No picker to return to
}

// NewHistoryModel creates a history screen for the given levels.
// Levels that only exist in the database are appended after them.
func NewHistoryModel(store *storage.Store, levelIDs []string, width, height int) HistoryModel {
	ids := append([]string(nil), levelIDs...)
	if store != nil {
		played, err := store.LevelsPlayed()
		if err != nil {
			log.Warn("could not list played levels", "error", err)
		}
		seen := make(map[string]bool, len(ids))
		for _, id := range ids {
			seen[id] = true
		}
		for _, id := range played {
			if !seen[id] {
				ids = append(ids, id)
			}
		}
	}

	h := help.New()
	h.Width = width

	m := HistoryModel{
		levelIDs: ids,
		store:    store,
		keys:     DefaultHistoryKeyMap(),
		help:     h,
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	if len(m.levelIDs) > 0 {
		m.loadSessions(m.levelIDs[0])
	}
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "User", Width: 12},
		{Title: "Moves", Width: 6},
		{Title: "Pushes", Width: 6},
		{Title: "Locks", Width: 6},
		{Title: "Ticks", Width: 8},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, tabs, and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadSessions loads sessions for the given level ID.
func (m *HistoryModel) loadSessions(levelID string) {
	m.sessions = nil
	if m.store != nil {
		sessions, err := m.store.RecentSessions(levelID, maxHistory)
		if err != nil {
			log.Warn("could not load sessions", "level", levelID, "error", err)
		} else {
			m.sessions = sessions
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current sessions.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		user := s.User
		if user == "" {
			user = "-"
		}
		rows[i] = table.Row{
			user,
			fmt.Sprintf("%d", s.Moves),
			fmt.Sprintf("%d", s.Pushes),
			fmt.Sprintf("%d", s.LocksOpened),
			fmt.Sprintf("%d", s.Ticks),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.exitOnBack {
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.NextLevel):
			if len(m.levelIDs) > 0 {
				m.levelCursor = (m.levelCursor + 1) % len(m.levelIDs)
				m.loadSessions(m.levelIDs[m.levelCursor])
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel):
			if len(m.levelIDs) > 0 {
				m.levelCursor--
				if m.levelCursor < 0 {
					m.levelCursor = len(m.levelIDs) - 1
				}
				m.loadSessions(m.levelIDs[m.levelCursor])
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// CurrentLevel returns the level whose sessions are shown.
func (m HistoryModel) CurrentLevel() string {
	if len(m.levelIDs) == 0 {
		return ""
	}
	return m.levelIDs[m.levelCursor]
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "SESSION HISTORY"
	if id := m.CurrentLevel(); id != "" {
		title = fmt.Sprintf("SESSION HISTORY - %s", id)
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	if len(m.levelIDs) > 1 {
		tab := fmt.Sprintf("< %d/%d >", m.levelCursor+1, len(m.levelIDs))
		b.WriteString(centerText(tab, m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	for _, line := range strings.Split(tableStyle.Render(m.renderTableContent()), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m HistoryModel) renderTableContent() string {
	if len(m.sessions) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		return emptyStyle.Render("No sessions recorded yet.")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to the level picker.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history screen on its own.
// When levelIDs is empty every level with recorded sessions is listed.
func RunHistory(store *storage.Store, levelIDs []string, width, height int) error {
	model := NewHistoryModel(store, levelIDs, width, height)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
