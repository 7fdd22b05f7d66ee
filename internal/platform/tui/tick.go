// Package tui provides the Bubble Tea integration for Boulder.
// It handles the terminal UI loop, input mapping, and session flow.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the game model that scheduled it so ticks left over
// from a finished game are ignored.
type TickMsg struct {
	Gen uint64
	At  time.Time
}

var tickGen atomic.Uint64

// nextGen returns a fresh tick generation for a new game model.
func nextGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd schedules the next tick one interval after now.
// The delay is fixed: a slow step pushes later ticks back instead of bunching them.
func tickCmd(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}
