package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-boulder/internal/core"
)

func TestGameKeyMapActionFor(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"a", runes("a"), core.ActionLeft},
		{"d", runes("d"), core.ActionRight},
		{"w", runes("w"), core.ActionUp},
		{"s", runes("s"), core.ActionDown},
		{"q", runes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runes("z"), core.ActionNone},
		{"restart is not an action", runes("r"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.ActionFor(tt.msg); got != tt.want {
				t.Errorf("ActionFor(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapsProvideHelp(t *testing.T) {
	if n := len(DefaultGameKeyMap().ShortHelp()); n == 0 {
		t.Error("game keymap has no short help")
	}
	if n := len(DefaultMenuKeyMap().FullHelp()); n == 0 {
		t.Error("menu keymap has no full help")
	}
	if n := len(DefaultHistoryKeyMap().FullHelp()); n != 2 {
		t.Errorf("history full help has %d groups, want 2", n)
	}
}
