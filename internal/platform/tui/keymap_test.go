package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bomb-arena/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestPlayerAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		player core.PlayerID
		action core.Action
	}{
		{"w", runeKey('w'), core.Player1, core.ActionUp},
		{"a", runeKey('a'), core.Player1, core.ActionLeft},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.Player1, core.ActionBomb},
		{"e", runeKey('e'), core.Player1, core.ActionDetonate},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.Player2, core.ActionUp},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.Player2, core.ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.Player2, core.ActionBomb},
		{"backslash", runeKey('\\'), core.Player2, core.ActionDetonate},
		{"unbound", runeKey('z'), core.NoPlayer, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player, action := km.PlayerAction(tt.msg)
			if player != tt.player || action != tt.action {
				t.Errorf("PlayerAction(%q) = %v, %v; want %v, %v", tt.msg.String(), player, action, tt.player, tt.action)
			}
		})
	}
}

func TestGlobalAction(t *testing.T) {
	km := DefaultKeyMap()

	if km.GlobalAction(runeKey('q')) != core.ActionQuit {
		t.Error("q should quit")
	}
	if km.GlobalAction(tea.KeyMsg{Type: tea.KeyCtrlC}) != core.ActionQuit {
		t.Error("ctrl+c should quit")
	}
	if km.GlobalAction(tea.KeyMsg{Type: tea.KeyEsc}) != core.ActionPause {
		t.Error("esc should pause")
	}
	if km.GlobalAction(runeKey('n')) != core.ActionConfirm {
		t.Error("n should confirm")
	}
	if km.GlobalAction(runeKey('w')) != core.ActionNone {
		t.Error("movement keys are not global")
	}
}

func TestSoloKeyMap(t *testing.T) {
	km := DefaultKeyMap().Solo()

	player, action := km.PlayerAction(tea.KeyMsg{Type: tea.KeyUp})
	if player != core.Player1 || action != core.ActionUp {
		t.Errorf("arrow up = %v, %v; want player 1 up", player, action)
	}
	player, action = km.PlayerAction(runeKey('s'))
	if player != core.Player1 || action != core.ActionDown {
		t.Errorf("s = %v, %v; want player 1 down", player, action)
	}
	player, _ = km.PlayerAction(tea.KeyMsg{Type: tea.KeyEnter})
	if player != core.Player1 {
		t.Errorf("enter went to %v", player)
	}
}
