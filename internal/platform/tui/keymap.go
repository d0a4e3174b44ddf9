package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bomb-arena/internal/core"
)

// PlayerKeys are the bindings of one participant.
type PlayerKeys struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Bomb     key.Binding
	Detonate key.Binding
}

// KeyMap translates Bubble Tea key messages to arena actions.
// Both players share one keyboard: WASD for player 1, arrows for player 2.
type KeyMap struct {
	P1 PlayerKeys
	P2 PlayerKeys

	Pause   key.Binding
	Confirm key.Binding
	History key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default two-player bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		P1: PlayerKeys{
			Up:       key.NewBinding(key.WithKeys("w", "W"), key.WithHelp("wasd", "P1 move")),
			Down:     key.NewBinding(key.WithKeys("s", "S")),
			Left:     key.NewBinding(key.WithKeys("a", "A")),
			Right:    key.NewBinding(key.WithKeys("d", "D")),
			Bomb:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "P1 bomb")),
			Detonate: key.NewBinding(key.WithKeys("e", "E"), key.WithHelp("e", "P1 detonate")),
		},
		P2: PlayerKeys{
			Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("arrows", "P2 move")),
			Down:     key.NewBinding(key.WithKeys("down")),
			Left:     key.NewBinding(key.WithKeys("left")),
			Right:    key.NewBinding(key.WithKeys("right")),
			Bomb:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "P2 bomb")),
			Detonate: key.NewBinding(key.WithKeys("\\"), key.WithHelp("\\", "P2 detonate")),
		},
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("n", "r"),
			key.WithHelp("n", "next/new game"),
		),
		History: key.NewBinding(
			key.WithKeys("h", "tab"),
			key.WithHelp("h", "history"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Solo returns a key map where player 1 answers to both key sets and
// player 2 takes no keys, for sessions against an automated opponent.
func (k KeyMap) Solo() KeyMap {
	join := func(a, b key.Binding) key.Binding {
		joined := key.NewBinding(key.WithKeys(slices.Concat(a.Keys(), b.Keys())...))
		if h := a.Help(); h.Key != "" {
			joined.SetHelp(h.Key+"/"+b.Help().Key, strings.TrimPrefix(h.Desc, "P1 "))
		}
		return joined
	}
	k.P1 = PlayerKeys{
		Up:       join(k.P1.Up, k.P2.Up),
		Down:     join(k.P1.Down, k.P2.Down),
		Left:     join(k.P1.Left, k.P2.Left),
		Right:    join(k.P1.Right, k.P2.Right),
		Bomb:     join(k.P1.Bomb, k.P2.Bomb),
		Detonate: join(k.P1.Detonate, k.P2.Detonate),
	}
	k.P2 = PlayerKeys{}
	return k
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.P1.Up, k.P1.Bomb, k.P2.Up, k.P2.Bomb, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1.Up, k.P1.Bomb, k.P1.Detonate},
		{k.P2.Up, k.P2.Bomb, k.P2.Detonate},
		{k.Pause, k.Confirm, k.History},
		{k.Help, k.Quit},
	}
}

func (pk PlayerKeys) action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, pk.Up):
		return core.ActionUp
	case key.Matches(msg, pk.Down):
		return core.ActionDown
	case key.Matches(msg, pk.Left):
		return core.ActionLeft
	case key.Matches(msg, pk.Right):
		return core.ActionRight
	case key.Matches(msg, pk.Bomb):
		return core.ActionBomb
	case key.Matches(msg, pk.Detonate):
		return core.ActionDetonate
	}
	return core.ActionNone
}

// PlayerAction maps a key to a participant action.
// Returns NoPlayer and ActionNone for keys bound to neither player.
func (k KeyMap) PlayerAction(msg tea.KeyMsg) (core.PlayerID, core.Action) {
	if a := k.P1.action(msg); a != core.ActionNone {
		return core.Player1, a
	}
	if a := k.P2.action(msg); a != core.ActionNone {
		return core.Player2, a
	}
	return core.NoPlayer, core.ActionNone
}

// GlobalAction maps a key to a session-wide action (pause, confirm, quit).
func (k KeyMap) GlobalAction(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	}
	return core.ActionNone
}
