package registry

import (
	"github.com/vovakirdan/bomb-arena/internal/arena"
	"github.com/vovakirdan/bomb-arena/internal/core"
)

func init() {
	Register("human", func() Controller { return Human{} })
}

// Human maps keyboard actions directly onto match commands.
type Human struct{}

// ID returns "human".
func (Human) ID() string { return "human" }

// Title returns the display name.
func (Human) Title() string { return "Keyboard" }

// Control moves in the held direction and fires bomb and detonate actions.
func (Human) Control(m *arena.Match, id core.PlayerID, in core.InputFrame, dt float64) {
	if dir := in.Move(); dir != core.DirNone {
		m.MovePlayer(id, dir, dt)
	}
	if in.Has(core.ActionBomb) {
		m.PlaceBomb(id)
	}
	if in.Has(core.ActionDetonate) {
		m.DetonateRemote(id)
	}
}
