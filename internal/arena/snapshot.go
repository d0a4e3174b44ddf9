package arena

import "github.com/vovakirdan/bomb-arena/internal/core"

// Snapshot is a read-only copy of the match state for one frame.
// It shares no memory with the Match.
type Snapshot struct {
	State         State
	Round         int
	RoundsToWin   int
	Score1        int
	Score2        int
	TimeRemaining int
	Winner        core.PlayerID

	Width  int
	Height int
	Tiles  [][]Tile // Indexed [y][x]

	Bombs      []BombView
	Explosions []ExplosionView
	PowerUps   []PowerUp
	Players    [2]PlayerView
}

// BombView describes one live bomb.
type BombView struct {
	X, Y          int
	Radius        int
	Owner         core.PlayerID
	TimeRemaining float64
	Fuse          float64 // Remaining fraction, 1 to 0
}

// ExplosionView describes one live explosion cell.
type ExplosionView struct {
	X, Y     int
	Shape    Shape
	Progress float64
}

// PlayerView describes one participant.
type PlayerView struct {
	ID           core.PlayerID
	Name         string
	Pos          core.Vec
	Tile         core.Point
	Facing       core.Direction
	Lives        int
	Alive        bool
	Invulnerable bool
	MaxBombs     int
	BombsPlaced  int
	BlastRadius  int
	Speed        float64
	Remote       bool
}

// Snapshot captures the current state.
func (m *Match) Snapshot() Snapshot {
	s := Snapshot{
		State:         m.state,
		Round:         m.round,
		RoundsToWin:   m.roundsToWin,
		Score1:        m.scores[0],
		Score2:        m.scores[1],
		TimeRemaining: m.timeRemaining,
		Winner:        m.winner,
		Width:         m.board.Width(),
		Height:        m.board.Height(),
		Tiles:         m.board.Tiles(),
	}

	for _, b := range m.board.bombs {
		s.Bombs = append(s.Bombs, BombView{
			X:             b.X,
			Y:             b.Y,
			Radius:        b.Radius,
			Owner:         b.Owner,
			TimeRemaining: b.TimeRemaining(),
			Fuse:          b.TimePercentage(),
		})
	}
	for _, e := range m.board.explosions {
		s.Explosions = append(s.Explosions, ExplosionView{
			X:        e.X,
			Y:        e.Y,
			Shape:    e.Shape,
			Progress: e.Progress(),
		})
	}
	for _, p := range m.board.powerUps {
		s.PowerUps = append(s.PowerUps, *p)
	}
	for i, p := range m.players {
		s.Players[i] = PlayerView{
			ID:           p.id,
			Name:         p.name,
			Pos:          p.pos,
			Tile:         p.Tile(),
			Facing:       p.facing,
			Lives:        p.lives,
			Alive:        p.alive,
			Invulnerable: p.Invulnerable(),
			MaxBombs:     p.maxBombs,
			BombsPlaced:  p.placed,
			BlastRadius:  p.radius,
			Speed:        p.speed,
			Remote:       p.remote,
		}
	}
	return s
}

// Player returns the view of a participant, or the zero value for an
// invalid id.
func (s Snapshot) Player(id core.PlayerID) PlayerView {
	switch id {
	case core.Player1:
		return s.Players[0]
	case core.Player2:
		return s.Players[1]
	default:
		return PlayerView{}
	}
}
