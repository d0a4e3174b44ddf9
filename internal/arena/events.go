package arena

import "github.com/vovakirdan/bomb-arena/internal/core"

// Event is a notification published by a Match to its listeners.
type Event interface {
	arenaEvent()
}

// GameStartedEvent is published by StartNewGame.
type GameStartedEvent struct {
	Player1      string
	Player2      string
	RoundsToWin  int
	RoundSeconds int
}

func (GameStartedEvent) arenaEvent() {}

// RoundStartedEvent is published when a round begins.
type RoundStartedEvent struct {
	Round int
}

func (RoundStartedEvent) arenaEvent() {}

// RoundEndedEvent is published when a round is decided.
type RoundEndedEvent struct {
	Round    int
	Winner   core.PlayerID // NoPlayer on a draw
	Score1   int
	Score2   int
	Lives1   int
	Lives2   int
	Duration float64 // Seconds of simulated play
	TimedOut bool
}

func (RoundEndedEvent) arenaEvent() {}

// GameEndedEvent is published when a participant reaches the win score.
type GameEndedEvent struct {
	Winner core.PlayerID
	Score1 int
	Score2 int
	Rounds int
}

func (GameEndedEvent) arenaEvent() {}

// PlayerHitEvent is published when a blast costs a participant a life.
type PlayerHitEvent struct {
	Player     core.PlayerID
	LivesLeft  int
	Eliminated bool
}

func (PlayerHitEvent) arenaEvent() {}

// BombPlacedEvent is published when a bomb is armed.
type BombPlacedEvent struct {
	Player core.PlayerID
	X, Y   int
	Radius int
}

func (BombPlacedEvent) arenaEvent() {}

// PowerUpCollectedEvent is published when a participant picks up a power-up.
type PowerUpCollectedEvent struct {
	Player core.PlayerID
	Kind   PowerUpKind
	X, Y   int
}

func (PowerUpCollectedEvent) arenaEvent() {}

// Listener receives match events synchronously, on the caller's goroutine.
// Implementations must not call Match commands from HandleEvent.
type Listener interface {
	HandleEvent(Event)
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(Event)

// HandleEvent calls f(e).
func (f ListenerFunc) HandleEvent(e Event) {
	f(e)
}
