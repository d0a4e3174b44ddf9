package storage

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/bomb-arena/internal/arena"
	"github.com/vovakirdan/bomb-arena/internal/core"
)

// Recorder persists round and game outcomes from a match's event stream.
// It reads nothing but events. Storage failures are logged, never returned
// to the match.
type Recorder struct {
	store  *Store
	logger *log.Logger

	matchID  string
	names    [2]string
	scores   [2]int
	rounds   int
	elapsed  float64
	detail   RoundDetail
	inGame   bool
	lastSave error
}

var _ arena.Listener = (*Recorder)(nil)

// NewRecorder creates a recorder writing to store. A nil logger discards output.
func NewRecorder(store *Store, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{store: store, logger: logger}
}

// MatchID returns the identifier of the game being recorded, or "" before
// the first game starts.
func (r *Recorder) MatchID() string {
	return r.matchID
}

// Err returns the last storage error, if any.
func (r *Recorder) Err() error {
	return r.lastSave
}

// HandleEvent implements arena.Listener.
func (r *Recorder) HandleEvent(e arena.Event) {
	switch ev := e.(type) {
	case arena.GameStartedEvent:
		if r.inGame {
			r.saveMatch(core.NoPlayer, false)
		}
		r.matchID = uuid.NewString()
		r.names = [2]string{ev.Player1, ev.Player2}
		r.scores = [2]int{}
		r.rounds = 0
		r.elapsed = 0
		r.inGame = true
		r.logger.Debug("recording match", "match", r.matchID, "p1", ev.Player1, "p2", ev.Player2)

	case arena.RoundStartedEvent:
		r.detail = RoundDetail{}

	case arena.BombPlacedEvent:
		if i, ok := index(ev.Player); ok {
			r.detail.Bombs[i]++
		}

	case arena.PlayerHitEvent:
		if i, ok := index(ev.Player); ok {
			r.detail.Hits[i]++
		}

	case arena.PowerUpCollectedEvent:
		if i, ok := index(ev.Player); ok {
			r.detail.PowerUps[i]++
			r.detail.Pickups = append(r.detail.Pickups, ev.Player.String()+":"+ev.Kind.String())
		}

	case arena.RoundEndedEvent:
		if !r.inGame {
			return
		}
		r.rounds = ev.Round
		r.scores = [2]int{ev.Score1, ev.Score2}
		r.elapsed += ev.Duration
		_, err := r.store.SaveRound(RoundResult{
			MatchID:  r.matchID,
			Round:    ev.Round,
			Winner:   r.name(ev.Winner),
			Lives1:   ev.Lives1,
			Lives2:   ev.Lives2,
			Duration: ev.Duration,
			TimedOut: ev.TimedOut,
			Detail:   r.detail,
		})
		r.check(err, "round")

	case arena.GameEndedEvent:
		if !r.inGame {
			return
		}
		r.scores = [2]int{ev.Score1, ev.Score2}
		r.rounds = ev.Rounds
		r.saveMatch(ev.Winner, true)
	}
}

// Close records a game still in progress as abandoned.
func (r *Recorder) Close() error {
	if r.inGame {
		r.saveMatch(core.NoPlayer, false)
	}
	return r.lastSave
}

func (r *Recorder) saveMatch(winner core.PlayerID, completed bool) {
	r.inGame = false
	_, err := r.store.SaveMatch(MatchResult{
		MatchID:   r.matchID,
		Player1:   r.names[0],
		Player2:   r.names[1],
		Score1:    r.scores[0],
		Score2:    r.scores[1],
		Winner:    r.name(winner),
		Rounds:    r.rounds,
		Duration:  r.elapsed,
		Completed: completed,
	})
	r.check(err, "match")
	if err == nil {
		r.logger.Info("match saved", "match", r.matchID, "winner", r.name(winner), "completed", completed)
	}
}

func (r *Recorder) check(err error, what string) {
	if err == nil {
		return
	}
	r.lastSave = err
	r.logger.Error("cannot record "+what, "match", r.matchID, "err", err)
}

func (r *Recorder) name(id core.PlayerID) string {
	if i, ok := index(id); ok {
		return r.names[i]
	}
	return ""
}

func index(id core.PlayerID) (int, bool) {
	switch id {
	case core.Player1:
		return 0, true
	case core.Player2:
		return 1, true
	default:
		return 0, false
	}
}
