// Package arena implements the deterministic simulation core of a two-player
// bomb arena: the tile board, timed bombs with chain reactions, explosions,
// participants with continuous movement, and the round/game state machine.
//
// The core is single-threaded. A driver calls Match.Update once per fixed
// tick and issues commands (MovePlayer, PlaceBomb, ...) from the same
// goroutine. Rejected commands are silent no-ops; the outcome is observable
// through queries, Snapshot and the event stream.
package arena

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bomb-arena/internal/config"
	"github.com/vovakirdan/bomb-arena/internal/core"
)

// maxMoveStep bounds a single collision-checked movement increment in tiles
// so that a long frame cannot tunnel through a wall.
const maxMoveStep = 0.25

// State is the match state.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateRoundOver
	StateGameOver
)

// String returns a display name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateRoundOver:
		return "Round Over"
	case StateGameOver:
		return "Game Over"
	default:
		return "Unknown"
	}
}

// Option configures a Match at construction.
type Option func(*Match)

// WithLogger sets the logger used for state transition debug output.
func WithLogger(l *log.Logger) Option {
	return func(m *Match) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithSeed fixes the random seed for board layout and power-up drops.
func WithSeed(seed int64) Option {
	return func(m *Match) {
		m.seed = seed
	}
}

// WithListener subscribes l before the first event can be published.
func WithListener(l Listener) Option {
	return func(m *Match) {
		m.Subscribe(l)
	}
}

type subscriber struct {
	id       int
	listener Listener
}

// Match owns one board and two participants and runs the round/game state
// machine.
type Match struct {
	cfg     config.ArenaConfig
	board   *Board
	players [2]*Player

	state        State
	round        int
	scores       [2]int
	roundsToWin  int
	roundSeconds int

	// Round clock: integer countdown fed by a fractional accumulator.
	timeRemaining int
	timerAcc      float64
	roundElapsed  float64

	winner core.PlayerID // Winner of the last decided round or game

	subscribers []subscriber
	nextSubID   int

	logger *log.Logger
	seed   int64
	rng    *rand.Rand
}

// NewMatch creates a match in the Menu state. cfg is expected to be valid
// (see config.ArenaConfig.Validate).
func NewMatch(cfg config.ArenaConfig, opts ...Option) *Match {
	m := &Match{
		cfg:          cfg,
		state:        StateMenu,
		roundsToWin:  cfg.Match.RoundsToWin,
		roundSeconds: cfg.Match.RoundSeconds,
		logger:       log.New(io.Discard),
		seed:         time.Now().UnixNano(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.rng = rand.New(rand.NewSource(m.seed))
	m.board = NewBoard(cfg, m.rng)
	spawns := SpawnPoints(cfg.Board.Width, cfg.Board.Height)
	m.players[0] = NewPlayer(core.Player1, "Player 1", spawns[0], cfg.Player, cfg.PowerUps)
	m.players[1] = NewPlayer(core.Player2, "Player 2", spawns[1], cfg.Player, cfg.PowerUps)
	m.timeRemaining = m.roundSeconds
	return m
}

// Subscribe registers a listener and returns a function that removes it.
// Listeners are called synchronously in subscription order.
func (m *Match) Subscribe(l Listener) func() {
	if l == nil {
		return func() {}
	}
	m.nextSubID++
	id := m.nextSubID
	m.subscribers = append(m.subscribers, subscriber{id: id, listener: l})
	return func() {
		for i, s := range m.subscribers {
			if s.id == id {
				m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (m *Match) emit(e Event) {
	for _, s := range m.subscribers {
		s.listener.HandleEvent(e)
	}
}

// player returns the participant for id, or nil for an invalid id.
func (m *Match) player(id core.PlayerID) *Player {
	switch id {
	case core.Player1:
		return m.players[0]
	case core.Player2:
		return m.players[1]
	default:
		return nil
	}
}

// StartNewGame resets scores and the round counter, regenerates the board
// and starts round 1. Non-positive roundsToWin or timeLimitSeconds fall
// back to the configured defaults.
func (m *Match) StartNewGame(name1, name2 string, roundsToWin, timeLimitSeconds int) {
	if roundsToWin < 1 {
		roundsToWin = m.cfg.Match.RoundsToWin
	}
	if timeLimitSeconds < 1 {
		timeLimitSeconds = m.cfg.Match.RoundSeconds
	}
	if name1 == "" {
		name1 = "Player 1"
	}
	if name2 == "" {
		name2 = "Player 2"
	}

	m.players[0].name = name1
	m.players[1].name = name2
	m.roundsToWin = roundsToWin
	m.roundSeconds = timeLimitSeconds
	m.scores = [2]int{}
	m.round = 1
	m.resetRound(true)
	m.state = StatePlaying

	m.logger.Debug("game started", "p1", name1, "p2", name2, "rounds_to_win", roundsToWin, "round_seconds", timeLimitSeconds)
	m.emit(GameStartedEvent{
		Player1:      name1,
		Player2:      name2,
		RoundsToWin:  roundsToWin,
		RoundSeconds: timeLimitSeconds,
	})
	m.emit(RoundStartedEvent{Round: m.round})
}

// ContinueToNextRound starts the next round. Only valid from RoundOver.
func (m *Match) ContinueToNextRound() {
	if m.state != StateRoundOver {
		return
	}
	m.round++
	m.resetRound(false)
	m.state = StatePlaying

	m.logger.Debug("round started", "round", m.round)
	m.emit(RoundStartedEvent{Round: m.round})
}

func (m *Match) resetRound(full bool) {
	m.board.Reset()
	for _, p := range m.players {
		p.Reset(full)
	}
	m.timeRemaining = m.roundSeconds
	m.timerAcc = 0
	m.roundElapsed = 0
	m.winner = core.NoPlayer
}

// TogglePause switches between Playing and Paused. No-op in other states.
func (m *Match) TogglePause() {
	switch m.state {
	case StatePlaying:
		m.state = StatePaused
	case StatePaused:
		m.state = StatePlaying
	default:
		return
	}
	m.logger.Debug("pause toggled", "state", m.state)
}

// Update advances the simulation by dt seconds. Only runs while Playing.
//
// Order per tick: round clock, respawn grace, bomb and explosion ageing,
// detonation pass, explosion hits, power-up pickups, round-end check.
func (m *Match) Update(dt float64) {
	if m.state != StatePlaying || dt <= 0 {
		return
	}

	m.roundElapsed += dt
	m.timerAcc += dt
	for m.timerAcc >= 1 && m.timeRemaining > 0 {
		m.timerAcc--
		m.timeRemaining--
	}

	for _, p := range m.players {
		p.tick(dt)
	}

	due := m.board.Update(dt)
	for _, b := range m.board.ResolveDetonations(due) {
		if owner := m.player(b.Owner); owner != nil {
			owner.bombDetonated()
		}
	}

	m.resolveHits()
	m.collectPowerUps()
	m.checkRoundEnd()
}

func (m *Match) resolveHits() {
	for _, p := range m.players {
		if !p.alive {
			continue
		}
		t := p.Tile()
		if !m.board.HasExplosion(t.X, t.Y) {
			continue
		}
		if !p.Hit(m.cfg.Player.RespawnGrace) {
			continue
		}
		m.logger.Debug("player hit", "player", p.id, "lives", p.lives)
		m.emit(PlayerHitEvent{Player: p.id, LivesLeft: p.lives, Eliminated: !p.alive})
	}
}

func (m *Match) collectPowerUps() {
	for _, p := range m.players {
		if !p.alive {
			continue
		}
		t := p.Tile()
		pu := m.board.PowerUpAt(t.X, t.Y)
		if pu == nil || !m.board.RemovePowerUp(pu) {
			continue
		}
		p.ApplyPowerUp(pu.Kind)
		m.emit(PowerUpCollectedEvent{Player: p.id, Kind: pu.Kind, X: pu.X, Y: pu.Y})
	}
}

func (m *Match) checkRoundEnd() {
	p1, p2 := m.players[0], m.players[1]
	switch {
	case !p1.alive && !p2.alive:
		m.endRound(core.NoPlayer, false)
	case !p1.alive:
		m.endRound(core.Player2, false)
	case !p2.alive:
		m.endRound(core.Player1, false)
	case m.timeRemaining <= 0:
		winner := core.NoPlayer
		if p1.lives > p2.lives {
			winner = core.Player1
		} else if p2.lives > p1.lives {
			winner = core.Player2
		}
		m.endRound(winner, true)
	}
}

func (m *Match) endRound(winner core.PlayerID, timedOut bool) {
	if winner != core.NoPlayer {
		m.scores[winner-1]++
	}
	m.winner = winner

	m.logger.Debug("round ended", "round", m.round, "winner", winner, "timed_out", timedOut)
	m.emit(RoundEndedEvent{
		Round:    m.round,
		Winner:   winner,
		Score1:   m.scores[0],
		Score2:   m.scores[1],
		Lives1:   m.players[0].lives,
		Lives2:   m.players[1].lives,
		Duration: m.roundElapsed,
		TimedOut: timedOut,
	})

	if m.scores[0] >= m.roundsToWin || m.scores[1] >= m.roundsToWin {
		m.state = StateGameOver
		m.logger.Debug("game over", "winner", winner, "score1", m.scores[0], "score2", m.scores[1])
		m.emit(GameEndedEvent{
			Winner: winner,
			Score1: m.scores[0],
			Score2: m.scores[1],
			Rounds: m.round,
		})
		return
	}
	m.state = StateRoundOver
}

// MovePlayer moves a participant in direction dir for dt seconds at its
// current speed. The move is applied in small collision-checked increments
// and stops at the first blocked one. When the participant leaves the tile
// of a bomb, its permission to cross that bomb is revoked.
func (m *Match) MovePlayer(id core.PlayerID, dir core.Direction, dt float64) {
	if m.state != StatePlaying || dir == core.DirNone || dt <= 0 {
		return
	}
	p := m.player(id)
	if p == nil || !p.alive {
		return
	}
	p.facing = dir

	prev := p.Tile()
	distance := p.speed * dt
	steps := int(math.Ceil(distance / maxMoveStep))
	step := distance / float64(steps)
	unit := dir.Unit()

	for i := 0; i < steps; i++ {
		next := p.pos.Add(unit.Scale(step))
		if m.CanOccupy(id, next) {
			p.pos = next
			continue
		}
		aligned, ok := m.alignToLane(p, dir, step)
		if !ok {
			break
		}
		p.pos = aligned
	}

	if cur := p.Tile(); cur != prev {
		if b := m.board.BombAt(prev.X, prev.Y); b != nil {
			b.Revoke(id)
		}
	}
}

// alignToLane nudges a blocked participant toward the centre line of its
// tile when the tile ahead is open, so that turning into a corridor does
// not require pixel-perfect input.
func (m *Match) alignToLane(p *Player, dir core.Direction, step float64) (core.Vec, bool) {
	ahead := p.Tile().Step(dir, 1)
	if !m.CanOccupy(p.id, ahead.Centre()) {
		return core.Vec{}, false
	}

	pos := p.pos
	centre := p.Tile().Centre()
	var off *float64
	var target float64
	if dir == core.DirUp || dir == core.DirDown {
		off, target = &pos.X, centre.X
	} else {
		off, target = &pos.Y, centre.Y
	}
	delta := target - *off
	if delta == 0 {
		return core.Vec{}, false
	}
	*off += math.Copysign(math.Min(math.Abs(delta), step), delta)

	if !m.CanOccupy(p.id, pos) {
		return core.Vec{}, false
	}
	return pos, true
}

// CanOccupy reports whether participant id may stand at pos. Every corner of
// the participant's square hitbox must be on the board, outside walls, and
// outside bomb cells the participant may not cross. A participant whose
// hitbox already overlaps a bomb cell may still move away from that bomb.
func (m *Match) CanOccupy(id core.PlayerID, pos core.Vec) bool {
	p := m.player(id)
	if p == nil {
		return false
	}
	r := m.cfg.Player.HitboxRadius

	for _, c := range corners(pos, r) {
		t := c.Tile()
		if !m.board.InBounds(t.X, t.Y) || m.board.Tile(t.X, t.Y).IsWall() {
			return false
		}
		bomb := m.board.BombAt(t.X, t.Y)
		if bomb == nil || bomb.CanCross(id) {
			continue
		}
		if overlapsTile(p.pos, r, t) && dist2(pos, t.Centre()) >= dist2(p.pos, t.Centre()) {
			continue
		}
		return false
	}
	return true
}

func corners(pos core.Vec, r float64) [4]core.Vec {
	return [4]core.Vec{
		{X: pos.X - r, Y: pos.Y - r},
		{X: pos.X + r, Y: pos.Y - r},
		{X: pos.X - r, Y: pos.Y + r},
		{X: pos.X + r, Y: pos.Y + r},
	}
}

func overlapsTile(pos core.Vec, r float64, t core.Point) bool {
	for _, c := range corners(pos, r) {
		if c.Tile() == t {
			return true
		}
	}
	return false
}

func dist2(a, b core.Vec) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// PlaceBomb arms a bomb on the participant's tile. It is rejected unless
// the participant is alive and under its bomb limit, the tile holds no wall,
// bomb or explosion, and at least one neighbouring tile offers an escape.
func (m *Match) PlaceBomb(id core.PlayerID) {
	if m.state != StatePlaying {
		return
	}
	p := m.player(id)
	if p == nil || !p.CanPlaceBomb() {
		return
	}

	t := p.Tile()
	if m.board.Tile(t.X, t.Y).IsWall() || m.board.BombAt(t.X, t.Y) != nil || m.board.HasExplosion(t.X, t.Y) {
		return
	}
	if !m.HasEscapeRoute(id, t) {
		return
	}

	bomb := NewBomb(t.X, t.Y, p.radius, id, m.cfg.Bombs.FuseSeconds)
	bomb.Permit(id)
	if !m.board.AddBomb(bomb) {
		return
	}
	p.bombPlaced()

	m.emit(BombPlacedEvent{Player: id, X: t.X, Y: t.Y, Radius: bomb.Radius})
}

// HasEscapeRoute reports whether at least one cardinal neighbour of t is on
// the board, holds no wall, and holds either no bomb or a bomb participant
// id may cross.
func (m *Match) HasEscapeRoute(id core.PlayerID, t core.Point) bool {
	for _, d := range core.Directions {
		n := t.Step(d, 1)
		if !m.board.InBounds(n.X, n.Y) || m.board.Tile(n.X, n.Y).IsWall() {
			continue
		}
		if b := m.board.BombAt(n.X, n.Y); b != nil && !b.CanCross(id) {
			continue
		}
		return true
	}
	return false
}

// DetonateRemote sets off every bomb of a participant holding the remote
// power-up. The bombs explode on the next Update.
func (m *Match) DetonateRemote(id core.PlayerID) {
	if m.state != StatePlaying {
		return
	}
	p := m.player(id)
	if p == nil || !p.alive || !p.remote {
		return
	}
	for _, b := range m.board.Bombs() {
		if b.Owner == id {
			b.ForceDetonate()
		}
	}
}

// State returns the current match state.
func (m *Match) State() State {
	return m.state
}

// Round returns the current round number, starting at 1.
func (m *Match) Round() int {
	return m.round
}

// Score returns the number of rounds won by a participant.
func (m *Match) Score(id core.PlayerID) int {
	if id != core.Player1 && id != core.Player2 {
		return 0
	}
	return m.scores[id-1]
}

// TimeRemaining returns the whole seconds left in the round.
func (m *Match) TimeRemaining() int {
	return m.timeRemaining
}

// RoundsToWin returns the number of round wins that decides the game.
func (m *Match) RoundsToWin() int {
	return m.roundsToWin
}

// RoundSeconds returns the round time limit.
func (m *Match) RoundSeconds() int {
	return m.roundSeconds
}

// Winner returns the winner of the last decided round or, in GameOver, of
// the game. NoPlayer means a draw or no decision yet.
func (m *Match) Winner() core.PlayerID {
	return m.winner
}

// Board returns the match board. Callers must treat it as read-only.
func (m *Match) Board() *Board {
	return m.board
}

// Player returns a participant, or nil for an invalid id.
func (m *Match) Player(id core.PlayerID) *Player {
	return m.player(id)
}

// Config returns the configuration the match was built with.
func (m *Match) Config() config.ArenaConfig {
	return m.cfg
}
