package arena

import (
	"github.com/vovakirdan/bomb-arena/internal/config"
	"github.com/vovakirdan/bomb-arena/internal/core"
)

// Player is one participant of a match. It persists across rounds; death
// only clears the alive flag.
type Player struct {
	id     core.PlayerID
	name   string
	pos    core.Vec
	spawn  core.Point
	facing core.Direction

	lives  int
	alive  bool
	grace  float64
	placed int

	maxBombs int
	radius   int
	speed    float64
	remote   bool

	defaults config.PlayerConfig
	limits   config.PowerUpConfig
}

// NewPlayer creates a participant at its spawn tile with default stats.
func NewPlayer(id core.PlayerID, name string, spawn core.Point, defaults config.PlayerConfig, limits config.PowerUpConfig) *Player {
	p := &Player{
		id:       id,
		name:     name,
		spawn:    spawn,
		defaults: defaults,
		limits:   limits,
	}
	p.Reset(true)
	return p
}

// Reset moves the player back to spawn and clears round bookkeeping.
// A full reset also restores default lives and stats; otherwise lives carry
// over, except that an eliminated player comes back with default lives.
func (p *Player) Reset(full bool) {
	p.pos = p.spawn.Centre()
	p.facing = core.DirDown
	p.placed = 0
	p.grace = 0

	if full {
		p.lives = p.defaults.Lives
		p.maxBombs = p.defaults.MaxBombs
		p.radius = p.defaults.BlastRadius
		p.speed = p.defaults.Speed
		p.remote = false
	} else if p.lives <= 0 {
		p.lives = p.defaults.Lives
	}
	p.alive = true
}

func (p *Player) ID() core.PlayerID       { return p.id }
func (p *Player) Name() string            { return p.name }
func (p *Player) Position() core.Vec      { return p.pos }
func (p *Player) Tile() core.Point        { return p.pos.Tile() }
func (p *Player) Spawn() core.Point       { return p.spawn }
func (p *Player) Facing() core.Direction  { return p.facing }
func (p *Player) Lives() int              { return p.lives }
func (p *Player) Alive() bool             { return p.alive }
func (p *Player) MaxBombs() int           { return p.maxBombs }
func (p *Player) BombsPlaced() int        { return p.placed }
func (p *Player) BlastRadius() int        { return p.radius }
func (p *Player) Speed() float64          { return p.speed }
func (p *Player) RemoteDetonate() bool    { return p.remote }
func (p *Player) Invulnerable() bool      { return p.grace > 0 }
func (p *Player) GraceRemaining() float64 { return p.grace }
func (p *Player) CanPlaceBomb() bool      { return p.alive && p.placed < p.maxBombs }

// Hit applies one unit of blast damage. It returns false when the player is
// dead or still inside the respawn grace window. On a hit the player is put
// back on its spawn tile.
func (p *Player) Hit(grace float64) bool {
	if !p.alive || p.grace > 0 {
		return false
	}
	p.lives--
	if p.lives <= 0 {
		p.lives = 0
		p.alive = false
		return true
	}
	p.pos = p.spawn.Centre()
	p.grace = grace
	return true
}

// tick counts down the respawn grace timer.
func (p *Player) tick(dt float64) {
	if p.grace > 0 {
		p.grace -= dt
		if p.grace < 0 {
			p.grace = 0
		}
	}
}

func (p *Player) bombPlaced() {
	p.placed++
}

// bombDetonated releases a bomb slot.
func (p *Player) bombDetonated() {
	if p.placed > 0 {
		p.placed--
	}
}

// ApplyPowerUp improves the player's stats up to the configured caps.
func (p *Player) ApplyPowerUp(kind PowerUpKind) {
	switch kind {
	case PowerUpBomb:
		if p.maxBombs < p.limits.MaxBombs {
			p.maxBombs++
		}
	case PowerUpRadius:
		if p.radius < p.limits.MaxRadius {
			p.radius++
		}
	case PowerUpSpeed:
		if p.speed < p.limits.MaxSpeed {
			p.speed = min(p.speed+p.limits.SpeedStep, p.limits.MaxSpeed)
		}
	case PowerUpLife:
		if p.lives < p.limits.MaxLives {
			p.lives++
		}
	case PowerUpRemote:
		p.remote = true
	}
}
