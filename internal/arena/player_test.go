package arena

import (
	"testing"

	"github.com/vovakirdan/bomb-arena/internal/config"
	"github.com/vovakirdan/bomb-arena/internal/core"
)

func newTestPlayer() *Player {
	cfg := config.DefaultArenaConfig()
	return NewPlayer(core.Player1, "Alice", core.Point{X: 1, Y: 1}, cfg.Player, cfg.PowerUps)
}

func TestPlayerDefaults(t *testing.T) {
	p := newTestPlayer()

	if p.Lives() != 3 || p.MaxBombs() != 1 || p.BlastRadius() != 1 {
		t.Errorf("stats = lives %d bombs %d radius %d, want 3/1/1", p.Lives(), p.MaxBombs(), p.BlastRadius())
	}
	if !p.Alive() {
		t.Error("new player should be alive")
	}
	if p.Position() != (core.Vec{X: 1, Y: 1}) {
		t.Errorf("position = %v, want spawn centre", p.Position())
	}
	if p.Facing() != core.DirDown {
		t.Errorf("facing = %v, want Down", p.Facing())
	}
}

func TestPlayerHit(t *testing.T) {
	p := newTestPlayer()
	p.pos = core.Vec{X: 3, Y: 1}

	if !p.Hit(1.0) {
		t.Fatal("first hit rejected")
	}
	if p.Lives() != 2 {
		t.Errorf("lives = %d, want 2", p.Lives())
	}
	if p.Tile() != p.Spawn() {
		t.Errorf("tile after hit = %v, want spawn %v", p.Tile(), p.Spawn())
	}
	if p.Hit(1.0) {
		t.Error("hit during grace accepted")
	}

	p.tick(1.0)
	if p.Invulnerable() {
		t.Error("grace should be over")
	}
	p.Hit(0)
	p.Hit(0)
	if p.Alive() || p.Lives() != 0 {
		t.Errorf("alive=%v lives=%d, want dead with 0", p.Alive(), p.Lives())
	}
	if p.Hit(0) {
		t.Error("dead player hit again")
	}
}

func TestPlayerReset(t *testing.T) {
	p := newTestPlayer()
	p.ApplyPowerUp(PowerUpRadius)
	p.ApplyPowerUp(PowerUpRemote)
	p.Hit(0)
	p.bombPlaced()
	p.pos = core.Vec{X: 5, Y: 5}

	p.Reset(false)
	if p.Lives() != 2 {
		t.Errorf("lives = %d, want 2 carried over", p.Lives())
	}
	if p.BlastRadius() != 2 || !p.RemoteDetonate() {
		t.Error("power-ups must persist across a partial reset")
	}
	if p.BombsPlaced() != 0 || p.Position() != (core.Vec{X: 1, Y: 1}) {
		t.Error("partial reset must clear bombs and position")
	}

	// Eliminated players return with default lives.
	p.Hit(0)
	p.Hit(0)
	p.Reset(false)
	if !p.Alive() || p.Lives() != 3 {
		t.Errorf("alive=%v lives=%d after elimination reset", p.Alive(), p.Lives())
	}

	p.Reset(true)
	if p.BlastRadius() != 1 || p.RemoteDetonate() {
		t.Error("full reset must restore default stats")
	}
}

func TestPlayerPowerUpCaps(t *testing.T) {
	p := newTestPlayer()
	limits := config.DefaultArenaConfig().PowerUps

	for i := 0; i < 20; i++ {
		p.ApplyPowerUp(PowerUpBomb)
		p.ApplyPowerUp(PowerUpRadius)
		p.ApplyPowerUp(PowerUpSpeed)
		p.ApplyPowerUp(PowerUpLife)
	}
	if p.MaxBombs() != limits.MaxBombs {
		t.Errorf("max bombs = %d, want cap %d", p.MaxBombs(), limits.MaxBombs)
	}
	if p.BlastRadius() != limits.MaxRadius {
		t.Errorf("radius = %d, want cap %d", p.BlastRadius(), limits.MaxRadius)
	}
	if p.Speed() != limits.MaxSpeed {
		t.Errorf("speed = %v, want cap %v", p.Speed(), limits.MaxSpeed)
	}
	if p.Lives() != limits.MaxLives {
		t.Errorf("lives = %d, want cap %d", p.Lives(), limits.MaxLives)
	}
}

func TestPlayerBombBookkeeping(t *testing.T) {
	p := newTestPlayer()
	if !p.CanPlaceBomb() {
		t.Fatal("fresh player cannot place a bomb")
	}
	p.bombPlaced()
	if p.CanPlaceBomb() {
		t.Error("player over its bomb limit")
	}
	p.bombDetonated()
	p.bombDetonated()
	if p.BombsPlaced() != 0 {
		t.Errorf("placed = %d, want 0", p.BombsPlaced())
	}
}
