package arena

import (
	"math/rand"

	"github.com/vovakirdan/bomb-arena/internal/config"
)

// PowerUpKind represents the different power-up pickups.
type PowerUpKind int

const (
	PowerUpBomb   PowerUpKind = iota // +1 bomb capacity
	PowerUpRadius                    // +1 blast radius
	PowerUpSpeed                     // +speed step
	PowerUpLife                      // +1 life
	PowerUpRemote                    // Remote detonation
)

// Glyph returns the display character for a power-up kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerUpBomb:
		return 'B'
	case PowerUpRadius:
		return 'F'
	case PowerUpSpeed:
		return 'S'
	case PowerUpLife:
		return '♥'
	case PowerUpRemote:
		return 'R'
	default:
		return '?'
	}
}

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpBomb:
		return "Extra Bomb"
	case PowerUpRadius:
		return "Fire Up"
	case PowerUpSpeed:
		return "Speed Up"
	case PowerUpLife:
		return "Extra Life"
	case PowerUpRemote:
		return "Remote"
	default:
		return "?"
	}
}

// PowerUp is a collectible item lying on a cell. It stays until collected.
type PowerUp struct {
	X, Y int
	Kind PowerUpKind
}

// rollPowerUp picks a kind by weight. ok is false when every weight is zero.
func rollPowerUp(rng *rand.Rand, w config.PowerUpWeights) (kind PowerUpKind, ok bool) {
	total := w.Total()
	if total <= 0 {
		return 0, false
	}
	n := rng.Intn(total)
	for _, c := range []struct {
		kind   PowerUpKind
		weight int
	}{
		{PowerUpBomb, w.Bomb},
		{PowerUpRadius, w.Radius},
		{PowerUpSpeed, w.Speed},
		{PowerUpLife, w.Life},
		{PowerUpRemote, w.Remote},
	} {
		if n < c.weight {
			return c.kind, true
		}
		n -= c.weight
	}
	return 0, false
}
