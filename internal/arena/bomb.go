package arena

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/bomb-arena/internal/core"
)

// Bomb is an armed explosive on the board.
// Position, radius and owner never change after placement.
type Bomb struct {
	X, Y   int
	Radius int
	Owner  core.PlayerID

	fuse      float64
	remaining float64
	forced    bool
	permitted mapset.Set[core.PlayerID]
}

// NewBomb creates an armed bomb with a full fuse.
func NewBomb(x, y, radius int, owner core.PlayerID, fuse float64) *Bomb {
	return &Bomb{
		X:         x,
		Y:         y,
		Radius:    radius,
		Owner:     owner,
		fuse:      fuse,
		remaining: fuse,
		permitted: mapset.New[core.PlayerID](),
	}
}

// Pos returns the bomb's tile coordinate.
func (b *Bomb) Pos() core.Point {
	return core.Point{X: b.X, Y: b.Y}
}

// Update burns the fuse by dt seconds. Forced bombs are already at zero.
func (b *Bomb) Update(dt float64) {
	if b.forced {
		return
	}
	b.remaining -= dt
	if b.remaining < 0 {
		b.remaining = 0
	}
}

// ForceDetonate zeroes the fuse so the bomb goes off in the current pass.
func (b *Bomb) ForceDetonate() {
	b.forced = true
	b.remaining = 0
}

// Forced reports whether the bomb was set off early.
func (b *Bomb) Forced() bool {
	return b.forced
}

// ShouldExplode reports whether the fuse has run out.
func (b *Bomb) ShouldExplode() bool {
	return b.forced || b.remaining <= 0
}

// TimeRemaining returns the fuse time left in seconds.
func (b *Bomb) TimeRemaining() float64 {
	return b.remaining
}

// TimePercentage returns the remaining fuse as a fraction in [0, 1].
func (b *Bomb) TimePercentage() float64 {
	if b.fuse <= 0 {
		return 0
	}
	return b.remaining / b.fuse
}

// Permit allows a participant to occupy the bomb's cell.
func (b *Bomb) Permit(id core.PlayerID) {
	b.permitted.Put(id)
}

// Revoke withdraws a participant's traversal permission.
func (b *Bomb) Revoke(id core.PlayerID) {
	b.permitted.Remove(id)
}

// CanCross reports whether the participant may occupy the bomb's cell.
func (b *Bomb) CanCross(id core.PlayerID) bool {
	return b.permitted.Has(id)
}
