package arena

import (
	"math/rand"

	"github.com/vovakirdan/bomb-arena/internal/config"
	"github.com/vovakirdan/bomb-arena/internal/core"
)

// SpawnPoints returns the fixed start tiles of the two participants:
// top-left for Player1, bottom-right for Player2.
func SpawnPoints(width, height int) [2]core.Point {
	return [2]core.Point{
		{X: 1, Y: 1},
		{X: width - 2, Y: height - 2},
	}
}

// Board owns the tile grid and every live bomb, explosion and power-up.
//
// Layout rules:
//   - Border is all TileIndestructible
//   - TileIndestructible at every position where both X and Y are even
//   - Random TileBreakable fill at the configured density
//   - Spawn tiles and their four neighbours are kept clear
type Board struct {
	width  int
	height int
	tiles  [][]Tile

	bombs      []*Bomb
	explosions []*Explosion
	powerUps   []*PowerUp

	density       float64
	powerUpChance float64
	explosionTime float64
	weights       config.PowerUpWeights

	rng *rand.Rand
}

// NewBoard creates a board from the arena configuration and lays it out.
func NewBoard(cfg config.ArenaConfig, rng *rand.Rand) *Board {
	b := &Board{
		width:         cfg.Board.Width,
		height:        cfg.Board.Height,
		density:       cfg.Board.BreakableDensity,
		powerUpChance: cfg.Board.PowerUpChance,
		explosionTime: cfg.Bombs.ExplosionSeconds,
		weights:       cfg.PowerUps.Weights,
		rng:           rng,
	}
	b.tiles = make([][]Tile, b.height)
	for y := range b.tiles {
		b.tiles[y] = make([]Tile, b.width)
	}
	b.Initialize()
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Initialize generates a fresh layout. Transient entities are not touched;
// use Reset to clear them as well.
func (b *Board) Initialize() {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			switch {
			case x == 0 || y == 0 || x == b.width-1 || y == b.height-1:
				b.tiles[y][x] = TileIndestructible
			case x%2 == 0 && y%2 == 0:
				b.tiles[y][x] = TileIndestructible
			default:
				b.tiles[y][x] = TileEmpty
			}
		}
	}

	zones := b.spawnZones()
	for y := 1; y < b.height-1; y++ {
		for x := 1; x < b.width-1; x++ {
			if b.tiles[y][x] != TileEmpty || zones[core.Point{X: x, Y: y}] {
				continue
			}
			if b.rng.Float64() < b.density {
				b.tiles[y][x] = TileBreakable
			}
		}
	}

	// Pillars inside a zone stay; anything else is cleared.
	for p := range zones {
		if b.InBounds(p.X, p.Y) && b.tiles[p.Y][p.X] == TileBreakable {
			b.tiles[p.Y][p.X] = TileEmpty
		}
	}
}

// spawnZones returns the tiles kept free around each spawn point.
func (b *Board) spawnZones() map[core.Point]bool {
	zones := make(map[core.Point]bool)
	for _, sp := range SpawnPoints(b.width, b.height) {
		zones[sp] = true
		for _, d := range core.Directions {
			zones[sp.Step(d, 1)] = true
		}
	}
	return zones
}

// InSpawnZone reports whether (x, y) belongs to a protected spawn area.
func (b *Board) InSpawnZone(x, y int) bool {
	return b.spawnZones()[core.Point{X: x, Y: y}]
}

// Reset clears all bombs, explosions and power-ups and regenerates the layout.
func (b *Board) Reset() {
	b.bombs = nil
	b.explosions = nil
	b.powerUps = nil
	b.Initialize()
}

// InBounds reports whether (x, y) lies on the grid.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Tile returns the tile at (x, y). Off-grid reads return TileIndestructible.
func (b *Board) Tile(x, y int) Tile {
	if !b.InBounds(x, y) {
		return TileIndestructible
	}
	return b.tiles[y][x]
}

// IsWalkable reports whether (x, y) is an empty cell. Bomb cells are not
// walkable here; per-participant permission is checked by the Match.
func (b *Board) IsWalkable(x, y int) bool {
	return b.Tile(x, y) == TileEmpty
}

// BombAt returns the live bomb at (x, y), or nil.
func (b *Board) BombAt(x, y int) *Bomb {
	for _, bomb := range b.bombs {
		if bomb.X == x && bomb.Y == y {
			return bomb
		}
	}
	return nil
}

// HasExplosion reports whether a live explosion covers (x, y).
func (b *Board) HasExplosion(x, y int) bool {
	return b.explosionIndex(x, y) >= 0
}

func (b *Board) explosionIndex(x, y int) int {
	for i, e := range b.explosions {
		if e.X == x && e.Y == y {
			return i
		}
	}
	return -1
}

// PowerUpAt returns the power-up lying at (x, y), or nil.
func (b *Board) PowerUpAt(x, y int) *PowerUp {
	for _, p := range b.powerUps {
		if p.X == x && p.Y == y {
			return p
		}
	}
	return nil
}

// RemovePowerUp takes a power-up off the board. Returns false if it was not present.
func (b *Board) RemovePowerUp(p *PowerUp) bool {
	for i, candidate := range b.powerUps {
		if candidate == p {
			b.powerUps = append(b.powerUps[:i], b.powerUps[i+1:]...)
			return true
		}
	}
	return false
}

// AddBomb arms a bomb on an empty in-bounds cell. Returns false otherwise.
func (b *Board) AddBomb(bomb *Bomb) bool {
	if b.Tile(bomb.X, bomb.Y) != TileEmpty {
		return false
	}
	b.tiles[bomb.Y][bomb.X] = TileBomb
	b.bombs = append(b.bombs, bomb)
	return true
}

// Bombs returns the live bombs in placement order.
func (b *Board) Bombs() []*Bomb {
	out := make([]*Bomb, len(b.bombs))
	copy(out, b.bombs)
	return out
}

// Explosions returns the live explosion cells.
func (b *Board) Explosions() []*Explosion {
	out := make([]*Explosion, len(b.explosions))
	copy(out, b.explosions)
	return out
}

// PowerUps returns the power-ups lying on the board.
func (b *Board) PowerUps() []*PowerUp {
	out := make([]*PowerUp, len(b.powerUps))
	copy(out, b.powerUps)
	return out
}

// Tiles returns a copy of the grid, indexed [y][x].
func (b *Board) Tiles() [][]Tile {
	out := make([][]Tile, b.height)
	for y := range out {
		out[y] = make([]Tile, b.width)
		copy(out[y], b.tiles[y])
	}
	return out
}

// Update ages bombs and explosions by dt seconds, clears burnt-out
// explosions and returns the bombs whose fuse has run out, in placement
// order. It does not detonate anything.
func (b *Board) Update(dt float64) []*Bomb {
	for _, bomb := range b.bombs {
		bomb.Update(dt)
	}

	live := make([]*Explosion, 0, len(b.explosions))
	var expired []*Explosion
	for _, e := range b.explosions {
		e.Update(dt)
		if e.Expired() {
			expired = append(expired, e)
			continue
		}
		live = append(live, e)
	}
	b.explosions = live
	for _, e := range expired {
		if b.tiles[e.Y][e.X] == TileExplosion && !b.HasExplosion(e.X, e.Y) {
			b.tiles[e.Y][e.X] = TileEmpty
		}
	}

	var due []*Bomb
	for _, bomb := range b.bombs {
		if bomb.ShouldExplode() {
			due = append(due, bomb)
		}
	}
	return due
}

// ResolveDetonations runs one detonation pass. Bombs are processed in the
// given order; bombs forced by a blast are appended to the same pass, so
// chains of any length finish before it returns. Every detonated bomb is
// returned in processing order.
func (b *Board) ResolveDetonations(due []*Bomb) []*Bomb {
	queue := make([]*Bomb, len(due))
	copy(queue, due)

	var detonated []*Bomb
	for i := 0; i < len(queue); i++ {
		bomb := queue[i]
		if !b.isLive(bomb) {
			continue
		}
		queue = append(queue, b.Detonate(bomb)...)
		detonated = append(detonated, bomb)
	}
	return detonated
}

// Detonate explodes a live bomb: it vacates the bomb's cell, then spreads
// the blast up to Radius cells in each direction. Indestructible walls and
// the board edge stop an arm without a cell; a breakable wall is destroyed,
// gets an end cap, may drop a power-up and stops the arm. Other bombs in
// the path are forced and returned; they are not detonated here.
func (b *Board) Detonate(bomb *Bomb) []*Bomb {
	if !b.removeBomb(bomb) {
		return nil
	}
	b.tiles[bomb.Y][bomb.X] = TileEmpty
	b.addExplosion(bomb.X, bomb.Y, ShapeCenter)

	var chained []*Bomb
	origin := bomb.Pos()
	for _, dir := range core.Directions {
		for dist := 1; dist <= bomb.Radius; dist++ {
			p := origin.Step(dir, dist)
			if !b.InBounds(p.X, p.Y) {
				break
			}

			tile := b.tiles[p.Y][p.X]
			if tile == TileIndestructible {
				break
			}
			if tile == TileBreakable {
				b.tiles[p.Y][p.X] = TileEmpty
				b.addExplosion(p.X, p.Y, endShape(dir))
				b.maybeDropPowerUp(p.X, p.Y)
				break
			}

			if other := b.BombAt(p.X, p.Y); other != nil {
				if !other.Forced() {
					other.ForceDetonate()
					chained = append(chained, other)
				}
				continue
			}

			shape := midShape(dir)
			if dist == bomb.Radius {
				shape = endShape(dir)
			}
			b.addExplosion(p.X, p.Y, shape)
		}
	}
	return chained
}

// addExplosion puts a fresh explosion on a cell, replacing an older one.
func (b *Board) addExplosion(x, y int, shape Shape) {
	e := NewExplosion(x, y, shape, b.explosionTime)
	if i := b.explosionIndex(x, y); i >= 0 {
		b.explosions[i] = e
	} else {
		b.explosions = append(b.explosions, e)
	}
	b.tiles[y][x] = TileExplosion
}

func (b *Board) maybeDropPowerUp(x, y int) {
	if b.rng.Float64() >= b.powerUpChance {
		return
	}
	kind, ok := rollPowerUp(b.rng, b.weights)
	if !ok {
		return
	}
	b.powerUps = append(b.powerUps, &PowerUp{X: x, Y: y, Kind: kind})
}

func (b *Board) isLive(bomb *Bomb) bool {
	for _, candidate := range b.bombs {
		if candidate == bomb {
			return true
		}
	}
	return false
}

func (b *Board) removeBomb(bomb *Bomb) bool {
	for i, candidate := range b.bombs {
		if candidate == bomb {
			b.bombs = append(b.bombs[:i], b.bombs[i+1:]...)
			return true
		}
	}
	return false
}
