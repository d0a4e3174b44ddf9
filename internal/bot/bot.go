// Package bot implements the "cpu" controller: an automated participant
// that issues the same commands a keyboard would.
//
// Each tick the bot builds a danger map from live bombs and explosions.
// Standing in danger it flees to the nearest safe tile; otherwise it bombs
// when the opponent or a breakable wall is in its blast line and an escape
// exists, and walks toward the opponent in between.
package bot

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/bomb-arena/internal/arena"
	"github.com/vovakirdan/bomb-arena/internal/core"
	"github.com/vovakirdan/bomb-arena/internal/registry"
)

// Default tuning
const (
	DefaultBombCooldown = 0.75 // Seconds between bomb decisions
	DefaultSearchDepth  = 64   // BFS depth limit in tiles
)

func init() {
	registry.Register("cpu", func() registry.Controller { return New() })
}

// CPU is the automated controller.
type CPU struct {
	cooldown float64
}

// New creates a CPU controller.
func New() *CPU {
	return &CPU{}
}

// ID returns "cpu".
func (c *CPU) ID() string {
	return "cpu"
}

// Title returns the display name.
func (c *CPU) Title() string {
	return "CPU"
}

// Control decides and issues this tick's commands. Keyboard input is ignored.
func (c *CPU) Control(m *arena.Match, id core.PlayerID, _ core.InputFrame, dt float64) {
	if m.State() != arena.StatePlaying {
		return
	}
	p := m.Player(id)
	opp := m.Player(id.Other())
	if p == nil || opp == nil || !p.Alive() {
		return
	}

	b := m.Board()
	here := p.Tile()
	danger := DangerMap(b)

	if danger.Has(here) {
		dir, _, ok := search(here, passable(b, id, here), func(pt core.Point) bool {
			return !danger.Has(pt)
		})
		if ok && dir != core.DirNone {
			m.MovePlayer(id, dir, dt)
		}
		return
	}

	if p.RemoteDetonate() && c.remoteWorthwhile(b, id, here, opp.Tile()) {
		m.DetonateRemote(id)
		return
	}

	c.cooldown -= dt
	if c.cooldown <= 0 && p.CanPlaceBomb() && worthBombing(b, here, p.BlastRadius(), opp) &&
		canEscape(b, id, here, p.BlastRadius(), danger, escapeDepth(m, p.Speed())) {
		m.PlaceBomb(id)
		c.cooldown = DefaultBombCooldown
		return
	}

	if dir, ok := c.approach(b, id, here, opp, danger); ok {
		m.MovePlayer(id, dir, dt)
	}
}

// approach returns the first step toward the opponent, or toward the
// nearest tile next to a breakable wall when the opponent is unreachable.
func (c *CPU) approach(b *arena.Board, id core.PlayerID, here core.Point, opp *arena.Player, danger mapset.Set[core.Point]) (core.Direction, bool) {
	walk := passable(b, id, here)
	safe := func(pt core.Point) bool {
		return walk(pt) && (pt == here || !danger.Has(pt))
	}

	if opp.Alive() {
		target := opp.Tile()
		if dir, _, ok := search(here, safe, func(pt core.Point) bool { return pt == target }); ok {
			return dir, dir != core.DirNone
		}
	}
	dir, _, ok := search(here, safe, func(pt core.Point) bool { return nextToBreakable(b, pt) })
	return dir, ok && dir != core.DirNone
}

// remoteWorthwhile reports whether setting off the bot's own bombs would
// catch the opponent without catching the bot.
func (c *CPU) remoteWorthwhile(b *arena.Board, id core.PlayerID, here, opp core.Point) bool {
	own := mapset.New[core.Point]()
	for _, bomb := range b.Bombs() {
		if bomb.Owner == id {
			addBlast(own, b, bomb.Pos(), bomb.Radius)
		}
	}
	return own.Size() > 0 && own.Has(opp) && !own.Has(here)
}

// escapeDepth converts the fuse into the number of tiles the bot can cover
// before its bomb goes off.
func escapeDepth(m *arena.Match, speed float64) int {
	tiles := int(m.Config().Bombs.FuseSeconds * speed)
	return core.Clamp(tiles-1, 1, DefaultSearchDepth)
}

// DangerMap returns every tile covered by a live explosion or lying in the
// blast line of a live bomb.
func DangerMap(b *arena.Board) mapset.Set[core.Point] {
	danger := mapset.New[core.Point]()
	for _, e := range b.Explosions() {
		danger.Put(core.Point{X: e.X, Y: e.Y})
	}
	for _, bomb := range b.Bombs() {
		addBlast(danger, b, bomb.Pos(), bomb.Radius)
	}
	return danger
}

// addBlast adds the cells a blast of radius r at origin would reach,
// following the same blocking rules as a detonation. It reports whether
// the blast would hit a breakable wall.
func addBlast(set mapset.Set[core.Point], b *arena.Board, origin core.Point, r int) bool {
	set.Put(origin)
	hitsBreakable := false
	for _, d := range core.Directions {
		for dist := 1; dist <= r; dist++ {
			pt := origin.Step(d, dist)
			tile := b.Tile(pt.X, pt.Y)
			if tile == arena.TileIndestructible {
				break
			}
			set.Put(pt)
			if tile == arena.TileBreakable {
				hitsBreakable = true
				break
			}
		}
	}
	return hitsBreakable
}

// worthBombing reports whether a bomb at here would reach the opponent or
// a breakable wall.
func worthBombing(b *arena.Board, here core.Point, radius int, opp *arena.Player) bool {
	blast := mapset.New[core.Point]()
	hitsWall := addBlast(blast, b, here, radius)
	return hitsWall || (opp.Alive() && blast.Has(opp.Tile()))
}

// canEscape reports whether, after dropping a bomb at here, a tile outside
// every blast line is reachable within maxDepth steps.
func canEscape(b *arena.Board, id core.PlayerID, here core.Point, radius int, danger mapset.Set[core.Point], maxDepth int) bool {
	future := mapset.New[core.Point]()
	addBlast(future, b, here, radius)

	walk := passable(b, id, here)
	_, dist, ok := search(here, walk, func(pt core.Point) bool {
		return !danger.Has(pt) && !future.Has(pt)
	})
	return ok && dist > 0 && dist <= maxDepth
}

// passable returns the tile filter used for path finding. start is always
// accepted so the bot can leave a cell under its own bomb.
func passable(b *arena.Board, id core.PlayerID, start core.Point) func(core.Point) bool {
	return func(pt core.Point) bool {
		if pt == start {
			return true
		}
		if !b.InBounds(pt.X, pt.Y) || b.Tile(pt.X, pt.Y).IsWall() || b.HasExplosion(pt.X, pt.Y) {
			return false
		}
		if bomb := b.BombAt(pt.X, pt.Y); bomb != nil && !bomb.CanCross(id) {
			return false
		}
		return true
	}
}

func nextToBreakable(b *arena.Board, pt core.Point) bool {
	for _, d := range core.Directions {
		n := pt.Step(d, 1)
		if b.Tile(n.X, n.Y) == arena.TileBreakable {
			return true
		}
	}
	return false
}

type node struct {
	pt    core.Point
	first core.Direction
	depth int
}

// search runs a breadth-first search from start over tiles accepted by
// walk. It returns the first step toward the nearest tile satisfying goal
// and that tile's distance. Reaching start itself yields DirNone.
func search(start core.Point, walk func(core.Point) bool, goal func(core.Point) bool) (core.Direction, int, bool) {
	visited := mapset.New[core.Point]()
	queue := []node{{pt: start, first: core.DirNone}}
	visited.Put(start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if goal(current.pt) {
			return current.first, current.depth, true
		}
		if current.depth >= DefaultSearchDepth {
			continue
		}

		for _, d := range core.Directions {
			n := current.pt.Step(d, 1)
			if visited.Has(n) || !walk(n) {
				continue
			}
			visited.Put(n)
			first := current.first
			if first == core.DirNone {
				first = d
			}
			queue = append(queue, node{pt: n, first: first, depth: current.depth + 1})
		}
	}
	return core.DirNone, 0, false
}
