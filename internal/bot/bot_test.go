package bot

import (
	"testing"

	"github.com/vovakirdan/bomb-arena/internal/arena"
	"github.com/vovakirdan/bomb-arena/internal/config"
	"github.com/vovakirdan/bomb-arena/internal/core"
	"github.com/vovakirdan/bomb-arena/internal/registry"
)

const tick = 1.0 / 60

// smallMatch starts a game on an open 5x5 board:
//
//	#####
//	#1..#
//	#.#.#
//	#...#
//	#####
func smallMatch(t *testing.T) *arena.Match {
	t.Helper()
	cfg := config.DefaultArenaConfig()
	cfg.Board.Width = 5
	cfg.Board.Height = 5
	cfg.Board.BreakableDensity = 0
	cfg.Board.PowerUpChance = 0
	cfg.Player.BlastRadius = 2
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config: %v", err)
	}
	m := arena.NewMatch(cfg, arena.WithSeed(1))
	m.StartNewGame("cpu", "target", 3, 60)
	return m
}

func TestRegistered(t *testing.T) {
	c, err := registry.Create("cpu")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.ID() != "cpu" {
		t.Errorf("ID = %q", c.ID())
	}
}

func TestDangerMap(t *testing.T) {
	m := smallMatch(t)
	m.PlaceBomb(core.Player1)

	danger := DangerMap(m.Board())
	for _, pt := range []core.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}} {
		if !danger.Has(pt) {
			t.Errorf("(%d,%d) not marked dangerous", pt.X, pt.Y)
		}
	}
	for _, pt := range []core.Point{{X: 3, Y: 2}, {X: 3, Y: 3}, {X: 2, Y: 3}, {X: 2, Y: 2}} {
		if danger.Has(pt) {
			t.Errorf("(%d,%d) wrongly marked dangerous", pt.X, pt.Y)
		}
	}
}

func TestSearch(t *testing.T) {
	m := smallMatch(t)
	b := m.Board()
	start := core.Point{X: 1, Y: 1}
	goal := core.Point{X: 3, Y: 3}

	dir, dist, ok := search(start, passable(b, core.Player1, start), func(pt core.Point) bool { return pt == goal })
	if !ok {
		t.Fatal("no path across an open board")
	}
	if dist != 4 {
		t.Errorf("dist = %d, want 4", dist)
	}
	if dir != core.DirDown && dir != core.DirRight {
		t.Errorf("first step = %v", dir)
	}

	_, _, ok = search(start, passable(b, core.Player1, start), func(pt core.Point) bool { return pt == (core.Point{X: 2, Y: 2}) })
	if ok {
		t.Error("found a path into a pillar")
	}
}

func TestBombsOpponentInLineAndSurvives(t *testing.T) {
	m := smallMatch(t)
	// Walk the target up into the top corridor, in line with the bot.
	m.MovePlayer(core.Player2, core.DirUp, 1)
	if got := m.Player(core.Player2).Tile(); got != (core.Point{X: 3, Y: 1}) {
		t.Fatalf("target at %v, want (3,1)", got)
	}

	cpu := New()
	cpu.Control(m, core.Player1, core.NewInputFrame(), tick)
	if len(m.Board().Bombs()) != 1 {
		t.Fatal("bot did not bomb an opponent in its blast line")
	}

	exploded := false
	for i := 0; i < 600 && !exploded; i++ {
		cpu.Control(m, core.Player1, core.NewInputFrame(), tick)
		m.Update(tick)
		exploded = len(m.Board().Explosions()) > 0
	}
	if !exploded {
		t.Fatal("bomb never exploded")
	}
	for i := 0; i < 36; i++ {
		cpu.Control(m, core.Player1, core.NewInputFrame(), tick)
		m.Update(tick)
	}

	if got := m.Player(core.Player1).Lives(); got != 3 {
		t.Errorf("bot lives = %d, want 3", got)
	}
	if got := m.Player(core.Player2).Lives(); got != 2 {
		t.Errorf("target lives = %d, want 2", got)
	}
}

func TestNoBombWithoutEscape(t *testing.T) {
	m := smallMatch(t)
	m.MovePlayer(core.Player2, core.DirUp, 1)

	// Seal the bot in with zero-radius bombs on (2,1) and (1,2); the blast
	// line still reaches the target through them.
	b := m.Board()
	b.AddBomb(arena.NewBomb(2, 1, 0, core.Player2, 10))
	b.AddBomb(arena.NewBomb(1, 2, 0, core.Player2, 10))
	if !worthBombing(b, core.Point{X: 1, Y: 1}, 2, m.Player(core.Player2)) {
		t.Fatal("target should be in the blast line")
	}

	cpu := New()
	cpu.Control(m, core.Player1, core.NewInputFrame(), tick)
	if b.BombAt(1, 1) != nil {
		t.Error("bot bombed itself in")
	}
}

func TestIdleOutsidePlaying(t *testing.T) {
	m := smallMatch(t)
	m.TogglePause()
	m.MovePlayer(core.Player2, core.DirUp, 1)

	New().Control(m, core.Player1, core.NewInputFrame(), tick)
	if len(m.Board().Bombs()) != 0 || m.Player(core.Player1).Position() != (core.Vec{X: 1, Y: 1}) {
		t.Error("bot acted while paused")
	}
}
