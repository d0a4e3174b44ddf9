package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/bomb-arena/internal/arena"
	"github.com/vovakirdan/bomb-arena/internal/config"
	"github.com/vovakirdan/bomb-arena/internal/core"
)

func newRenderMatch(t *testing.T) *arena.Match {
	t.Helper()
	cfg := config.DefaultArenaConfig()
	cfg.Board.BreakableDensity = 0
	m := arena.NewMatch(cfg, arena.WithSeed(7))
	m.StartNewGame("alice", "bob", 3, 120)
	return m
}

func TestDrawArena(t *testing.T) {
	m := newRenderMatch(t)
	m.PlaceBomb(core.Player1)
	snap := m.Snapshot()

	w, h := RequiredSize(snap.Width, snap.Height)
	s := core.NewScreen(max(w, 80), h)
	DrawArena(s, snap, []string{"hello"})
	out := s.String()

	for _, want := range []string{"P1", "P2", "██", "alice", "bob", "hello"} {
		if !strings.Contains(out, want) {
			t.Errorf("render is missing %q", want)
		}
	}

	// The bomb sits under player 1, who is drawn on top.
	m.MovePlayer(core.Player1, core.DirRight, 1)
	DrawArena(s, m.Snapshot(), nil)
	if !strings.Contains(s.String(), "()") {
		t.Error("bomb not drawn after player 1 walked off it")
	}
}

func TestDrawArenaOverlay(t *testing.T) {
	m := newRenderMatch(t)
	m.TogglePause()
	snap := m.Snapshot()

	w, h := RequiredSize(snap.Width, snap.Height)
	s := core.NewScreen(w, h)
	DrawArena(s, snap, []string{"PAUSED"})

	out := s.String()
	if !strings.Contains(out, "PAUSED") || !strings.ContainsRune(out, '┌') {
		t.Errorf("paused overlay missing:\n%s", out)
	}
}

func TestDrawArenaTooSmall(t *testing.T) {
	m := newRenderMatch(t)
	s := core.NewScreen(40, 10)
	DrawArena(s, m.Snapshot(), nil)

	if !strings.Contains(s.String(), "Terminal too small") {
		t.Error("expected a size warning")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorBlue)

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("RenderScreen() = %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
}
