package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/bomb-arena/internal/arena"
	"github.com/vovakirdan/bomb-arena/internal/config"
	"github.com/vovakirdan/bomb-arena/internal/core"
)

func TestHumanRegistered(t *testing.T) {
	if !Exists("human") {
		t.Fatal("human controller not registered")
	}
	c, err := Create("human")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.ID() != "human" {
		t.Errorf("ID = %q", c.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "human" && info.Title == "Keyboard" {
			found = true
		}
	}
	if !found {
		t.Error("List is missing the human controller")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("nope")
	if !errors.Is(err, ErrUnknown) {
		t.Errorf("err = %v, want ErrUnknown", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("human", func() Controller { return Human{} })
}

func TestHumanControl(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	cfg.Board.BreakableDensity = 0
	m := arena.NewMatch(cfg, arena.WithSeed(1))
	m.StartNewGame("a", "b", 1, 60)

	in := core.NewInputFrame()
	in.Set(core.ActionBomb)
	Human{}.Control(m, core.Player1, in, 1.0/60)
	if len(m.Board().Bombs()) != 1 {
		t.Fatal("bomb action ignored")
	}

	in.Clear()
	in.Set(core.ActionRight)
	Human{}.Control(m, core.Player1, in, 0.2)
	if m.Player(core.Player1).Position().X <= 1 {
		t.Error("move action ignored")
	}
}
