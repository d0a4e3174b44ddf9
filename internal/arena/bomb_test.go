package arena

import (
	"testing"

	"github.com/vovakirdan/bomb-arena/internal/core"
)

func TestBombFuse(t *testing.T) {
	b := NewBomb(3, 3, 1, core.Player1, 3.0)

	if got := b.TimePercentage(); got != 1.0 {
		t.Fatalf("TimePercentage at creation = %v, want 1.0", got)
	}
	if b.ShouldExplode() {
		t.Fatal("fresh bomb should not explode")
	}

	prev := b.TimePercentage()
	elapsed := 0.0
	for elapsed < 3.0 {
		b.Update(0.25)
		elapsed += 0.25

		got := b.TimePercentage()
		if got >= prev {
			t.Fatalf("TimePercentage did not decrease: %v -> %v", prev, got)
		}
		prev = got

		if elapsed < 3.0 && b.ShouldExplode() {
			t.Fatalf("exploded early at %.2fs", elapsed)
		}
	}

	if b.TimePercentage() != 0.0 {
		t.Errorf("TimePercentage at expiry = %v, want 0.0", b.TimePercentage())
	}
	if !b.ShouldExplode() {
		t.Error("bomb should explode once the fuse has elapsed")
	}

	// Overshooting clamps at zero.
	b.Update(1)
	if b.TimeRemaining() != 0 {
		t.Errorf("TimeRemaining = %v, want 0", b.TimeRemaining())
	}
}

func TestBombForceDetonate(t *testing.T) {
	b := NewBomb(3, 3, 2, core.Player2, 3.0)
	b.Update(0.1)
	b.ForceDetonate()

	if !b.ShouldExplode() || !b.Forced() {
		t.Fatal("forced bomb must explode immediately")
	}
	if b.TimeRemaining() != 0 {
		t.Errorf("TimeRemaining = %v, want 0", b.TimeRemaining())
	}
	b.Update(0.5)
	if b.TimeRemaining() != 0 {
		t.Error("forced bomb must not age further")
	}
}

func TestBombPermission(t *testing.T) {
	b := NewBomb(3, 3, 1, core.Player1, 3.0)

	if b.CanCross(core.Player1) || b.CanCross(core.Player2) {
		t.Fatal("no one may cross before Permit")
	}
	b.Permit(core.Player1)
	if !b.CanCross(core.Player1) {
		t.Error("permitted player cannot cross")
	}
	if b.CanCross(core.Player2) {
		t.Error("opponent gained permission")
	}
	b.Revoke(core.Player1)
	if b.CanCross(core.Player1) {
		t.Error("permission survived Revoke")
	}
	// Revoking twice is harmless.
	b.Revoke(core.Player1)
}

func TestExplosionLifetime(t *testing.T) {
	e := NewExplosion(1, 1, ShapeCenter, 0.5)
	if e.Expired() || e.Progress() != 0 {
		t.Fatal("fresh explosion must be live at progress 0")
	}
	e.Update(0.25)
	if e.Expired() {
		t.Error("explosion expired early")
	}
	if got := e.Progress(); got != 0.5 {
		t.Errorf("Progress = %v, want 0.5", got)
	}
	e.Update(0.25)
	if !e.Expired() {
		t.Error("explosion should expire after its duration")
	}
}

func TestShapes(t *testing.T) {
	tests := []struct {
		dir core.Direction
		mid Shape
		end Shape
	}{
		{core.DirUp, ShapeVertical, ShapeEndUp},
		{core.DirDown, ShapeVertical, ShapeEndDown},
		{core.DirLeft, ShapeHorizontal, ShapeEndLeft},
		{core.DirRight, ShapeHorizontal, ShapeEndRight},
	}
	for _, tt := range tests {
		if got := midShape(tt.dir); got != tt.mid {
			t.Errorf("midShape(%v) = %d, want %d", tt.dir, got, tt.mid)
		}
		if got := endShape(tt.dir); got != tt.end || !got.IsEnd() {
			t.Errorf("endShape(%v) = %d, want %d", tt.dir, got, tt.end)
		}
	}
	if ShapeCenter.IsEnd() || ShapeHorizontal.IsEnd() {
		t.Error("non-end shapes reported as end")
	}
}
