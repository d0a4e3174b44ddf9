package core

import "testing"

func TestTileOf(t *testing.T) {
	tests := []struct {
		in       float64
		expected int
	}{
		{1.0, 1},
		{1.49, 1},
		{1.5, 2},
		{0.5, 1},
		{0.49, 0},
		{-0.4, 0},
		{-0.5, 0},
		{-0.51, -1},
	}

	for _, tc := range tests {
		if got := TileOf(tc.in); got != tc.expected {
			t.Errorf("TileOf(%v) = %d, expected %d", tc.in, got, tc.expected)
		}
	}
}

func TestVecTileAndCentre(t *testing.T) {
	v := Vec{X: 3.2, Y: 4.6}
	if got := v.Tile(); got != (Point{X: 3, Y: 5}) {
		t.Errorf("Tile() = %+v", got)
	}

	p := Point{X: 7, Y: 2}
	if p.Centre().Tile() != p {
		t.Error("Centre of a tile should map back to the same tile")
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
		{DirNone, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			dx, dy := tc.dir.Delta()
			if dx != tc.dx || dy != tc.dy {
				t.Errorf("Delta() = (%d, %d), expected (%d, %d)", dx, dy, tc.dx, tc.dy)
			}
			u := tc.dir.Unit()
			if u.X != float64(tc.dx) || u.Y != float64(tc.dy) {
				t.Errorf("Unit() = %+v", u)
			}
		})
	}
}

func TestPointStep(t *testing.T) {
	p := Point{X: 5, Y: 5}
	if got := p.Step(DirLeft, 3); got != (Point{X: 2, Y: 5}) {
		t.Errorf("Step(Left, 3) = %+v", got)
	}
	if got := p.Step(DirDown, 1); got != (Point{X: 5, Y: 6}) {
		t.Errorf("Step(Down, 1) = %+v", got)
	}
}

func TestPlayerIDOther(t *testing.T) {
	if Player1.Other() != Player2 || Player2.Other() != Player1 {
		t.Error("Other() should swap the two players")
	}
	if NoPlayer.Other() != NoPlayer {
		t.Error("NoPlayer has no opponent")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 || Clamp(-5, 0, 10) != 0 || Clamp(15, 0, 10) != 10 {
		t.Error("Clamp() returned wrong values")
	}
}

func TestInputFrameMove(t *testing.T) {
	f := NewInputFrame()
	if f.Move() != DirNone {
		t.Error("Empty frame should have no movement")
	}
	f.Set(ActionLeft)
	f.Set(ActionBomb)
	if f.Move() != DirLeft {
		t.Errorf("Move() = %v, expected Left", f.Move())
	}
	f.Clear()
	if f.Has(ActionLeft) || f.Has(ActionBomb) {
		t.Error("Clear() should drop all actions")
	}
}
