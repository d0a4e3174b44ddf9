package arena

import "github.com/vovakirdan/bomb-arena/internal/core"

// Shape describes which part of a blast an explosion cell is.
type Shape int

const (
	ShapeCenter Shape = iota
	ShapeHorizontal
	ShapeVertical
	ShapeEndUp
	ShapeEndDown
	ShapeEndLeft
	ShapeEndRight
)

// midShape returns the straight segment shape for a propagation direction.
func midShape(d core.Direction) Shape {
	if d == core.DirUp || d == core.DirDown {
		return ShapeVertical
	}
	return ShapeHorizontal
}

// endShape returns the end-cap shape for a propagation direction.
func endShape(d core.Direction) Shape {
	switch d {
	case core.DirUp:
		return ShapeEndUp
	case core.DirDown:
		return ShapeEndDown
	case core.DirLeft:
		return ShapeEndLeft
	default:
		return ShapeEndRight
	}
}

// IsEnd reports whether the shape terminates a blast arm.
func (s Shape) IsEnd() bool {
	return s >= ShapeEndUp
}

// Explosion is a transient blast cell used for hit detection.
type Explosion struct {
	X, Y  int
	Shape Shape

	duration  float64
	remaining float64
}

// NewExplosion creates an explosion cell with a full lifetime.
func NewExplosion(x, y int, shape Shape, duration float64) *Explosion {
	return &Explosion{
		X:         x,
		Y:         y,
		Shape:     shape,
		duration:  duration,
		remaining: duration,
	}
}

// Update ages the explosion by dt seconds.
func (e *Explosion) Update(dt float64) {
	e.remaining -= dt
	if e.remaining < 0 {
		e.remaining = 0
	}
}

// Expired reports whether the explosion has burnt out.
func (e *Explosion) Expired() bool {
	return e.remaining <= 0
}

// TimeRemaining returns the lifetime left in seconds.
func (e *Explosion) TimeRemaining() float64 {
	return e.remaining
}

// Progress returns how far the explosion is through its lifetime, 0 to 1.
func (e *Explosion) Progress() float64 {
	if e.duration <= 0 {
		return 1
	}
	return 1 - e.remaining/e.duration
}
