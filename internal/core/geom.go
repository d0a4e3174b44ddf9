// Package core provides fundamental types and utilities shared by the arena
// simulation and its front-ends. It has no external dependencies so game
// logic stays pure and testable.
package core

import "math"

// PlayerID identifies one of the two participants of a match.
type PlayerID int

const (
	NoPlayer PlayerID = iota // Used for "no winner" / draw
	Player1
	Player2
)

// String returns a short label for the player.
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "-"
	}
}

// Other returns the opposing player id.
func (p PlayerID) Other() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoPlayer
	}
}

// Direction is a cardinal movement direction.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four cardinal directions in propagation order.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the unit grid offset for the direction. Y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Unit returns the direction as a unit vector.
func (d Direction) Unit() Vec {
	dx, dy := d.Delta()
	return Vec{X: float64(dx), Y: float64(dy)}
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}

// Point is an integer tile coordinate.
type Point struct {
	X, Y int
}

// Step returns p moved n tiles in direction d.
func (p Point) Step(d Direction, n int) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx*n, Y: p.Y + dy*n}
}

// Vec is a continuous position measured in tile units. Tile (x, y) is
// centred on the point (x, y).
type Vec struct {
	X, Y float64
}

// Add returns the component-wise sum.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale multiplies both components by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Tile converts the position to its tile coordinate using TileOf.
func (v Vec) Tile() Point {
	return Point{X: TileOf(v.X), Y: TileOf(v.Y)}
}

// Centre returns the continuous position at the centre of tile p.
func (p Point) Centre() Vec {
	return Vec{X: float64(p.X), Y: float64(p.Y)}
}

// TileOf maps a continuous coordinate to a tile index (round half up).
// Every continuous-to-grid conversion goes through this function.
func TileOf(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Rect represents an axis-aligned bounding box used for layout.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
