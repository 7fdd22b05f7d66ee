// Package core provides the core game logic for the Boulder puzzle game.
// This package is UI-agnostic and deterministic.
package core

import "fmt"

// Dir represents a direction the player can be moved in.
type Dir uint8

const (
	DirLeft Dir = iota
	DirRight
	DirUp
	DirDown
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// Horizontal reports whether the direction moves along the X axis.
func (d Dir) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// ParseDir converts a single letter (L, R, U, D) or a direction name to a Dir.
func ParseDir(s string) (Dir, bool) {
	switch s {
	case "L", "l", "left", "Left":
		return DirLeft, true
	case "R", "r", "right", "Right":
		return DirRight, true
	case "U", "u", "up", "Up":
		return DirUp, true
	case "D", "d", "down", "Down":
		return DirDown, true
	default:
		return DirLeft, false
	}
}

// Coord represents a 2D coordinate on the grid.
// X increases to the right, Y increases downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns a new Coord one step in the given direction.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// Below returns the coordinate directly underneath.
func (c Coord) Below() Coord {
	return c.Add(0, 1)
}
