// Package levels provides brick layouts for the blaster simulation: built-in
// campaign levels, YAML level files, and a seeded procedural generator.
// This package depends on core but the simulation's physics never depends on
// how a layout was produced.
package levels

import "github.com/treyreynolds/super-ball-blaster/internal/core"

// Shape tags a brick for rendering only; it has no effect on physics.
type Shape int

const (
	ShapeSquare Shape = iota
	ShapeRound
	ShapeDiamond
)

// Glyph returns the display character for a shape.
func (s Shape) Glyph() rune {
	switch s {
	case ShapeRound:
		return '◍'
	case ShapeDiamond:
		return '◆'
	default:
		return '█'
	}
}

// BrickSpec describes one brick within a layout grid.
type BrickSpec struct {
	Row, Col int
	Shape    Shape
	Hits     int  // Remaining hit count, always >= 1
	Points   int  // Points awarded when destroyed
	Bonus    bool // Destroying this brick grants an extra ball
	Color    core.Color
}

// Layout is a complete brick arrangement for one level.
// Rows and Cols bound the grid; Bricks may leave any cell empty, and rows
// may be ragged (shorter rows simply produce fewer bricks).
type Layout struct {
	ID     string
	Name   string
	Rows   int
	Cols   int
	Bricks []BrickSpec
}

// BrickCount returns the number of bricks in the layout.
func (l Layout) BrickCount() int {
	return len(l.Bricks)
}

// Source supplies a layout per level index (0-based).
// Returning ok=false signals that no layout exists for the index; the game
// treats that as campaign completion, not an error.
type Source interface {
	Generate(level int) (layout Layout, ok bool)
}
