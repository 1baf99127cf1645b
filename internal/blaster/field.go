// Package blaster implements the turn-based brick blaster game: the player
// aims a volley of balls, fires them in sequence, and clears descending
// brick formations level by level.
package blaster

import (
	"github.com/treyreynolds/super-ball-blaster/internal/blaster/levels"
	"github.com/treyreynolds/super-ball-blaster/internal/core"
)

// Brick is a single destructible obstacle placed on the field.
// Position and size are in screen cells (float64 so descent can be fractional).
type Brick struct {
	ID      int
	X, Y    float64
	W, H    float64
	Shape   levels.Shape
	Color   core.Color
	Hits    int // Remaining hits before destruction
	Points  int
	Bonus   bool // Destroying it grants an extra ball
	Visible bool
}

// Right returns the x coordinate of the brick's right edge.
func (b *Brick) Right() float64 { return b.X + b.W }

// Bottom returns the y coordinate of the brick's bottom edge.
func (b *Brick) Bottom() float64 { return b.Y + b.H }

// HitResult describes the outcome of a single ball-brick hit.
type HitResult struct {
	Destroyed   bool
	Points      int // Points awarded (nonzero only on destruction)
	GrantsBonus bool
}

// FieldGeometry maps layout grid coordinates to screen cells.
type FieldGeometry struct {
	BrickW    float64 // Width of one brick in cells
	BrickH    float64 // Height of one brick in cells
	OffsetX   float64 // Left edge of the brick grid
	OffsetY   float64 // Top edge of the brick grid
	ColGap    float64 // Horizontal spacing between bricks
	RowGap    float64 // Vertical spacing between bricks
}

// Field holds the brick formation for the current level.
type Field struct {
	bricks       []Brick
	initialCount int
}

// NewField creates an empty field.
func NewField() *Field {
	return &Field{}
}

// Initialize populates the field from a level layout.
// Grid cell (row, col) maps to screen position via the geometry.
func (f *Field) Initialize(layout levels.Layout, geom FieldGeometry) {
	f.bricks = make([]Brick, 0, len(layout.Bricks))
	for i, spec := range layout.Bricks {
		f.bricks = append(f.bricks, Brick{
			ID:      i,
			X:       geom.OffsetX + float64(spec.Col)*(geom.BrickW+geom.ColGap),
			Y:       geom.OffsetY + float64(spec.Row)*(geom.BrickH+geom.RowGap),
			W:       geom.BrickW,
			H:       geom.BrickH,
			Shape:   spec.Shape,
			Color:   spec.Color,
			Hits:    spec.Hits,
			Points:  spec.Points,
			Bonus:   spec.Bonus,
			Visible: true,
		})
	}
	f.initialCount = len(f.bricks)
}

// ApplyHit decrements the brick's hit count by exactly one. A brick that
// reaches zero becomes invisible and yields its points. Hitting an already
// destroyed brick is a no-op.
func (f *Field) ApplyHit(index int) HitResult {
	if index < 0 || index >= len(f.bricks) {
		return HitResult{}
	}
	brick := &f.bricks[index]
	if !brick.Visible {
		return HitResult{}
	}

	brick.Hits--
	if brick.Hits <= 0 {
		brick.Visible = false
		return HitResult{
			Destroyed:   true,
			Points:      brick.Points,
			GrantsBonus: brick.Bonus,
		}
	}
	return HitResult{}
}

// Descend moves every brick down by the given amount. Destroyed bricks move
// too so their slots stay aligned with the grid.
func (f *Field) Descend(amount float64) {
	for i := range f.bricks {
		f.bricks[i].Y += amount
	}
}

// IsCleared returns true when no visible bricks remain.
func (f *Field) IsCleared() bool {
	for i := range f.bricks {
		if f.bricks[i].Visible {
			return false
		}
	}
	return true
}

// HasCrossedLossLine returns true if any visible brick's bottom edge has
// moved past the given y coordinate.
func (f *Field) HasCrossedLossLine(lossY float64) bool {
	for i := range f.bricks {
		if f.bricks[i].Visible && f.bricks[i].Bottom() > lossY {
			return true
		}
	}
	return false
}

// VisibleCount returns the number of bricks still standing.
func (f *Field) VisibleCount() int {
	count := 0
	for i := range f.bricks {
		if f.bricks[i].Visible {
			count++
		}
	}
	return count
}

// InitialCount returns the number of bricks the level started with.
func (f *Field) InitialCount() int {
	return f.initialCount
}

// Bricks returns the backing brick slice. Callers must not reorder it;
// brick indices are stable for the lifetime of a level.
func (f *Field) Bricks() []Brick {
	return f.bricks
}
