package blaster

import (
	"testing"

	"github.com/treyreynolds/super-ball-blaster/internal/blaster/levels"
)

func testGeom() FieldGeometry {
	return FieldGeometry{BrickW: 6, BrickH: 2, OffsetX: 1, OffsetY: 4}
}

func testLayout(bricks ...levels.BrickSpec) levels.Layout {
	cols := 0
	rows := 0
	for _, b := range bricks {
		if b.Col+1 > cols {
			cols = b.Col + 1
		}
		if b.Row+1 > rows {
			rows = b.Row + 1
		}
	}
	return levels.Layout{ID: "test", Name: "Test", Rows: rows, Cols: cols, Bricks: bricks}
}

func TestFieldInitialize(t *testing.T) {
	f := NewField()
	f.Initialize(testLayout(
		levels.BrickSpec{Row: 0, Col: 0, Hits: 1, Points: 10},
		levels.BrickSpec{Row: 1, Col: 2, Hits: 3, Points: 30},
	), testGeom())

	if f.InitialCount() != 2 {
		t.Fatalf("InitialCount = %d, want 2", f.InitialCount())
	}
	if f.VisibleCount() != 2 {
		t.Errorf("VisibleCount = %d, want 2", f.VisibleCount())
	}

	bricks := f.Bricks()
	if bricks[0].X != 1 || bricks[0].Y != 4 {
		t.Errorf("brick 0 at (%v, %v), want (1, 4)", bricks[0].X, bricks[0].Y)
	}
	if bricks[1].X != 13 || bricks[1].Y != 6 {
		t.Errorf("brick 1 at (%v, %v), want (13, 6)", bricks[1].X, bricks[1].Y)
	}
}

func TestFieldApplyHitMonotonic(t *testing.T) {
	f := NewField()
	f.Initialize(testLayout(
		levels.BrickSpec{Row: 0, Col: 0, Hits: 2, Points: 20},
	), testGeom())

	// First hit damages but does not destroy
	result := f.ApplyHit(0)
	if result.Destroyed {
		t.Error("brick destroyed after 1 of 2 hits")
	}
	if result.Points != 0 {
		t.Errorf("points awarded before destruction: %d", result.Points)
	}
	if f.Bricks()[0].Hits != 1 {
		t.Errorf("hits = %d after one hit, want 1", f.Bricks()[0].Hits)
	}

	// Second hit destroys and awards points
	result = f.ApplyHit(0)
	if !result.Destroyed {
		t.Error("brick not destroyed after final hit")
	}
	if result.Points != 20 {
		t.Errorf("points = %d, want 20", result.Points)
	}
	if f.Bricks()[0].Visible {
		t.Error("destroyed brick still visible")
	}

	// Hitting a destroyed brick is a no-op
	result = f.ApplyHit(0)
	if result.Destroyed || result.Points != 0 {
		t.Errorf("destroyed brick yielded another result: %+v", result)
	}
	if f.Bricks()[0].Hits < 0 {
		t.Errorf("hit count went negative: %d", f.Bricks()[0].Hits)
	}
}

func TestFieldApplyHitBonus(t *testing.T) {
	f := NewField()
	f.Initialize(testLayout(
		levels.BrickSpec{Row: 0, Col: 0, Hits: 1, Points: 10, Bonus: true},
	), testGeom())

	result := f.ApplyHit(0)
	if !result.GrantsBonus {
		t.Error("bonus brick destruction did not grant a bonus")
	}
}

func TestFieldApplyHitOutOfRange(t *testing.T) {
	f := NewField()
	f.Initialize(testLayout(levels.BrickSpec{Row: 0, Col: 0, Hits: 1}), testGeom())

	if result := f.ApplyHit(-1); result.Destroyed {
		t.Error("negative index produced a result")
	}
	if result := f.ApplyHit(99); result.Destroyed {
		t.Error("out-of-range index produced a result")
	}
}

func TestFieldDescendMovesAllBricks(t *testing.T) {
	f := NewField()
	f.Initialize(testLayout(
		levels.BrickSpec{Row: 0, Col: 0, Hits: 1},
		levels.BrickSpec{Row: 0, Col: 1, Hits: 1},
	), testGeom())

	// Destroy one brick; descent still moves it with the grid
	f.ApplyHit(0)
	f.Descend(2)

	for i, brick := range f.Bricks() {
		if brick.Y != 6 {
			t.Errorf("brick %d Y = %v after descend, want 6", i, brick.Y)
		}
	}
}

func TestFieldIsCleared(t *testing.T) {
	f := NewField()
	f.Initialize(testLayout(
		levels.BrickSpec{Row: 0, Col: 0, Hits: 1},
		levels.BrickSpec{Row: 0, Col: 1, Hits: 1},
	), testGeom())

	if f.IsCleared() {
		t.Error("fresh field reported cleared")
	}
	f.ApplyHit(0)
	if f.IsCleared() {
		t.Error("field cleared with one brick standing")
	}
	f.ApplyHit(1)
	if !f.IsCleared() {
		t.Error("field not cleared after all bricks destroyed")
	}
}

func TestFieldLossLine(t *testing.T) {
	f := NewField()
	f.Initialize(testLayout(
		levels.BrickSpec{Row: 0, Col: 0, Hits: 1},
	), testGeom())

	// Brick spans Y 4..6; line at exactly 6 is not yet crossed
	if f.HasCrossedLossLine(6) {
		t.Error("brick bottom touching the line counted as crossed")
	}
	f.Descend(0.5)
	if !f.HasCrossedLossLine(6) {
		t.Error("brick past the line not detected")
	}

	// Invisible bricks never trigger a loss
	f.ApplyHit(0)
	if f.HasCrossedLossLine(6) {
		t.Error("destroyed brick triggered loss")
	}
}
