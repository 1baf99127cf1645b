package levels

import (
	"math"
	"testing"
)

func testTable() []BrickKind {
	return []BrickKind{
		{Shape: ShapeSquare, Hits: 1, Weight: 0.5},
		{Shape: ShapeSquare, Hits: 2, Weight: 0.3},
		{Shape: ShapeDiamond, Hits: 3, Weight: 0.2},
	}
}

func TestPickWeightedBuckets(t *testing.T) {
	table := testTable()

	cases := []struct {
		draw     float64
		wantHits int
	}{
		{0.0, 1},
		{0.49, 1},
		{0.5, 2},
		{0.79, 2},
		{0.8, 3},
		{0.99, 3},
	}

	for _, tc := range cases {
		got := PickWeighted(table, tc.draw)
		if got.Hits != tc.wantHits {
			t.Errorf("PickWeighted(%v): got hits %d, want %d", tc.draw, got.Hits, tc.wantHits)
		}
	}
}

func TestPickWeightedRoundingFallback(t *testing.T) {
	// The largest representable draw below 1.0 must still select a defined
	// entry even if float accumulation never exceeds it.
	table := testTable()
	draw := math.Nextafter(1.0, 0.0)

	got := PickWeighted(table, draw)
	if got.Hits != table[len(table)-1].Hits {
		t.Errorf("adversarial draw %v: got hits %d, want last entry hits %d", draw, got.Hits, table[len(table)-1].Hits)
	}
}

func TestPickWeightedUnnormalizedWeights(t *testing.T) {
	// Weights need not sum to 1; they are taken relative to their sum.
	table := []BrickKind{
		{Hits: 1, Weight: 5},
		{Hits: 2, Weight: 5},
	}

	if got := PickWeighted(table, 0.25); got.Hits != 1 {
		t.Errorf("draw 0.25: got hits %d, want 1", got.Hits)
	}
	if got := PickWeighted(table, 0.75); got.Hits != 2 {
		t.Errorf("draw 0.75: got hits %d, want 2", got.Hits)
	}
}

func TestPickWeightedDegenerateTables(t *testing.T) {
	if got := PickWeighted(nil, 0.5); got.Hits != 0 {
		t.Errorf("empty table should return zero value, got %+v", got)
	}

	// All-zero weights fall back to the last entry.
	table := []BrickKind{{Hits: 1}, {Hits: 2}}
	if got := PickWeighted(table, 0.5); got.Hits != 2 {
		t.Errorf("zero-weight table: got hits %d, want 2", got.Hits)
	}
}
