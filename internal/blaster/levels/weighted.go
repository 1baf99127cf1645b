package levels

import "github.com/treyreynolds/super-ball-blaster/internal/core"

// BrickKind is one entry of the generator's weighted brick-type table.
type BrickKind struct {
	Shape  Shape
	Hits   int
	Points int
	Bonus  bool
	Color  core.Color
	Weight float64
}

// PickWeighted selects an entry from the table by cumulative probability.
// draw must be in [0, 1) and weights are taken relative to their sum: the
// table is walked accumulating normalized weights and the first entry whose
// cumulative sum exceeds draw wins.
//
// If floating-point rounding leaves draw unmatched after the walk, the last
// table entry is returned. Selection is never undefined for a non-empty
// table.
func PickWeighted(table []BrickKind, draw float64) BrickKind {
	if len(table) == 0 {
		return BrickKind{}
	}

	total := 0.0
	for _, k := range table {
		total += k.Weight
	}
	if total <= 0 {
		return table[len(table)-1]
	}

	cumulative := 0.0
	for _, k := range table {
		cumulative += k.Weight / total
		if draw < cumulative {
			return k
		}
	}

	// Rounding fallback
	return table[len(table)-1]
}
