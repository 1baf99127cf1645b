package levels

import (
	"fmt"

	"github.com/treyreynolds/super-ball-blaster/internal/core"
)

// GenParams configures the procedural level generator.
type GenParams struct {
	Cols     int     // Brick columns per row
	BaseRows int     // Rows at level 0; grows by one every other level
	GapFloor float64 // Lower bound on per-cell gap probability
	GapBase  float64 // Gap probability at level 0
	GapStep  float64 // Gap probability reduction per level

	Table []BrickKind // Weighted brick-type table

	HitBonusEvery int // Levels per +1 bonus hit (0 disables scaling)
	MaxHits       int // Hit count cap after bonus scaling
}

// DefaultGenParams returns sensible defaults for endless play.
func DefaultGenParams() GenParams {
	return GenParams{
		Cols:     8,
		BaseRows: 2,
		GapFloor: 0.1,
		GapBase:  0.3,
		GapStep:  0.05,
		Table: []BrickKind{
			{Shape: ShapeSquare, Hits: 1, Points: 10, Color: core.ColorBrightGreen, Weight: 0.50},
			{Shape: ShapeSquare, Hits: 2, Points: 20, Color: core.ColorBrightYellow, Weight: 0.25},
			{Shape: ShapeDiamond, Hits: 3, Points: 30, Color: core.ColorBrightRed, Weight: 0.15},
			{Shape: ShapeRound, Hits: 1, Points: 10, Bonus: true, Color: core.ColorBrightCyan, Weight: 0.10},
		},
		HitBonusEvery: 4,
		MaxHits:       9,
	}
}

// Generator is a procedural Source. For a fixed seed it is fully
// deterministic: each level index derives its own RNG stream, so layouts do
// not depend on the order levels are requested in.
type Generator struct {
	params GenParams
	seed   int64
}

// NewGenerator creates a generator with the given parameters and seed.
func NewGenerator(params GenParams, seed int64) *Generator {
	if len(params.Table) == 0 {
		params.Table = DefaultGenParams().Table
	}
	if params.Cols <= 0 {
		params.Cols = DefaultGenParams().Cols
	}
	if params.BaseRows <= 0 {
		params.BaseRows = DefaultGenParams().BaseRows
	}
	return &Generator{params: params, seed: seed}
}

// Generate implements Source. It always succeeds: endless play never runs
// out of levels.
func (g *Generator) Generate(level int) (Layout, bool) {
	if level < 0 {
		level = 0
	}

	p := g.params
	rng := NewSimpleRNG(g.seed + int64(level)*0x9E3779B9)

	rows := p.BaseRows + level/2
	gapProb := p.GapBase - float64(level)*p.GapStep
	if gapProb < p.GapFloor {
		gapProb = p.GapFloor
	}

	bonusHits := 0
	if p.HitBonusEvery > 0 {
		bonusHits = level / p.HitBonusEvery
	}

	layout := Layout{
		ID:   fmt.Sprintf("gen-%03d", level+1),
		Name: fmt.Sprintf("Wave %d", level+1),
		Rows: rows,
		Cols: p.Cols,
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < p.Cols; col++ {
			if rng.Float64() < gapProb {
				continue
			}

			kind := PickWeighted(p.Table, rng.Float64())

			hits := kind.Hits
			if !kind.Bonus {
				hits += bonusHits
			}
			if p.MaxHits > 0 && hits > p.MaxHits {
				hits = p.MaxHits
			}

			layout.Bricks = append(layout.Bricks, BrickSpec{
				Row:    row,
				Col:    col,
				Shape:  kind.Shape,
				Hits:   hits,
				Points: kind.Points,
				Bonus:  kind.Bonus,
				Color:  kind.Color,
			})
		}
	}

	return layout, true
}
