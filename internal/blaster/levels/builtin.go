package levels

import "github.com/treyreynolds/super-ball-blaster/internal/core"

// rowColors cycles brick colors by grid row.
var rowColors = []core.Color{
	core.ColorBrightRed,
	core.ColorOrange,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightCyan,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
}

// ParseLayout creates a Layout from an ASCII map.
// Characters:
//
//	'.'     = empty cell
//	'#'     = brick with 1 hit (10 points)
//	'1'-'9' = brick with N hits (10 * N points)
//	'o'     = bonus-ball brick (1 hit, 10 points, grants an extra ball)
//	'x'     = tough diamond brick (3 hits, 30 points)
//
// Rows may have different lengths; short rows produce fewer bricks.
func ParseLayout(id, name string, lines []string) Layout {
	maxWidth := 0
	for _, line := range lines {
		if len(line) > maxWidth {
			maxWidth = len(line)
		}
	}

	layout := Layout{
		ID:   id,
		Name: name,
		Rows: len(lines),
		Cols: maxWidth,
	}

	for row, line := range lines {
		color := rowColors[row%len(rowColors)]
		for col := 0; col < len(line); col++ {
			ch := line[col]

			var spec BrickSpec
			switch {
			case ch == '#':
				spec = BrickSpec{Shape: ShapeSquare, Hits: 1, Points: 10}
			case ch >= '1' && ch <= '9':
				hits := int(ch - '0')
				spec = BrickSpec{Shape: ShapeSquare, Hits: hits, Points: hits * 10}
			case ch == 'o':
				spec = BrickSpec{Shape: ShapeRound, Hits: 1, Points: 10, Bonus: true}
			case ch == 'x':
				spec = BrickSpec{Shape: ShapeDiamond, Hits: 3, Points: 30}
			default:
				continue
			}

			spec.Row = row
			spec.Col = col
			spec.Color = color
			layout.Bricks = append(layout.Bricks, spec)
		}
	}

	return layout
}

// BuiltinLayouts returns the campaign's built-in levels.
func BuiltinLayouts() []Layout {
	return []Layout{
		ParseLayout("opening", "Opening Volley", []string{
			"..####..",
			".##..##.",
			"##.o..##",
		}),

		ParseLayout("staircase", "Staircase", []string{
			"#.......",
			"##......",
			"2##...o.",
			"22##....",
			"222##...",
		}),

		ParseLayout("bulwark", "Bulwark", []string{
			"xx2222xx",
			".#.oo.#.",
			"########",
		}),

		ParseLayout("hourglass", "Hourglass", []string{
			"33333333",
			".222222.",
			"..2oo2..",
			".222222.",
			"33333333",
		}),

		ParseLayout("vault", "The Vault", []string{
			"x333333x",
			"3.o..o.3",
			"3.4444.3",
			"3......3",
			"x333333x",
		}),

		ParseLayout("gauntlet", "Gauntlet", []string{
			"5.x.5.x.",
			".4.o.4..",
			"x.5.x.5.",
			".4...4.o",
			"55555555",
		}),

		ParseLayout("citadel", "Citadel", []string{
			"x66x66x6",
			"6o....6.",
			"6.7777.6",
			"6.7oo7.6",
			"6......6",
			"x66666x6",
		}),

		ParseLayout("finale", "Finale", []string{
			"99999999",
			"8x8o8x8.",
			"88888888",
			"7x7.7x7o",
			"77777777",
		}),
	}
}

// CampaignSource serves a fixed, ordered list of layouts.
// Generating past the last layout reports ok=false; the game treats that as
// campaign completion.
type CampaignSource struct {
	layouts []Layout
}

// NewCampaignSource creates a source over the built-in layouts followed by
// any extra layouts (e.g. loaded from a custom level directory).
func NewCampaignSource(extra ...Layout) *CampaignSource {
	layouts := BuiltinLayouts()
	layouts = append(layouts, extra...)
	return &CampaignSource{layouts: layouts}
}

// Generate implements Source.
func (s *CampaignSource) Generate(level int) (Layout, bool) {
	if level < 0 || level >= len(s.layouts) {
		return Layout{}, false
	}
	return s.layouts[level], true
}

// Count returns the number of layouts the source can serve.
func (s *CampaignSource) Count() int {
	return len(s.layouts)
}
