package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/treyreynolds/super-ball-blaster/internal/core"
)

// YAMLLayout represents the YAML structure for a level file.
type YAMLLayout struct {
	ID     string      `yaml:"id"`
	Name   string      `yaml:"name"`
	Size   YAMLSize    `yaml:"size"`
	Bricks []YAMLBrick `yaml:"bricks"`
}

// YAMLSize represents the layout grid dimensions.
type YAMLSize struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// YAMLBrick represents a single brick in YAML format.
type YAMLBrick struct {
	Row    int    `yaml:"row"`
	Col    int    `yaml:"col"`
	Shape  string `yaml:"shape,omitempty"`  // "square", "round", "diamond"
	Hits   int    `yaml:"hits,omitempty"`   // default 1
	Points int    `yaml:"points,omitempty"` // default 10 * hits
	Bonus  bool   `yaml:"bonus,omitempty"`
	Color  string `yaml:"color,omitempty"`
}

// ParseYAML parses a YAML level file into a Layout.
func ParseYAML(data []byte) (Layout, error) {
	var yl YAMLLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yl.Size.Rows <= 0 || yl.Size.Cols <= 0 {
		return Layout{}, fmt.Errorf("level %q: size must be positive, got %dx%d", yl.ID, yl.Size.Rows, yl.Size.Cols)
	}

	layout := Layout{
		ID:   yl.ID,
		Name: yl.Name,
		Rows: yl.Size.Rows,
		Cols: yl.Size.Cols,
	}

	for _, b := range yl.Bricks {
		if b.Row < 0 || b.Row >= yl.Size.Rows || b.Col < 0 || b.Col >= yl.Size.Cols {
			// Skip out-of-grid bricks
			continue
		}

		hits := b.Hits
		if hits <= 0 {
			hits = 1
		}
		points := b.Points
		if points <= 0 {
			points = hits * 10
		}

		color, ok := core.ParseColor(b.Color)
		if !ok {
			color = rowColors[b.Row%len(rowColors)]
		}

		layout.Bricks = append(layout.Bricks, BrickSpec{
			Row:    b.Row,
			Col:    b.Col,
			Shape:  parseShape(b.Shape),
			Hits:   hits,
			Points: points,
			Bonus:  b.Bonus,
			Color:  color,
		})
	}

	return layout, nil
}

// parseShape maps a shape name to a Shape tag, defaulting to square.
func parseShape(name string) Shape {
	switch name {
	case "round":
		return ShapeRound
	case "diamond":
		return ShapeDiamond
	default:
		return ShapeSquare
	}
}
