package config

import (
	_ "embed"
)

//go:embed defaults/blaster.yaml
var defaultBlasterYAML []byte

// DefaultBlasterConfig returns the default game configuration.
func DefaultBlasterConfig() BlasterConfig {
	return BlasterConfig{
		Physics: BlasterPhysics{
			BallSpeed:        28.0,
			BallRadius:       0.4,
			LaunchIntervalMS: 150,
			AimSpeed:         1.6,
		},
		Field: BlasterField{
			BrickWidth:  6,
			BrickHeight: 2,
			SideMargin:  1,
			TopMargin:   2,
			ColGap:      0,
			RowGap:      0,
			DescentStep: 2.0,
		},
		Gameplay: BlasterGameplay{
			InitialBalls: 3,
		},
		Generator: GeneratorConfig{
			BaseRows:      2,
			Cols:          8,
			GapFloor:      0.1,
			GapBase:       0.3,
			GapStep:       0.05,
			HitBonusEvery: 4,
			MaxHits:       9,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.3,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.4,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "blaster", "blaster_endless":
		return defaultBlasterYAML
	default:
		return nil
	}
}
