// Package config provides YAML-based game configuration loading and
// difficulty management for the blaster platform.
package config

// BlasterConfig contains all tunable parameters for the game.
type BlasterConfig struct {
	Physics    BlasterPhysics   `yaml:"physics"`
	Field      BlasterField     `yaml:"field"`
	Gameplay   BlasterGameplay  `yaml:"gameplay"`
	Generator  GeneratorConfig  `yaml:"generator"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BlasterPhysics defines motion parameters. Speeds are in cells per second;
// the simulation integrates them against frame dt.
type BlasterPhysics struct {
	BallSpeed        float64 `yaml:"ball_speed"`
	BallRadius       float64 `yaml:"ball_radius"`
	LaunchIntervalMS int     `yaml:"launch_interval_ms"`
	AimSpeed         float64 `yaml:"aim_speed"` // radians per second
}

// BlasterField defines brick-field geometry in screen cells.
type BlasterField struct {
	BrickWidth  int     `yaml:"brick_width"`
	BrickHeight int     `yaml:"brick_height"`
	SideMargin  int     `yaml:"side_margin"`
	TopMargin   int     `yaml:"top_margin"`
	ColGap      float64 `yaml:"col_gap"` // cells between brick columns
	RowGap      float64 `yaml:"row_gap"` // cells between brick rows
	DescentStep float64 `yaml:"descent_step"` // cells dropped per completed turn
}

// BlasterGameplay defines game rules.
type BlasterGameplay struct {
	InitialBalls int `yaml:"initial_balls"`
}

// GeneratorConfig defines the procedural level generator knobs used by the
// endless mode.
type GeneratorConfig struct {
	BaseRows      int     `yaml:"base_rows"`
	Cols          int     `yaml:"cols"`
	GapFloor      float64 `yaml:"gap_floor"`
	GapBase       float64 `yaml:"gap_base"`
	GapStep       float64 `yaml:"gap_step"`
	HitBonusEvery int     `yaml:"hit_bonus_every"`
	MaxHits       int     `yaml:"max_hits"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Extra ball speed factor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
