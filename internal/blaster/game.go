package blaster

import (
	"fmt"
	"math"

	"github.com/treyreynolds/super-ball-blaster/internal/blaster/levels"
	"github.com/treyreynolds/super-ball-blaster/internal/config"
	"github.com/treyreynolds/super-ball-blaster/internal/core"
	"github.com/treyreynolds/super-ball-blaster/internal/registry"
)

// Visual characters for rendering
const (
	BallChar     = '●'
	LauncherChar = '▲'
	AimDotChar   = '·'
	LossLineChar = '┄'
	SeparatorH   = '─'
)

// Game state constants
const (
	StatePlaying = "playing"
	StatePaused  = "paused"
	StateWon     = "won"  // Level cleared (or campaign complete)
	StateLost    = "lost" // A brick crossed the loss line
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Authored levels, win by clearing them all
	ModeEndless                  // Procedurally generated waves, play forever
)

// Flat score bonus for clearing a level.
const levelClearBonus = 100

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// levelsDir stores an extra directory of YAML campaign levels set via CLI
var levelsDir string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// SetLevelsDir sets a directory of extra YAML campaign levels.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// startLevel stores the 1-indexed campaign start level set via CLI (0 = first)
var startLevel int

// SetStartLevel sets the campaign level to start from (1-indexed).
// Pass 0 to start from the beginning.
func SetStartLevel(level int) {
	startLevel = level
}

// LevelCount returns the number of built-in campaign levels.
func LevelCount() int {
	return levels.NewCampaignSource().Count()
}

// LevelNames returns the display names of the built-in campaign levels.
func LevelNames() []string {
	layouts := levels.BuiltinLayouts()
	names := make([]string, len(layouts))
	for i, l := range layouts {
		names[i] = l.Name
	}
	return names
}

// Game implements the brick blaster game logic.
type Game struct {
	// Game mode
	mode   GameMode
	source levels.Source

	// Simulation components
	field *Field
	fleet *Fleet
	turn  *TurnController
	score *ScoreTracker

	// Game state
	state      string
	levelIndex int // 0-based; displayed as +1
	tickCount  int
	completed  bool // Campaign exhausted all levels

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.BlasterConfig
	difficulty *config.DifficultyManager

	// Layout (computed from screen size)
	bounds         Bounds
	geom           FieldGeometry
	launchY        float64 // y of the launch line
	lossY          float64 // Bricks past this line end the game
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new game instance (campaign mode).
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new game instance in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// NewWithSource creates a campaign game over an explicit level source.
// Used by tests to drive the game with handcrafted layouts.
func NewWithSource(src levels.Source) *Game {
	return &Game{mode: ModeCampaign, source: src}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "blaster_endless"
	}
	return "blaster"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Ball Blaster (Endless)"
	}
	return "Ball Blaster"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadBlaster(configPath)
	if err != nil {
		cfg = config.DefaultBlasterConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyBlasterPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg

	// Initialize difficulty manager
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	// Check screen size
	g.minScreenW = 40
	g.minScreenH = 18
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	// Build the level source unless a test injected one
	if g.source == nil {
		g.source = g.buildSource(runtime.Seed)
	}

	g.field = NewField()
	g.fleet = NewFleet(cfg.Physics.BallRadius, float64(cfg.Physics.LaunchIntervalMS)/1000.0)
	g.turn = NewTurnController()
	g.score = &ScoreTracker{}

	g.state = StatePlaying
	g.levelIndex = 0
	if g.mode == ModeCampaign && startLevel > 0 {
		g.levelIndex = startLevel - 1
	}
	g.tickCount = 0
	g.completed = false

	g.loadLevel(g.levelIndex, cfg.Gameplay.InitialBalls)
}

// buildSource constructs the level source for the current mode.
func (g *Game) buildSource(seed int64) levels.Source {
	if g.mode == ModeEndless {
		params := levels.DefaultGenParams()
		if g.cfg.Generator.BaseRows > 0 {
			params.BaseRows = g.cfg.Generator.BaseRows
		}
		if g.cfg.Generator.Cols > 0 {
			params.Cols = g.cfg.Generator.Cols
		}
		if g.cfg.Generator.GapFloor > 0 {
			params.GapFloor = g.cfg.Generator.GapFloor
		}
		if g.cfg.Generator.GapBase > 0 {
			params.GapBase = g.cfg.Generator.GapBase
		}
		if g.cfg.Generator.GapStep > 0 {
			params.GapStep = g.cfg.Generator.GapStep
		}
		if g.cfg.Generator.HitBonusEvery > 0 {
			params.HitBonusEvery = g.cfg.Generator.HitBonusEvery
		}
		if g.cfg.Generator.MaxHits > 0 {
			params.MaxHits = g.cfg.Generator.MaxHits
		}
		return levels.NewGenerator(params, seed)
	}

	var extra []levels.Layout
	if levelsDir != "" {
		if loaded, err := levels.NewLoader(levelsDir).LoadAll(); err == nil {
			extra = loaded
		}
	}
	return levels.NewCampaignSource(extra...)
}

// loadLevel requests a layout from the source and resets the playfield.
// A missing layout means the campaign is complete.
func (g *Game) loadLevel(index int, ballCount int) {
	layout, ok := g.source.Generate(index)
	if !ok {
		g.state = StateWon
		g.completed = true
		return
	}

	g.calculateLayout(layout)
	g.field.Initialize(layout, g.geom)

	anchorX := float64(g.runtime.ScreenW) / 2
	g.fleet.Reset(ballCount, anchorX, g.launchY, g.bounds.Right)
	g.turn = NewTurnController()
}

// calculateLayout computes playfield geometry for a layout's grid size.
func (g *Game) calculateLayout(layout levels.Layout) {
	screenW := float64(g.runtime.ScreenW)
	screenH := float64(g.runtime.ScreenH)

	// HUD takes the top 2 rows; the bottom row shows hints.
	g.bounds = Bounds{
		Left:   0,
		Right:  screenW,
		Top:    2,
		Bottom: screenH - 2,
	}
	g.launchY = g.bounds.Bottom

	brickH := float64(g.cfg.Field.BrickHeight)
	if brickH <= 0 {
		brickH = 2
	}

	cols := layout.Cols
	if cols < 1 {
		cols = 1
	}
	margin := float64(g.cfg.Field.SideMargin)
	colGap := g.cfg.Field.ColGap
	rowGap := g.cfg.Field.RowGap
	brickW := (screenW - 2*margin - float64(cols-1)*colGap) / float64(cols)

	g.geom = FieldGeometry{
		BrickW:  brickW,
		BrickH:  brickH,
		OffsetX: margin,
		OffsetY: g.bounds.Top + float64(g.cfg.Field.TopMargin),
		ColGap:  colGap,
		RowGap:  rowGap,
	}

	// A brick within one brick-height of the launch line ends the game.
	g.lossY = g.launchY - brickH
}

// Step advances the game by one tick. dt is the elapsed time in seconds
// since the previous call.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && (g.state == StateWon || g.state == StateLost) {
		g.RestartGame()
		return core.StepResult{State: g.State()}
	}

	// Level cleared: confirm advances to the next level
	if g.state == StateWon && !g.completed {
		if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
			g.StartNextLevel()
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	// Don't update if paused or terminal
	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// Aim input rotates the launch direction
	aimDelta := g.cfg.Physics.AimSpeed * dt
	if in.Has(core.ActionLeft) {
		g.turn.Aim(aimDelta)
	}
	if in.Has(core.ActionRight) {
		g.turn.Aim(-aimDelta)
	}

	// Fire releases the volley at the current angle
	if in.Has(core.ActionFire) {
		speed := g.difficulty.Speed(g.cfg.Physics.BallSpeed, g.score.Score(), g.tickCount)
		g.turn.Release(g.fleet, speed)
	}

	// Recall aborts the volley without ending the turn
	if in.Has(core.ActionRecall) {
		g.turn.Recall(g.fleet)
	}

	g.Advance(dt)

	return core.StepResult{State: g.State()}
}

// Advance runs one simulation tick: release a due ball, step every ball in
// flight, apply hits, then evaluate turn completion.
func (g *Game) Advance(dt float64) {
	g.fleet.Tick(dt)

	radius := g.fleet.Radius()
	bricks := g.field.Bricks()

	for _, ball := range g.fleet.Balls() {
		if !ball.Launched {
			continue
		}

		stepped, outcome := StepBall(*ball, dt, radius, g.bounds, bricks)
		*ball = stepped

		if outcome.Returned {
			g.fleet.OnBallReturned(ball)
			continue
		}
		if outcome.BrickIndex >= 0 {
			result := g.field.ApplyHit(outcome.BrickIndex)
			if g.score.Apply(result) {
				g.fleet.Add()
			}
		}
	}

	if ended, hadLaunch := g.turn.Update(g.fleet); ended && hadLaunch {
		g.endTurn()
	}
}

// endTurn runs turn-end processing: win check, descent, loss check.
func (g *Game) endTurn() {
	if g.field.IsCleared() && g.field.InitialCount() > 0 {
		g.score.AddLevelBonus(levelClearBonus)
		g.state = StateWon
		return
	}

	g.field.Descend(g.cfg.Field.DescentStep)
	if g.field.HasCrossedLossLine(g.lossY) {
		g.state = StateLost
	}
}

// StartNextLevel advances to the next level. Score and ball count carry
// over; only brick and ball positions reset.
func (g *Game) StartNextLevel() {
	g.levelIndex++
	g.state = StatePlaying
	g.loadLevel(g.levelIndex, g.fleet.Count())
}

// RestartGame resets everything back to the first level.
func (g *Game) RestartGame() {
	g.score.Reset()
	g.levelIndex = 0
	g.tickCount = 0
	g.completed = false
	g.state = StatePlaying
	g.loadLevel(g.levelIndex, g.cfg.Gameplay.InitialBalls)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Score(),
		Level:    g.levelIndex + 1,
		Balls:    g.fleet.Count(),
		GameOver: g.state == StateLost || (g.state == StateWon && g.completed),
		Paused:   g.state == StatePaused,
	}
}

// Status returns the internal state string (playing, paused, won, lost).
func (g *Game) Status() string {
	return g.state
}

// Destroyed returns the total bricks destroyed this run.
func (g *Game) Destroyed() int {
	return g.score.Destroyed()
}

// Phase returns the current turn phase, for tests and the HUD.
func (g *Game) Phase() Phase {
	return g.turn.Phase()
}

// AimAngle returns the current launch angle in radians.
func (g *Game) AimAngle() float64 {
	return g.turn.Angle()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderLossLine(dst)
	g.renderBricks(dst)
	g.renderAim(dst)
	g.renderBalls(dst)
	g.renderOverlay(dst)
}

// renderHUD draws the score, ball count, and level indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf("Score: %d", g.score.Score())
	dst.DrawText(1, 0, scoreText)

	ballsText := fmt.Sprintf("Balls: %d", g.fleet.Count())
	dst.DrawTextCentered(0, ballsText)

	var levelText string
	if g.mode == ModeEndless {
		levelText = fmt.Sprintf("Wave: %d", g.levelIndex+1)
	} else {
		levelText = fmt.Sprintf("Level: %d", g.levelIndex+1)
	}
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, SeparatorH)
	}
}

// renderLossLine draws the boundary bricks must not cross.
func (g *Game) renderLossLine(dst *core.Screen) {
	y := int(g.lossY)
	if y < 0 || y >= dst.Height() {
		return
	}
	for x := 0; x < dst.Width(); x++ {
		dst.SetCell(x, y, LossLineChar, core.ColorGray)
	}
}

// renderBricks draws visible bricks with their remaining hit counts.
func (g *Game) renderBricks(dst *core.Screen) {
	for _, brick := range g.field.Bricks() {
		if !brick.Visible {
			continue
		}

		x0 := int(brick.X)
		y0 := int(brick.Y)
		x1 := int(brick.Right())
		y1 := int(brick.Bottom())
		glyph := brick.Shape.Glyph()

		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				if x >= 0 && x < dst.Width() && y >= 0 && y < dst.Height() {
					dst.SetCell(x, y, glyph, brick.Color)
				}
			}
		}

		// Hit count in the brick center for multi-hit bricks
		if brick.Hits > 1 {
			label := fmt.Sprintf("%d", brick.Hits)
			cx := (x0 + x1 - len(label)) / 2
			cy := (y0 + y1) / 2
			for i, r := range label {
				if cx+i >= 0 && cx+i < dst.Width() && cy >= 0 && cy < dst.Height() {
					dst.SetCell(cx+i, cy, r, core.ColorWhite)
				}
			}
		}
	}
}

// renderAim draws the launcher and, between volleys, a dotted aim ray.
func (g *Game) renderAim(dst *core.Screen) {
	lx := int(g.fleet.AnchorX())
	ly := int(g.launchY)
	if lx >= 0 && lx < dst.Width() && ly >= 0 && ly < dst.Height() {
		dst.SetCell(lx, ly, LauncherChar, core.ColorCyan)
	}

	phase := g.turn.Phase()
	if phase != PhaseIdle && phase != PhaseAiming {
		return
	}

	angle := g.turn.Angle()
	dx := math.Cos(angle)
	dy := -math.Sin(angle)
	for t := 2.0; t < 10.0; t += 1.5 {
		x := int(g.fleet.AnchorX() + dx*t)
		y := int(g.launchY + dy*t)
		if x >= 0 && x < dst.Width() && y >= 2 && y < dst.Height() {
			dst.SetCell(x, y, AimDotChar, core.ColorYellow)
		}
	}
}

// renderBalls draws balls in flight and the parked stack at the anchor.
func (g *Game) renderBalls(dst *core.Screen) {
	for _, ball := range g.fleet.Balls() {
		if !ball.Launched {
			continue
		}
		x := int(ball.X)
		y := int(ball.Y)
		if x >= 0 && x < dst.Width() && y >= 0 && y < dst.Height() {
			dst.SetCell(x, y, BallChar, core.ColorWhite)
		}
	}
}

// renderOverlay draws state-dependent messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePlaying:
		if g.turn.Phase() == PhaseIdle || g.turn.Phase() == PhaseAiming {
			dst.DrawTextCentered(dst.Height()-1, "←/→ aim  SPACE fire  X recall  P pause")
		}

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateLost:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score.Score())
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWon:
		if g.completed {
			subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score.Score())
			g.drawCenteredBox(dst, "CAMPAIGN COMPLETE!", subtitle)
		} else {
			g.drawCenteredBox(dst, "LEVEL CLEAR!", "Press SPACE for next level")
		}
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// Register the games with the registry
func init() {
	registry.Register("blaster", func() registry.Game {
		return New()
	})
	registry.Register("blaster_endless", func() registry.Game {
		return NewEndless()
	})
}
