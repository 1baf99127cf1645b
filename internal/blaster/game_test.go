package blaster

import (
	"testing"

	"github.com/treyreynolds/super-ball-blaster/internal/blaster/levels"
	"github.com/treyreynolds/super-ball-blaster/internal/core"
)

const testDt = 0.016

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}
}

// stubSource serves handcrafted layouts for driving the game in tests.
type stubSource struct {
	layouts []levels.Layout
}

func (s *stubSource) Generate(level int) (levels.Layout, bool) {
	if level < 0 || level >= len(s.layouts) {
		return levels.Layout{}, false
	}
	return s.layouts[level], true
}

func fireFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	return in
}

// stepUntil drives the game with empty input until cond holds or the tick
// budget runs out.
func stepUntil(t *testing.T, g *Game, maxTicks int, cond func() bool) {
	t.Helper()
	empty := core.NewInputFrame()
	for _i := 0; _i < maxTicks; _i++ {
		if cond() {
			return
		}
		g.Step(empty, testDt)
	}
	if !cond() {
		t.Fatalf("condition not reached within %d ticks (state=%s phase=%v)",
			maxTicks, g.Status(), g.Phase())
	}
}

func TestGameWinCondition(t *testing.T) {
	// One brick, one hit: a single volley must clear the level and set the
	// won status at the turn boundary, with no descent applied.
	src := &stubSource{layouts: []levels.Layout{
		testLayout(levels.BrickSpec{Row: 0, Col: 0, Hits: 1, Points: 10}),
	}}
	g := NewWithSource(src)
	g.Reset(testRuntime())

	brickYBefore := g.field.Bricks()[0].Y

	g.Step(fireFrame(), testDt)
	if g.Phase() != PhaseLaunching {
		t.Fatalf("phase = %v after fire, want launching", g.Phase())
	}

	stepUntil(t, g, 3000, func() bool { return g.Status() == StateWon })

	if g.field.Bricks()[0].Y != brickYBefore {
		t.Error("descent applied on the winning turn")
	}
	if g.State().GameOver {
		t.Error("level clear reported as game over with levels remaining")
	}
	if g.score.Score() != 10+levelClearBonus {
		t.Errorf("score = %d, want %d", g.score.Score(), 10+levelClearBonus)
	}
}

func TestGameWonAdvancesOnConfirm(t *testing.T) {
	src := &stubSource{layouts: []levels.Layout{
		testLayout(levels.BrickSpec{Row: 0, Col: 0, Hits: 1, Points: 10}),
		testLayout(levels.BrickSpec{Row: 0, Col: 0, Hits: 2, Points: 20}),
	}}
	g := NewWithSource(src)
	g.Reset(testRuntime())

	g.Step(fireFrame(), testDt)
	stepUntil(t, g, 3000, func() bool { return g.Status() == StateWon })

	scoreBefore := g.score.Score()
	ballsBefore := g.fleet.Count()

	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	g.Step(confirm, testDt)

	if g.Status() != StatePlaying {
		t.Fatalf("status = %s after confirm, want playing", g.Status())
	}
	if g.State().Level != 2 {
		t.Errorf("level = %d, want 2", g.State().Level)
	}
	if g.score.Score() != scoreBefore {
		t.Error("score did not persist across levels")
	}
	if g.fleet.Count() != ballsBefore {
		t.Error("ball count did not persist across levels")
	}
}

func TestGameCampaignExhaustion(t *testing.T) {
	// A source with no layouts at all terminates the game as won, not as
	// an error.
	g := NewWithSource(&stubSource{})
	g.Reset(testRuntime())

	if g.Status() != StateWon {
		t.Errorf("status = %s with an exhausted source, want won", g.Status())
	}
	if !g.State().GameOver {
		t.Error("campaign completion not reported as game over")
	}
}

func TestGameLossCondition(t *testing.T) {
	// A tough brick resting exactly on the loss line: the turn destroys
	// nothing, descent still fires, and the crossing sets lost.
	src := &stubSource{layouts: []levels.Layout{
		testLayout(levels.BrickSpec{Row: 7, Col: 0, Hits: 9, Points: 10}),
	}}
	g := NewWithSource(src)
	g.Reset(testRuntime())

	brick := &g.field.Bricks()[0]
	if brick.Bottom() != g.lossY {
		t.Fatalf("test setup: brick bottom %v, want on loss line %v", brick.Bottom(), g.lossY)
	}

	g.Step(fireFrame(), testDt)
	stepUntil(t, g, 3000, func() bool { return g.Status() != StatePlaying })

	if g.Status() != StateLost {
		t.Fatalf("status = %s, want lost", g.Status())
	}
	if !g.State().GameOver {
		t.Error("loss not reported as game over")
	}
	if brick.Bottom() <= g.lossY {
		t.Error("loss set without the brick crossing the line")
	}
}

func TestGameRecallNeverDescends(t *testing.T) {
	src := &stubSource{layouts: []levels.Layout{
		testLayout(levels.BrickSpec{Row: 0, Col: 0, Hits: 9, Points: 10}),
	}}
	g := NewWithSource(src)
	g.Reset(testRuntime())

	brickYBefore := g.field.Bricks()[0].Y

	// Recall with nothing launched is a harmless no-op
	recall := core.NewInputFrame()
	recall.Set(core.ActionRecall)
	g.Step(recall, testDt)

	// Launch, let a few balls out, then recall mid-volley
	g.Step(fireFrame(), testDt)
	for _i := 0; _i < 30; _i++ {
		g.Step(core.NewInputFrame(), testDt)
	}
	g.Step(recall, testDt)

	if g.Phase() != PhaseIdle {
		t.Errorf("phase = %v after recall, want idle", g.Phase())
	}
	stepUntil(t, g, 10, func() bool { return g.fleet.AllParked() })

	if g.field.Bricks()[0].Y != brickYBefore {
		t.Error("recalled turn caused a descent")
	}
	if g.Status() != StatePlaying {
		t.Errorf("status = %s after recall, want playing", g.Status())
	}
}

func TestGameBonusBallGrant(t *testing.T) {
	src := &stubSource{layouts: []levels.Layout{
		testLayout(levels.BrickSpec{Row: 0, Col: 0, Hits: 1, Points: 10, Bonus: true}),
	}}
	g := NewWithSource(src)
	g.Reset(testRuntime())

	ballsBefore := g.fleet.Count()

	g.Step(fireFrame(), testDt)
	stepUntil(t, g, 3000, func() bool { return g.Status() == StateWon })

	if g.fleet.Count() != ballsBefore+1 {
		t.Errorf("ball count = %d after bonus brick, want %d", g.fleet.Count(), ballsBefore+1)
	}
}

func TestGameRestart(t *testing.T) {
	src := &stubSource{layouts: []levels.Layout{
		testLayout(levels.BrickSpec{Row: 7, Col: 0, Hits: 9, Points: 10}),
	}}
	g := NewWithSource(src)
	g.Reset(testRuntime())

	initialBalls := g.fleet.Count()

	g.Step(fireFrame(), testDt)
	stepUntil(t, g, 3000, func() bool { return g.Status() == StateLost })

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart, testDt)

	if g.Status() != StatePlaying {
		t.Fatalf("status = %s after restart, want playing", g.Status())
	}
	if g.State().Level != 1 {
		t.Errorf("level = %d after restart, want 1", g.State().Level)
	}
	if g.score.Score() != 0 {
		t.Errorf("score = %d after restart, want 0", g.score.Score())
	}
	if g.fleet.Count() != initialBalls {
		t.Errorf("ball count = %d after restart, want %d", g.fleet.Count(), initialBalls)
	}
}

func TestGamePauseFreezesSimulation(t *testing.T) {
	src := &stubSource{layouts: []levels.Layout{
		testLayout(levels.BrickSpec{Row: 0, Col: 0, Hits: 9, Points: 10}),
	}}
	g := NewWithSource(src)
	g.Reset(testRuntime())

	g.Step(fireFrame(), testDt)
	for _i := 0; _i < 10; _i++ {
		g.Step(core.NewInputFrame(), testDt)
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause, testDt)
	if !g.State().Paused {
		t.Fatal("pause did not take effect")
	}

	snapBefore := g.Snapshot()
	for _i := 0; _i < 20; _i++ {
		g.Step(core.NewInputFrame(), testDt)
	}
	snapAfter := g.Snapshot()
	if snapBefore.Hash() != snapAfter.Hash() {
		t.Error("simulation advanced while paused")
	}

	g.Step(pause, testDt)
	if g.State().Paused {
		t.Error("second pause press did not resume")
	}
}

func TestGameDeterminism(t *testing.T) {
	// Same seed, same input script: endless mode must replay identically.
	run := func() Snapshot {
		g := NewEndless()
		g.Reset(testRuntime())
		for tick := 0; tick < 600; tick++ {
			in := core.NewInputFrame()
			switch {
			case tick == 5 || tick == 6:
				in.Set(core.ActionLeft)
			case tick == 20:
				in.Set(core.ActionFire)
			}
			g.Step(in, testDt)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
}

func TestGameSnapshotRoundTrip(t *testing.T) {
	src := &stubSource{layouts: []levels.Layout{
		testLayout(
			levels.BrickSpec{Row: 0, Col: 0, Hits: 3, Points: 10},
			levels.BrickSpec{Row: 1, Col: 1, Hits: 2, Points: 20},
		),
	}}

	g1 := NewWithSource(src)
	g1.Reset(testRuntime())
	g1.Step(fireFrame(), testDt)
	for _i := 0; _i < 100; _i++ {
		g1.Step(core.NewInputFrame(), testDt)
	}
	snap := g1.Snapshot()

	g2 := NewWithSource(src)
	g2.Reset(testRuntime())
	g2.ApplySnapshot(snap)

	restored := g2.Snapshot()
	if snap.Hash() != restored.Hash() {
		t.Errorf("snapshot round trip changed state: %d vs %d", snap.Hash(), restored.Hash())
	}
}

func TestGameAimArcClamped(t *testing.T) {
	src := &stubSource{layouts: []levels.Layout{
		testLayout(levels.BrickSpec{Row: 0, Col: 0, Hits: 9, Points: 10}),
	}}
	g := NewWithSource(src)
	g.Reset(testRuntime())

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	for _i := 0; _i < 1000; _i++ {
		g.Step(left, testDt)
	}
	if g.AimAngle() != MaxAimAngle {
		t.Errorf("angle = %v after holding left, want clamp at %v", g.AimAngle(), MaxAimAngle)
	}

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	for _i := 0; _i < 1000; _i++ {
		g.Step(right, testDt)
	}
	if g.AimAngle() != MinAimAngle {
		t.Errorf("angle = %v after holding right, want clamp at %v", g.AimAngle(), MinAimAngle)
	}
}

func TestGameLayoutHonorsBrickGaps(t *testing.T) {
	layout := testLayout(
		levels.BrickSpec{Row: 0, Col: 0, Hits: 1, Points: 10},
		levels.BrickSpec{Row: 1, Col: 9, Hits: 1, Points: 10},
	)
	src := &stubSource{layouts: []levels.Layout{layout}}
	g := NewWithSource(src)
	g.Reset(testRuntime())

	g.cfg.Field.ColGap = 1
	g.cfg.Field.RowGap = 1
	g.calculateLayout(layout)

	if g.geom.ColGap != 1 || g.geom.RowGap != 1 {
		t.Fatalf("geometry gaps = (%v, %v), want (1, 1)", g.geom.ColGap, g.geom.RowGap)
	}

	// Brick widths shrink to absorb the gaps: the grid's right edge must
	// still land exactly on the side margin.
	cols := float64(layout.Cols)
	margin := float64(g.cfg.Field.SideMargin)
	rightEdge := g.geom.OffsetX + cols*g.geom.BrickW + (cols-1)*g.geom.ColGap
	wantRight := float64(g.runtime.ScreenW) - margin
	if diff := rightEdge - wantRight; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("grid right edge = %v, want %v", rightEdge, wantRight)
	}

	g.field.Initialize(layout, g.geom)
	bricks := g.field.Bricks()
	if got, want := bricks[1].X, g.geom.OffsetX+9*(g.geom.BrickW+1); got != want {
		t.Errorf("brick col 9 X = %v, want %v", got, want)
	}
	if got, want := bricks[1].Y, g.geom.OffsetY+1*(g.geom.BrickH+1); got != want {
		t.Errorf("brick row 1 Y = %v, want %v", got, want)
	}
}

func TestGameIDsAndTitles(t *testing.T) {
	if New().ID() != "blaster" || NewEndless().ID() != "blaster_endless" {
		t.Error("game IDs do not match registry names")
	}
	if New().Title() == "" || NewEndless().Title() == "" {
		t.Error("empty game title")
	}
}
