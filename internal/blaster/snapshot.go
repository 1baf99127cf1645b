package blaster

import "math"

// Fixed-point scale used to serialize float positions and velocities.
const snapScale = 1000

func toFixed(v float64) int {
	return int(math.Round(v * snapScale))
}

func fromFixed(v int) float64 {
	return float64(v) / snapScale
}

// Snapshot contains the complete game state for replay/save support.
// Uses primitive types only for stable serialization; float positions are
// stored fixed-point at 1/1000 cell resolution.
type Snapshot struct {
	Tick       uint64
	Score      int
	Destroyed  int
	LevelIndex int
	State      string
	Completed  bool
	Mode       int // 0=Campaign, 1=Endless

	Phase     int
	Angle     int // Aim angle, fixed-point radians
	HadLaunch bool

	AnchorX      int
	SinceRelease int   // Milliseconds-resolution gate state
	Queue        []int // Pending ball IDs in launch order
	LaunchVX     int
	LaunchVY     int

	// Ball state (each ball is 5 ints: X, Y, VX, VY, Launched)
	BallCount int
	BallData  []int

	// Brick state (each brick is 3 ints: Y, Hits, Visible).
	// X/size never change after level load, so only Y is tracked.
	BrickData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	balls := g.fleet.Balls()
	ballData := make([]int, 0, len(balls)*5)
	for _, ball := range balls {
		launched := 0
		if ball.Launched {
			launched = 1
		}
		ballData = append(ballData,
			toFixed(ball.X), toFixed(ball.Y),
			toFixed(ball.VX), toFixed(ball.VY),
			launched)
	}

	bricks := g.field.Bricks()
	brickData := make([]int, 0, len(bricks)*3)
	for i := range bricks {
		visible := 0
		if bricks[i].Visible {
			visible = 1
		}
		brickData = append(brickData, toFixed(bricks[i].Y), bricks[i].Hits, visible)
	}

	queue := make([]int, len(g.fleet.queue))
	copy(queue, g.fleet.queue)

	return Snapshot{
		Tick:       uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Score:      g.score.Score(),
		Destroyed:  g.score.Destroyed(),
		LevelIndex: g.levelIndex,
		State:      g.state,
		Completed:  g.completed,
		Mode:       int(g.mode),

		Phase:     int(g.turn.phase),
		Angle:     toFixed(g.turn.angle),
		HadLaunch: g.turn.hadLaunch,

		AnchorX:      toFixed(g.fleet.anchorX),
		SinceRelease: toFixed(g.fleet.sinceRelease),
		Queue:        queue,
		LaunchVX:     toFixed(g.fleet.launchVX),
		LaunchVY:     toFixed(g.fleet.launchVY),

		BallCount: len(balls),
		BallData:  ballData,

		BrickData: brickData,
	}
}

// ApplySnapshot restores game state from a snapshot. The level layout must
// already be loaded; only mutable state is restored.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.score.score = snap.Score
	g.score.destroyed = snap.Destroyed
	g.levelIndex = snap.LevelIndex
	g.state = snap.State
	g.completed = snap.Completed
	g.mode = GameMode(snap.Mode)

	g.turn.phase = Phase(snap.Phase)
	g.turn.angle = fromFixed(snap.Angle)
	g.turn.hadLaunch = snap.HadLaunch

	g.fleet.anchorX = fromFixed(snap.AnchorX)
	g.fleet.sinceRelease = fromFixed(snap.SinceRelease)
	g.fleet.queue = make([]int, len(snap.Queue))
	copy(g.fleet.queue, snap.Queue)
	g.fleet.launchVX = fromFixed(snap.LaunchVX)
	g.fleet.launchVY = fromFixed(snap.LaunchVY)

	// Restore ball states
	balls := make([]*Ball, 0, snap.BallCount)
	for i := 0; i < snap.BallCount; i++ {
		idx := i * 5
		if idx+4 >= len(snap.BallData) {
			break
		}
		balls = append(balls, &Ball{
			ID:       i,
			X:        fromFixed(snap.BallData[idx]),
			Y:        fromFixed(snap.BallData[idx+1]),
			VX:       fromFixed(snap.BallData[idx+2]),
			VY:       fromFixed(snap.BallData[idx+3]),
			Launched: snap.BallData[idx+4] == 1,
		})
	}
	g.fleet.balls = balls

	// Restore brick states
	bricks := g.field.Bricks()
	for i := range bricks {
		idx := i * 3
		if idx+2 >= len(snap.BrickData) {
			break
		}
		bricks[i].Y = fromFixed(snap.BrickData[idx])
		bricks[i].Hits = snap.BrickData[idx+1]
		bricks[i].Visible = snap.BrickData[idx+2] == 1
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Destroyed)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelIndex) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Mode)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Angle)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AnchorX)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallCount)  //#nosec G115 -- hash computation

	for _, r := range snap.State {
		h = h*31 + uint64(r)
	}
	if snap.HadLaunch {
		h = h*31 + 1
	}
	if snap.Completed {
		h = h*31 + 1
	}

	for _, v := range snap.Queue {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BallData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
