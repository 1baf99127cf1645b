package blaster

import "github.com/treyreynolds/super-ball-blaster/internal/core"

// LaunchInterval is the default delay between consecutive ball releases
// in seconds.
const LaunchInterval = 0.150

// Ball is a single projectile. Position is the center in screen cells;
// velocity is in cells per second.
type Ball struct {
	ID       int
	X, Y     float64
	VX, VY   float64
	Launched bool // In flight; parked balls sit at the anchor
}

// Fleet manages the player's ball supply: parked balls at the launch anchor,
// the pending launch queue, and the release cadence.
type Fleet struct {
	balls    []*Ball
	radius   float64
	anchorX  float64
	launchY  float64
	fieldW   float64
	interval float64

	queue        []int // Ball IDs awaiting release, in launch order
	launchVX     float64
	launchVY     float64
	sinceRelease float64 // Seconds since the last release
}

// NewFleet creates a fleet with the given ball radius and release interval.
func NewFleet(radius, interval float64) *Fleet {
	if interval <= 0 {
		interval = LaunchInterval
	}
	return &Fleet{radius: radius, interval: interval}
}

// Reset parks count fresh balls at the given anchor position.
func (f *Fleet) Reset(count int, anchorX, launchY, fieldW float64) {
	f.anchorX = anchorX
	f.launchY = launchY
	f.fieldW = fieldW
	f.queue = f.queue[:0]
	f.sinceRelease = 0

	f.balls = make([]*Ball, 0, count)
	for i := 0; i < count; i++ {
		f.balls = append(f.balls, &Ball{
			ID: i,
			X:  anchorX,
			Y:  launchY,
		})
	}
}

// Add parks one extra ball at the anchor. The new ball joins the current
// volley only on the next launch.
func (f *Fleet) Add() *Ball {
	ball := &Ball{
		ID: len(f.balls),
		X:  f.anchorX,
		Y:  f.launchY,
	}
	f.balls = append(f.balls, ball)
	return ball
}

// BeginLaunch queues every parked ball for sequential release along the
// given direction. It does nothing unless all balls are parked and no
// launch is already in progress. The first ball releases on the next Tick.
func (f *Fleet) BeginLaunch(vx, vy float64) bool {
	if !f.AllParked() || len(f.queue) > 0 {
		return false
	}

	f.launchVX = vx
	f.launchVY = vy
	for _, ball := range f.balls {
		f.queue = append(f.queue, ball.ID)
	}
	// Prime the gate so the first ball goes out immediately.
	f.sinceRelease = f.interval
	return true
}

// Tick advances the release gate and releases at most one queued ball.
// Returns the released ball, or nil.
func (f *Fleet) Tick(dt float64) *Ball {
	if len(f.queue) == 0 {
		return nil
	}

	f.sinceRelease += dt
	if f.sinceRelease < f.interval {
		return nil
	}

	id := f.queue[0]
	f.queue = f.queue[1:]
	f.sinceRelease = 0

	ball := f.balls[id]
	ball.X = f.anchorX
	ball.Y = f.launchY
	ball.VX = f.launchVX
	ball.VY = f.launchVY
	ball.Launched = true
	return ball
}

// OnBallReturned parks a ball that reached the launch line. Its landing
// position becomes the new shared anchor, so the next volley launches from
// wherever the most recently returned ball came down. Already-parked balls
// follow the anchor.
func (f *Fleet) OnBallReturned(ball *Ball) {
	f.anchorX = core.ClampF(ball.X, f.radius, f.fieldW-f.radius)
	ball.X = f.anchorX
	ball.Y = f.launchY
	ball.VX = 0
	ball.VY = 0
	ball.Launched = false

	for _, b := range f.balls {
		if !b.Launched {
			b.X = f.anchorX
		}
	}
}

// Recall instantly parks every ball and clears the pending queue. Balls
// already in flight are pulled back to the anchor.
func (f *Fleet) Recall() {
	f.queue = f.queue[:0]
	f.sinceRelease = 0
	for _, ball := range f.balls {
		ball.X = f.anchorX
		ball.Y = f.launchY
		ball.VX = 0
		ball.VY = 0
		ball.Launched = false
	}
}

// AllParked returns true when no ball is in flight.
func (f *Fleet) AllParked() bool {
	for _, ball := range f.balls {
		if ball.Launched {
			return false
		}
	}
	return true
}

// QueueLen returns the number of balls still waiting for release.
func (f *Fleet) QueueLen() int {
	return len(f.queue)
}

// Count returns the total ball count.
func (f *Fleet) Count() int {
	return len(f.balls)
}

// AnchorX returns the current launch anchor position.
func (f *Fleet) AnchorX() float64 {
	return f.anchorX
}

// Radius returns the ball radius.
func (f *Fleet) Radius() float64 {
	return f.radius
}

// Balls returns the backing ball slice in ID order.
func (f *Fleet) Balls() []*Ball {
	return f.balls
}
