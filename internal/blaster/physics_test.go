package blaster

import (
	"math"
	"testing"
)

var testBounds = Bounds{Left: 0, Right: 80, Top: 2, Bottom: 22}

const testRadius = 0.4

func stepNoBricks(b Ball, dt float64) (Ball, StepOutcome) {
	return StepBall(b, dt, testRadius, testBounds, nil)
}

func TestStepBallIntegration(t *testing.T) {
	b := Ball{X: 40, Y: 12, VX: 10, VY: -20, Launched: true}
	b, outcome := stepNoBricks(b, 0.1)

	if outcome.BrickIndex != -1 || outcome.Returned {
		t.Errorf("free flight produced an event: %+v", outcome)
	}
	if b.X != 41 || b.Y != 10 {
		t.Errorf("ball at (%v, %v), want (41, 10)", b.X, b.Y)
	}
}

func TestStepBallWallReflection(t *testing.T) {
	// Left wall
	b := Ball{X: 0.5, Y: 12, VX: -10, VY: -5}
	b, _ = stepNoBricks(b, 0.1)
	if b.VX != 10 {
		t.Errorf("VX = %v after left wall, want 10", b.VX)
	}
	if b.X-testRadius < testBounds.Left {
		t.Errorf("ball at %v escaped the left wall", b.X)
	}

	// Right wall
	b = Ball{X: 79.5, Y: 12, VX: 10, VY: -5}
	b, _ = stepNoBricks(b, 0.1)
	if b.VX != -10 {
		t.Errorf("VX = %v after right wall, want -10", b.VX)
	}

	// Ceiling
	b = Ball{X: 40, Y: 2.3, VX: 0, VY: -10}
	b, _ = stepNoBricks(b, 0.1)
	if b.VY != 10 {
		t.Errorf("VY = %v after ceiling, want 10", b.VY)
	}
}

func TestStepBallReturnsAtLaunchLine(t *testing.T) {
	// A brick sits right above the line; a returning ball must skip it
	bricks := []Brick{{X: 0, Y: 20, W: 80, H: 1.5, Hits: 1, Visible: true}}

	b := Ball{X: 40, Y: 21.5, VX: 0, VY: 20}
	b, outcome := StepBall(b, 0.1, testRadius, testBounds, bricks)

	if !outcome.Returned {
		t.Fatal("ball crossing the launch line did not return")
	}
	if outcome.BrickIndex != -1 {
		t.Error("returning ball still collided with a brick")
	}
	if b.Y != testBounds.Bottom-testRadius {
		t.Errorf("returned ball rests at %v, want %v", b.Y, testBounds.Bottom-testRadius)
	}
}

func TestStepBallShallowLaunchIsNotReturned(t *testing.T) {
	// A freshly fired ball starts a radius above the line. At a shallow
	// angle its per-step rise is far smaller than the radius, so its top
	// edge stays below the line for several ticks; rising balls must never
	// count as returned.
	speed := 28.0
	angle := MinAimAngle
	b := Ball{
		X:        40,
		Y:        testBounds.Bottom - testRadius,
		VX:       math.Cos(angle) * speed,
		VY:       -math.Sin(angle) * speed,
		Launched: true,
	}

	for i := 0; i < 10; i++ {
		prevY := b.Y
		var outcome StepOutcome
		b, outcome = stepNoBricks(b, 0.016)

		if outcome.Returned {
			t.Fatalf("rising ball returned on step %d (y=%v, vy=%v)", i, b.Y, b.VY)
		}
		if b.Y >= prevY {
			t.Fatalf("ball stopped climbing on step %d: y %v -> %v", i, prevY, b.Y)
		}
	}
}

func TestStepBallBrickSideDetermination(t *testing.T) {
	brick := []Brick{{X: 10, Y: 5, W: 6, H: 2, Hits: 1, Visible: true}}

	// Approaching from the left reflects horizontally
	b := Ball{X: 9.7, Y: 6, VX: 30, VY: 0}
	b, outcome := StepBall(b, 0.016, testRadius, testBounds, brick)
	if outcome.BrickIndex != 0 {
		t.Fatal("no brick hit from the left")
	}
	if b.VX != -30 {
		t.Errorf("VX = %v after left-side hit, want -30", b.VX)
	}

	// Approaching from above reflects vertically
	b = Ball{X: 13, Y: 4.7, VX: 0, VY: 30}
	b, outcome = StepBall(b, 0.016, testRadius, testBounds, brick)
	if outcome.BrickIndex != 0 {
		t.Fatal("no brick hit from above")
	}
	if b.VY != -30 {
		t.Errorf("VY = %v after top hit, want -30", b.VY)
	}

	// Approaching from below reflects vertically downward
	b = Ball{X: 13, Y: 7.3, VX: 0, VY: -30}
	b, outcome = StepBall(b, 0.016, testRadius, testBounds, brick)
	if outcome.BrickIndex != 0 {
		t.Fatal("no brick hit from below")
	}
	if b.VY != 30 {
		t.Errorf("VY = %v after bottom hit, want 30", b.VY)
	}
}

func TestStepBallSingleBrickPerTick(t *testing.T) {
	// Two adjacent bricks both overlap the moved ball; only the first in
	// iteration order is resolved.
	bricks := []Brick{
		{X: 10, Y: 5, W: 6, H: 2, Hits: 1, Visible: true},
		{X: 16, Y: 5, W: 6, H: 2, Hits: 1, Visible: true},
	}

	b := Ball{X: 15.8, Y: 4.6, VX: 0, VY: 30}
	_, outcome := StepBall(b, 0.016, testRadius, testBounds, bricks)

	if outcome.BrickIndex != 0 {
		t.Errorf("hit brick %d, want first overlapping brick 0", outcome.BrickIndex)
	}
}

func TestStepBallIgnoresInvisibleBricks(t *testing.T) {
	bricks := []Brick{{X: 10, Y: 5, W: 6, H: 2, Hits: 0, Visible: false}}

	b := Ball{X: 13, Y: 6, VX: 5, VY: 5}
	b, outcome := StepBall(b, 0.016, testRadius, testBounds, bricks)

	if outcome.BrickIndex != -1 {
		t.Error("invisible brick was hit")
	}
	if b.VX != 5 || b.VY != 5 {
		t.Error("velocity changed passing through an invisible brick")
	}
}

func TestStepBallBoundaryContainment(t *testing.T) {
	// Long bounce sequence: the ball center must stay within the side
	// walls and above the launch line until the step that returns it.
	b := Ball{X: 40, Y: 21, VX: 23, VY: -31, Launched: true}

	const dt = 0.016
	for _i := 0; _i < 5000; _i++ {
		var outcome StepOutcome
		b, outcome = stepNoBricks(b, dt)

		if outcome.Returned {
			// Relaunch upward and keep going
			b.Y = testBounds.Bottom - testRadius
			b.VY = -31
			continue
		}

		if b.X < testBounds.Left+testRadius-1e-9 || b.X > testBounds.Right-testRadius+1e-9 {
			t.Fatalf("ball escaped horizontally: x = %v", b.X)
		}
		if b.Y+testRadius > testBounds.Bottom+1e-9 {
			t.Fatalf("ball below the launch line without returning: y = %v", b.Y)
		}
	}
}
