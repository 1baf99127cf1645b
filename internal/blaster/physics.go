package blaster

// Bounds describes the playable area the balls bounce inside.
// Left/Right/Top are reflecting walls; Bottom is the launch line where
// balls return to the fleet.
type Bounds struct {
	Left, Right float64
	Top, Bottom float64
}

// StepOutcome reports what a single integration step ran into.
type StepOutcome struct {
	BrickIndex int  // Index of the brick hit this step, -1 if none
	Returned   bool // Ball reached the launch line
}

// StepBall integrates one ball over dt and resolves collisions.
// Walls reflect the matching velocity component. At most one brick is hit
// per step: the first visible brick the moved ball overlaps, reflected off
// the axis of minimal penetration (ties resolve left, right, top, bottom).
// A ball touching the bottom line returns instead of bouncing.
func StepBall(b Ball, dt, radius float64, bounds Bounds, bricks []Brick) (Ball, StepOutcome) {
	outcome := StepOutcome{BrickIndex: -1}

	nx := b.X + b.VX*dt
	ny := b.Y + b.VY*dt

	// Side walls
	if nx-radius < bounds.Left && b.VX < 0 {
		b.VX = -b.VX
		nx = b.X + b.VX*dt
	} else if nx+radius > bounds.Right && b.VX > 0 {
		b.VX = -b.VX
		nx = b.X + b.VX*dt
	}

	// Ceiling
	if ny-radius < bounds.Top && b.VY < 0 {
		b.VY = -b.VY
		ny = b.Y + b.VY*dt
	}

	// Launch line: the ball is done for this volley. Only falling balls
	// return; a fresh launch still within a radius of the line keeps rising.
	if ny+radius >= bounds.Bottom && b.VY > 0 {
		b.X = nx
		b.Y = bounds.Bottom - radius
		outcome.Returned = true
		return b, outcome
	}

	// Brick collision: first visible overlap in index order
	for i := range bricks {
		brick := &bricks[i]
		if !brick.Visible {
			continue
		}
		if nx+radius <= brick.X || nx-radius >= brick.Right() ||
			ny+radius <= brick.Y || ny-radius >= brick.Bottom() {
			continue
		}

		outcome.BrickIndex = i

		fromLeft := abs((nx + radius) - brick.X)
		fromRight := abs(brick.Right() - (nx - radius))
		fromTop := abs((ny + radius) - brick.Y)
		fromBottom := abs(brick.Bottom() - (ny - radius))

		minPen := fromLeft
		if fromRight < minPen {
			minPen = fromRight
		}
		if fromTop < minPen {
			minPen = fromTop
		}
		if fromBottom < minPen {
			minPen = fromBottom
		}

		if minPen == fromLeft || minPen == fromRight {
			b.VX = -b.VX
			nx = b.X + b.VX*dt
		} else {
			b.VY = -b.VY
			ny = b.Y + b.VY*dt
		}
		break
	}

	b.X = nx
	b.Y = ny
	return b, outcome
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
