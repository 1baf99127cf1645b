package blaster

import (
	"math"

	"github.com/treyreynolds/super-ball-blaster/internal/core"
)

// Phase is the stage of the turn lifecycle.
type Phase int

const (
	PhaseIdle      Phase = iota // Waiting for the player to start aiming
	PhaseAiming                 // Player is adjusting the launch angle
	PhaseLaunching              // Balls are releasing in sequence
	PhaseResolving              // All balls released, waiting for returns
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAiming:
		return "aiming"
	case PhaseLaunching:
		return "launching"
	case PhaseResolving:
		return "resolving"
	default:
		return "unknown"
	}
}

// Aim angle limits in radians, measured from the positive x axis.
// Keeping the arc off the horizontal prevents launches that never climb.
const (
	MinAimAngle = 0.15
	MaxAimAngle = math.Pi - 0.15
)

// TurnController sequences the turn lifecycle: aim, fire, resolve, and the
// end-of-turn bookkeeping that decides whether the field descends.
type TurnController struct {
	phase     Phase
	angle     float64
	hadLaunch bool // A volley actually fired this turn
}

// NewTurnController creates a controller with the aim pointing straight up.
func NewTurnController() *TurnController {
	return &TurnController{angle: math.Pi / 2}
}

// Phase returns the current lifecycle phase.
func (t *TurnController) Phase() Phase {
	return t.phase
}

// Angle returns the current aim angle in radians.
func (t *TurnController) Angle() float64 {
	return t.angle
}

// Aim adjusts the launch angle by delta radians, clamped to the allowed
// arc. Aiming is only possible between volleys; the first adjustment moves
// the turn from idle to aiming.
func (t *TurnController) Aim(delta float64) {
	if t.phase == PhaseLaunching || t.phase == PhaseResolving {
		return
	}
	t.phase = PhaseAiming
	t.angle = core.ClampF(t.angle+delta, MinAimAngle, MaxAimAngle)
}

// Release fires the volley at the current angle. The screen y axis points
// down, so a positive aim angle maps to a negative vertical velocity.
func (t *TurnController) Release(fleet *Fleet, speed float64) bool {
	if t.phase == PhaseLaunching || t.phase == PhaseResolving {
		return false
	}

	vx := math.Cos(t.angle) * speed
	vy := -math.Sin(t.angle) * speed
	if !fleet.BeginLaunch(vx, vy) {
		return false
	}

	t.phase = PhaseLaunching
	t.hadLaunch = true
	return true
}

// Update moves launching to resolving once the queue drains, and reports
// turn completion. It returns (turnEnded, hadLaunch): turnEnded is true on
// the step where every ball has returned; hadLaunch tells whether a volley
// fired this turn, which gates the brick descent.
func (t *TurnController) Update(fleet *Fleet) (bool, bool) {
	switch t.phase {
	case PhaseLaunching:
		if fleet.QueueLen() == 0 {
			t.phase = PhaseResolving
		}
		if t.phase != PhaseResolving {
			return false, false
		}
		fallthrough
	case PhaseResolving:
		if fleet.AllParked() {
			t.phase = PhaseIdle
			had := t.hadLaunch
			t.hadLaunch = false
			return true, had
		}
	}
	return false, false
}

// Recall aborts the volley. The turn returns to idle without counting as
// completed, so recalled turns never trigger a descent.
func (t *TurnController) Recall(fleet *Fleet) {
	fleet.Recall()
	t.phase = PhaseIdle
	t.hadLaunch = false
}
