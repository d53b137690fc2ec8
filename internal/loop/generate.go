package loop

import (
	"math"

	"github.com/san-kum/loopsim/internal/control"
	"github.com/san-kum/loopsim/internal/physics"
)

// headingOffset turns the travel angle into the tangent direction.
const headingOffset = math.Pi / 2

// Generate simulates the loop described by p and returns its frames.
//
// The angle tracker starts on the target's rate at phase0 and the heading
// tracker on the matching tangent. Both run PreRollSteps unrecorded steps
// with t running from -PreRollDuration toward 0, then Steps recorded steps
// from t = 0. Within a step the heading chases the angle tracker's freshly
// advanced state.
func Generate(p Parameters) []Frame {
	tl := Plan(p)

	angle := NewTracker(
		physics.NewSecondOrder(tl.OmegaPos, tl.Zeta),
		control.NewRamp(p.Phase0, tl.OmegaTarget),
		p.Phase0, tl.OmegaTarget,
	)
	orient := NewTracker(
		physics.NewSecondOrder(tl.OmegaOrient, tl.ZetaOrient),
		control.NewFollow(angle, headingOffset),
		p.Phase0+headingOffset, tl.OmegaTarget,
	)

	step := func(t float64) {
		angle.Advance(t, tl.Dt)
		orient.Advance(t, tl.Dt)
	}

	if tl.PreRollSteps > 0 {
		t := -tl.PreRollDuration
		for i := 0; i < tl.PreRollSteps; i++ {
			step(t)
			t += tl.Dt
		}
	}

	s := newSampler(p, tl)
	frames := make([]Frame, 0, tl.Steps)

	t := 0.0
	for i := 0; i < tl.Steps; i++ {
		step(t)
		frames = append(frames, s.sample(i, t, angle, orient))
		t += tl.Dt
	}

	return frames
}
