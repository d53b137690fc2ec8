package loop

import "math"

const (
	minZeta = 0.05
	maxZeta = 2.5
)

// Timeline holds the constants derived once per generation pass.
type Timeline struct {
	FPS          int
	Loops        int
	PreRollLoops int

	Steps  int     // N, recorded frames
	Dt     float64 // seconds per step
	Period float64 // N·Dt

	OmegaTarget float64 // rad/s of the target angle

	Zeta        float64 // angle tracker damping ratio
	OmegaPos    float64 // angle tracker natural frequency
	ZetaOrient  float64 // orientation tracker damping ratio
	OmegaOrient float64 // orientation tracker natural frequency

	PreRollDuration float64
	PreRollSteps    int
}

// Plan derives the timeline for p. Out-of-range inputs are floored or
// clamped, never rejected.
func Plan(p Parameters) Timeline {
	loops := max(1, p.Loops)
	fps := max(1, p.FPS)
	preLoops := max(0, p.PreRollLoops)

	n := max(1, roundCount(p.DurationSeconds*float64(fps)))
	dt := 1.0 / float64(fps)
	period := float64(n) * dt

	omega := 2.0 * math.Pi * float64(loops) / period

	preDuration := (float64(preLoops) / float64(loops)) * period

	return Timeline{
		FPS:             fps,
		Loops:           loops,
		PreRollLoops:    preLoops,
		Steps:           n,
		Dt:              dt,
		Period:          period,
		OmegaTarget:     omega,
		Zeta:            dampingRatio(p.Fluidity),
		OmegaPos:        omega * (0.5 + float64(3.0*clamp(p.Elasticity, 0, 1))),
		ZetaOrient:      dampingRatio(p.Fluidity),
		OmegaOrient:     clamp(omega*(2.0-float64(1.8*clamp(p.Inertia, 0, 1))), omega*0.15, omega*4.0),
		PreRollDuration: preDuration,
		PreRollSteps:    max(0, roundCount(preDuration/dt)),
	}
}

// dampingRatio maps fluidity onto ζ. The result is clamped rather than the
// knob, so fluidity slightly above 1 still stiffens the damping up to maxZeta.
func dampingRatio(fluidity float64) float64 {
	return clamp(minZeta+float64(1.95*fluidity), minZeta, maxZeta)
}

// roundCount rounds x half-to-even and saturates at the int range. NaN
// counts as zero.
func roundCount(x float64) int {
	r := math.RoundToEven(x)
	switch {
	case math.IsNaN(r):
		return 0
	case r >= float64(math.MaxInt):
		return math.MaxInt
	case r <= float64(math.MinInt):
		return math.MinInt
	}
	return int(r)
}
