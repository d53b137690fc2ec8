package loop

import (
	"math"

	"github.com/san-kum/loopsim/internal/dynamo"
)

// Bounds of the squash and stretch factors.
const (
	MinScale = 0.4
	MaxScale = 2.5
)

const (
	minStretch = -0.9
	maxStretch = 1.5

	stretchGain = 0.6

	// speedEpsilon keeps the speed normalisation finite when radius or ω is 0.
	speedEpsilon = 1e-8
)

// Frame is one recorded sample of the loop.
type Frame struct {
	Index        int     `json:"index"`
	Time         float64 `json:"time"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	TravelAngle  float64 `json:"travel_angle"`
	Orientation  float64 `json:"orientation"`
	ScaleTangent float64 `json:"scale_tangent"`
	ScaleNormal  float64 `json:"scale_normal"`
}

// Valid reports whether every numeric field is finite.
func (f Frame) Valid() bool {
	return dynamo.State{f.Time, f.X, f.Y, f.TravelAngle, f.Orientation, f.ScaleTangent, f.ScaleNormal}.IsValid()
}

// sampler turns tracker state into frames.
type sampler struct {
	centerX, centerY float64
	radius           float64
	meanSpeed        float64
	gain             float64
}

func newSampler(p Parameters, tl Timeline) sampler {
	return sampler{
		centerX:   p.CenterX,
		centerY:   p.CenterY,
		radius:    p.Radius,
		meanSpeed: math.Abs(p.Radius*tl.OmegaTarget) + speedEpsilon,
		gain:      stretchGain * clamp(p.Softening, 0, 1),
	}
}

func (s sampler) sample(index int, t float64, angle, orient *Tracker) Frame {
	theta := angle.Position()
	scaleTangent, scaleNormal := s.squashStretch(angle.Velocity())

	return Frame{
		Index:        index,
		Time:         t,
		X:            s.centerX + float64(s.radius*math.Cos(theta)),
		Y:            s.centerY + float64(s.radius*math.Sin(theta)),
		TravelAngle:  theta,
		Orientation:  orient.Position(),
		ScaleTangent: scaleTangent,
		ScaleNormal:  scaleNormal,
	}
}

// squashStretch maps angular velocity to the tangent/normal scale pair.
// The normal factor is clamped on its own, so at the clamp boundary the
// pair is no longer an exact reciprocal.
func (s sampler) squashStretch(thetaDot float64) (tangent, normal float64) {
	speed := math.Abs(s.radius * thetaDot)
	norm := clamp((speed-s.meanSpeed)/s.meanSpeed, -1, 1)
	stretch := clamp(s.gain*norm, minStretch, maxStretch)

	tangent = clamp(1.0+stretch, MinScale, MaxScale)
	normal = clamp(1.0/tangent, MinScale, MaxScale)
	return tangent, normal
}

// CheckFinite returns a *dynamo.SimulationError wrapping
// dynamo.ErrInvalidState for the first frame holding NaN or Inf.
func CheckFinite(frames []Frame) error {
	for _, f := range frames {
		if !f.Valid() {
			return &dynamo.SimulationError{
				Step:    f.Index,
				Time:    f.Time,
				State:   dynamo.State{f.TravelAngle, f.Orientation},
				Wrapped: dynamo.ErrInvalidState,
			}
		}
	}
	return nil
}
