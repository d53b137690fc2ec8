package physics

import "github.com/san-kum/loopsim/internal/dynamo"

// SecondOrder is a damped spring that pulls a scalar coordinate toward a
// moving target. The control input carries the target and its rate:
//
//	u = (target, targetRate)
//	ẍ = ωn²·(target − x) + 2·ζ·ωn·(targetRate − ẋ)
//
// With ζ ≥ 1 the coordinate converges without overshoot; below 1 it rings
// before settling.
type SecondOrder struct {
	OmegaN float64
	Zeta   float64
}

func NewSecondOrder(omegaN, zeta float64) *SecondOrder {
	return &SecondOrder{OmegaN: omegaN, Zeta: zeta}
}

func (s *SecondOrder) StateDim() int   { return 2 }
func (s *SecondOrder) ControlDim() int { return 2 }

func (s *SecondOrder) Derive(x dynamo.State, u dynamo.Control, t float64) dynamo.State {
	stiffness := s.OmegaN * s.OmegaN
	damping := 2.0 * s.Zeta * s.OmegaN

	acc := float64(stiffness*(u[0]-x[0])) + float64(damping*(u[1]-x[1]))
	return dynamo.State{x[1], acc}
}
