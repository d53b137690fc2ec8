package dynamo

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Position returns the first coordinate of a one-degree-of-freedom state.
func (s State) Position() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[0]
}

// Velocity returns the second coordinate of a one-degree-of-freedom state.
func (s State) Velocity() float64 {
	if len(s) < 2 {
		return 0
	}
	return s[1]
}

type Control []float64

type System interface {
	Derive(x State, u Control, t float64) State
	StateDim() int
	ControlDim() int
}

type Integrator interface {
	Step(dyn System, x State, u Control, t float64, dt float64) State
}

type Controller interface {
	Compute(x State, t float64) Control
}
