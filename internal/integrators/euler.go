package integrators

import "github.com/san-kum/loopsim/internal/dynamo"

// SemiImplicitEuler advances a position/velocity state by updating the
// velocities first and then the positions with the new velocities.
//
// The state layout follows the rest of the engine: the first half holds
// positions, the second half the matching velocities. Products are
// converted explicitly so the compiler cannot fuse them into FMA
// instructions; the same input yields the same bits on every platform.
type SemiImplicitEuler struct{}

func NewSemiImplicitEuler() *SemiImplicitEuler {
	return &SemiImplicitEuler{}
}

func (e *SemiImplicitEuler) Step(dyn dynamo.System, x dynamo.State, u dynamo.Control, t, dt float64) dynamo.State {
	n := len(x)
	half := n / 2

	dx := dyn.Derive(x, u, t)
	result := make(dynamo.State, n)

	for i := 0; i < half; i++ {
		result[half+i] = x[half+i] + float64(dx[half+i]*dt)
	}
	for i := 0; i < half; i++ {
		result[i] = x[i] + float64(result[half+i]*dt)
	}

	return result
}
