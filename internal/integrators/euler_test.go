package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/loopsim/internal/dynamo"
)

type simpleDynamics struct{}

func (s *simpleDynamics) Derive(x dynamo.State, u dynamo.Control, t float64) dynamo.State {
	return dynamo.State{x[1], -x[0]}
}

func (s *simpleDynamics) StateDim() int   { return 2 }
func (s *simpleDynamics) ControlDim() int { return 0 }

type constAccel struct{ a float64 }

func (c *constAccel) Derive(x dynamo.State, u dynamo.Control, t float64) dynamo.State {
	return dynamo.State{x[1], c.a}
}

func (c *constAccel) StateDim() int   { return 2 }
func (c *constAccel) ControlDim() int { return 0 }

func TestSemiImplicitEuler_UpdateOrder(t *testing.T) {
	integ := NewSemiImplicitEuler()
	x := dynamo.State{1.0, 2.0}

	got := integ.Step(&constAccel{a: 4.0}, x, nil, 0, 0.5)

	// velocity first: 2 + 4*0.5 = 4, then position with the new velocity: 1 + 4*0.5 = 3
	if got[1] != 4.0 {
		t.Errorf("velocity = %v, want 4", got[1])
	}
	if got[0] != 3.0 {
		t.Errorf("position = %v, want 3", got[0])
	}
	if x[0] != 1.0 || x[1] != 2.0 {
		t.Error("Step mutated its input state")
	}
}

func TestSemiImplicitEuler_Accuracy(t *testing.T) {
	dyn := &simpleDynamics{}
	integ := NewSemiImplicitEuler()

	dt := 0.001
	steps := 1000

	x := dynamo.State{1.0, 0.0}
	for i := 0; i < steps; i++ {
		x = integ.Step(dyn, x, nil, float64(i)*dt, dt)
	}

	expectedX := math.Cos(float64(steps) * dt)
	if math.Abs(x[0]-expectedX) > 1e-2 {
		t.Errorf("position error too large: got %.6f, expected %.6f", x[0], expectedX)
	}
}

func TestSemiImplicitEuler_BoundedEnergy(t *testing.T) {
	dyn := &simpleDynamics{}
	integ := NewSemiImplicitEuler()

	x := dynamo.State{1.0, 0.0}
	for i := 0; i < 100000; i++ {
		x = integ.Step(dyn, x, nil, 0, 0.05)
	}

	energy := 0.5 * (x[0]*x[0] + x[1]*x[1])
	if math.Abs(energy-0.5) > 0.05 {
		t.Errorf("symplectic step should keep energy near 0.5, got %f", energy)
	}
}

func TestSemiImplicitEuler_Deterministic(t *testing.T) {
	integ := NewSemiImplicitEuler()
	dyn := &simpleDynamics{}

	a := dynamo.State{0.3, -1.7}
	b := a.Clone()
	for i := 0; i < 500; i++ {
		a = integ.Step(dyn, a, nil, 0, 1.0/60)
		b = integ.Step(dyn, b, nil, 0, 1.0/60)
	}

	if a[0] != b[0] || a[1] != b[1] {
		t.Errorf("identical inputs diverged: %v vs %v", a, b)
	}
}
