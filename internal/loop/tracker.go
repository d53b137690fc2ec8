package loop

import (
	"github.com/san-kum/loopsim/internal/dynamo"
	"github.com/san-kum/loopsim/internal/integrators"
	"github.com/san-kum/loopsim/internal/physics"
)

// Tracker owns one second-order system, its state and the controller that
// supplies its moving target. It is advanced once per step and never reset.
type Tracker struct {
	sys        *physics.SecondOrder
	integrator dynamo.Integrator
	controller dynamo.Controller
	state      dynamo.State
}

func NewTracker(sys *physics.SecondOrder, ctrl dynamo.Controller, pos, vel float64) *Tracker {
	return &Tracker{
		sys:        sys,
		integrator: integrators.NewSemiImplicitEuler(),
		controller: ctrl,
		state:      dynamo.State{pos, vel},
	}
}

// Advance integrates one step of length dt at simulated time t.
func (tr *Tracker) Advance(t, dt float64) {
	u := tr.controller.Compute(tr.state, t)
	tr.state = tr.integrator.Step(tr.sys, tr.state, u, t, dt)
}

// State returns the live state. Callers must not modify it.
func (tr *Tracker) State() dynamo.State { return tr.state }

func (tr *Tracker) Position() float64 { return tr.state.Position() }
func (tr *Tracker) Velocity() float64 { return tr.state.Velocity() }
