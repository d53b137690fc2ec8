// Package dynamo provides the core contracts shared by the loop engine.
//
// The package defines the fundamental interfaces and types for fixed-step
// simulation of small second-order systems:
//
//   - [State]: vector representing system state, positions first then velocities
//   - [System]: interface for ODE systems (dX/dt = f(X, u, t))
//   - [Integrator]: fixed-step numerical integrator
//   - [Controller]: supplies the control input (the moving target) each step
//
// # Example
//
//	sys := physics.NewSecondOrder(omegaN, zeta)
//	integ := integrators.NewSemiImplicitEuler()
//	x = integ.Step(sys, x, ctrl.Compute(x, t), t, dt)
//
// # Thread Safety
//
// None of the types here hold shared state. A [System] value may be used
// from several goroutines as long as each owns its own [State].
package dynamo
