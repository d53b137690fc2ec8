// Package control provides the target generators that drive the trackers.
//
// Controllers implement the [dynamo.Controller] interface. Their output is
// the (target, targetRate) pair consumed by [physics.SecondOrder]:
//
//   - [Ramp]: target advancing linearly in time
//   - [Follow]: target read live from another tracker, plus a fixed offset
//
// # Usage
//
//	ramp := control.NewRamp(phase0, omega)
//	x = integ.Step(sys, x, ramp.Compute(x, t), t, dt)
package control
