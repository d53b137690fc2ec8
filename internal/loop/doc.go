// Package loop generates seamless circular-motion loops.
//
// A loop is a fixed-length sequence of [Frame] values sampled from two
// cooperating trackers that share one timeline:
//
//   - the angle tracker chases a target angle advancing at a constant rate
//   - the orientation tracker chases the tangent of the angle tracker
//
// Both are [physics.SecondOrder] systems stepped by
// [integrators.SemiImplicitEuler]. Before any frame is recorded the pair is
// run through a pre-roll of extra revolutions so startup transients have
// decayed and the first and last frames join without a visible seam.
//
// # Parameters
//
// Four bounded knobs shape the motion instead of raw physical constants:
//
//   - elasticity: natural frequency of the angle tracker
//   - fluidity: damping ratio of both trackers
//   - inertia: how far the heading lags the direction of travel
//   - softening: squash-and-stretch gain from tangential speed
//
// # Example
//
//	p := loop.DefaultParameters()
//	p.Loops = 2
//	frames := loop.Generate(p)
//
// # Determinism
//
// [Generate] is a pure function: identical parameters produce identical
// frames, bit for bit, and concurrent calls share nothing.
package loop
