// Package physics provides the dynamical systems driven by the loop engine.
//
// Each model implements the [dynamo.System] interface:
//
//   - [SecondOrder]: damped spring tracking a moving target, the building
//     block of both the travel-angle and the heading trackers
package physics
