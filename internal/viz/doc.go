// Package viz renders loops in the terminal.
//
// [Preview] is a Bubble Tea model that plays a generated sequence on a
// Braille [Canvas]. Knob changes never touch a running simulation; they
// regenerate the sequence from new parameters.
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	e/E   - Elasticity down/up
//	f/F   - Fluidity down/up
//	i/I   - Inertia down/up
//	s/S   - Softening down/up
//	l/L   - Loops down/up
//	R     - Reset knobs
//	Q     - Quit
package viz
