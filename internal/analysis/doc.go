// Package analysis inspects generated loops in the frequency domain.
//
// The frame coordinates of a settled loop are sinusoids whose frequency is
// loops / period. [DominantFrequency] recovers it from a sampled signal:
//
//	xs := make([]float64, len(frames))
//	for i, f := range frames {
//	    xs[i] = f.X
//	}
//	hz := analysis.DominantFrequency(xs, tl.Dt)
package analysis
