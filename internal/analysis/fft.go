package analysis

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/stat"
)

// PowerSpectrum returns the magnitude of each non-negative frequency bin of
// data with its mean removed. Bin i corresponds to i/len(data) cycles per
// sample.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}

	mean := stat.Mean(data, nil)
	centered := make([]float64, len(data))
	for i, v := range data {
		centered[i] = v - mean
	}

	coeff := fourier.NewFFT(len(data)).Coefficients(nil, centered)
	ps := make([]float64, len(coeff))
	for i, c := range coeff {
		ps[i] = cmplx.Abs(c)
	}
	return ps
}

// DominantFrequency returns the frequency in Hz of the strongest non-DC bin
// of samples taken every dt seconds. It returns 0 for fewer than two samples.
func DominantFrequency(samples []float64, dt float64) float64 {
	if len(samples) < 2 || dt <= 0 {
		return 0
	}

	ps := PowerSpectrum(samples)
	best := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[best] {
			best = i
		}
	}
	return float64(best) / (float64(len(samples)) * dt)
}
