// Package interpolate turns a flat list of sparse sky-brightness
// measurements into a dense (azimuth, zenith) grid ready for polar plotting.
//
// The pipeline runs two sequential one-dimensional passes. The first
// resamples each sampled azimuth's handful of zenith knots onto the dense
// zenith grid. The second gathers, for each dense zenith, one value per
// sampled azimuth (the measured 360-degree block included) and resamples
// across the dense azimuth grid. The assembler then reshapes the result into
// a 2-D grid and pins the azimuth-360 row to the azimuth-0 row so the polar
// seam is exact.
package interpolate

import (
	"gonum.org/v1/gonum/interp"
)

// resample evaluates the piecewise-linear interpolant through the knots
// (xs, ys) at every point of dense. xs must be strictly increasing. Queries
// outside [xs[0], xs[last]] clamp to the boundary knot, but the dense grids
// used by the pipeline never leave the knot domain by construction.
func resample(xs, ys, dense []float64) []float64 {
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		// Fit fails only for mismatched lengths or non-increasing xs, which
		// the sampling geometry rules out.
		panic(err)
	}
	out := make([]float64, len(dense))
	for i, x := range dense {
		out[i] = pl.Predict(x)
	}
	return out
}
