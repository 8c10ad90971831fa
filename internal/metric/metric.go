// Package metric implements the numeric comparison operations used to
// score predicted trajectories of dynamical systems against ground
// truth: short-time relative error over the earliest time columns,
// long-time distributional error (histogram distance) for ODE systems,
// long-time spectral error (log power spectra) for 1-D and 2-D PDE
// systems, and a whole-trajectory reconstruction score.
//
// All scores are expressed as 100*(1-err); callers are responsible for
// clamping negative values and for rejecting non-finite results.
package metric

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// sameShape reports the common dimensions of a truth/prediction pair.
// Mismatched shapes are a hard failure, never resampled.
func sameShape(truth, prediction *mat.Dense) (rows, cols int, err error) {
	tr, tc := truth.Dims()
	pr, pc := prediction.Dims()
	if tr != pr || tc != pc {
		return 0, 0, fmt.Errorf("shape mismatch: truth %dx%d, prediction %dx%d", tr, tc, pr, pc)
	}
	return tr, tc, nil
}

// shortTimeScore computes 100*(1-est) where est is the Frobenius-norm
// ratio of the truth/prediction difference over the first k time
// columns. The zero-norm denominator is intentionally unguarded; a
// zero truth window yields a non-finite score.
func shortTimeScore(truth, prediction *mat.Dense, k int) float64 {
	rows, cols := truth.Dims()
	if k > cols {
		k = cols
	}
	tw := truth.Slice(0, rows, 0, k)
	pw := prediction.Slice(0, rows, 0, k)

	var diff mat.Dense
	diff.Sub(tw, pw)
	est := mat.Norm(&diff, 2) / mat.Norm(tw, 2)
	return 100 * (1 - est)
}

// frobeniusRatio computes ||a-b||_F / ||a||_F.
func frobeniusRatio(a, b *mat.Dense) float64 {
	var diff mat.Dense
	diff.Sub(a, b)
	return mat.Norm(&diff, 2) / mat.Norm(a, 2)
}
