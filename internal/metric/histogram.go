package metric

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// histogram counts samples into unit-width bins covering [lo, hi).
// Samples outside the range are dropped. Counts are returned as
// float64 so they feed directly into vector norms.
func histogram(samples []float64, lo, hi float64) []float64 {
	counts := make([]float64, int(hi-lo))
	for _, v := range samples {
		if v < lo || v >= hi {
			continue
		}
		counts[int(math.Floor(v-lo))]++
	}
	return counts
}

// histogramDistance computes the L2 distance between two equal-length
// histograms normalized by the L2 norm of the truth histogram. A
// zero-norm truth histogram is defined to contribute zero error.
func histogramDistance(truth, prediction []float64) float64 {
	norm := floats.Norm(truth, 2)
	if norm == 0 {
		return 0
	}
	diff := make([]float64, len(truth))
	floats.SubTo(diff, truth, prediction)
	return floats.Norm(diff, 2) / norm
}
