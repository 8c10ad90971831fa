package metric

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// odeHistRanges are the fixed sampling ranges for the x, y and z state
// variables of the ODE long-time comparison.
var odeHistRanges = [3]struct{ lo, hi float64 }{
	{-20, 20},
	{-20, 20},
	{0, 50},
}

// ODEForecast scores an ODE-type system prediction. The short-time
// score covers the first k time columns. The long-time score compares
// unit-bin histograms of the final three state rows (x, y, z) over the
// last modes time columns, clamped to the available width.
func ODEForecast(truth, prediction *mat.Dense, k, modes int) (shortTime, longTime float64, err error) {
	rows, cols, err := sameShape(truth, prediction)
	if err != nil {
		return 0, 0, err
	}
	if rows < 3 {
		return 0, 0, fmt.Errorf("ode forecast needs at least 3 state rows, got %d", rows)
	}

	shortTime = shortTimeScore(truth, prediction, k)

	window := modes
	if window > cols {
		window = cols
	}
	start := cols - window

	var elt float64
	for i, r := range odeHistRanges {
		row := rows - 3 + i
		tRow := mat.Row(nil, row, truth)[start:]
		pRow := mat.Row(nil, row, prediction)[start:]
		elt += histogramDistance(histogram(tRow, r.lo, r.hi), histogram(pRow, r.lo, r.hi))
	}
	elt /= 3

	return shortTime, 100 * (1 - elt), nil
}
