package metric

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/mat"
)

// PDEForecast scores a 1-D spatiotemporal system prediction. The
// long-time score stacks the centered log power spectra of the last k
// time columns, cropped to the middle 2*modes+1 frequency bins, and
// compares the truth and prediction stacks by Frobenius-norm ratio.
func PDEForecast(truth, prediction *mat.Dense, k, modes int) (shortTime, longTime float64, err error) {
	rows, cols, err := sameShape(truth, prediction)
	if err != nil {
		return 0, 0, err
	}
	if cols < k {
		return 0, 0, fmt.Errorf("pde forecast needs at least %d time columns, got %d", k, cols)
	}
	width := 2*modes + 1
	if width > rows {
		return 0, 0, fmt.Errorf("pde forecast modes %d exceed state dimension %d", modes, rows)
	}

	shortTime = shortTimeScore(truth, prediction, k)

	fft := fourier.NewCmplxFFT(rows)
	logTruth := mat.NewDense(width, k, nil)
	logPred := mat.NewDense(width, k, nil)
	for j := 1; j <= k; j++ {
		tSpec := logSpectrum(centerCrop(fftShift(powerSpectrum(fft, mat.Col(nil, cols-j, truth))), modes))
		pSpec := logSpectrum(centerCrop(fftShift(powerSpectrum(fft, mat.Col(nil, cols-j, prediction))), modes))
		logTruth.SetCol(j-1, tSpec)
		logPred.SetCol(j-1, pSpec)
	}

	return shortTime, 100 * (1 - frobeniusRatio(logTruth, logPred)), nil
}

// PDEForecast2D scores a 2-D spatiotemporal system prediction whose
// time columns are flattened grid×grid spatial fields in column-major
// order. Each field's 2-D power spectrum is reduced to the single
// spatial column at index grid/2 before the centered crop, so the
// long-time comparison uses one spectral slice per time column.
func PDEForecast2D(truth, prediction *mat.Dense, k, modes, grid int) (shortTime, longTime float64, err error) {
	rows, cols, err := sameShape(truth, prediction)
	if err != nil {
		return 0, 0, err
	}
	if rows != grid*grid {
		return 0, 0, fmt.Errorf("2d pde forecast needs %d flattened rows for grid %d, got %d", grid*grid, grid, rows)
	}
	if cols < k {
		return 0, 0, fmt.Errorf("2d pde forecast needs at least %d time columns, got %d", k, cols)
	}
	width := 2*modes + 1
	if width > grid {
		return 0, 0, fmt.Errorf("2d pde forecast modes %d exceed grid size %d", modes, grid)
	}

	shortTime = shortTimeScore(truth, prediction, k)

	fft := fourier.NewCmplxFFT(grid)
	logTruth := mat.NewDense(width, k, nil)
	logPred := mat.NewDense(width, k, nil)
	for j := 1; j <= k; j++ {
		tSlice := spectralSlice(fft, mat.Col(nil, cols-j, truth), grid, modes)
		pSlice := spectralSlice(fft, mat.Col(nil, cols-j, prediction), grid, modes)
		logTruth.SetCol(j-1, tSlice)
		logPred.SetCol(j-1, pSlice)
	}

	return shortTime, 100 * (1 - frobeniusRatio(logTruth, logPred)), nil
}

// spectralSlice reshapes a flattened column into a grid×grid field
// (column-major), takes the 2-D power spectrum, extracts the spatial
// column at grid/2, centers it and crops to 2*modes+1 log entries.
func spectralSlice(fft *fourier.CmplxFFT, column []float64, grid, modes int) []float64 {
	field := mat.NewDense(grid, grid, nil)
	for j := 0; j < grid; j++ {
		for i := 0; i < grid; i++ {
			field.Set(i, j, column[j*grid+i])
		}
	}
	power := power2D(fft, field)
	return logSpectrum(centerCrop(fftShift(mat.Col(nil, grid/2, power)), modes))
}

func logSpectrum(s []float64) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = math.Log(v)
	}
	return out
}
