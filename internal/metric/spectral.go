package metric

import (
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/mat"
)

// powerSpectrum returns the squared magnitudes of the forward DFT of x.
func powerSpectrum(fft *fourier.CmplxFFT, x []float64) []float64 {
	src := make([]complex128, len(x))
	for i, v := range x {
		src[i] = complex(v, 0)
	}
	coeff := fft.Coefficients(nil, src)
	power := make([]float64, len(coeff))
	for i, c := range coeff {
		power[i] = real(c)*real(c) + imag(c)*imag(c)
	}
	return power
}

// fftShift reorders spectrum entries so the zero-frequency bin sits at
// the center, matching the usual centered-spectrum convention.
func fftShift(s []float64) []float64 {
	n := len(s)
	half := (n + 1) / 2
	out := make([]float64, n)
	for i := range s {
		out[i] = s[(i+half)%n]
	}
	return out
}

// centerCrop returns the 2*modes+1 entries of s centered on index
// len(s)/2.
func centerCrop(s []float64, modes int) []float64 {
	mid := len(s) / 2
	return s[mid-modes : mid+modes+1]
}

// power2D returns the squared magnitudes of the 2-D forward DFT of a
// square spatial field, computed as row transforms followed by column
// transforms.
func power2D(fft *fourier.CmplxFFT, field *mat.Dense) *mat.Dense {
	n, _ := field.Dims()

	work := make([][]complex128, n)
	row := make([]complex128, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			row[j] = complex(field.At(i, j), 0)
		}
		work[i] = fft.Coefficients(nil, row)
	}

	power := mat.NewDense(n, n, nil)
	col := make([]complex128, n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			col[i] = work[i][j]
		}
		out := fft.Coefficients(nil, col)
		for i, c := range out {
			power.Set(i, j, real(c)*real(c)+imag(c)*imag(c))
		}
	}
	return power
}
