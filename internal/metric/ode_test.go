package metric

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func odeTrajectory(rows, cols int) *mat.Dense {
	m := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			// x,y stay inside [-20,20), z inside [0,50).
			v := 5 * math.Sin(float64(i*cols+j)+1)
			if i == rows-1 {
				v = 10 + v
			}
			m.Set(i, j, v)
		}
	}
	return m
}

func TestODEForecastIdenticalScoresFull(t *testing.T) {
	truth := odeTrajectory(3, 40)
	shortTime, longTime, err := ODEForecast(truth, mat.DenseCopyOf(truth), 20, 1000)
	if err != nil {
		t.Fatalf("ode forecast: %v", err)
	}
	if math.Abs(shortTime-100) > 1e-9 {
		t.Fatalf("short-time score = %v, want 100", shortTime)
	}
	if math.Abs(longTime-100) > 1e-9 {
		t.Fatalf("long-time score = %v, want 100", longTime)
	}
}

func TestODEForecastShapeMismatch(t *testing.T) {
	truth := odeTrajectory(3, 40)
	prediction := odeTrajectory(3, 30)
	if _, _, err := ODEForecast(truth, prediction, 20, 1000); err == nil {
		t.Fatal("expected shape mismatch error")
	}
}

func TestODEForecastTooFewRows(t *testing.T) {
	truth := odeTrajectory(2, 40)
	if _, _, err := ODEForecast(truth, mat.DenseCopyOf(truth), 20, 1000); err == nil {
		t.Fatal("expected state-row error")
	}
}

// The short-time denominator is intentionally unguarded: a zero truth
// window produces a non-finite score rather than an error, and the
// aggregator is responsible for rejecting it.
func TestODEForecastZeroTruthWindow(t *testing.T) {
	truth := mat.NewDense(3, 40, nil)
	prediction := odeTrajectory(3, 40)
	shortTime, _, err := ODEForecast(truth, prediction, 20, 1000)
	if err != nil {
		t.Fatalf("ode forecast: %v", err)
	}
	if !math.IsInf(shortTime, -1) && !math.IsNaN(shortTime) {
		t.Fatalf("short-time score = %v, want non-finite", shortTime)
	}
}

func TestODEForecastDegradedPrediction(t *testing.T) {
	truth := odeTrajectory(3, 40)
	prediction := mat.DenseCopyOf(truth)
	for j := 0; j < 40; j++ {
		prediction.Set(0, j, truth.At(0, j)+3)
	}
	shortTime, longTime, err := ODEForecast(truth, prediction, 20, 1000)
	if err != nil {
		t.Fatalf("ode forecast: %v", err)
	}
	if shortTime >= 100 {
		t.Fatalf("short-time score = %v, want < 100", shortTime)
	}
	if longTime >= 100 {
		t.Fatalf("long-time score = %v, want < 100", longTime)
	}
}

func TestHistogramRangeIsHalfOpen(t *testing.T) {
	counts := histogram([]float64{-20, -0.5, 19.999, 20, 25}, -20, 20)
	var total float64
	for _, c := range counts {
		total += c
	}
	if total != 3 {
		t.Fatalf("counted %v samples, want 3", total)
	}
	if counts[0] != 1 || counts[len(counts)-1] != 1 {
		t.Fatalf("edge bins = %v, %v, want 1, 1", counts[0], counts[len(counts)-1])
	}
}

func TestHistogramDistanceZeroTruthGuard(t *testing.T) {
	if d := histogramDistance([]float64{0, 0}, []float64{1, 2}); d != 0 {
		t.Fatalf("distance = %v, want 0 for zero-norm truth", d)
	}
}
