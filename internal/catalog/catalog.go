// Package catalog maps named dynamical systems to their forecast
// metric and fixed numeric parameters. The mapping is pure data: new
// systems are added by extending the table, not by new branching.
package catalog

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"dynascore/internal/metric"
)

// MetricKind is the closed set of forecast metric families.
type MetricKind int

const (
	MetricODEForecast MetricKind = iota
	MetricPDEForecast
	MetricPDEForecast2D
)

// MetricSpec pairs a metric family with its fixed parameters.
// GridSize is meaningful only for MetricPDEForecast2D.
type MetricSpec struct {
	Kind     MetricKind
	K        int
	Modes    int
	GridSize int
}

// Evaluate runs the spec's metric over a truth/prediction pair and
// returns the score sequence (short-time, long-time).
func (s MetricSpec) Evaluate(truth, prediction *mat.Dense) ([]float64, error) {
	switch s.Kind {
	case MetricODEForecast:
		shortTime, longTime, err := metric.ODEForecast(truth, prediction, s.K, s.Modes)
		if err != nil {
			return nil, err
		}
		return []float64{shortTime, longTime}, nil
	case MetricPDEForecast:
		shortTime, longTime, err := metric.PDEForecast(truth, prediction, s.K, s.Modes)
		if err != nil {
			return nil, err
		}
		return []float64{shortTime, longTime}, nil
	case MetricPDEForecast2D:
		shortTime, longTime, err := metric.PDEForecast2D(truth, prediction, s.K, s.Modes, s.GridSize)
		if err != nil {
			return nil, err
		}
		return []float64{shortTime, longTime}, nil
	default:
		return nil, fmt.Errorf("unknown metric kind %d", s.Kind)
	}
}

var systemSpecs = map[string]MetricSpec{
	"doublependulum": {Kind: MetricODEForecast, K: 20, Modes: 1000},
	"Lorenz":         {Kind: MetricODEForecast, K: 20, Modes: 1000},
	"Rossler":        {Kind: MetricODEForecast, K: 20, Modes: 1000},
	"KS":             {Kind: MetricPDEForecast, K: 20, Modes: 100},
	"Lorenz96":       {Kind: MetricPDEForecast, K: 20, Modes: 30},
	"Kolmogorov":     {Kind: MetricPDEForecast2D, K: 20, Modes: 30, GridSize: 128},
}

// Lookup returns the metric spec for a known system.
func Lookup(system string) (MetricSpec, bool) {
	spec, ok := systemSpecs[system]
	return spec, ok
}

// Systems returns the known system names in sorted order.
func Systems() []string {
	names := make([]string, 0, len(systemSpecs))
	for name := range systemSpecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Forecast dispatches a truth/prediction pair to the system's metric.
// An unknown system yields no forecast scores, not an error.
func Forecast(truth, prediction *mat.Dense, system string) ([]float64, error) {
	spec, ok := systemSpecs[system]
	if !ok {
		return nil, nil
	}
	return spec.Evaluate(truth, prediction)
}
