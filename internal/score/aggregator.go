// Package score assembles the full score mapping for one submission:
// it discovers which systems have prediction files, pairs them with
// ground truth, dispatches the queue's tasks to the right metrics and
// collects the keyed scores.
package score

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"

	"dynascore/internal/catalog"
	"dynascore/internal/metric"
	"dynascore/internal/tasks"
	"dynascore/internal/trajectory"
)

// Aggregator scores one extracted predictions directory against a
// ground-truth root. It holds no state across invocations; scoring the
// same inputs twice yields the same mapping.
type Aggregator struct {
	GroundtruthRoot string
	PredictionsDir  string
}

// Scores computes the {system}_{key} score mapping for an evaluation
// queue. Systems without prediction files and prediction files for
// unknown systems are skipped silently; an empty mapping is a valid
// result. Any load or metric failure aborts the whole attempt.
func (a Aggregator) Scores(queueID string) (map[string]float64, error) {
	taskList, err := tasks.ForQueue(queueID)
	if err != nil {
		return nil, err
	}

	systems, err := a.presentSystems()
	if err != nil {
		return nil, err
	}

	result := make(map[string]float64)
	for _, system := range systems {
		for _, task := range taskList {
			if err := a.scoreTask(result, system, task); err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

// presentSystems intersects the systems named by the prediction files
// with the known catalog, in catalog order.
func (a Aggregator) presentSystems() ([]string, error) {
	entries, err := os.ReadDir(a.PredictionsDir)
	if err != nil {
		return nil, err
	}

	present := make(map[string]bool)
	for _, entry := range entries {
		if system, ok := trajectory.SystemFromFilename(entry.Name()); ok {
			present[system] = true
		}
	}

	var systems []string
	for _, system := range catalog.Systems() {
		if present[system] {
			systems = append(systems, system)
		}
	}
	return systems, nil
}

func (a Aggregator) scoreTask(result map[string]float64, system string, task tasks.Task) error {
	predPath := trajectory.PredictionPath(a.PredictionsDir, system, task.Prefix)
	if _, err := os.Stat(predPath); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	truth, err := trajectory.Load(trajectory.TruthPath(a.GroundtruthRoot, system, task.Prefix))
	if err != nil {
		return err
	}
	prediction, err := trajectory.Load(predPath)
	if err != nil {
		return err
	}

	scores, err := taskScores(truth, prediction, system, task)
	if err != nil {
		return fmt.Errorf("score %s %s: %w", system, task.Prefix, err)
	}

	for i, key := range task.Keys {
		idx := task.Indices[i]
		if idx >= len(scores) {
			return fmt.Errorf("score %s %s: no score at index %d for key %s", system, task.Prefix, idx, key)
		}
		s := scores[idx]
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return fmt.Errorf("score %s %s: non-finite value for key %s", system, task.Prefix, key)
		}
		result[system+"_"+key] = math.Max(s, 0)
	}
	return nil
}

func taskScores(truth, prediction *mat.Dense, system string, task tasks.Task) ([]float64, error) {
	switch task.Kind {
	case tasks.KindForecast:
		return catalog.Forecast(truth, prediction, system)
	case tasks.KindReconstruction:
		s, err := metric.Reconstruction(truth, prediction)
		if err != nil {
			return nil, err
		}
		return []float64{s}, nil
	default:
		return nil, fmt.Errorf("unknown task kind %d", task.Kind)
	}
}
