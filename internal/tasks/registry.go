// Package tasks maps evaluation-queue identifiers to the ordered
// scoring tasks of the corresponding challenge track.
package tasks

import (
	"errors"
	"fmt"
	"sort"
)

// Kind selects how a task's truth/prediction pair is scored.
type Kind int

const (
	// KindForecast scores with the system's forecast metric, which
	// returns a short-time and a long-time score.
	KindForecast Kind = iota
	// KindReconstruction scores with the whole-trajectory
	// reconstruction metric, which returns a single score.
	KindReconstruction
)

// Task is one scoring step of an evaluation queue. Keys and Indices
// are parallel: Keys[i] receives element Indices[i] of the metric's
// score sequence.
type Task struct {
	Prefix  string
	Kind    Kind
	Keys    []string
	Indices []int
}

// ErrUnknownQueue marks an evaluation-queue identifier with no scoring
// policy. This is a caller error, never part of a result record.
var ErrUnknownQueue = errors.New("unknown evaluation queue")

var queues = map[string][]Task{
	// Task 1: short- and long-time forecast.
	"9615379": {
		{Prefix: "X1", Kind: KindForecast, Keys: []string{"stf_E1", "ltf_E2"}, Indices: []int{0, 1}},
	},
	// Task 2: interleaved reconstruction and long-time forecast.
	"9615532": {
		{Prefix: "X2", Kind: KindReconstruction, Keys: []string{"recon_E3"}, Indices: []int{0}},
		{Prefix: "X3", Kind: KindForecast, Keys: []string{"ltf_E4"}, Indices: []int{1}},
		{Prefix: "X4", Kind: KindReconstruction, Keys: []string{"recon_E5"}, Indices: []int{0}},
		{Prefix: "X5", Kind: KindForecast, Keys: []string{"ltf_E6"}, Indices: []int{1}},
	},
	// Task 3: short- and long-time forecast.
	"9615534": {
		{Prefix: "X6", Kind: KindForecast, Keys: []string{"stf_E7", "ltf_E8"}, Indices: []int{0, 1}},
	},
	// Task 4: forecast plus two reconstructions.
	"9615535": {
		{Prefix: "X7", Kind: KindForecast, Keys: []string{"stf_E9", "ltf_E10"}, Indices: []int{0, 1}},
		{Prefix: "X8", Kind: KindReconstruction, Keys: []string{"recon_E11"}, Indices: []int{0}},
		{Prefix: "X9", Kind: KindReconstruction, Keys: []string{"recon_E12"}, Indices: []int{0}},
	},
}

// ForQueue returns the ordered task list for an evaluation queue.
func ForQueue(id string) ([]Task, error) {
	tasks, ok := queues[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownQueue, id)
	}
	return tasks, nil
}

// Prefixes returns the input-file prefixes of a queue's tasks in task
// order.
func Prefixes(id string) ([]string, error) {
	tasks, err := ForQueue(id)
	if err != nil {
		return nil, err
	}
	prefixes := make([]string, len(tasks))
	for i, task := range tasks {
		prefixes[i] = task.Prefix
	}
	return prefixes, nil
}

// Queues returns the known evaluation-queue identifiers in sorted
// order.
func Queues() []string {
	ids := make([]string, 0, len(queues))
	for id := range queues {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
