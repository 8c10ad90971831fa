package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"

	"dynascore/internal/archive"
	"dynascore/internal/trajectory"
)

func TestRunMissingCommand(t *testing.T) {
	err := run(context.Background(), nil)
	if err == nil || !strings.Contains(err.Error(), "missing command") {
		t.Fatalf("err = %v", err)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	err := run(context.Background(), []string{"bogus"})
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Fatalf("err = %v", err)
	}
}

func TestRunReset(t *testing.T) {
	if err := run(context.Background(), []string{"reset"}); err != nil {
		t.Fatalf("reset: %v", err)
	}
}

func TestRunScoreMissingFlags(t *testing.T) {
	err := run(context.Background(), []string{"score"})
	if err == nil || !strings.Contains(err.Error(), "score requires") {
		t.Fatalf("err = %v", err)
	}
}

func TestRunSystemsAndTasks(t *testing.T) {
	if err := run(context.Background(), []string{"systems"}); err != nil {
		t.Fatalf("systems: %v", err)
	}
	if err := run(context.Background(), []string{"tasks"}); err != nil {
		t.Fatalf("tasks: %v", err)
	}
	if err := run(context.Background(), []string{"tasks", "-queue", "0"}); err == nil {
		t.Fatal("expected unknown queue error")
	}
}

func TestRunScoreEndToEnd(t *testing.T) {
	truthRoot := t.TempDir()
	arr := mat.NewDense(3, 40, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 40; j++ {
			arr.Set(i, j, float64(i+1)+0.1*float64(j))
		}
	}
	if err := trajectory.Save(trajectory.TruthPath(truthRoot, "Lorenz", "X1"), arr); err != nil {
		t.Fatalf("save truth: %v", err)
	}
	predSrc := t.TempDir()
	if err := trajectory.Save(trajectory.PredictionPath(predSrc, "Lorenz", "X1"), mat.DenseCopyOf(arr)); err != nil {
		t.Fatalf("save prediction: %v", err)
	}
	tarPath := filepath.Join(t.TempDir(), "predictions.tar")
	if err := archive.Tar(predSrc, tarPath); err != nil {
		t.Fatalf("tar: %v", err)
	}

	err := run(context.Background(), []string{
		"score",
		"-submission", "sub-1",
		"-status", "RECEIVED",
		"-predictions", tarPath,
		"-groundtruth", truthRoot,
		"-queue", "9615379",
		"-output", filepath.Join(t.TempDir(), "results.json"),
		"-workdir", t.TempDir(),
	})
	if err != nil {
		t.Fatalf("score: %v", err)
	}
}
