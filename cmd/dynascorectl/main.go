package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"dynascore/internal/catalog"
	"dynascore/internal/storage"
	"dynascore/internal/tasks"
	dynapi "dynascore/pkg/dynascore"
)

const defaultResultsPath = "results.json"

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "init":
		return runInit(ctx, args[1:])
	case "reset":
		return runReset(ctx, args[1:])
	case "score":
		return runScore(ctx, args[1:])
	case "validate":
		return runValidate(ctx, args[1:])
	case "systems":
		return runSystems(args[1:])
	case "tasks":
		return runTasks(args[1:])
	case "history":
		return runHistory(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func runInit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "dynascore.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := storage.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()

	if err := store.Init(ctx); err != nil {
		return err
	}

	fmt.Printf("initialized store=%s\n", *storeKind)
	return nil
}

func runReset(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reset", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "dynascore.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := storage.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()

	if err := store.Init(ctx); err != nil {
		return err
	}
	if err := store.Reset(ctx); err != nil {
		return err
	}

	fmt.Printf("reset store=%s\n", *storeKind)
	return nil
}

func runScore(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	submissionID := fs.String("submission", "", "submission id")
	status := fs.String("status", "", "incoming submission status")
	predictions := fs.String("predictions", "", "predictions tar archive (or directory with -extracted)")
	extracted := fs.Bool("extracted", false, "treat -predictions as an already-extracted directory")
	groundtruth := fs.String("groundtruth", "", "ground-truth root directory")
	queueID := fs.String("queue", "", "evaluation queue id")
	output := fs.String("output", defaultResultsPath, "results document path")
	workDir := fs.String("workdir", os.TempDir(), "scratch directory for extraction")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "dynascore.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *submissionID == "" || *predictions == "" || *queueID == "" {
		return usageError("score requires -submission, -predictions and -queue")
	}

	client, err := dynapi.New(ctx, dynapi.Options{
		StoreKind:       *storeKind,
		DBPath:          *dbPath,
		GroundtruthRoot: *groundtruth,
		WorkDir:         *workDir,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	rec, err := client.ScoreSubmission(ctx, dynapi.ScoreRequest{
		SubmissionID:    *submissionID,
		Status:          *status,
		PredictionsPath: *predictions,
		Extracted:       *extracted,
		QueueID:         *queueID,
		ResultsPath:     *output,
	})
	if err != nil {
		return err
	}

	// The workflow captures the final status from stdout.
	fmt.Println(rec.Status)
	return nil
}

func runValidate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	submissionID := fs.String("submission", "", "submission id")
	predictions := fs.String("predictions", "", "predictions tar archive")
	queueID := fs.String("queue", "", "evaluation queue id")
	output := fs.String("output", defaultResultsPath, "results document path")
	workDir := fs.String("workdir", os.TempDir(), "scratch directory for extraction")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "dynascore.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *submissionID == "" || *queueID == "" {
		return usageError("validate requires -submission and -queue")
	}

	client, err := dynapi.New(ctx, dynapi.Options{
		StoreKind: *storeKind,
		DBPath:    *dbPath,
		WorkDir:   *workDir,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	rec, err := client.ValidateSubmission(ctx, dynapi.ValidateRequest{
		SubmissionID: *submissionID,
		ArchivePath:  *predictions,
		QueueID:      *queueID,
		ResultsPath:  *output,
	})
	if err != nil {
		return err
	}

	fmt.Println(rec.Status)
	return nil
}

func runSystems(args []string) error {
	fs := flag.NewFlagSet("systems", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	for _, system := range catalog.Systems() {
		spec, _ := catalog.Lookup(system)
		switch spec.Kind {
		case catalog.MetricODEForecast:
			fmt.Printf("%s\tode\tk=%d modes=%d\n", system, spec.K, spec.Modes)
		case catalog.MetricPDEForecast:
			fmt.Printf("%s\tpde\tk=%d modes=%d\n", system, spec.K, spec.Modes)
		case catalog.MetricPDEForecast2D:
			fmt.Printf("%s\tpde2d\tk=%d modes=%d grid=%d\n", system, spec.K, spec.Modes, spec.GridSize)
		}
	}
	return nil
}

func runTasks(args []string) error {
	fs := flag.NewFlagSet("tasks", flag.ContinueOnError)
	queueID := fs.String("queue", "", "show one evaluation queue")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ids := tasks.Queues()
	if *queueID != "" {
		ids = []string{*queueID}
	}
	for _, id := range ids {
		taskList, err := tasks.ForQueue(id)
		if err != nil {
			return err
		}
		for _, task := range taskList {
			kind := "forecast"
			if task.Kind == tasks.KindReconstruction {
				kind = "reconstruction"
			}
			fmt.Printf("%s\t%s\t%s\t%v\n", id, task.Prefix, kind, task.Keys)
		}
	}
	return nil
}

func runHistory(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "dynascore.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := storage.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()
	if err := store.Init(ctx); err != nil {
		return err
	}

	recs, err := store.ListScoreRecords(ctx)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		fmt.Printf("%s\t%s\t%s\tscores=%d\t%s\n", rec.SubmissionID, rec.QueueID, rec.Status, len(rec.Scores), rec.Errors)
	}
	return nil
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: dynascorectl <init|reset|score|validate|systems|tasks|history> [flags]", msg)
}
