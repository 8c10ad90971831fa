package storage

import (
	"context"
	"testing"

	"dynascore/internal/model"
)

func TestMemoryStoreScoreRecordRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	input := model.ScoreRecord{
		VersionedRecord: model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion},
		SubmissionID:    "sub-1",
		QueueID:         "9615379",
		Status:          model.StatusScored,
		Scores:          map[string]float64{"Lorenz_stf_E1": 100},
	}
	if err := store.SaveScoreRecord(ctx, input); err != nil {
		t.Fatalf("save: %v", err)
	}

	output, ok, err := store.GetScoreRecord(ctx, "sub-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected persisted score record")
	}
	if output.Status != model.StatusScored || output.Scores["Lorenz_stf_E1"] != 100 {
		t.Fatalf("unexpected record: %+v", output)
	}
}

func TestMemoryStoreListSorted(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	for _, id := range []string{"sub-b", "sub-a", "sub-c"} {
		rec := model.ScoreRecord{SubmissionID: id, Status: model.StatusScored}
		if err := store.SaveScoreRecord(ctx, rec); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	recs, err := store.ListScoreRecords(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 3 || recs[0].SubmissionID != "sub-a" || recs[2].SubmissionID != "sub-c" {
		t.Fatalf("unexpected order: %+v", recs)
	}
}

func TestMemoryStoreValidationRecordRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	input := model.ValidationRecord{
		VersionedRecord: model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion},
		SubmissionID:    "sub-1",
		Status:          model.StatusInvalid,
		Errors:          `Error: No "predictions.tar" found`,
	}
	if err := store.SaveValidationRecord(ctx, input); err != nil {
		t.Fatalf("save: %v", err)
	}

	output, ok, err := store.GetValidationRecord(ctx, "sub-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected persisted validation record")
	}
	if output.Status != model.StatusInvalid || output.Errors == "" {
		t.Fatalf("unexpected record: %+v", output)
	}
}

func TestMemoryStoreSaveBeforeInit(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	rec := model.ScoreRecord{SubmissionID: "sub-1", Status: model.StatusScored}
	if err := store.SaveScoreRecord(ctx, rec); err == nil {
		t.Fatal("expected error saving score record before Init")
	}
	vrec := model.ValidationRecord{SubmissionID: "sub-1", Status: model.StatusValidated}
	if err := store.SaveValidationRecord(ctx, vrec); err == nil {
		t.Fatal("expected error saving validation record before Init")
	}
}

func TestMemoryStoreResetClearsRecords(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	if err := store.SaveScoreRecord(ctx, model.ScoreRecord{SubmissionID: "sub-1", Status: model.StatusScored}); err != nil {
		t.Fatalf("save score: %v", err)
	}
	if err := store.SaveValidationRecord(ctx, model.ValidationRecord{SubmissionID: "sub-1", Status: model.StatusValidated}); err != nil {
		t.Fatalf("save validation: %v", err)
	}

	if err := store.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	recs, err := store.ListScoreRecords(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("got %d score records after reset, want 0", len(recs))
	}
	if _, ok, err := store.GetValidationRecord(ctx, "sub-1"); err != nil || ok {
		t.Fatalf("validation record after reset: ok=%v err=%v", ok, err)
	}

	// Reset leaves the store usable.
	if err := store.SaveScoreRecord(ctx, model.ScoreRecord{SubmissionID: "sub-2", Status: model.StatusScored}); err != nil {
		t.Fatalf("save after reset: %v", err)
	}
}

func TestMemoryStoreMissingSubmission(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	if _, ok, err := store.GetScoreRecord(ctx, "absent"); err != nil || ok {
		t.Fatalf("get absent: ok=%v err=%v", ok, err)
	}
}
