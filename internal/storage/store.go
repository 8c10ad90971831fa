package storage

import (
	"context"

	"dynascore/internal/model"
)

// Store persists the history of scoring and validation outcomes per
// submission. The results.json handed back to the workflow is owned by
// the results package; this store is the engine's own archive.
//
// Init must be called before any other operation; Reset clears all
// persisted records but leaves the store initialized.
type Store interface {
	Init(ctx context.Context) error
	Reset(ctx context.Context) error
	SaveScoreRecord(ctx context.Context, rec model.ScoreRecord) error
	GetScoreRecord(ctx context.Context, submissionID string) (model.ScoreRecord, bool, error)
	ListScoreRecords(ctx context.Context) ([]model.ScoreRecord, error)
	SaveValidationRecord(ctx context.Context, rec model.ValidationRecord) error
	GetValidationRecord(ctx context.Context, submissionID string) (model.ValidationRecord, bool, error)
}
