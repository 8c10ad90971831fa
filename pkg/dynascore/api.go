// Package dynascore is the public entry point of the scoring engine:
// a Client that validates and scores challenge submissions, writes the
// workflow-facing results document and archives outcomes in a store.
package dynascore

import (
	"context"
	"errors"
	"path/filepath"

	"dynascore/internal/archive"
	"dynascore/internal/model"
	"dynascore/internal/pipeline"
	"dynascore/internal/results"
	"dynascore/internal/storage"
	"dynascore/internal/validate"
)

const defaultDBPath = "dynascore.db"

type Options struct {
	// StoreKind selects the outcome archive backend: memory|sqlite.
	StoreKind string
	DBPath    string
	// GroundtruthRoot holds the Test_{system} directories.
	GroundtruthRoot string
	// WorkDir receives per-submission extraction directories.
	WorkDir string
}

type Client struct {
	store           storage.Store
	groundtruthRoot string
	workDir         string
}

func New(ctx context.Context, opts Options) (*Client, error) {
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}
	store, err := storage.NewStore(opts.StoreKind, dbPath)
	if err != nil {
		return nil, err
	}
	if err := store.Init(ctx); err != nil {
		_ = storage.CloseIfSupported(store)
		return nil, err
	}
	return &Client{
		store:           store,
		groundtruthRoot: opts.GroundtruthRoot,
		workDir:         opts.WorkDir,
	}, nil
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

// ScoreRequest describes one scoring attempt. PredictionsPath is a
// tar archive unless Extracted is set, in which case it is an
// already-extracted directory.
type ScoreRequest struct {
	SubmissionID    string
	Status          string
	PredictionsPath string
	Extracted       bool
	QueueID         string
	// ResultsPath, when set, receives the merged results document.
	ResultsPath string
}

// ScoreSubmission runs the scoring pipeline, persists the outcome and
// updates the results document. The returned record is terminal even
// when an error is returned for the persistence step.
func (c *Client) ScoreSubmission(ctx context.Context, req ScoreRequest) (model.ScoreRecord, error) {
	if req.SubmissionID == "" {
		return model.ScoreRecord{}, errors.New("submission id is required")
	}

	p := pipeline.Pipeline{
		GroundtruthRoot: c.groundtruthRoot,
	}
	if !req.Extracted {
		p.Extractor = archive.NPYExtractor{}
		p.ExtractDir = c.extractDir(req.SubmissionID, "predictions")
	}

	rec := p.Score(pipeline.Submission{
		ID:              req.SubmissionID,
		Status:          model.Status(req.Status),
		PredictionsPath: req.PredictionsPath,
		QueueID:         req.QueueID,
	})
	rec.SchemaVersion = storage.CurrentSchemaVersion
	rec.CodecVersion = storage.CurrentCodecVersion

	if err := c.store.SaveScoreRecord(ctx, rec); err != nil {
		return rec, err
	}
	if req.ResultsPath != "" {
		if err := results.Update(req.ResultsPath, results.ScoreDocument(rec)); err != nil {
			return rec, err
		}
	}
	return rec, nil
}

// ValidateRequest describes one validation attempt on a predictions
// archive.
type ValidateRequest struct {
	SubmissionID string
	ArchivePath  string
	QueueID      string
	ResultsPath  string
}

// ValidateSubmission checks the archive against the queue's expected
// prediction files, persists the outcome and updates the results
// document.
func (c *Client) ValidateSubmission(ctx context.Context, req ValidateRequest) (model.ValidationRecord, error) {
	if req.SubmissionID == "" {
		return model.ValidationRecord{}, errors.New("submission id is required")
	}

	rec, err := validate.Submission(req.QueueID, req.ArchivePath, c.extractDir(req.SubmissionID, "validation"))
	if err != nil {
		return model.ValidationRecord{}, err
	}
	rec.SubmissionID = req.SubmissionID
	rec.SchemaVersion = storage.CurrentSchemaVersion
	rec.CodecVersion = storage.CurrentCodecVersion

	if err := c.store.SaveValidationRecord(ctx, rec); err != nil {
		return rec, err
	}
	if req.ResultsPath != "" {
		if err := results.Update(req.ResultsPath, results.ValidationDocument(rec)); err != nil {
			return rec, err
		}
	}
	return rec, nil
}

// History lists archived score records sorted by submission id.
func (c *Client) History(ctx context.Context) ([]model.ScoreRecord, error) {
	return c.store.ListScoreRecords(ctx)
}

// Result returns the archived score record of one submission.
func (c *Client) Result(ctx context.Context, submissionID string) (model.ScoreRecord, bool, error) {
	return c.store.GetScoreRecord(ctx, submissionID)
}

// extractDir namespaces intermediate files by submission so
// concurrently scored submissions never collide.
func (c *Client) extractDir(submissionID, stage string) string {
	return filepath.Join(c.workDir, submissionID+"_"+stage)
}
