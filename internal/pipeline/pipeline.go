// Package pipeline drives one scoring attempt from submission status
// to a terminal SCORED or INVALID record.
package pipeline

import (
	"fmt"

	"dynascore/internal/model"
	"dynascore/internal/score"
)

// Extractor unpacks a predictions archive into a directory. The
// directory must be unique to the submission so concurrent scoring
// processes never share intermediate files.
type Extractor interface {
	Extract(archivePath, dir string) error
}

// Submission carries the externally supplied inputs of one scoring
// attempt.
type Submission struct {
	ID              string
	Status          model.Status
	PredictionsPath string
	QueueID         string
}

// Pipeline scores submissions. When Extractor is nil,
// Submission.PredictionsPath is treated as an already-extracted
// directory; otherwise it is an archive extracted into ExtractDir
// first.
type Pipeline struct {
	Extractor       Extractor
	ExtractDir      string
	GroundtruthRoot string
}

// Score runs one attempt. There is no partial outcome: any failure
// after entry produces an INVALID record with no scores, and an
// already-INVALID submission is never scored at all.
func (p Pipeline) Score(sub Submission) model.ScoreRecord {
	rec := model.ScoreRecord{
		SubmissionID: sub.ID,
		QueueID:      sub.QueueID,
	}

	if sub.Status == model.StatusInvalid {
		rec.Status = model.StatusInvalid
		rec.Errors = "Submission was not scored due to INVALID status"
		return rec
	}

	scores, err := p.runScoring(sub)
	if err != nil {
		rec.Status = model.StatusInvalid
		rec.Errors = fmt.Sprintf("Error %v occurred while scoring", err)
		rec.Scores = nil
		return rec
	}

	rec.Status = model.StatusScored
	rec.Errors = ""
	rec.Scores = scores
	return rec
}

func (p Pipeline) runScoring(sub Submission) (map[string]float64, error) {
	predictionsDir := sub.PredictionsPath
	if p.Extractor != nil {
		if err := p.Extractor.Extract(sub.PredictionsPath, p.ExtractDir); err != nil {
			return nil, err
		}
		predictionsDir = p.ExtractDir
	}

	agg := score.Aggregator{
		GroundtruthRoot: p.GroundtruthRoot,
		PredictionsDir:  predictionsDir,
	}
	return agg.Scores(sub.QueueID)
}
