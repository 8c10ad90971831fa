// Package results maintains the flat results.json document the
// challenge workflow reads back. Scoring and validation each merge
// their keys into whatever the document already holds.
package results

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"dynascore/internal/model"
)

// ScoreDocument flattens a score record into the result document
// form: status and errors plus one float entry per score key.
func ScoreDocument(rec model.ScoreRecord) map[string]any {
	doc := map[string]any{
		"score_status": string(rec.Status),
		"score_errors": rec.Errors,
	}
	for key, value := range rec.Scores {
		doc[key] = value
	}
	return doc
}

// ValidationDocument flattens a validation record into the result
// document form.
func ValidationDocument(rec model.ValidationRecord) map[string]any {
	return map[string]any{
		"validation_status": string(rec.Status),
		"validation_errors": rec.Errors,
	}
}

// Update merges doc into the JSON document at path, preserving keys
// the update does not touch. A missing or empty file starts from an
// empty document.
func Update(path string, doc map[string]any) error {
	existing := make(map[string]any)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return err
	case len(data) > 0:
		if err := json.Unmarshal(data, &existing); err != nil {
			return fmt.Errorf("parse results %s: %w", path, err)
		}
	}

	for key, value := range doc {
		existing[key] = value
	}

	out, err := json.Marshal(existing)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}
