// Package validate checks a submitted predictions archive before
// scoring: the archive must be named predictions.tar and contain at
// least one prediction file expected by the submission's evaluation
// queue.
package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dynascore/internal/archive"
	"dynascore/internal/catalog"
	"dynascore/internal/model"
	"dynascore/internal/tasks"
	"dynascore/internal/trajectory"
)

// ArchiveName is the required basename of a predictions archive.
const ArchiveName = "predictions.tar"

// ExpectedFilenames lists every prediction filename a queue can score:
// one per (task prefix, known system) pair.
func ExpectedFilenames(queueID string) ([]string, error) {
	prefixes, err := tasks.Prefixes(queueID)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, prefix := range prefixes {
		for _, system := range catalog.Systems() {
			names = append(names, trajectory.PredictionFilename(system, prefix))
		}
	}
	return names, nil
}

// Submission validates one predictions archive, extracting it into
// workDir. The returned record is always terminal: VALIDATED or
// INVALID with semicolon-joined reasons.
func Submission(queueID, archivePath, workDir string) (model.ValidationRecord, error) {
	rec := model.ValidationRecord{Status: model.StatusValidated}
	var reasons []string

	if archivePath == "" || filepath.Base(archivePath) != ArchiveName {
		reasons = append(reasons, fmt.Sprintf("Error: No %q found", ArchiveName))
	} else {
		matched, err := matchedFiles(queueID, archivePath, workDir)
		if err != nil {
			return model.ValidationRecord{}, err
		}
		if matched == 0 {
			reasons = append(reasons, fmt.Sprintf("Error: No expected prediction file(s) found in the %s.", filepath.Base(archivePath)))
		}
	}

	if len(reasons) > 0 {
		rec.Status = model.StatusInvalid
		rec.Errors = strings.Join(reasons, ";")
	}
	return rec, nil
}

func matchedFiles(queueID, archivePath, workDir string) (int, error) {
	expected, err := ExpectedFilenames(queueID)
	if err != nil {
		return 0, err
	}
	expectedSet := make(map[string]bool, len(expected))
	for _, name := range expected {
		expectedSet[name] = true
	}

	if err := archive.Extract(workDir, archivePath, trajectory.FileSuffix); err != nil {
		return 0, err
	}
	entries, err := os.ReadDir(workDir)
	if err != nil {
		return 0, err
	}

	matched := 0
	for _, entry := range entries {
		if expectedSet[entry.Name()] {
			matched++
		}
	}
	return matched, nil
}
