// Package trajectory loads and stores dense trajectory arrays in the
// NumPy .npy format used by the challenge, and encodes the file-layout
// conventions for truth and prediction arrays.
package trajectory

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

// FileSuffix is the trajectory array format on disk.
const FileSuffix = ".npy"

// Load reads a 2-D trajectory array from an .npy file.
func Load(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var m mat.Dense
	if err := npyio.Read(f, &m); err != nil {
		return nil, fmt.Errorf("read trajectory %s: %w", path, err)
	}
	return &m, nil
}

// Save writes a trajectory array to an .npy file, creating parent
// directories as needed.
func Save(path string, m *mat.Dense) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := npyio.Write(f, m); err != nil {
		_ = f.Close()
		return fmt.Errorf("write trajectory %s: %w", path, err)
	}
	return f.Close()
}

// PredictionFilename returns the submitted array name for a system and
// task prefix.
func PredictionFilename(system, prefix string) string {
	return system + "_" + prefix + "prediction" + FileSuffix
}

// PredictionPath returns the submitted array path inside an extracted
// predictions directory.
func PredictionPath(dir, system, prefix string) string {
	return filepath.Join(dir, PredictionFilename(system, prefix))
}

// TruthPath returns the ground-truth array path under the challenge's
// Test_{system} layout.
func TruthPath(root, system, prefix string) string {
	return filepath.Join(root, "Test_"+system, prefix+"test"+FileSuffix)
}

// SystemFromFilename derives the system name from the portion of a
// prediction filename preceding its first underscore.
func SystemFromFilename(name string) (string, bool) {
	system, _, ok := strings.Cut(name, "_")
	if !ok || system == "" {
		return "", false
	}
	return system, true
}
