package metric

import "gonum.org/v1/gonum/mat"

// Reconstruction scores a whole-trajectory fit with no time windowing:
// 100*(1 - ||truth-prediction||_F / ||truth||_F).
func Reconstruction(truth, prediction *mat.Dense) (float64, error) {
	if _, _, err := sameShape(truth, prediction); err != nil {
		return 0, err
	}
	return 100 * (1 - frobeniusRatio(truth, prediction)), nil
}
