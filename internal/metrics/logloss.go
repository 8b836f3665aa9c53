package metrics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const logLossEps = 1e-15

// LogLoss computes the mean negative log-likelihood of yTrue under the class
// probabilities in yPred. A single column holds positive-class probabilities
// of a binary problem; otherwise there must be one column per class in
// ascending label order. Probabilities are clipped and each row renormalised.
func LogLoss(yTrue []float64, yPred mat.Matrix) (float64, error) {
	n, k := yPred.Dims()
	if n != len(yTrue) {
		return 0, fmt.Errorf("%w: %d truth values, %d prediction rows", ErrShapeMismatch, len(yTrue), n)
	}
	if err := checkFinite("truth", yTrue); err != nil {
		return 0, err
	}
	for j := 0; j < k; j++ {
		if err := checkFinite(fmt.Sprintf("predictions column %d", j), mat.Col(nil, j, yPred)); err != nil {
			return 0, err
		}
	}

	classes := Unique(yTrue)
	if len(classes) < 2 {
		return 0, fmt.Errorf("truth contains only one label (%v); log loss needs at least two", classes)
	}
	if k == 1 && len(classes) != 2 {
		return 0, fmt.Errorf("single probability column given for %d classes", len(classes))
	}
	if k > 1 && k != len(classes) {
		return 0, fmt.Errorf("truth has %d classes but predictions have %d columns", len(classes), k)
	}

	index := labelIndex(classes)
	row := make([]float64, len(classes))
	var loss float64
	for i := 0; i < n; i++ {
		if k == 1 {
			p := yPred.At(i, 0)
			row[0], row[1] = 1-p, p
		} else {
			for j := 0; j < k; j++ {
				row[j] = yPred.At(i, j)
			}
		}

		var sum float64
		for j := range row {
			row[j] = math.Min(math.Max(row[j], logLossEps), 1-logLossEps)
			sum += row[j]
		}
		loss -= math.Log(row[index[yTrue[i]]] / sum)
	}
	return loss / float64(n), nil
}
