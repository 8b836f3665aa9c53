package metrics

import "math"

// R2Score computes the coefficient of determination. A constant truth vector
// scores 1 for a perfect prediction and 0 otherwise; fewer than two samples
// yield NaN.
func R2Score(yTrue, yPred []float64) (float64, error) {
	if err := checkLengths(yTrue, yPred); err != nil {
		return 0, err
	}
	if len(yTrue) < 2 {
		return math.NaN(), nil
	}

	m := Mean(yTrue)
	var ssRes, ssTot float64
	for i := range yTrue {
		r := yTrue[i] - yPred[i]
		ssRes += r * r
		d := yTrue[i] - m
		ssTot += d * d
	}

	if ssTot == 0 {
		if ssRes == 0 {
			return 1, nil
		}
		return 0, nil
	}
	return 1 - ssRes/ssTot, nil
}
