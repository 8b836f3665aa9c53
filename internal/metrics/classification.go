package metrics

import (
	"fmt"
	"math"
)

// Average selects how per-label scores are combined.
type Average string

const (
	// AverageBinary reports the score of the positive label (1) only.
	AverageBinary Average = "binary"
	// AverageMicro counts true/false positives globally across labels.
	AverageMicro Average = "micro"
	// AverageMacro is the unweighted mean of per-label scores.
	AverageMacro Average = "macro"
	// AverageWeighted weights per-label scores by their true support.
	AverageWeighted Average = "weighted"
)

const positiveLabel = 1.0

// confusion holds per-label counts over the sorted union of true and
// predicted labels.
type confusion struct {
	labels  []float64
	tp      []float64
	fp      []float64
	fn      []float64
	support []float64
}

func newConfusion(yTrue, yPred []float64) (*confusion, error) {
	if err := checkLengths(yTrue, yPred); err != nil {
		return nil, err
	}

	labels := union(yTrue, yPred)
	index := labelIndex(labels)
	c := &confusion{
		labels:  labels,
		tp:      make([]float64, len(labels)),
		fp:      make([]float64, len(labels)),
		fn:      make([]float64, len(labels)),
		support: make([]float64, len(labels)),
	}

	for i := range yTrue {
		t, p := index[yTrue[i]], index[yPred[i]]
		c.support[t]++
		if t == p {
			c.tp[t]++
			continue
		}
		c.fp[p]++
		c.fn[t]++
	}
	return c, nil
}

// prf is a precision/recall/F1 triple.
type prf struct {
	precision float64
	recall    float64
	f1        float64
}

func scoresFromCounts(tp, fp, fn float64) prf {
	return prf{
		precision: safeDiv(tp, tp+fp),
		recall:    safeDiv(tp, tp+fn),
		f1:        safeDiv(2*tp, 2*tp+fp+fn),
	}
}

// safeDiv returns 0 for a zero denominator, matching the zero_division=0
// convention of the classic metric library.
func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func precisionRecallF(yTrue, yPred []float64, avg Average) (prf, error) {
	c, err := newConfusion(yTrue, yPred)
	if err != nil {
		return prf{}, err
	}

	switch avg {
	case AverageBinary:
		if len(c.labels) > 2 {
			return prf{}, fmt.Errorf("target is multiclass (%d labels) but average is %q", len(c.labels), avg)
		}
		pos := -1
		for i, l := range c.labels {
			if l == positiveLabel {
				pos = i
			}
		}
		if pos < 0 {
			if len(c.labels) == 2 {
				return prf{}, fmt.Errorf("positive label %v is not a valid label: %v", positiveLabel, c.labels)
			}
			return prf{}, nil
		}
		return scoresFromCounts(c.tp[pos], c.fp[pos], c.fn[pos]), nil

	case AverageMicro:
		var tp, fp, fn float64
		for i := range c.labels {
			tp += c.tp[i]
			fp += c.fp[i]
			fn += c.fn[i]
		}
		return scoresFromCounts(tp, fp, fn), nil

	case AverageMacro, AverageWeighted:
		var out prf
		var total float64
		for i := range c.labels {
			s := scoresFromCounts(c.tp[i], c.fp[i], c.fn[i])
			w := 1.0
			if avg == AverageWeighted {
				w = c.support[i]
			}
			out.precision += w * s.precision
			out.recall += w * s.recall
			out.f1 += w * s.f1
			total += w
		}
		if total == 0 {
			return prf{}, nil
		}
		out.precision /= total
		out.recall /= total
		out.f1 /= total
		return out, nil

	default:
		return prf{}, fmt.Errorf("unknown average %q", avg)
	}
}

// PrecisionScore computes tp / (tp + fp) under the given averaging.
func PrecisionScore(yTrue, yPred []float64, avg Average) (float64, error) {
	s, err := precisionRecallF(yTrue, yPred, avg)
	return s.precision, err
}

// RecallScore computes tp / (tp + fn) under the given averaging.
func RecallScore(yTrue, yPred []float64, avg Average) (float64, error) {
	s, err := precisionRecallF(yTrue, yPred, avg)
	return s.recall, err
}

// F1Score computes the harmonic mean of precision and recall under the given
// averaging.
func F1Score(yTrue, yPred []float64, avg Average) (float64, error) {
	s, err := precisionRecallF(yTrue, yPred, avg)
	return s.f1, err
}

// MatthewsCorrCoef computes the multiclass Matthews correlation coefficient.
// It returns 0 when the coefficient is undefined (a constant truth or
// prediction vector).
func MatthewsCorrCoef(yTrue, yPred []float64) (float64, error) {
	c, err := newConfusion(yTrue, yPred)
	if err != nil {
		return 0, err
	}

	k := len(c.labels)
	trueSum := make([]float64, k)
	predSum := make([]float64, k)
	var correct float64
	for i := 0; i < k; i++ {
		trueSum[i] = c.support[i]
		predSum[i] = c.tp[i] + c.fp[i]
		correct += c.tp[i]
	}
	s := float64(len(yTrue))

	var tp, pp, tt float64
	for i := 0; i < k; i++ {
		tp += trueSum[i] * predSum[i]
		pp += predSum[i] * predSum[i]
		tt += trueSum[i] * trueSum[i]
	}

	covYtYp := correct*s - tp
	covYpYp := s*s - pp
	covYtYt := s*s - tt
	if covYpYp*covYtYt == 0 {
		return 0, nil
	}
	return covYtYp / math.Sqrt(covYtYt*covYpYp), nil
}
