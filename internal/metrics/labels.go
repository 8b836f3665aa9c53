package metrics

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// ErrShapeMismatch is returned when truth and prediction inputs disagree in size.
var ErrShapeMismatch = errors.New("shape mismatch")

// ErrNaNInput is returned when truth or prediction values hold NaN or
// infinity.
var ErrNaNInput = errors.New("input contains NaN or infinity")

// Unique returns the sorted distinct values of values.
func Unique(values []float64) []float64 {
	seen := make(map[float64]struct{}, len(values))
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Float64s(out)
	return out
}

// LabelBinarize one-hot encodes y against classes. Like the classic
// label_binarize, two classes produce a single indicator column for the
// greater class; more classes produce one column per class.
func LabelBinarize(y []float64, classes []float64) (*mat.Dense, error) {
	if len(y) == 0 {
		return nil, errors.New("label binarize: empty input")
	}
	if len(classes) < 2 {
		return nil, fmt.Errorf("label binarize: need at least 2 classes, got %d", len(classes))
	}
	if err := checkFinite("labels", y); err != nil {
		return nil, fmt.Errorf("label binarize: %w", err)
	}

	if len(classes) == 2 {
		out := mat.NewDense(len(y), 1, nil)
		for i, v := range y {
			if v == classes[1] {
				out.Set(i, 0, 1)
			}
		}
		return out, nil
	}

	index := labelIndex(classes)
	out := mat.NewDense(len(y), len(classes), nil)
	for i, v := range y {
		if j, ok := index[v]; ok {
			out.Set(i, j, 1)
		}
	}
	return out, nil
}

func checkLengths(yTrue, yPred []float64) error {
	if len(yTrue) != len(yPred) {
		return fmt.Errorf("%w: %d truth values, %d predictions", ErrShapeMismatch, len(yTrue), len(yPred))
	}
	if len(yTrue) == 0 {
		return errors.New("empty input")
	}
	if err := checkFinite("truth", yTrue); err != nil {
		return err
	}
	return checkFinite("predictions", yPred)
}

func checkFinite(what string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s[%d] is %v", ErrNaNInput, what, i, v)
		}
	}
	return nil
}

func labelIndex(labels []float64) map[float64]int {
	index := make(map[float64]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}
	return index
}

func union(a, b []float64) []float64 {
	all := make([]float64, 0, len(a)+len(b))
	all = append(all, a...)
	all = append(all, b...)
	return Unique(all)
}
