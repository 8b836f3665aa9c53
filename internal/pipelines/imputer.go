package pipelines

import (
	"fmt"
	"math"

	"github.com/evalml/evalml/internal/metrics"
	"gonum.org/v1/gonum/mat"
)

// Impute strategies.
const (
	ImputeMean         = "mean"
	ImputeMedian       = "median"
	ImputeMostFrequent = "most_frequent"
)

// SimpleImputer replaces NaN cells with a per-column statistic learned in Fit.
// A column with no observed values is filled with 0.
type SimpleImputer struct {
	strategy string
	fill     []float64
}

// NewSimpleImputer creates an imputer; an empty strategy means mean.
func NewSimpleImputer(strategy string) (*SimpleImputer, error) {
	if strategy == "" {
		strategy = ImputeMean
	}
	switch strategy {
	case ImputeMean, ImputeMedian, ImputeMostFrequent:
	default:
		return nil, fmt.Errorf("unknown impute strategy %q: must be one of %s, %s, %s",
			strategy, ImputeMean, ImputeMedian, ImputeMostFrequent)
	}
	return &SimpleImputer{strategy: strategy}, nil
}

// Strategy returns the configured strategy.
func (s *SimpleImputer) Strategy() string { return s.strategy }

// Fit learns the fill value of every column of X.
func (s *SimpleImputer) Fit(X mat.Matrix) error {
	_, c := X.Dims()
	fill := make([]float64, c)
	for j := 0; j < c; j++ {
		observed := metrics.DropNaN(mat.Col(nil, j, X))
		if len(observed) == 0 {
			continue
		}
		switch s.strategy {
		case ImputeMedian:
			fill[j] = metrics.Median(observed)
		case ImputeMostFrequent:
			fill[j] = metrics.Mode(observed)
		default:
			fill[j] = metrics.Mean(observed)
		}
	}
	s.fill = fill
	return nil
}

// Transform returns a copy of X with NaN cells filled.
func (s *SimpleImputer) Transform(X mat.Matrix) (*mat.Dense, error) {
	if s.fill == nil {
		return nil, fmt.Errorf("imputer: %w", ErrNotFitted)
	}
	r, c := X.Dims()
	if c != len(s.fill) {
		return nil, fmt.Errorf("imputer: %w: fitted on %d columns, got %d", metrics.ErrShapeMismatch, len(s.fill), c)
	}
	out := mat.DenseCopyOf(X)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if math.IsNaN(out.At(i, j)) {
				out.Set(i, j, s.fill[j])
			}
		}
	}
	return out, nil
}

// FitTransform is Fit followed by Transform on the same matrix.
func (s *SimpleImputer) FitTransform(X mat.Matrix) (*mat.Dense, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}
