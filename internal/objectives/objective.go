// Package objectives provides the catalogue of named scoring objectives used to
// evaluate pipeline predictions, each tagged with the problem types it applies
// to and whether it scores class probabilities or hard predictions.
package objectives

import (
	"fmt"
	"slices"

	"github.com/evalml/evalml/internal/problemtypes"
	"gonum.org/v1/gonum/mat"
)

// ScoreFunc computes an objective from predictions and ground truth.
type ScoreFunc func(yPredicted mat.Matrix, yTrue []float64) (float64, error)

// Objective is an immutable named scoring function.
type Objective struct {
	Name            string                     `json:"name"`
	GreaterIsBetter bool                       `json:"greater_is_better"`
	NeedsFitting    bool                       `json:"needs_fitting"`
	ScoreNeedsProba bool                       `json:"score_needs_proba"`
	ProblemTypes    []problemtypes.ProblemType `json:"problem_types"`

	score ScoreFunc
}

// Score evaluates yPredicted against yTrue. Hard-prediction objectives expect a
// single prediction column; probability objectives take either the positive
// class column (binary) or one column per class in ascending label order.
// Score does not check that the data matches the objective's problem types.
func (o *Objective) Score(yPredicted mat.Matrix, yTrue mat.Vector) (float64, error) {
	if o.score == nil {
		return 0, fmt.Errorf("objective %q has no score function", o.Name)
	}
	truth := make([]float64, yTrue.Len())
	for i := range truth {
		truth[i] = yTrue.AtVec(i)
	}
	s, err := o.score(yPredicted, truth)
	if err != nil {
		return 0, fmt.Errorf("scoring %s: %w", o.Name, err)
	}
	return s, nil
}

// SupportsProblemType reports whether o applies to pt. Time series problem
// types are matched on their base problem type.
func (o *Objective) SupportsProblemType(pt problemtypes.ProblemType) bool {
	return slices.Contains(o.ProblemTypes, pt.Base())
}

// IsBetter reports whether score a is an improvement over score b.
func (o *Objective) IsBetter(a, b float64) bool {
	if o.GreaterIsBetter {
		return a > b
	}
	return a < b
}

func (o *Objective) String() string {
	return o.Name
}

// singleColumn extracts the only column of m.
func singleColumn(m mat.Matrix) ([]float64, error) {
	_, c := m.Dims()
	if c != 1 {
		return nil, fmt.Errorf("expected a single prediction column, got %d", c)
	}
	return mat.Col(nil, 0, m), nil
}

// labelScore adapts a hard-prediction metric to a ScoreFunc.
func labelScore(metric func(yTrue, yPred []float64) (float64, error)) ScoreFunc {
	return func(yPredicted mat.Matrix, yTrue []float64) (float64, error) {
		pred, err := singleColumn(yPredicted)
		if err != nil {
			return 0, err
		}
		return metric(yTrue, pred)
	}
}
