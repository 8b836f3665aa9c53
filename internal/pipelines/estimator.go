// Package pipelines fits simple estimators behind an imputer and scores them
// with objectives from the registry.
package pipelines

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrNotFitted is returned when an estimator is used before Fit.
var ErrNotFitted = errors.New("estimator is not fitted")

// Estimator learns from a feature matrix and a target vector.
type Estimator interface {
	// Name is a human readable component name, e.g. "Linear Regressor".
	Name() string
	Fit(X mat.Matrix, y mat.Vector) error
	Predict(X mat.Matrix) (*mat.VecDense, error)
}

// ProbabilisticEstimator is a classifier that can report class probabilities.
// PredictProba returns one column per class in ascending label order.
type ProbabilisticEstimator interface {
	Estimator
	PredictProba(X mat.Matrix) (*mat.Dense, error)
	Classes() []float64
}

// ParameterGetter exposes an estimator's hyperparameters.
type ParameterGetter interface {
	Parameters() map[string]any
}

// FeatureImporter reports one importance value per input feature.
type FeatureImporter interface {
	FeatureImportances() ([]float64, error)
}
