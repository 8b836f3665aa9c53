package pipelines

import (
	"fmt"
	"math"

	"github.com/evalml/evalml/internal/metrics"
	"gonum.org/v1/gonum/mat"
)

// LinearRegressor is an ordinary least squares model solved by QR
// decomposition.
type LinearRegressor struct {
	FitIntercept bool

	coef      []float64
	intercept float64
}

var (
	_ Estimator       = (*LinearRegressor)(nil)
	_ ParameterGetter = (*LinearRegressor)(nil)
	_ FeatureImporter = (*LinearRegressor)(nil)
)

// NewLinearRegressor returns a regressor that fits an intercept.
func NewLinearRegressor() *LinearRegressor {
	return &LinearRegressor{FitIntercept: true}
}

func (*LinearRegressor) Name() string { return "Linear Regressor" }

func (l *LinearRegressor) Parameters() map[string]any {
	return map[string]any{"fit_intercept": l.FitIntercept}
}

func (l *LinearRegressor) Fit(X mat.Matrix, y mat.Vector) error {
	r, c := X.Dims()
	if r != y.Len() {
		return fmt.Errorf("linear regressor: %w: %d rows, %d targets", metrics.ErrShapeMismatch, r, y.Len())
	}
	offset := 0
	if l.FitIntercept {
		offset = 1
	}
	if r < c+offset {
		return fmt.Errorf("linear regressor: need at least %d rows, got %d", c+offset, r)
	}

	design := mat.NewDense(r, c+offset, nil)
	for i := 0; i < r; i++ {
		if l.FitIntercept {
			design.Set(i, 0, 1)
		}
		for j := 0; j < c; j++ {
			design.Set(i, j+offset, X.At(i, j))
		}
	}

	var beta mat.VecDense
	if err := beta.SolveVec(design, y); err != nil {
		return fmt.Errorf("linear regressor: solving least squares: %w", err)
	}

	l.intercept = 0
	if l.FitIntercept {
		l.intercept = beta.AtVec(0)
	}
	l.coef = make([]float64, c)
	for j := range l.coef {
		l.coef[j] = beta.AtVec(j + offset)
	}
	return nil
}

func (l *LinearRegressor) Predict(X mat.Matrix) (*mat.VecDense, error) {
	if l.coef == nil {
		return nil, fmt.Errorf("linear regressor: %w", ErrNotFitted)
	}
	r, c := X.Dims()
	if c != len(l.coef) {
		return nil, fmt.Errorf("linear regressor: %w: fitted on %d features, got %d", metrics.ErrShapeMismatch, len(l.coef), c)
	}
	out := mat.NewVecDense(r, nil)
	out.MulVec(X, mat.NewVecDense(c, l.coef))
	for i := 0; i < r; i++ {
		out.SetVec(i, out.AtVec(i)+l.intercept)
	}
	return out, nil
}

// Coefficients returns the fitted weights, one per feature.
func (l *LinearRegressor) Coefficients() []float64 {
	return append([]float64(nil), l.coef...)
}

// Intercept returns the fitted intercept.
func (l *LinearRegressor) Intercept() float64 { return l.intercept }

// FeatureImportances returns the absolute coefficients.
func (l *LinearRegressor) FeatureImportances() ([]float64, error) {
	if l.coef == nil {
		return nil, fmt.Errorf("linear regressor: %w", ErrNotFitted)
	}
	out := make([]float64, len(l.coef))
	for i, v := range l.coef {
		out[i] = math.Abs(v)
	}
	return out, nil
}
