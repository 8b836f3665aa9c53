package pipelines

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/evalml/evalml/internal/metrics"
	"gonum.org/v1/gonum/mat"
)

// Baseline strategies.
const (
	BaselineMean       = "mean"
	BaselineMedian     = "median"
	BaselineMode       = "mode"
	BaselineStratified = "stratified"
)

// BaselineRegressor predicts a constant learned from the target.
type BaselineRegressor struct {
	strategy string
	value    float64
	features int
	fitted   bool
}

var (
	_ Estimator       = (*BaselineRegressor)(nil)
	_ ParameterGetter = (*BaselineRegressor)(nil)
	_ FeatureImporter = (*BaselineRegressor)(nil)
)

// NewBaselineRegressor creates a regressor with the mean or median strategy.
func NewBaselineRegressor(strategy string) (*BaselineRegressor, error) {
	if strategy == "" {
		strategy = BaselineMean
	}
	if strategy != BaselineMean && strategy != BaselineMedian {
		return nil, fmt.Errorf("baseline regressor: unknown strategy %q", strategy)
	}
	return &BaselineRegressor{strategy: strategy}, nil
}

func (*BaselineRegressor) Name() string { return "Baseline Regressor" }

func (b *BaselineRegressor) Parameters() map[string]any {
	return map[string]any{"strategy": b.strategy}
}

func (b *BaselineRegressor) Fit(X mat.Matrix, y mat.Vector) error {
	target, err := targetValues(X, y)
	if err != nil {
		return fmt.Errorf("baseline regressor: %w", err)
	}
	if b.strategy == BaselineMedian {
		b.value = metrics.Median(target)
	} else {
		b.value = metrics.Mean(target)
	}
	_, b.features = X.Dims()
	b.fitted = true
	return nil
}

func (b *BaselineRegressor) Predict(X mat.Matrix) (*mat.VecDense, error) {
	if !b.fitted {
		return nil, fmt.Errorf("baseline regressor: %w", ErrNotFitted)
	}
	r, _ := X.Dims()
	out := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		out.SetVec(i, b.value)
	}
	return out, nil
}

// FeatureImportances is all zeros: the baseline ignores its features.
func (b *BaselineRegressor) FeatureImportances() ([]float64, error) {
	if !b.fitted {
		return nil, fmt.Errorf("baseline regressor: %w", ErrNotFitted)
	}
	return make([]float64, b.features), nil
}

// BaselineClassifier predicts from the target's class distribution alone.
// The mode strategy always predicts the most frequent class; stratified
// samples classes by their frequency using the random state.
type BaselineClassifier struct {
	strategy    string
	randomState int64

	classes  []float64
	freq     []float64
	mode     float64
	features int
}

var (
	_ ProbabilisticEstimator = (*BaselineClassifier)(nil)
	_ ParameterGetter        = (*BaselineClassifier)(nil)
	_ FeatureImporter        = (*BaselineClassifier)(nil)
)

// NewBaselineClassifier creates a classifier with the mode or stratified
// strategy.
func NewBaselineClassifier(strategy string, randomState int64) (*BaselineClassifier, error) {
	if strategy == "" {
		strategy = BaselineMode
	}
	if strategy != BaselineMode && strategy != BaselineStratified {
		return nil, fmt.Errorf("baseline classifier: unknown strategy %q", strategy)
	}
	return &BaselineClassifier{strategy: strategy, randomState: randomState}, nil
}

func (*BaselineClassifier) Name() string { return "Baseline Classifier" }

func (b *BaselineClassifier) Parameters() map[string]any {
	return map[string]any{"strategy": b.strategy, "random_state": b.randomState}
}

func (b *BaselineClassifier) Fit(X mat.Matrix, y mat.Vector) error {
	target, err := targetValues(X, y)
	if err != nil {
		return fmt.Errorf("baseline classifier: %w", err)
	}
	b.classes = metrics.Unique(target)
	counts := make(map[float64]float64, len(b.classes))
	for _, v := range target {
		counts[v]++
	}
	b.freq = make([]float64, len(b.classes))
	for i, c := range b.classes {
		b.freq[i] = counts[c] / float64(len(target))
	}
	b.mode = metrics.Mode(target)
	_, b.features = X.Dims()
	return nil
}

func (b *BaselineClassifier) Classes() []float64 {
	return append([]float64(nil), b.classes...)
}

func (b *BaselineClassifier) Predict(X mat.Matrix) (*mat.VecDense, error) {
	if b.classes == nil {
		return nil, fmt.Errorf("baseline classifier: %w", ErrNotFitted)
	}
	r, _ := X.Dims()
	out := mat.NewVecDense(r, nil)
	if b.strategy == BaselineMode {
		for i := 0; i < r; i++ {
			out.SetVec(i, b.mode)
		}
		return out, nil
	}

	cumulative := make([]float64, len(b.freq))
	var total float64
	for i, f := range b.freq {
		total += f
		cumulative[i] = total
	}
	rng := rand.New(rand.NewSource(b.randomState))
	for i := 0; i < r; i++ {
		k := sort.SearchFloat64s(cumulative, rng.Float64()*total)
		k = min(k, len(b.classes)-1)
		out.SetVec(i, b.classes[k])
	}
	return out, nil
}

// PredictProba returns the training class frequencies for every row.
func (b *BaselineClassifier) PredictProba(X mat.Matrix) (*mat.Dense, error) {
	if b.classes == nil {
		return nil, fmt.Errorf("baseline classifier: %w", ErrNotFitted)
	}
	r, _ := X.Dims()
	out := mat.NewDense(r, len(b.classes), nil)
	for i := 0; i < r; i++ {
		out.SetRow(i, b.freq)
	}
	return out, nil
}

func (b *BaselineClassifier) FeatureImportances() ([]float64, error) {
	if b.classes == nil {
		return nil, fmt.Errorf("baseline classifier: %w", ErrNotFitted)
	}
	return make([]float64, b.features), nil
}

// targetValues checks that X and y agree on row count and copies y out.
func targetValues(X mat.Matrix, y mat.Vector) ([]float64, error) {
	r, _ := X.Dims()
	if r != y.Len() {
		return nil, fmt.Errorf("%w: %d rows, %d targets", metrics.ErrShapeMismatch, r, y.Len())
	}
	if r == 0 {
		return nil, fmt.Errorf("%w: empty target", metrics.ErrShapeMismatch)
	}
	out := make([]float64, r)
	for i := range out {
		out[i] = y.AtVec(i)
	}
	return out, nil
}
